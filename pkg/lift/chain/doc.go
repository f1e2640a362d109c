// Package chain provides fluent wrappers around lift.Failable and
// lift.Optional for building synchronous pipelines out of solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a wrapper or a plain value
// - Map: transform the carried value (T -> U), short-circuiting on Err/Absent
// - MapTraced: like Map, reporting the lifted stage through package trace
// - Ensure: run side effects on ok/present values without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
