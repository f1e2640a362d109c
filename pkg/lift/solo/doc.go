// Package solo contains single-value, synchronous combinators that lift plain
// functions over lift.Optional and lift.Failable.
//
// Highlights:
// - MapOptional/MapFailable: lift f: T -> U, short-circuiting on Absent/Err
// - TeeOptional/TeeFailable: side effects on present/ok values only
// - FoldOptional/FoldFailable: reduce to a concrete value, both cases handled
// - Compose/Identity: left-to-right function composition
//
// Nothing here recovers panics: a lifted function that faults on a present or
// ok value propagates the fault to the caller.
package solo
