// Package trace wraps functions so that every call reports the function's
// label, its input and its output to a Sink:
//
//	Function: increment
//	Input: 3
//	Output: 4
//
// The wrapped function is otherwise transparent. When the wrapped function
// panics, the Output record is not emitted and the panic propagates.
//
// WithLogging and WithLogging2 cover unary and binary functions without
// reflection; Wrap accepts a function of any signature.
package trace
