// Package lift defines two immutable wrappers used to thread absence and
// failure through plain function pipelines:
//
//   - Optional[T]: Present(v) or Absent
//   - Failable[T, E]: Ok(v) or Err(e), where E is any error payload
//
// The lifting combinators live in package solo, the fluent wrappers in
// package chain and the diagnostic wrapper in package trace.
package lift
