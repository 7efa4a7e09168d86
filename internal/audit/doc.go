// Package audit provides the internal audit event model and asynchronous
// dispatch used by the goSession root package.
//
// Events describe session lifecycle transitions (login, identity refresh,
// logout) and are forwarded to a caller-supplied sink without blocking the
// session operation that emitted them.
//
// # Architecture boundaries
//
// This package owns buffering, backpressure accounting, and drain-on-close.
// Event vocabulary and emission points live in the root package.
//
// # What this package must NOT do
//
//   - Import goSession or any sibling package.
//   - Perform network I/O itself (sinks decide where events go).
//   - Block session operations when the buffer is full and DropIfFull is set.
package audit
