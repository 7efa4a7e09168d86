// Package guard decides whether a route transition is allowed, redirected
// to sign-in, or redirected home, based on the target route's declared
// requirements and the current session.
//
// The guard gates authentication only by default: a route's Permission
// metadata is advisory, checked by the destination view through
// Session.HasPermission. Setting [Config].EnforcePermissions centralizes
// that check in the guard instead.
//
// # Architecture boundaries
//
// This package translates navigation semantics into session queries. The
// route table is static configuration; decisions always complete before the
// router proceeds.
//
// # What this package must NOT do
//
//   - Mutate session state or the credential store.
//   - Perform network I/O; Evaluate is synchronous.
//   - Make authentication decisions beyond what the session reports.
package guard
