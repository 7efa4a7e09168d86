// Package goSession is the client-side session and access-control layer for
// shells of the ERP backend: it establishes identity from a bearer
// credential, caches the authenticated principal's profile and permission
// set, and exposes the predicates a navigation guard and views need to gate
// protected screens.
//
// A [Session] is constructed through [Builder.Build] and owns the full
// login / logout / identity-refresh protocol. It is the only writer of the
// credential store: tokens are persisted write-through, so the store and the
// in-memory state never disagree at a mutation boundary.
//
// # Architecture boundaries
//
// goSession is the public surface. It exposes [Session], [Builder],
// [Config], and value types (SessionSnapshot, Principal, Organization).
// Transport lives in apiclient, durable credentials in credstore, navigation
// decisions in guard, and audit dispatch under internal/.
//
// # What this package must NOT do
//
//   - Render anything or know about individual views.
//   - Expose the HTTP client, envelope, or store internals in its API.
//   - Surface identity-refresh failures as errors; they downgrade the
//     session to unauthenticated and the guard handles the rest.
package goSession
