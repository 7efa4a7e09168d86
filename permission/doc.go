// Package permission provides the immutable permission set attached to an
// authenticated session.
//
// Permission identifiers are opaque strings minted by the backend (for
// example "crm.view"). The client never interprets them; membership testing
// is the only supported operation. Sets are replaced wholesale on every
// identity fetch and are never patched in place.
//
// # Architecture boundaries
//
// This package is a pure in-memory data structure with no I/O.
//
// # What this package must NOT do
//
//   - Access storage or the network.
//   - Import goSession, apiclient, or credstore.
//   - Mutate a set after construction.
package permission
