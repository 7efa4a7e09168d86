// Package credstore provides durable key-value persistence for the two
// bearer credentials of a client session: the access token and the refresh
// token. It is the only persisted projection of session state and must stay
// consistent with the in-memory session at every mutation boundary.
//
// # Backends
//
//   - [File] — JSON file on local disk, the default for desktop and webview
//     shells; survives process restarts.
//   - [Redis] — go-redis backed store for deployments where the credential
//     cache is shared across shell instances (kiosk fleets, edge renderers).
//   - [Mem] — in-memory store for tests and ephemeral shells.
//
// # Architecture boundaries
//
// Stores hold opaque string blobs under exactly two namespaced keys. They
// perform no validation, parsing, or expiry logic.
//
// # What this package must NOT do
//
//   - Inspect token contents.
//   - Import goSession or apiclient.
//   - Cache writes; every Set/Clear is visible to the next Get.
package credstore
