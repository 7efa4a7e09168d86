// Package apiclient is the transport boundary between a client session and
// the ERP backend's /api/auth endpoints.
//
// Every response, success or failure, is normalized into the backend's
// standard envelope {status, data, message, errors}. A non-2xx transport
// status or an unparsable body always yields an error envelope with data
// defaulted to an empty object; body parsing is an explicit fallible step,
// never a silent default.
//
// # Architecture boundaries
//
// This package owns HTTP concerns only: header attachment, envelope
// decoding, and payload typing. Session state decisions (adopting tokens,
// downgrading to unauthenticated) belong to the goSession root package.
//
// # What this package must NOT do
//
//   - Write to the credential store.
//   - Decide authentication state from a response.
//   - Retry or refresh tokens on its own.
package apiclient
