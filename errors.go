package goSession

import "errors"

var (
	// ErrInvalidResponse is returned when the server reports success but the
	// payload is missing a required token. A 200 with no access token is a
	// failed login.
	ErrInvalidResponse = errors.New("invalid auth response")
	// ErrNoRefreshToken is returned by [Session.RefreshAccessToken] when no
	// refresh token is stored.
	ErrNoRefreshToken = errors.New("no refresh token")
)

// Server-rejected logins and registrations are reported as
// *apiclient.APIError so the caller can display the backend's message
// verbatim. Identity-refresh failures are never surfaced as errors at all;
// they resolve to an unauthenticated session.
