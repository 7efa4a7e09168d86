package internaldefs

import (
	goSession "github.com/MrEthical07/goSession"
)

// CounterDef binds a session metric ID to its exported name.
type CounterDef struct {
	ID   goSession.MetricID
	Name string
	Help string
}

// CounterDefs enumerates every exported counter.
var CounterDefs = []CounterDef{
	{ID: goSession.MetricLoginSuccess, Name: "gosession_login_success_total", Help: "Successful login attempts."},
	{ID: goSession.MetricLoginFailure, Name: "gosession_login_failure_total", Help: "Failed login attempts."},
	{ID: goSession.MetricRegisterSuccess, Name: "gosession_register_success_total", Help: "Successful registrations."},
	{ID: goSession.MetricRegisterFailure, Name: "gosession_register_failure_total", Help: "Failed registrations."},
	{ID: goSession.MetricIdentityRefreshSuccess, Name: "gosession_identity_refresh_success_total", Help: "Identity fetches that confirmed a principal."},
	{ID: goSession.MetricIdentityRefreshFailure, Name: "gosession_identity_refresh_failure_total", Help: "Identity fetches that downgraded the session."},
	{ID: goSession.MetricTokenRefreshSuccess, Name: "gosession_token_refresh_success_total", Help: "Access-token rotations."},
	{ID: goSession.MetricTokenRefreshFailure, Name: "gosession_token_refresh_failure_total", Help: "Failed access-token rotations."},
	{ID: goSession.MetricHydrateSkipped, Name: "gosession_hydrate_skipped_total", Help: "Bootstrap calls on an already hydrated session."},
	{ID: goSession.MetricHydrateNoCredentials, Name: "gosession_hydrate_no_credentials_total", Help: "Bootstraps resolved without a network call."},
	{ID: goSession.MetricSessionInvalidated, Name: "gosession_session_invalidated_total", Help: "Downgrades to unauthenticated state."},
	{ID: goSession.MetricLogout, Name: "gosession_logout_total", Help: "Explicit logout operations."},
	{ID: goSession.MetricGuardAllow, Name: "gosession_guard_allow_total", Help: "Navigations allowed by the guard."},
	{ID: goSession.MetricGuardRedirectSignin, Name: "gosession_guard_redirect_signin_total", Help: "Navigations redirected to sign-in."},
	{ID: goSession.MetricGuardRedirectHome, Name: "gosession_guard_redirect_home_total", Help: "Navigations redirected to the home route."},
}
