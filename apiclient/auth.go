package apiclient

import (
	"context"
	"net/http"
)

// User is the backend's user representation.
type User struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	Active         bool   `json:"is_active"`
}

// Organization is the backend's tenant representation.
type Organization struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Timezone string `json:"timezone"`
}

// CredentialsPayload is returned by login and register.
type CredentialsPayload struct {
	User         User         `json:"user"`
	Organization Organization `json:"organization"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// IdentityPayload is returned by the who-am-I endpoint. Permissions are only
// trustworthy from here; login responses never carry them.
type IdentityPayload struct {
	User         User         `json:"user"`
	Organization Organization `json:"organization"`
	Permissions  []string     `json:"permissions"`
}

// RefreshPayload is returned by the token refresh endpoint.
type RefreshPayload struct {
	AccessToken string `json:"access_token"`
}

// RegisterRequest creates a new organization and its first user.
type RegisterRequest struct {
	OrganizationName string `json:"organization_name"`
	OrganizationCode string `json:"organization_code"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	FullName         string `json:"full_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for tokens and the initial principal.
func (c *Client) Login(ctx context.Context, email, password string) (CredentialsPayload, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return CredentialsPayload{}, err
	}

	var payload CredentialsPayload
	if err := decodeSuccess(env, "login failed", &payload); err != nil {
		return CredentialsPayload{}, err
	}
	return payload, nil
}

// Register creates an organization plus first user and returns tokens.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (CredentialsPayload, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/auth/register", req)
	if err != nil {
		return CredentialsPayload{}, err
	}

	var payload CredentialsPayload
	if err := decodeSuccess(env, "registration failed", &payload); err != nil {
		return CredentialsPayload{}, err
	}
	return payload, nil
}

// Me fetches the authenticated principal, organization, and permission set
// using the client's access token.
func (c *Client) Me(ctx context.Context) (IdentityPayload, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/auth/me", nil)
	if err != nil {
		return IdentityPayload{}, err
	}

	var payload IdentityPayload
	if err := decodeSuccess(env, "identity fetch failed", &payload); err != nil {
		return IdentityPayload{}, err
	}
	return payload, nil
}

// Refresh exchanges the refresh token for a new access token. The refresh
// token itself is the bearer credential on this endpoint.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (RefreshPayload, error) {
	env, err := c.doWithBearer(ctx, http.MethodPost, "/api/auth/refresh", nil, refreshToken)
	if err != nil {
		return RefreshPayload{}, err
	}

	var payload RefreshPayload
	if err := decodeSuccess(env, "token refresh failed", &payload); err != nil {
		return RefreshPayload{}, err
	}
	return payload, nil
}
