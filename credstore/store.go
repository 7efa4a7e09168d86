package credstore

// Storage keys. Namespaced to avoid collision with unrelated data living in
// the same backend.
const (
	// KeyAccessToken holds the bearer token attached to API requests.
	KeyAccessToken = "erp_access_token"
	// KeyRefreshToken holds the token exchanged for a new access token.
	KeyRefreshToken = "erp_refresh_token"
)

// Store is the durable credential store contract. Implementations must make
// every write visible to subsequent reads within the same client instance.
//
// Get returns the stored value and whether a non-empty value was present.
// Clear is idempotent.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Clear(key string) error
}
