// File: internal/common/context_keys.go
package common

const (
	// AuthorizationHeader is the header name for authorization token
	AuthorizationHeader = "Authorization"
	// AuthorizationTypeBearer is the prefix for Bearer tokens
	AuthorizationTypeBearer = "Bearer"
	// IdentityUIDKey is the context key for the authenticated identity's UID
	IdentityUIDKey = "identityUID"
	// UserEmailKey is the context key for the authenticated identity's email
	UserEmailKey = "userEmail"
	// UserRoleKey is the context key for the resolved profile's role
	UserRoleKey = "userRole"
	// SignInProviderKey is the context key for the provider used to sign in
	SignInProviderKey = "signInProvider"
	// ProfileKey is the context key for the resolved profile (may be absent)
	ProfileKey = "profile"
)
