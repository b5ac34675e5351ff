// File: internal/common/roles.go
package common

// Role classifies a profile for access control and routing.
// Precedence when deciding destinations: admin > artist > user.
type Role string

const (
	RoleUser   Role = "user"
	RoleArtist Role = "artist"
	RoleAdmin  Role = "admin"
)

// ParseRole maps a stored role string onto the known set.
// Unknown values degrade to RoleUser rather than failing the session.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	case RoleArtist:
		return RoleArtist
	default:
		return RoleUser
	}
}

// IsValid reports whether the role is one of the known variants.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleArtist, RoleAdmin:
		return true
	}
	return false
}
