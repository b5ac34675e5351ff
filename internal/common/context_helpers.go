// File: internal/common/context_helpers.go
package common

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GetTokenFromContext retrieves the bearer token string from the Authorization header.
// Returns an empty string if not found.
func GetTokenFromContext(c *gin.Context) string {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], AuthorizationTypeBearer) {
		return ""
	}
	return parts[1]
}

// GetIdentityUIDFromContext retrieves the authenticated identity's UID from the Gin context.
func GetIdentityUIDFromContext(c *gin.Context) string {
	val, exists := c.Get(IdentityUIDKey)
	if !exists {
		return ""
	}
	uid, ok := val.(string)
	if !ok {
		return ""
	}
	return uid
}

// GetUserRoleFromContext retrieves the resolved role from the Gin context.
// Returns an empty Role when no profile was resolved for the identity.
func GetUserRoleFromContext(c *gin.Context) Role {
	val, exists := c.Get(UserRoleKey)
	if !exists {
		return ""
	}
	role, ok := val.(Role)
	if !ok {
		return ""
	}
	return role
}
