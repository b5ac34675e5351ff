// File: internal/middleware/auth.go
package middleware

import (
	"music_catalog_backend/internal/common"
	"music_catalog_backend/internal/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware is the access guard. A request passes through three states:
// resolving (token being verified, profile being fetched; the handler has not
// run), unauthenticated (missing or invalid token; the handler never runs),
// authenticated (identity plus possibly-nil profile in context; the handler
// runs). The guard holds no state of its own between requests.
//
// Profile lookup failures do not fail the request: the identity stays
// authenticated with no profile, matching ResolveProfile semantics.
func AuthMiddleware(verifier shared.TokenVerifier, profiles shared.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := common.GetTokenFromContext(c)
		if tokenString == "" {
			logger.Debug("Authorization header missing or malformed")
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authorization header must be 'Bearer <token>'."))
			return
		}

		identity, err := verifier.VerifyIDToken(c.Request.Context(), tokenString)
		if err != nil {
			logger.Warn("ID token verification failed", zap.Error(err))
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Invalid or expired token."))
			return
		}

		profile := profiles.ResolveProfile(c.Request.Context(), identity.UID)

		c.Set(common.IdentityUIDKey, identity.UID)
		if identity.Email != nil {
			c.Set(common.UserEmailKey, *identity.Email)
		}
		c.Set(common.SignInProviderKey, identity.SignInProvider)
		c.Set(common.ProfileKey, profile)
		if profile != nil {
			c.Set(common.UserRoleKey, profile.Role)
		}

		c.Next()
	}
}

// GetProfileFromContext retrieves the resolved profile from the Gin context.
// Returns nil when the identity has no profile.
func GetProfileFromContext(c *gin.Context) *shared.Profile {
	val, exists := c.Get(common.ProfileKey)
	if !exists {
		return nil
	}
	profile, ok := val.(*shared.Profile)
	if !ok {
		return nil
	}
	return profile
}

// RoleAuthMiddleware checks that the resolved profile carries one of the
// allowed roles. Identities without a profile are rejected outright.
func RoleAuthMiddleware(allowedRoles ...common.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := GetProfileFromContext(c)
		if profile == nil {
			common.RespondWithError(c, common.ErrForbidden.WithDetails("No profile is associated with this identity."))
			return
		}

		for _, role := range allowedRoles {
			if profile.Role == role {
				c.Next()
				return
			}
		}

		common.RespondWithError(c, common.ErrForbidden.WithDetails("You do not have sufficient permissions for this resource."))
	}
}
