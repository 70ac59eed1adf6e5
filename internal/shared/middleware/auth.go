package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"consulting-backend/internal/shared/response"
	"consulting-backend/pkg/cache"
	"consulting-backend/pkg/jwt"
)

const revokedSessionPrefix = "session:revoked:"

// AuthMiddleware validates the Bearer access token and rejects tokens
// revoked by logout. On success it stores the admin identity in the
// gin context for handlers downstream.
func AuthMiddleware(jwtManager *jwt.Manager, sessions cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		revoked, err := sessions.Exists(c.Request.Context(), revokedSessionPrefix+claims.ID)
		if err != nil {
			// Cannot confirm the session is still valid, so refuse it.
			response.Unauthorized(c, "session check failed")
			c.Abort()
			return
		}
		if revoked {
			response.Unauthorized(c, "session has been revoked")
			c.Abort()
			return
		}

		adminID, err := uuid.Parse(claims.AdminID)
		if err != nil {
			response.Unauthorized(c, "invalid admin ID in token")
			c.Abort()
			return
		}

		c.Set("adminID", adminID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("claims", claims)

		c.Next()
	}
}
