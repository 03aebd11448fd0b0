package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"travelai/pkg/utils"
)

// TokenDenylist reports tokens revoked before their expiry.
type TokenDenylist interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

func JWTAuthMiddleware(jwtManager *utils.JWTManager, denylist TokenDenylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		revoked, err := denylist.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			_ = c.Error(err)
			utils.RespondError(c, http.StatusServiceUnavailable, "Unable to verify token")
			c.Abort()
			return
		}
		if revoked {
			utils.RespondError(c, http.StatusUnauthorized, "Token is logged out")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("claims", claims)
		c.Next()
	}
}

// ClaimsFrom returns the claims stored by JWTAuthMiddleware.
func ClaimsFrom(c *gin.Context) (*utils.Claims, bool) {
	v, ok := c.Get("claims")
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok
}
