package middleware

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"strings"

	"diamondstore/pkg/auth"
	"diamondstore/pkg/utils"
)

// SSOAuthMiddleware resolves the bearer token against the Alien SSO and puts
// the stable subject id on the context as "alien_id".
func SSOAuthMiddleware(verifier auth.TokenVerifier) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Missing authorization token")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := verifier.VerifyToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("alien_id", claims.Subject)
		c.Next()
	}
}
