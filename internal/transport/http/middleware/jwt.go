package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"statusboard/internal/pkg/jwtutil"
	"statusboard/internal/transport/http/response"
)

const ContextUserIDKey = "user_id"

// AuthJWT requires a valid bearer token and stores its user id under
// ContextUserIDKey. A missing or malformed header and a token that fails
// verification are both 401, with different messages.
func AuthJWT(tokens *jwtutil.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))

		const prefix = "Bearer "
		if !strings.HasPrefix(authHeader, prefix) {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := tokens.ParseToken(token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "invalid token")
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// UserID returns the authenticated user id, if AuthJWT ran.
func UserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
