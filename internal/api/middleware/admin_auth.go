package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rockdove/aviation-backend/internal/auth"
)

type apiError struct {
	Error string `json:"error"`
}

// AdminAuth requires a valid bearer secret for every admin action except
// login, which performs its own check against the posted body. The check is
// stateless; there is no session to expire.
func AdminAuth(v auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("action") == "login" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{Error: "Unauthorized"})
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if raw == "" || !v.Verify(raw) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{Error: "Unauthorized"})
			return
		}

		c.Next()
	}
}
