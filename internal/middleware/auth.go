package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcharris/writers-factory-app-sub009/internal/utils"
)

// TokenAuth validates the shared local API token. The desktop UI runs on
// the same machine, so an empty configured token disables the check
// entirely rather than locking the user out.
func TokenAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		supplied := c.GetHeader("X-Factory-Token")
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(token)) != 1 {
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Invalid API token"))
			c.Abort()
			return
		}

		c.Next()
	}
}
