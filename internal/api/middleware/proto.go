package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/develop-y-minami/v-spa/internal/api"
)

// RequireSupportedProto rejects protocol versions the API does not speak.
// Anything other than HTTP/1.x or HTTP/2 gets a 505 envelope.
func RequireSupportedProto() gin.HandlerFunc {
	return func(c *gin.Context) {
		major := c.Request.ProtoMajor
		if major != 1 && major != 2 {
			c.Abort()
			api.Error(c, http.StatusHTTPVersionNotSupported, "HTTP Version Not Supported")
			return
		}
		c.Next()
	}
}
