package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/erp/order-import/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// APIKeyHeader is the header carrying the caller's API key
const APIKeyHeader = "X-API-Key"

// APIKeyAuth returns a middleware that checks the request's API key against
// the configured key list. An empty key list disables authentication, which
// is the development default.
func APIKeyAuth(keys []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(keys) == 0 {
			c.Next()
			return
		}

		provided := c.GetHeader(APIKeyHeader)
		if provided != "" {
			for _, key := range keys {
				if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) == 1 {
					c.Next()
					return
				}
			}
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeUnauthorized,
			"Invalid or missing API key",
			c.GetString("request_id"),
		))
	}
}
