package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/response"
)

// RequestID tags each ops request for log correlation, honoring an inbound
// X-Request-ID and echoing it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set("request_id", reqID)
		c.Writer.Header().Set("X-Request-ID", reqID)
		c.Next()
	}
}

// BearerAuth guards the data endpoints with the single config-sourced ops
// token. The mood history belongs to one person; nothing weaker than an exact
// token match gets through.
func BearerAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			got := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if got != "" && got == token {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("missing or invalid bearer token"))
	}
}
