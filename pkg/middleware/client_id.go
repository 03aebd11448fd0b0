package middleware

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"travelai/pkg/utils"
)

const (
	ClientIDHeader  = "X-Client-ID"
	AnonymousClient = "anonymous"
)

var clientIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ClientIDMiddleware scopes saved-trip storage to the caller's X-Client-ID.
func ClientIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := c.GetHeader(ClientIDHeader)
		if clientID == "" {
			clientID = AnonymousClient
		}
		if !clientIDPattern.MatchString(clientID) {
			utils.RespondError(c, http.StatusBadRequest, "X-Client-ID must be 1-64 letters, digits, '-' or '_'")
			c.Abort()
			return
		}
		c.Set("client_id", clientID)
		c.Next()
	}
}
