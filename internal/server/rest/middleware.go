package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mkarpenko/tasktrack/internal/server/auth"
)

const principalKey = "principalID"

const bearerPrefix = "Bearer "

// authenticate is the identity guard: it turns a bearer token into a
// principal or rejects the request. Missing header, wrong scheme, and
// malformed/expired/bad-signature tokens all produce the identical 401
// body, so the response never reveals why a token was rejected.
func (s *Server) authenticate(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		s.rejectUnauthorized(c)
		return
	}

	accountID, err := auth.GetAccountIDFromToken(strings.TrimSpace(header[len(bearerPrefix):]), s.jwtSecret)
	if err != nil {
		s.rejectUnauthorized(c)
		return
	}

	c.Set(principalKey, accountID)
	c.Next()
}

func (s *Server) rejectUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, messageResponse{Message: "Unauthorized"})
}

// principalID returns the authenticated account id set by authenticate.
func principalID(c *gin.Context) string {
	return c.GetString(principalKey)
}
