package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/matchpredictor/internal/server/auth"
)

const bearerPrefix = "Bearer "

// contextClaimsKey is the gin context key under which verified claims are
// shared with handlers.
const contextClaimsKey = "auth.claims"

// bearerToken strips the "Bearer " prefix when present; otherwise the full
// header value is treated as the token.
func bearerToken(header string) string {
	if strings.HasPrefix(header, bearerPrefix) {
		return header[len(bearerPrefix):]
	}
	return header
}

// requireAuth verifies the bearer credential on the request and stores the
// claims in the context. Verification is a pure function of the header and
// the signing key; no store lookups happen here.
func (s *HTTPServer) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "No authorization header provided",
			})
			return
		}

		token := bearerToken(header)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "No token provided",
			})
			return
		}

		claims, err := s.tokens.Verify(token)
		if err != nil {
			s.logger.Debug(c.Request.Context(), "rejected bearer token",
				"path", c.Request.URL.Path, "reason", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": err.Error(),
			})
			return
		}

		c.Set(contextClaimsKey, claims)
		c.Next()
	}
}

// claimsFromContext returns the claims stored by requireAuth.
func claimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(contextClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
