package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/julianstephens/daylog/internal/logger"
)

// RefreshHeader carries a replacement token when the presented one is close to expiry.
const RefreshHeader = "X-New-Token"

func (s *Server) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tok, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tok == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		exp, err := s.issuer.Verify(tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if s.issuer.NeedsRefresh(exp) {
			fresh, err := s.issuer.Issue()
			if err != nil {
				logger.Warn("Token refresh failed", "error", err)
			} else {
				c.Header(RefreshHeader, fresh)
			}
		}
		c.Next()
	}
}
