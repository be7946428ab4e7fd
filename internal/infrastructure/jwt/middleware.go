package jwtmw

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContextClaims is the gin context key under which verified claims are stored.
const ContextClaims = "authClaims"

// HeaderToken is the request header carrying the raw token value.
// The clients send the token directly, not as a Bearer authorization header.
const HeaderToken = "token"

// AuthRequired returns a Gin middleware function that validates JWT tokens
// and restricts access to authenticated users only.
func AuthRequired(gen Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get the raw token from the custom header
		tokenStr := c.GetHeader(HeaderToken)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		// 2. Verify signature and expiry
		claims, err := gen.ParseToken(tokenStr)
		if err != nil {
			// Expired and malformed tokens both map to 401; only the logs distinguish them.
			if errors.Is(err, ErrTokenExpired) {
				slog.Warn("token expired", "remote_addr", c.ClientIP())
			} else {
				slog.Warn("token invalid", "error", err, "remote_addr", c.ClientIP())
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 3. Store claims for downstream handlers
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// GetClaims retrieves the verified claims stored by AuthRequired.
func GetClaims(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}
