package server

import (
	"strings"

	"github.com/gin-gonic/gin"

	"hexago/internal/auth"
)

// claimsKey is the gin context key under which verified token claims are
// stored for downstream handlers.
const claimsKey = "claims"

// RequireAuth gates protected routes behind a bearer token. A missing or
// malformed Authorization header yields 401 "Not authenticated"; a token
// that fails verification yields 401 "Invalid token".
func RequireAuth(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			unauthenticated(c, "Not authenticated")
			return
		}

		claims, err := issuer.Verify(raw)
		if err != nil {
			unauthenticated(c, "Invalid token")
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}
