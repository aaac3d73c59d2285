package middleware

import (
	"errors"
	"net/http"
	"strings"

	"travel-gateway/helper"
	"travel-gateway/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

// bearerToken reads the token from the Authorization header.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}
	return tokenString, true
}

// streamToken falls back to the token query parameter when the header is
// absent.
func streamToken(c *gin.Context) (string, bool) {
	if c.GetHeader("Authorization") == "" {
		token := c.Query("token")
		return token, token != ""
	}
	return bearerToken(c)
}

// RequireAuth rejects requests without a valid access token and stores the
// caller's id and email on the context.
func RequireAuth(tokens services.TokenService, h *helper.HTTPHelper) gin.HandlerFunc {
	return requireToken(tokens, h, bearerToken)
}

// RequireStreamAuth is RequireAuth for long-lived event streams, which may
// carry the access token as ?token= instead of a header.
func RequireStreamAuth(tokens services.TokenService, h *helper.HTTPHelper) gin.HandlerFunc {
	return requireToken(tokens, h, streamToken)
}

func requireToken(tokens services.TokenService, h *helper.HTTPHelper, extract func(*gin.Context) (string, bool)) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extract(c)
		if !ok {
			h.SendStatusError(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := tokens.ParseAccess(tokenString)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				message = "Token expired"
			}
			h.SendStatusError(c, http.StatusUnauthorized, message)
			return
		}

		c.Set(UserIDKey, claims.Subject)
		c.Set(UserEmailKey, claims.Email)
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid access token is present and
// lets anonymous requests through.
func OptionalAuth(tokens services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if claims, err := tokens.ParseAccess(tokenString); err == nil {
				c.Set(UserIDKey, claims.Subject)
				c.Set(UserEmailKey, claims.Email)
			}
		}
		c.Next()
	}
}
