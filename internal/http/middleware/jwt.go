package middleware

import (
	"errors"
	"net/http"
	"strings"

	"project_tracker/internal/logger"
	"project_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey = "user_id"
	ClaimsKey = "claims"
)

// TokenParser verifies a bearer token.
type TokenParser interface {
	Parse(token string) (*service.Claims, error)
}

// JWT requires a valid "Authorization: Bearer <token>" header and stores the
// user id (int64) and the claims in the gin context.
func JWT(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "authorization header is required")
			return
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abortUnauthorized(c, "invalid authorization header format, use: Bearer <token>")
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, service.ErrExpiredToken) {
				msg = "token expired"
			}
			abortUnauthorized(c, msg)
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(ClaimsKey, claims)

		ctx := c.Request.Context()
		c.Request = c.Request.WithContext(logger.NewContext(ctx, logger.WithContext(ctx).With("user_id", claims.UserID)))

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": msg})
}
