package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const sessionRoleKey = "session_role"

// SessionClaims parses an optional bearer token into the request context.
// There is no enforcement: requests without a token, or with a bad one, pass
// through untouched. The role claim only feeds logging.
func SessionClaims(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			c.Next()
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err == nil && token.Valid {
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if role, ok := claims["role"].(string); ok {
					c.Set(sessionRoleKey, role)
				}
			}
		}

		c.Next()
	}
}

// GetSessionRole returns the role carried by the request's session token,
// if any.
func GetSessionRole(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if v, ok := c.Get(sessionRoleKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
