package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"newsbrief/domain"
)

// AuthMiddleware rejects requests without a valid Bearer token and stores
// user_id and roles in the gin context for handlers downstream.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or missing token"})
			return
		}
		applyClaims(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves identity when a valid token is present and
// lets anonymous requests through untouched. Used by read endpoints whose
// behavior degrades gracefully without a user (e.g. is-liked reads false).
func OptionalAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseToken(c, secret); ok {
			applyClaims(c, claims)
		}
		c.Next()
	}
}

// RequireRole gates a route group on a role label, e.g. "ADMIN".
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("roles")
		if exists {
			if roles, ok := v.([]string); ok {
				for _, r := range roles {
					if r == role {
						c.Next()
						return
					}
				}
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": domain.ErrForbidden.Error()})
	}
}

func parseToken(c *gin.Context, secret string) (jwt.MapClaims, bool) {
	header := c.GetHeader("Authorization")
	tokenStr, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenStr == "" {
		return nil, false
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}

func applyClaims(c *gin.Context, claims jwt.MapClaims) {
	if id, ok := claims["user_id"].(float64); ok {
		c.Set("user_id", int64(id))
	}
	if raw, ok := claims["roles"].([]any); ok {
		roles := make([]string, 0, len(raw))
		for _, r := range raw {
			if s, ok := r.(string); ok {
				roles = append(roles, s)
			}
		}
		c.Set("roles", roles)
	}
}
