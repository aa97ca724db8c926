package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsbrief/domain"
	"newsbrief/internal/rest/middleware"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func identityEcho(c *gin.Context) {
	uid, _ := c.Get("user_id")
	roles, _ := c.Get("roles")
	c.JSON(http.StatusOK, gin.H{"user_id": uid, "roles": roles})
}

func request(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id":  float64(5),
		"username": "alice",
		"roles":    []any{"USER"},
		"exp":      time.Now().Add(time.Hour).Unix(),
	}

	t.Run("valid token passes identity through", func(t *testing.T) {
		r := gin.New()
		r.GET("/me", middleware.AuthMiddleware(testSecret), identityEcho)

		w := request(r, signToken(t, testSecret, claims))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":5`)
	})

	t.Run("missing token", func(t *testing.T) {
		r := gin.New()
		r.GET("/me", middleware.AuthMiddleware(testSecret), identityEcho)

		w := request(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		r := gin.New()
		r.GET("/me", middleware.AuthMiddleware(testSecret), identityEcho)

		w := request(r, signToken(t, "other-secret", claims))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.MapClaims{
			"user_id": float64(5),
			"exp":     time.Now().Add(-time.Hour).Unix(),
		}
		r := gin.New()
		r.GET("/me", middleware.AuthMiddleware(testSecret), identityEcho)

		w := request(r, signToken(t, testSecret, expired))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalAuthMiddleware(t *testing.T) {
	t.Run("anonymous request passes through", func(t *testing.T) {
		r := gin.New()
		r.GET("/me", middleware.OptionalAuthMiddleware(testSecret), identityEcho)

		w := request(r, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":null`)
	})

	t.Run("valid token resolves identity", func(t *testing.T) {
		claims := jwt.MapClaims{
			"user_id": float64(5),
			"exp":     time.Now().Add(time.Hour).Unix(),
		}
		r := gin.New()
		r.GET("/me", middleware.OptionalAuthMiddleware(testSecret), identityEcho)

		w := request(r, signToken(t, testSecret, claims))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":5`)
	})

	t.Run("garbage token degrades to anonymous", func(t *testing.T) {
		r := gin.New()
		r.GET("/me", middleware.OptionalAuthMiddleware(testSecret), identityEcho)

		w := request(r, "not.a.token")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	newRouter := func() *gin.Engine {
		r := gin.New()
		r.GET("/me",
			middleware.AuthMiddleware(testSecret),
			middleware.RequireRole(domain.RoleAdmin),
			identityEcho)
		return r
	}

	t.Run("admin passes", func(t *testing.T) {
		claims := jwt.MapClaims{
			"user_id": float64(2),
			"roles":   []any{"USER", domain.RoleAdmin},
			"exp":     time.Now().Add(time.Hour).Unix(),
		}
		w := request(newRouter(), signToken(t, testSecret, claims))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("plain user is forbidden", func(t *testing.T) {
		claims := jwt.MapClaims{
			"user_id": float64(5),
			"roles":   []any{"USER"},
			"exp":     time.Now().Add(time.Hour).Unix(),
		}
		w := request(newRouter(), signToken(t, testSecret, claims))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
