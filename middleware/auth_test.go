package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newsroom-cms/helper"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, role string, expiresAt time.Time) string {
	t.Helper()
	claims := Claims{
		UserID:   7,
		Username: "editor",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	httpHelper := helper.NewHTTPHelper()

	router := gin.New()
	router.Use(RequestLogger())
	protected := router.Group("/", AuthMiddleware(testSecret, httpHelper))
	protected.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, "%v:%v", c.GetString("username"), c.GetString("role"))
	})
	protected.DELETE("/things", RequireRole(httpHelper, "admin"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func serve(router *gin.Engine, method, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	router := newRouter()
	valid := signToken(t, testSecret, "editor", time.Now().Add(time.Hour))

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer token", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, []byte("other"), "editor", time.Now().Add(time.Hour)), http.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, testSecret, "editor", time.Now().Add(-time.Hour)), http.StatusUnauthorized},
		{"valid", "Bearer " + valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(router, http.MethodGet, "/whoami", tt.authorization)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}

	w := serve(router, http.MethodGet, "/whoami", "Bearer "+valid)
	assert.Equal(t, "editor:editor", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequireRole(t *testing.T) {
	router := newRouter()

	w := serve(router, http.MethodDelete, "/things", "Bearer "+signToken(t, testSecret, "editor", time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(router, http.MethodDelete, "/things", "Bearer "+signToken(t, testSecret, "admin", time.Now().Add(time.Hour)))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
