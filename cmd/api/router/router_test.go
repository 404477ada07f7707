package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"blogger-platform/cmd/api/auth"
)

func newTestRouter(health func(context.Context) error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return New(Deps{
		Tokens:   auth.NewJWTManager("secret", "issuer", time.Hour),
		Registry: prometheus.NewRegistry(),
		Health:   health,
	})
}

func get(r http.Handler, target, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	assert.Equal(t, http.StatusOK, get(newTestRouter(nil), "/health", "").Code)

	down := newTestRouter(func(context.Context) error { return errors.New("mongo down") })
	w := get(down, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "mongo down")
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(nil)
	get(r, "/health", "")

	w := get(r, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestProtectedGroupsRequireToken(t *testing.T) {
	r := newTestRouter(nil)
	jwtm := auth.NewJWTManager("secret", "issuer", time.Hour)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/api/v1/sa/blogs", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/api/v1/blogger/blogs", "").Code)

	userToken, _ := jwtm.Sign("u1", auth.RoleUser)
	assert.Equal(t, http.StatusForbidden, get(r, "/api/v1/sa/blogs", "Bearer "+userToken).Code)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/sa/users/u2/ban", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
