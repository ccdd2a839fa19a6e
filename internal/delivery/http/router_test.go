package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"medshift-scheduler/config"
	"medshift-scheduler/internal/delivery/http/handler"
	"medshift-scheduler/internal/delivery/http/middleware"
	"medshift-scheduler/pkg/jwt"
	"medshift-scheduler/pkg/validator"

	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
	v := validator.NewValidator()

	r := NewRouter(
		handler.NewAuthHandler(nil, v, jwtService),
		handler.NewEmployeeHandler(nil, v),
		handler.NewDepartmentHandler(nil, v),
		handler.NewPositionHandler(nil, v),
		handler.NewLocationHandler(nil, v),
		handler.NewShiftHandler(nil, v),
		handler.NewUnavailabilityHandler(nil, v),
		handler.NewShiftTemplateHandler(nil, v),
		handler.NewShiftSwapHandler(nil, v),
		handler.NewStatsHandler(nil),
		handler.NewAuditLogHandler(nil),
		middleware.NewAuthMiddleware(jwtService, nil),
		middleware.NewCORSMiddleware(),
	)
	return r.Setup()
}

func TestRegisterRequiresAuthentication(t *testing.T) {
	router := newTestRouter(t)

	body := strings.NewReader(`{"email":"intruder@example.com","password":"password123","first_name":"Jordan","last_name":"Reyes","role":"admin"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginIsPublic(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	// No token required, the handler itself rejects the malformed body.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
