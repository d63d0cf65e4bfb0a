package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-user-auth/internal/ratelimit"
	"github.com/MKhiriev/go-user-auth/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInit_RegisteredRoutes(t *testing.T) {
	h, _ := newMockedHandler(t)
	router := h.Init()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/version"},
		{http.MethodPost, "/api/auth/register"},
		{http.MethodPost, "/api/auth/login"},
		{http.MethodPost, "/api/auth/forgot-password"},
		{http.MethodPost, "/api/auth/reset-password"},
		{http.MethodGet, "/api/auth/verify-email"},
		{http.MethodPost, "/api/auth/resend-verification"},
		{http.MethodGet, "/api/users/me"},
		{http.MethodPatch, "/api/users/{id}/role"},
	}

	registered := map[string]bool{}
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	require.NoError(t, err)

	for _, tt := range tests {
		assert.True(t, registered[tt.method+" "+tt.path], "%s %s is not registered", tt.method, tt.path)
	}
}

func TestInit_WrongMethodIsNotFound(t *testing.T) {
	h, _ := newMockedHandler(t)
	router := h.Init()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/login"},
		{http.MethodDelete, "/api/auth/register"},
		{http.MethodPost, "/api/users/me"},
		{http.MethodGet, "/api/users/user-1/role"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_ProtectedRoutesNeedToken(t *testing.T) {
	h, _ := newMockedHandler(t)
	router := h.Init()

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/users/me", nil),
		jsonRequest(http.MethodPatch, "/api/users/user-1/role", `{"role":"admin"}`),
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, req.URL.Path)
	}
}

func TestInit_LoginIsThrottled(t *testing.T) {
	h, m := newMockedHandler(t)
	router := h.Init()

	m.limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(nil)
	m.auth.EXPECT().Login(gomock.Any(), models.Credentials{Email: "ann@example.com", Password: "pw"}).
		Return(models.AccessToken{AccessToken: "t"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(http.MethodPost, "/api/auth/login", `{"email":"ann@example.com","password":"pw"}`))
	assert.Equal(t, http.StatusOK, rec.Code)

	m.limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(ratelimit.ErrRateLimited)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(http.MethodPost, "/api/auth/login", `{"email":"ann@example.com","password":"pw"}`))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

// An admin promotes a guest through the full middleware chain.
func TestInit_AdminUpdatesRole(t *testing.T) {
	h, m := newMockedHandler(t)
	router := h.Init()

	admin := models.Identity{ID: "admin-1", Role: models.RoleAdmin}
	m.auth.EXPECT().ParseAccessToken(gomock.Any(), "admin-token").Return(admin, nil)
	m.auth.EXPECT().GetUser(gomock.Any(), "admin-1").Return(models.User{ID: "admin-1", Role: models.RoleAdmin}, nil)
	m.auth.EXPECT().UpdateRole(gomock.Any(), models.RoleChange{UserID: "user-7", Role: models.RoleAdmin}).Return(nil)

	req := jsonRequest(http.MethodPatch, "/api/users/user-7/role", `{"role":"admin"}`)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
