package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medcenter/portal-api/internal/model"
	"github.com/medcenter/portal-api/internal/service/session"
	"github.com/medcenter/portal-api/internal/sessionfile"
	"github.com/medcenter/portal-api/pkg/auth"
)

func newSessions(t *testing.T) *session.Service {
	t.Helper()
	credentials := []model.Credential{
		{
			User: model.User{
				ID:    uuid.New(),
				Name:  "Dr. Michael Chen",
				Email: "doctor@medicalcenter.com",
				Role:  model.RoleDoctor,
			},
			Password: "doctor123",
		},
	}
	store := sessionfile.NewStore(filepath.Join(t.TempDir(), "session.json"))
	jwtSvc := auth.NewTokenService(auth.Config{Secret: "test-secret", ExpiryHours: 1})
	return session.NewService(credentials, store, jwtSvc)
}

func ok(c *gin.Context) { c.Status(http.StatusOK) }

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := NewAuthMiddleware(newSessions(t))

	engine := gin.New()
	engine.GET("/protected", mw.Authenticate(), ok)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateSetsCurrentUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := newSessions(t)
	mw := NewAuthMiddleware(sessions)

	_, token, err := sessions.Login(context.Background(), "doctor@medicalcenter.com", "doctor123")
	require.NoError(t, err)

	engine := gin.New()
	engine.GET("/protected", mw.Authenticate(), func(c *gin.Context) {
		user := CurrentUser(c)
		require.NotNil(t, user)
		assert.Equal(t, model.RoleDoctor, user.Role)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := newSessions(t)
	mw := NewAuthMiddleware(sessions)

	_, token, err := sessions.Login(context.Background(), "doctor@medicalcenter.com", "doctor123")
	require.NoError(t, err)

	engine := gin.New()
	engine.GET("/admin", mw.Authenticate(), mw.RequireRole(model.RoleAdmin), ok)
	engine.GET("/staff", mw.Authenticate(), mw.RequireRole(model.RoleAdmin, model.RoleDoctor), ok)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/staff", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAllowsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := newSessions(t)
	mw := NewAuthMiddleware(sessions)

	engine := gin.New()
	engine.GET("/open", mw.Optional(), func(c *gin.Context) {
		assert.Nil(t, CurrentUser(c))
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalResolvesValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := newSessions(t)
	mw := NewAuthMiddleware(sessions)

	_, token, err := sessions.Login(context.Background(), "doctor@medicalcenter.com", "doctor123")
	require.NoError(t, err)

	engine := gin.New()
	engine.GET("/open", mw.Optional(), func(c *gin.Context) {
		user := CurrentUser(c)
		require.NotNil(t, user)
		assert.Equal(t, "doctor@medicalcenter.com", user.Email)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
