package view

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medcenter/portal-api/internal/middleware"
	"github.com/medcenter/portal-api/internal/model"
	"github.com/medcenter/portal-api/internal/service/session"
	"github.com/medcenter/portal-api/internal/sessionfile"
	"github.com/medcenter/portal-api/internal/view"
	"github.com/medcenter/portal-api/pkg/auth"
)

func setupRouter(t *testing.T, strict bool) (*gin.Engine, *session.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	credentials := []model.Credential{
		{
			User: model.User{
				ID:    uuid.New(),
				Name:  "John Smith",
				Email: "patient@example.com",
				Role:  model.RolePatient,
			},
			Password: "patient123",
		},
	}
	store := sessionfile.NewStore(filepath.Join(t.TempDir(), "session.json"))
	jwtSvc := auth.NewTokenService(auth.Config{Secret: "test-secret", ExpiryHours: 1})
	sessions := session.NewService(credentials, store, jwtSvc)

	h := NewHandler(view.NewRouter(strict))
	authMw := middleware.NewAuthMiddleware(sessions)

	engine := gin.New()
	views := engine.Group("/api/v1/views")
	views.Use(authMw.Optional())
	views.GET("/resolve", h.Resolve)
	views.GET("/menu", h.Menu)

	return engine, sessions
}

func loginToken(t *testing.T, sessions *session.Service) string {
	t.Helper()
	_, token, err := sessions.Login(context.Background(), "patient@example.com", "patient123")
	require.NoError(t, err)
	return token
}

func resolve(t *testing.T, engine *gin.Engine, token, requested string) view.Resolution {
	t.Helper()
	target := "/api/v1/views/resolve"
	if requested != "" {
		target += "?view=" + requested
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data view.Resolution `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestResolveAnonymous(t *testing.T) {
	engine, _ := setupRouter(t, false)

	res := resolve(t, engine, "", view.ViewBilling)
	assert.Equal(t, view.ScreenLogin, res.Screen)
	assert.Equal(t, view.DecisionLogin, res.Decision)
}

func TestResolveAuthenticated(t *testing.T) {
	engine, sessions := setupRouter(t, false)
	token := loginToken(t, sessions)

	res := resolve(t, engine, token, "")
	assert.Equal(t, view.ScreenPatientDashboard, res.Screen)
	assert.Equal(t, view.DecisionGranted, res.Decision)

	res = resolve(t, engine, token, view.ViewBilling)
	assert.Equal(t, view.ScreenBilling, res.Screen)

	res = resolve(t, engine, token, "bogus")
	assert.Equal(t, view.ScreenAdminDashboard, res.Screen)
	assert.Equal(t, view.DecisionFallback, res.Decision)
}

func TestResolveStrictDeniesOffMenu(t *testing.T) {
	engine, sessions := setupRouter(t, true)
	token := loginToken(t, sessions)

	res := resolve(t, engine, token, view.ViewDoctors)
	assert.Equal(t, view.ScreenPatientDashboard, res.Screen)
	assert.Equal(t, view.DecisionDenied, res.Decision)
}

func TestMenuEndpoint(t *testing.T) {
	engine, sessions := setupRouter(t, false)
	token := loginToken(t, sessions)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/views/menu", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []view.MenuItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 6)
	assert.Equal(t, view.ViewDashboard, resp.Data[0].View)
}

func TestMenuEndpointRequiresSession(t *testing.T) {
	engine, _ := setupRouter(t, false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/views/menu", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
