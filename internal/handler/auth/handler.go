package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medcenter/portal-api/internal/middleware"
	"github.com/medcenter/portal-api/internal/model"
	"github.com/medcenter/portal-api/internal/service/session"
	apperrors "github.com/medcenter/portal-api/pkg/errors"
	"github.com/medcenter/portal-api/pkg/httputil"
	"github.com/medcenter/portal-api/pkg/metrics"
)

type Handler struct {
	sessions *session.Service
	metrics  *metrics.Metrics
}

func NewHandler(sessions *session.Service, m *metrics.Metrics) *Handler {
	return &Handler{sessions: sessions, metrics: m}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/auth/login", h.Login)
}

func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/me", h.Me)
}

// Login authenticates against the fixed credential table. Failures are
// a single unauthorized outcome, never distinguishing unknown email
// from wrong password.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	user, token, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.observeLogin("failure")
		if errors.Is(err, session.ErrInvalidCredentials) {
			httputil.RespondWithError(c, apperrors.Unauthorized(err))
			return
		}
		httputil.RespondWithError(c, apperrors.Internal(err))
		return
	}
	h.observeLogin("success")
	if h.metrics != nil {
		h.metrics.ActiveSessions.Set(1)
	}

	httputil.RespondWithSuccess(c, model.TokenResponse{Token: token, User: user})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		httputil.RespondWithError(c, apperrors.Internal(err))
		return
	}
	if h.metrics != nil {
		h.metrics.ActiveSessions.Set(0)
	}

	c.JSON(http.StatusOK, httputil.Response{Success: true})
}

func (h *Handler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		httputil.RespondWithError(c, apperrors.Unauthorized(nil))
		return
	}
	httputil.RespondWithSuccess(c, user)
}

func (h *Handler) observeLogin(status string) {
	if h.metrics == nil {
		return
	}
	h.metrics.LoginAttempts.WithLabelValues(status).Inc()
}
