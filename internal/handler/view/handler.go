package view

import (
	"github.com/gin-gonic/gin"

	"github.com/medcenter/portal-api/internal/middleware"
	"github.com/medcenter/portal-api/internal/view"
	apperrors "github.com/medcenter/portal-api/pkg/errors"
	"github.com/medcenter/portal-api/pkg/httputil"
)

type Handler struct {
	router *view.Router
}

func NewHandler(router *view.Router) *Handler {
	return &Handler{router: router}
}

// Resolve answers "what should the client render" for the requested
// view. Anonymous callers always get the login screen.
func (h *Handler) Resolve(c *gin.Context) {
	requested := c.DefaultQuery("view", view.ViewDashboard)
	user := middleware.CurrentUser(c)
	httputil.RespondWithSuccess(c, h.router.Resolve(user, requested))
}

// Menu returns the navigation entries for the caller's role, in render
// order.
func (h *Handler) Menu(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		httputil.RespondWithError(c, apperrors.Unauthorized(nil))
		return
	}
	httputil.RespondWithSuccess(c, h.router.Menu(user.Role))
}
