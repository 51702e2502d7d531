package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/medcenter/portal-api/internal/middleware"
	"github.com/medcenter/portal-api/internal/model"
	"github.com/medcenter/portal-api/internal/service/dashboard"
	apperrors "github.com/medcenter/portal-api/pkg/errors"
	"github.com/medcenter/portal-api/pkg/httputil"
)

type Handler struct {
	service *dashboard.Service
}

func NewHandler(service *dashboard.Service) *Handler {
	return &Handler{service: service}
}

// Stats returns the projection for the caller's own role.
func (h *Handler) Stats(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		httputil.RespondWithError(c, apperrors.Unauthorized(nil))
		return
	}

	switch user.Role {
	case model.RoleAdmin:
		stats, err := h.service.AdminStats(c.Request.Context())
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}
		httputil.RespondWithSuccess(c, stats)
	case model.RoleDoctor:
		stats, err := h.service.DoctorStats(c.Request.Context(), user.ID)
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}
		httputil.RespondWithSuccess(c, stats)
	case model.RolePatient:
		stats, err := h.service.PatientStats(c.Request.Context(), user.ID)
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}
		httputil.RespondWithSuccess(c, stats)
	default:
		httputil.RespondWithError(c, apperrors.Forbidden("unknown role", nil))
	}
}
