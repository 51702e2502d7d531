package prescription

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/medcenter/portal-api/internal/middleware"
	"github.com/medcenter/portal-api/internal/model"
	"github.com/medcenter/portal-api/internal/service/prescription"
	apperrors "github.com/medcenter/portal-api/pkg/errors"
	"github.com/medcenter/portal-api/pkg/httputil"
)

type Handler struct {
	service prescription.PrescriptionService
}

func NewHandler(service prescription.PrescriptionService) *Handler {
	return &Handler{service: service}
}

// ListPrescriptions narrows the listing to the caller's own records for
// doctor and patient sessions.
func (h *Handler) ListPrescriptions(c *gin.Context) {
	var filter model.PrescriptionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}
	var err error
	if filter.PatientID, err = httputil.UUIDQuery(c, "patient_id"); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid patient_id", err))
		return
	}
	if filter.DoctorID, err = httputil.UUIDQuery(c, "doctor_id"); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid doctor_id", err))
		return
	}

	switch user := middleware.CurrentUser(c); user.Role {
	case model.RoleDoctor:
		filter.DoctorID = user.ID
	case model.RolePatient:
		filter.PatientID = user.ID
	}

	prescriptions, err := h.service.ListPrescriptions(c.Request.Context(), &filter)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, prescriptions)
}

func (h *Handler) GetPrescription(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid prescription ID", err))
		return
	}

	p, err := h.service.GetPrescription(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, p)
}

func (h *Handler) CreatePrescription(c *gin.Context) {
	var req model.CreatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	// A doctor prescribes in their own name.
	if user := middleware.CurrentUser(c); user.Role == model.RoleDoctor {
		req.DoctorID = user.ID
	}

	p, err := h.service.CreatePrescription(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, p)
}
