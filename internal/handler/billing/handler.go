package billing

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/medcenter/portal-api/internal/middleware"
	"github.com/medcenter/portal-api/internal/model"
	"github.com/medcenter/portal-api/internal/service/billing"
	apperrors "github.com/medcenter/portal-api/pkg/errors"
	"github.com/medcenter/portal-api/pkg/httputil"
)

type Handler struct {
	service billing.BillingService
}

func NewHandler(service billing.BillingService) *Handler {
	return &Handler{service: service}
}

// ListBills narrows the listing to the caller's own bills for patient
// sessions.
func (h *Handler) ListBills(c *gin.Context) {
	var filter model.BillFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}
	var err error
	if filter.PatientID, err = httputil.UUIDQuery(c, "patient_id"); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid patient_id", err))
		return
	}

	if user := middleware.CurrentUser(c); user.Role == model.RolePatient {
		filter.PatientID = user.ID
	}

	bills, err := h.service.ListBills(c.Request.Context(), &filter)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, bills)
}

func (h *Handler) GetBill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid bill ID", err))
		return
	}

	bill, err := h.service.GetBill(c.Request.Context(), id)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, bill)
}

func (h *Handler) CreateBill(c *gin.Context) {
	var req model.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	bill, err := h.service.CreateBill(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, bill)
}

func (h *Handler) UpdateBill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid bill ID", err))
		return
	}

	var req model.UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	bill, err := h.service.UpdateBill(c.Request.Context(), id, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, bill)
}

func (h *Handler) DeleteBill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, apperrors.BadRequest("invalid bill ID", err))
		return
	}

	if err := h.service.DeleteBill(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, gin.H{"id": id})
}
