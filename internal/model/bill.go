package model

import (
	"github.com/google/uuid"
)

type BillStatus string

const (
	BillStatusPending BillStatus = "pending"
	BillStatusPaid    BillStatus = "paid"
	BillStatusOverdue BillStatus = "overdue"
)

func (s BillStatus) Valid() bool {
	switch s {
	case BillStatusPending, BillStatusPaid, BillStatusOverdue:
		return true
	}
	return false
}

// Bill represents a charge against a patient, optionally tied to an
// appointment.
type Bill struct {
	ID            uuid.UUID  `json:"id"`
	PatientID     uuid.UUID  `json:"patient_id"`
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
	Amount        float64    `json:"amount"`
	Description   string     `json:"description"`
	Status        BillStatus `json:"status"`
	Date          string     `json:"date"`
	DueDate       string     `json:"due_date"`
}

// CreateBillRequest represents bill creation parameters
type CreateBillRequest struct {
	PatientID     uuid.UUID  `json:"patient_id" binding:"required"`
	AppointmentID *uuid.UUID `json:"appointment_id"`
	Amount        float64    `json:"amount" binding:"gte=0"`
	Description   string     `json:"description" binding:"required"`
	Status        BillStatus `json:"status"`
	Date          string     `json:"date" binding:"required,dateonly"`
	DueDate       string     `json:"due_date" binding:"required,dateonly"`
}

// UpdateBillRequest represents bill update parameters; only the provided
// fields are merged into the stored record.
type UpdateBillRequest struct {
	Amount      *float64    `json:"amount" binding:"omitempty,gte=0"`
	Description *string     `json:"description"`
	Status      *BillStatus `json:"status"`
	Date        *string     `json:"date" binding:"omitempty,dateonly"`
	DueDate     *string     `json:"due_date" binding:"omitempty,dateonly"`
}

// BillFilter represents bill search parameters
type BillFilter struct {
	PatientID  uuid.UUID  `form:"-"`
	Status     BillStatus `form:"status"`
	SearchTerm string     `form:"search"`
}
