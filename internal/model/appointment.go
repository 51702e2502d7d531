package model

import (
	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no-show"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted,
		AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// Appointment links a patient to a doctor at a date and time slot.
type Appointment struct {
	ID        uuid.UUID         `json:"id"`
	PatientID uuid.UUID         `json:"patient_id"`
	DoctorID  uuid.UUID         `json:"doctor_id"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Status    AppointmentStatus `json:"status"`
	Reason    string            `json:"reason"`
	Notes     string            `json:"notes,omitempty"`
}

// CreateAppointmentRequest represents appointment creation parameters
type CreateAppointmentRequest struct {
	PatientID uuid.UUID         `json:"patient_id" binding:"required"`
	DoctorID  uuid.UUID         `json:"doctor_id" binding:"required"`
	Date      string            `json:"date" binding:"required,dateonly"`
	Time      string            `json:"time" binding:"required,clocktime"`
	Status    AppointmentStatus `json:"status"`
	Reason    string            `json:"reason" binding:"required"`
	Notes     string            `json:"notes"`
}

// UpdateAppointmentRequest represents appointment update parameters; only
// the provided fields are merged into the stored record.
type UpdateAppointmentRequest struct {
	Date   *string            `json:"date" binding:"omitempty,dateonly"`
	Time   *string            `json:"time" binding:"omitempty,clocktime"`
	Status *AppointmentStatus `json:"status"`
	Reason *string            `json:"reason"`
	Notes  *string            `json:"notes"`
}

// AppointmentFilter represents appointment search parameters
type AppointmentFilter struct {
	PatientID  uuid.UUID         `form:"-"`
	DoctorID   uuid.UUID         `form:"-"`
	Status     AppointmentStatus `form:"status"`
	Date       string            `form:"date"`
	SearchTerm string            `form:"search"`
}
