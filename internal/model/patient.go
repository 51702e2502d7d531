package model

import (
	"github.com/google/uuid"
)

// Patient represents a registered patient
type Patient struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	DateOfBirth      string    `json:"date_of_birth"`
	Address          string    `json:"address"`
	EmergencyContact string    `json:"emergency_contact"`
	BloodType        string    `json:"blood_type"`
	Allergies        []string  `json:"allergies"`
	Avatar           string    `json:"avatar,omitempty"`
}

// CreatePatientRequest represents patient creation parameters
type CreatePatientRequest struct {
	Name             string   `json:"name" binding:"required"`
	Email            string   `json:"email" binding:"required,email"`
	Phone            string   `json:"phone" binding:"required"`
	DateOfBirth      string   `json:"date_of_birth" binding:"required,dateonly"`
	Address          string   `json:"address"`
	EmergencyContact string   `json:"emergency_contact"`
	BloodType        string   `json:"blood_type"`
	Allergies        []string `json:"allergies"`
	Avatar           string   `json:"avatar"`
}

// UpdatePatientRequest represents patient update parameters; only the
// provided fields are merged into the stored record.
type UpdatePatientRequest struct {
	Name             *string   `json:"name"`
	Email            *string   `json:"email" binding:"omitempty,email"`
	Phone            *string   `json:"phone"`
	DateOfBirth      *string   `json:"date_of_birth" binding:"omitempty,dateonly"`
	Address          *string   `json:"address"`
	EmergencyContact *string   `json:"emergency_contact"`
	BloodType        *string   `json:"blood_type"`
	Allergies        *[]string `json:"allergies"`
	Avatar           *string   `json:"avatar"`
}

// PatientFilter represents patient search parameters
type PatientFilter struct {
	SearchTerm string `form:"search"`
}
