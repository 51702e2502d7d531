package model

import (
	"github.com/google/uuid"
)

// Doctor represents a practicing physician
type Doctor struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Availability   []string  `json:"availability"`
	Rating         float64   `json:"rating"`
	Experience     int       `json:"experience"`
	Avatar         string    `json:"avatar,omitempty"`
}

// CreateDoctorRequest represents doctor creation parameters
type CreateDoctorRequest struct {
	Name           string   `json:"name" binding:"required"`
	Specialization string   `json:"specialization" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Phone          string   `json:"phone" binding:"required"`
	Availability   []string `json:"availability"`
	Rating         float64  `json:"rating" binding:"gte=0,lte=5"`
	Experience     int      `json:"experience" binding:"gte=0"`
	Avatar         string   `json:"avatar"`
}

// UpdateDoctorRequest represents doctor update parameters; only the
// provided fields are merged into the stored record.
type UpdateDoctorRequest struct {
	Name           *string   `json:"name"`
	Specialization *string   `json:"specialization"`
	Email          *string   `json:"email" binding:"omitempty,email"`
	Phone          *string   `json:"phone"`
	Availability   *[]string `json:"availability"`
	Rating         *float64  `json:"rating" binding:"omitempty,gte=0,lte=5"`
	Experience     *int      `json:"experience" binding:"omitempty,gte=0"`
	Avatar         *string   `json:"avatar"`
}

// DoctorFilter represents doctor search parameters
type DoctorFilter struct {
	SearchTerm string `form:"search"`
}
