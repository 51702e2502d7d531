package model

import (
	"github.com/google/uuid"
)

// Medication is a single line of a prescription.
type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

// Prescription records the medications a doctor ordered for a patient,
// usually as an outcome of an appointment.
type Prescription struct {
	ID            uuid.UUID    `json:"id"`
	AppointmentID uuid.UUID    `json:"appointment_id"`
	PatientID     uuid.UUID    `json:"patient_id"`
	DoctorID      uuid.UUID    `json:"doctor_id"`
	Medications   []Medication `json:"medications"`
	Instructions  string       `json:"instructions"`
	Date          string       `json:"date"`
}

// CreatePrescriptionRequest represents prescription creation parameters
type CreatePrescriptionRequest struct {
	AppointmentID uuid.UUID    `json:"appointment_id" binding:"required"`
	PatientID     uuid.UUID    `json:"patient_id" binding:"required"`
	DoctorID      uuid.UUID    `json:"doctor_id" binding:"required"`
	Medications   []Medication `json:"medications" binding:"required,min=1"`
	Instructions  string       `json:"instructions"`
	Date          string       `json:"date" binding:"required,dateonly"`
}

// PrescriptionFilter represents prescription search parameters
type PrescriptionFilter struct {
	PatientID uuid.UUID `form:"-"`
	DoctorID  uuid.UUID `form:"-"`
}
