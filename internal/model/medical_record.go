package model

import (
	"github.com/google/uuid"
)

type RecordType string

const (
	RecordTypeConsultation RecordType = "consultation"
	RecordTypeLabResult    RecordType = "lab-result"
	RecordTypeDiagnosis    RecordType = "diagnosis"
	RecordTypeTreatment    RecordType = "treatment"
)

func (t RecordType) Valid() bool {
	switch t {
	case RecordTypeConsultation, RecordTypeLabResult,
		RecordTypeDiagnosis, RecordTypeTreatment:
		return true
	}
	return false
}

// MedicalRecord documents a clinical event for a patient.
type MedicalRecord struct {
	ID          uuid.UUID  `json:"id"`
	PatientID   uuid.UUID  `json:"patient_id"`
	DoctorID    uuid.UUID  `json:"doctor_id"`
	Date        string     `json:"date"`
	Type        RecordType `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Attachments []string   `json:"attachments"`
}

// CreateMedicalRecordRequest represents medical record creation parameters
type CreateMedicalRecordRequest struct {
	PatientID   uuid.UUID  `json:"patient_id" binding:"required"`
	DoctorID    uuid.UUID  `json:"doctor_id" binding:"required"`
	Date        string     `json:"date" binding:"required,dateonly"`
	Type        RecordType `json:"type" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Attachments []string   `json:"attachments"`
}

// MedicalRecordFilter represents medical record search parameters
type MedicalRecordFilter struct {
	PatientID  uuid.UUID `form:"-"`
	SearchTerm string    `form:"search"`
}
