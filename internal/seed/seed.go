// Package seed holds the bootstrap dataset the portal consumes at
// startup: the fixed credential table and the initial collections for
// doctors, patients, appointments, bills, medical records and
// prescriptions. Ids are fixed so cross-collection references hold.
package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medcenter/portal-api/internal/model"
	"github.com/medcenter/portal-api/internal/repository"
)

var (
	doctorEmily  = uuid.MustParse("3c1f8a2e-5b6d-4e1a-9c3f-0a1b2c3d4e5f")
	doctorChen   = uuid.MustParse("7a2b4c6d-8e9f-4a1b-8c2d-3e4f5a6b7c8d")
	doctorSarah  = uuid.MustParse("1d2e3f4a-5b6c-4d7e-9f8a-0b1c2d3e4f5a")
	patientJohn  = uuid.MustParse("9e8d7c6b-5a4f-4e3d-8c2b-1a0f9e8d7c6b")
	patientMaria = uuid.MustParse("2f3e4d5c-6b7a-4f8e-9d0c-1b2a3c4d5e6f")
	patientRob   = uuid.MustParse("4a5b6c7d-8e9f-4a0b-8c1d-2e3f4a5b6c7d")
	adminUser    = uuid.MustParse("8a9b0c1d-2e3f-4a4b-8c5d-6e7f8a9b0c1d")

	appt1 = uuid.MustParse("6b7c8d9e-0f1a-4b2c-9d3e-4f5a6b7c8d9e")
	appt2 = uuid.MustParse("8c9d0e1f-2a3b-4c5d-8e6f-7a8b9c0d1e2f")
	appt3 = uuid.MustParse("0d1e2f3a-4b5c-4d6e-9f7a-8b9c0d1e2f3a")
)

// Credentials returns the fixed credential table: one account per role.
// The doctor and patient accounts reuse the ids of their domain records
// so role-scoped views line up with the seeded data.
func Credentials() []model.Credential {
	return []model.Credential{
		{
			User: model.User{
				ID:     adminUser,
				Name:   "Dr. Sarah Johnson",
				Email:  "admin@medicalcenter.com",
				Role:   model.RoleAdmin,
				Avatar: "https://images.pexels.com/photos/5327580/pexels-photo-5327580.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			},
			Password: "admin123",
		},
		{
			User: model.User{
				ID:     doctorChen,
				Name:   "Dr. Michael Chen",
				Email:  "doctor@medicalcenter.com",
				Role:   model.RoleDoctor,
				Avatar: "https://images.pexels.com/photos/6129507/pexels-photo-6129507.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			},
			Password: "doctor123",
		},
		{
			User: model.User{
				ID:     patientJohn,
				Name:   "John Smith",
				Email:  "patient@example.com",
				Role:   model.RolePatient,
				Avatar: "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
			},
			Password: "patient123",
		},
	}
}

func Doctors() []*model.Doctor {
	return []*model.Doctor{
		{
			ID:             doctorEmily,
			Name:           "Dr. Emily Rodriguez",
			Specialization: "Cardiology",
			Email:          "emily.rodriguez@medicalcenter.com",
			Phone:          "+1 (555) 123-4567",
			Availability:   []string{"Monday", "Tuesday", "Wednesday", "Friday"},
			Rating:         4.9,
			Experience:     12,
			Avatar:         "https://images.pexels.com/photos/5327580/pexels-photo-5327580.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		},
		{
			ID:             doctorChen,
			Name:           "Dr. Michael Chen",
			Specialization: "Neurology",
			Email:          "michael.chen@medicalcenter.com",
			Phone:          "+1 (555) 234-5678",
			Availability:   []string{"Tuesday", "Wednesday", "Thursday", "Friday"},
			Rating:         4.8,
			Experience:     15,
			Avatar:         "https://images.pexels.com/photos/6129507/pexels-photo-6129507.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		},
		{
			ID:             doctorSarah,
			Name:           "Dr. Sarah Williams",
			Specialization: "Pediatrics",
			Email:          "sarah.williams@medicalcenter.com",
			Phone:          "+1 (555) 345-6789",
			Availability:   []string{"Monday", "Wednesday", "Thursday", "Friday"},
			Rating:         4.95,
			Experience:     8,
			Avatar:         "https://images.pexels.com/photos/5215024/pexels-photo-5215024.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		},
	}
}

func Patients() []*model.Patient {
	return []*model.Patient{
		{
			ID:               patientJohn,
			Name:             "John Smith",
			Email:            "john.smith@example.com",
			Phone:            "+1 (555) 987-6543",
			DateOfBirth:      "1985-03-15",
			Address:          "123 Main St, Anytown, AT 12345",
			EmergencyContact: "+1 (555) 876-5432",
			BloodType:        "A+",
			Allergies:        []string{"Penicillin", "Peanuts"},
			Avatar:           "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		},
		{
			ID:               patientMaria,
			Name:             "Maria Garcia",
			Email:            "maria.garcia@example.com",
			Phone:            "+1 (555) 876-5432",
			DateOfBirth:      "1990-07-22",
			Address:          "456 Oak Ave, Somewhere, SW 54321",
			EmergencyContact: "+1 (555) 765-4321",
			BloodType:        "O-",
			Allergies:        []string{"Latex"},
			Avatar:           "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		},
		{
			ID:               patientRob,
			Name:             "Robert Johnson",
			Email:            "robert.johnson@example.com",
			Phone:            "+1 (555) 765-4321",
			DateOfBirth:      "1978-11-08",
			Address:          "789 Pine Rd, Elsewhere, EW 98765",
			EmergencyContact: "+1 (555) 654-3210",
			BloodType:        "B+",
			Allergies:        []string{},
			Avatar:           "https://images.pexels.com/photos/1681010/pexels-photo-1681010.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		},
	}
}

func Appointments() []*model.Appointment {
	return []*model.Appointment{
		{
			ID:        appt1,
			PatientID: patientJohn,
			DoctorID:  doctorEmily,
			Date:      "2024-01-15",
			Time:      "10:00",
			Status:    model.AppointmentStatusScheduled,
			Reason:    "Routine checkup",
			Notes:     "Patient complains of chest pain",
		},
		{
			ID:        appt2,
			PatientID: patientMaria,
			DoctorID:  doctorChen,
			Date:      "2024-01-16",
			Time:      "14:30",
			Status:    model.AppointmentStatusCompleted,
			Reason:    "Follow-up consultation",
			Notes:     "Patient doing well post-surgery",
		},
		{
			ID:        appt3,
			PatientID: patientRob,
			DoctorID:  doctorSarah,
			Date:      "2024-01-17",
			Time:      "09:15",
			Status:    model.AppointmentStatusScheduled,
			Reason:    "Vaccination",
			Notes:     "Annual flu shot",
		},
	}
}

func Bills() []*model.Bill {
	appointment1 := appt1
	appointment2 := appt2
	return []*model.Bill{
		{
			ID:            uuid.MustParse("3e4f5a6b-7c8d-4e9f-8a0b-1c2d3e4f5a6b"),
			PatientID:     patientJohn,
			AppointmentID: &appointment1,
			Amount:        150.00,
			Description:   "Consultation - Cardiology",
			Status:        model.BillStatusPending,
			Date:          "2024-01-15",
			DueDate:       "2024-02-15",
		},
		{
			ID:            uuid.MustParse("5c6d7e8f-9a0b-4c1d-9e2f-3a4b5c6d7e8f"),
			PatientID:     patientMaria,
			AppointmentID: &appointment2,
			Amount:        200.00,
			Description:   "Follow-up consultation - Neurology",
			Status:        model.BillStatusPaid,
			Date:          "2024-01-16",
			DueDate:       "2024-02-16",
		},
	}
}

func MedicalRecords() []*model.MedicalRecord {
	return []*model.MedicalRecord{
		{
			ID:          uuid.MustParse("7d8e9f0a-1b2c-4d3e-8f4a-5b6c7d8e9f0a"),
			PatientID:   patientJohn,
			DoctorID:    doctorEmily,
			Date:        "2024-01-15",
			Type:        model.RecordTypeConsultation,
			Title:       "Cardiology Consultation",
			Description: "Patient complained of chest pain. ECG performed, results normal. Recommended stress test.",
			Attachments: []string{"ecg_report.pdf", "blood_work.pdf"},
		},
		{
			ID:          uuid.MustParse("9f0a1b2c-3d4e-4f5a-9b6c-7d8e9f0a1b2c"),
			PatientID:   patientMaria,
			DoctorID:    doctorChen,
			Date:        "2024-01-16",
			Type:        model.RecordTypeLabResult,
			Title:       "Blood Work Results",
			Description: "Complete blood count and lipid panel. All values within normal range.",
			Attachments: []string{"lab_results_jan16.pdf"},
		},
		{
			ID:          uuid.MustParse("1a2b3c4d-5e6f-4a7b-8c8d-9e0f1a2b3c4d"),
			PatientID:   patientJohn,
			DoctorID:    doctorEmily,
			Date:        "2024-01-10",
			Type:        model.RecordTypeDiagnosis,
			Title:       "Hypertension Diagnosis",
			Description: "Patient diagnosed with mild hypertension. Prescribed ACE inhibitor. Follow-up in 4 weeks.",
			Attachments: []string{},
		},
	}
}

func Prescriptions() []*model.Prescription {
	return []*model.Prescription{
		{
			ID:            uuid.MustParse("2b3c4d5e-6f7a-4b8c-9d9e-0f1a2b3c4d5e"),
			AppointmentID: appt1,
			PatientID:     patientJohn,
			DoctorID:      doctorEmily,
			Medications: []model.Medication{
				{Name: "Lisinopril", Dosage: "10mg", Frequency: "Once daily", Duration: "30 days"},
			},
			Instructions: "Take in the morning with water. Monitor blood pressure weekly.",
			Date:         "2024-01-10",
		},
	}
}

// Repositories groups the stores the bootstrap dataset loads into.
type Repositories struct {
	Doctors       repository.DoctorRepository
	Patients      repository.PatientRepository
	Appointments  repository.AppointmentRepository
	Bills         repository.BillRepository
	Records       repository.MedicalRecordRepository
	Prescriptions repository.PrescriptionRepository
}

// Load populates the repositories with the bootstrap dataset.
func Load(ctx context.Context, repos Repositories) error {
	for _, d := range Doctors() {
		if err := repos.Doctors.Create(ctx, d); err != nil {
			return fmt.Errorf("failed to seed doctor %s: %w", d.ID, err)
		}
	}
	for _, p := range Patients() {
		if err := repos.Patients.Create(ctx, p); err != nil {
			return fmt.Errorf("failed to seed patient %s: %w", p.ID, err)
		}
	}
	for _, a := range Appointments() {
		if err := repos.Appointments.Create(ctx, a); err != nil {
			return fmt.Errorf("failed to seed appointment %s: %w", a.ID, err)
		}
	}
	for _, b := range Bills() {
		if err := repos.Bills.Create(ctx, b); err != nil {
			return fmt.Errorf("failed to seed bill %s: %w", b.ID, err)
		}
	}
	for _, r := range MedicalRecords() {
		if err := repos.Records.Create(ctx, r); err != nil {
			return fmt.Errorf("failed to seed medical record %s: %w", r.ID, err)
		}
	}
	for _, p := range Prescriptions() {
		if err := repos.Prescriptions.Create(ctx, p); err != nil {
			return fmt.Errorf("failed to seed prescription %s: %w", p.ID, err)
		}
	}
	return nil
}
