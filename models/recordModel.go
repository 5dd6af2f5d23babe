package models

import (
	"strings"
	"time"
)

// Medicine is a single prescribed medicine inside a patient record.
type Medicine struct {
	MedicineName string `json:"medicine_name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
}

// PatientRecord is the clinical artifact produced from an appointment:
// symptoms, diagnosis, prescribed medicines, recommended tests and notes.
//
// Diagnosis arrives on the wire as an array but is persisted and returned as
// a single comma-joined string. That convention is deliberate and pinned;
// DiagnosisList splits it back for callers that want the sequence.
type PatientRecord struct {
	ID               string     `gorm:"primaryKey;column:id" json:"id"`
	PatientID        string     `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID         string     `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	AppointmentID    string     `gorm:"column:appointment_id;not null;index" json:"appointment_id"`
	HospitalID       string     `gorm:"column:hospital_id;not null;index" json:"hospital_id"`
	Symptoms         []string   `gorm:"column:symptoms;serializer:json" json:"symptoms"`
	Diagnosis        string     `gorm:"column:diagnosis;not null" json:"diagnosis"`
	Prescription     []Medicine `gorm:"column:prescription;serializer:json" json:"prescription"`
	RecommendedTests []string   `gorm:"column:recommended_tests;serializer:json" json:"recommended_tests"`
	Notes            string     `gorm:"column:notes" json:"notes"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Patient          Patient    `gorm:"foreignKey:PatientID;references:ID" json:"patient"`
	Doctor           Doctor     `gorm:"foreignKey:DoctorID;references:ID" json:"doctor"`
}

func (PatientRecord) TableName() string {
	return "patient_record"
}

// JoinDiagnosis collapses the wire-format diagnosis array into the stored
// string form, dropping blank entries.
func JoinDiagnosis(entries []string) string {
	kept := make([]string, 0, len(entries))
	for _, e := range entries {
		if s := strings.TrimSpace(e); s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, ", ")
}

// DiagnosisList splits the stored diagnosis string back into its entries.
func (r *PatientRecord) DiagnosisList() []string {
	if r.Diagnosis == "" {
		return nil
	}
	parts := strings.Split(r.Diagnosis, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// HasPrescription reports whether the record carries at least one medicine.
// Records logged purely for symptoms/diagnosis have none and are excluded
// from prescription views.
func (r *PatientRecord) HasPrescription() bool {
	return len(r.Prescription) > 0
}
