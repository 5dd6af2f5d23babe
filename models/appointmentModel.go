package models

import (
	"time"
)

// Appointment statuses. Transitions only move forward: a scheduled
// appointment becomes completed or cancelled, never the reverse, and a
// cancelled appointment can never become completed.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Appointment types
const (
	TypeWalkIn  = "walk-in"
	TypeVirtual = "virtual"
	TypeOffline = "offline"
)

// slotLayout is the combined layout for an appointment's date plus slot time.
const slotLayout = "2006-01-02T15:04"

// Appointment model. Patient display fields are denormalized at booking time
// so list views never depend on a patient lookup.
type Appointment struct {
	ID                string    `gorm:"primaryKey;column:id" json:"id"`
	HospitalID        string    `gorm:"column:hospital_id;not null;index" json:"hospital_id"`
	DoctorID          string    `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	PatientID         string    `gorm:"column:patient_id;not null;index" json:"patient_id"`
	PatientName       string    `gorm:"column:patient_name" json:"patientName"`
	PatientEmail      string    `gorm:"column:patient_email" json:"patientEmail"`
	PatientContact    string    `gorm:"column:patient_contact" json:"patientContact"`
	Date              string    `gorm:"column:date;not null;index" json:"date"`
	SlotStart         string    `gorm:"column:slot_start;not null" json:"slotStart"`
	SlotEnd           string    `gorm:"column:slot_end;not null" json:"slotEnd"`
	Type              string    `gorm:"column:type;check:type IN ('walk-in', 'virtual', 'offline');not null" json:"type"`
	SessionType       string    `gorm:"column:session_type" json:"sessionType"`
	Status            string    `gorm:"column:status;check:status IN ('scheduled', 'completed', 'cancelled');not null" json:"status"`
	PrescriptionGiven bool      `gorm:"column:prescription_given;not null;default:false" json:"prescriptionGiven"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	Hospital          Hospital  `gorm:"foreignKey:HospitalID;references:ID" json:"-"`
	Doctor            Doctor    `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
	Patient           Patient   `gorm:"foreignKey:PatientID;references:ID" json:"patient"`
}

func (Appointment) TableName() string {
	return "appointment"
}

// StartsAt returns the instant the appointment slot opens. The zero time and
// false are returned when the stored date or slot cannot be parsed.
func (a *Appointment) StartsAt() (time.Time, bool) {
	t, err := time.Parse(slotLayout, a.Date+"T"+a.SlotStart)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// EndsAt returns the instant the appointment slot closes.
func (a *Appointment) EndsAt() (time.Time, bool) {
	t, err := time.Parse(slotLayout, a.Date+"T"+a.SlotEnd)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ValidStatus reports whether s is one of the known appointment statuses.
func ValidStatus(s string) bool {
	return s == StatusScheduled || s == StatusCompleted || s == StatusCancelled
}

// ValidType reports whether t is one of the known appointment types.
func ValidType(t string) bool {
	return t == TypeWalkIn || t == TypeVirtual || t == TypeOffline
}
