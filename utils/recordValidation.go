package utils

import (
	"MerakiHMS/models"
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrNoSymptoms = errors.New("at least one non-empty symptom is required")
	ErrBadSlot    = errors.New("slot start must be before slot end")
)

// ValidateRecordDocument runs the full-document validators for a patient
// record. It is applied on create and re-applied after merging a partial
// update, so an update that clears a required field fails instead of
// silently persisting.
func ValidateRecordDocument(record models.PatientRecord) error {
	return validation.ValidateStruct(&record,
		validation.Field(&record.PatientID, validation.Required),
		validation.Field(&record.DoctorID, validation.Required),
		validation.Field(&record.AppointmentID, validation.Required),
		validation.Field(&record.HospitalID, validation.Required),
		validation.Field(&record.Symptoms, validation.Required, validation.By(atLeastOneEntry)),
		validation.Field(&record.Diagnosis, validation.Required),
	)
}

// ValidateAppointmentDocument checks the fields the booking flow must get
// right: known status and type values and an ordered time slot.
func ValidateAppointmentDocument(appointment models.Appointment) error {
	err := validation.ValidateStruct(&appointment,
		validation.Field(&appointment.HospitalID, validation.Required),
		validation.Field(&appointment.DoctorID, validation.Required),
		validation.Field(&appointment.PatientID, validation.Required),
		validation.Field(&appointment.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&appointment.SlotStart, validation.Required, validation.Date("15:04")),
		validation.Field(&appointment.SlotEnd, validation.Required, validation.Date("15:04")),
		validation.Field(&appointment.Type, validation.Required, validation.By(validAppointmentType)),
		validation.Field(&appointment.Status, validation.Required, validation.By(validAppointmentStatus)),
	)
	if err != nil {
		return err
	}
	if appointment.SlotStart >= appointment.SlotEnd {
		return ErrBadSlot
	}
	return nil
}

func atLeastOneEntry(value interface{}) error {
	entries, _ := value.([]string)
	for _, e := range entries {
		if strings.TrimSpace(e) != "" {
			return nil
		}
	}
	return ErrNoSymptoms
}

func validAppointmentType(value interface{}) error {
	t, _ := value.(string)
	if !models.ValidType(t) {
		return errors.New("invalid appointment type")
	}
	return nil
}

func validAppointmentStatus(value interface{}) error {
	s, _ := value.(string)
	if !models.ValidStatus(s) {
		return errors.New("invalid status value")
	}
	return nil
}
