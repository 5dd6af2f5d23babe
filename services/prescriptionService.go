package services

import (
	"MerakiHMS/models"
	"MerakiHMS/repositories"
	"context"
	"errors"
)

// ErrDuplicatePrescription is returned when a submission targets an
// appointment that already has a prescription artifact attached.
var ErrDuplicatePrescription = errors.New("prescription already recorded for this appointment")

// PrescriptionService runs the two-step submission workflow as one
// server-side operation: create the patient record, then flip the
// appointment status. Record-create happens before status-flip, so the bad
// state (completed appointment with no retrievable prescription) cannot
// occur. The inverse partial state (record created, flip failed) is
// tolerable and recoverable by retrying only the flip.
type PrescriptionService struct {
	records      *repositories.RecordRepository
	appointments *repositories.AppointmentRepository
}

func NewPrescriptionService(records *repositories.RecordRepository, appointments *repositories.AppointmentRepository) *PrescriptionService {
	return &PrescriptionService{records: records, appointments: appointments}
}

// SubmissionResult reports the outcome of a submission. StatusUpdated false
// with a non-empty StatusError means partial success: the record exists but
// the appointment is still scheduled, and a retry of just the flip endpoint
// completes the workflow without duplicating the record.
type SubmissionResult struct {
	Record        *models.PatientRecord `json:"record"`
	Appointment   *models.Appointment   `json:"appointment,omitempty"`
	StatusUpdated bool                  `json:"status_updated"`
	StatusError   string                `json:"status_error,omitempty"`
}

// Submit creates the patient record and then marks the appointment
// completed. A record-create failure aborts the whole operation; a flip
// failure after a successful create is reported as partial success.
func (s *PrescriptionService) Submit(ctx context.Context, input CreateRecordInput) (*SubmissionResult, error) {
	existing, err := s.records.FindByAppointment(ctx, input.AppointmentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if appointment, err := s.appointments.GetByID(ctx, input.AppointmentID); err == nil && appointment.PrescriptionGiven {
			return nil, ErrDuplicatePrescription
		}
		// Record exists but the flip never landed: resume at step two
		// instead of creating a duplicate artifact.
		return s.finish(ctx, existing, input.HospitalID)
	}

	record := &models.PatientRecord{
		PatientID:        input.PatientID,
		DoctorID:         input.DoctorID,
		AppointmentID:    input.AppointmentID,
		HospitalID:       input.HospitalID,
		Symptoms:         input.Symptoms,
		Diagnosis:        models.JoinDiagnosis(input.Diagnosis),
		Prescription:     input.Prescription,
		RecommendedTests: input.RecommendedTests,
		Notes:            input.Notes,
	}
	if err := s.records.Create(ctx, record); err != nil {
		return nil, err
	}

	return s.finish(ctx, record, input.HospitalID)
}

// finish performs step two of the workflow, reporting a flip failure as
// partial success rather than an error.
func (s *PrescriptionService) finish(ctx context.Context, record *models.PatientRecord, hospitalID string) (*SubmissionResult, error) {
	result := &SubmissionResult{Record: record}

	appointment, err := s.appointments.MarkPrescriptionGiven(ctx, hospitalID, record.AppointmentID)
	if err != nil {
		result.StatusError = err.Error()
		return result, nil
	}

	result.Appointment = appointment
	result.StatusUpdated = true
	return result, nil
}
