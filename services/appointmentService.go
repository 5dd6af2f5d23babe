package services

import (
	"MerakiHMS/models"
	"MerakiHMS/repositories"
	"context"
	"log"
	"time"
)

type AppointmentService struct {
	repository  *repositories.AppointmentRepository
	patientRepo *repositories.PatientRepository
}

func NewAppointmentService(repository *repositories.AppointmentRepository, patientRepo *repositories.PatientRepository) *AppointmentService {
	return &AppointmentService{repository: repository, patientRepo: patientRepo}
}

func (s *AppointmentService) Create(ctx context.Context, appointment *models.Appointment) error {
	return s.repository.Create(ctx, appointment)
}

func (s *AppointmentService) GetAll(ctx context.Context, hospitalID, doctorID string) ([]models.Appointment, error) {
	return s.repository.GetByDoctor(ctx, hospitalID, doctorID)
}

func (s *AppointmentService) GetByDate(ctx context.Context, hospitalID, doctorID, date string) ([]models.Appointment, error) {
	return s.repository.GetByDoctorAndDate(ctx, hospitalID, doctorID, date)
}

func (s *AppointmentService) GetHistory(ctx context.Context, hospitalID, doctorID, date string) ([]models.Appointment, error) {
	return s.repository.GetHistory(ctx, hospitalID, doctorID, date, time.Now())
}

// GetBuckets loads the doctor's appointments and partitions them relative
// to now, so both portals share one implementation of the bucket algorithm.
func (s *AppointmentService) GetBuckets(ctx context.Context, hospitalID, doctorID string) (*AppointmentBuckets, error) {
	appointments, err := s.repository.GetByDoctor(ctx, hospitalID, doctorID)
	if err != nil {
		return nil, err
	}
	buckets := PartitionAppointments(appointments, time.Now())
	return &buckets, nil
}

// AppointmentDetails joins an appointment with the patient's live
// demographics. Patient is nil when enrichment failed; the appointment's
// denormalized display fields are always present, so the caller never
// blanks the view.
type AppointmentDetails struct {
	Appointment *models.Appointment `json:"appointment"`
	Patient     *models.Patient     `json:"patient"`
}

// GetDetails returns the appointment enriched with live patient fields.
// A failed patient lookup degrades to the denormalized copy instead of
// failing the whole call.
func (s *AppointmentService) GetDetails(ctx context.Context, appointmentID string) (*AppointmentDetails, error) {
	appointment, err := s.repository.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	details := &AppointmentDetails{Appointment: appointment}

	patient, err := s.patientRepo.GetByID(ctx, appointment.PatientID)
	if err != nil {
		log.Printf("Failed to enrich appointment %s with patient %s: %v", appointmentID, appointment.PatientID, err)
		return details, nil
	}
	details.Patient = patient

	return details, nil
}

func (s *AppointmentService) MarkPrescriptionGiven(ctx context.Context, hospitalID, appointmentID string) (*models.Appointment, error) {
	return s.repository.MarkPrescriptionGiven(ctx, hospitalID, appointmentID)
}
