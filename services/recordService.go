package services

import (
	"MerakiHMS/models"
	"MerakiHMS/repositories"
	"context"
)

type RecordService struct {
	repository *repositories.RecordRepository
}

func NewRecordService(repository *repositories.RecordRepository) *RecordService {
	return &RecordService{repository: repository}
}

// CreateRecordInput is the wire shape of a record creation. Diagnosis comes
// in as an array and is collapsed to the stored comma-joined string here, at
// the service boundary.
type CreateRecordInput struct {
	PatientID        string            `json:"patient_id"`
	DoctorID         string            `json:"doctor_id"`
	AppointmentID    string            `json:"appointment_id"`
	HospitalID       string            `json:"hospital_id"`
	Symptoms         []string          `json:"symptoms"`
	Diagnosis        []string          `json:"diagnosis"`
	Prescription     []models.Medicine `json:"prescription"`
	RecommendedTests []string          `json:"recommended_tests"`
	Notes            string            `json:"notes"`
}

func (s *RecordService) Create(ctx context.Context, input CreateRecordInput) (*models.PatientRecord, error) {
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
	if err := s.repository.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *RecordService) GetByPatient(ctx context.Context, patientID string) ([]models.PatientRecord, error) {
	return s.repository.GetByPatient(ctx, patientID)
}

func (s *RecordService) GetByID(ctx context.Context, id string) (*models.PatientRecord, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *RecordService) Update(ctx context.Context, id string, update repositories.RecordUpdate) (*models.PatientRecord, error) {
	return s.repository.Update(ctx, id, update)
}

func (s *RecordService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}

func (s *RecordService) GetPrescriptionsByDoctor(ctx context.Context, doctorID string) ([]models.PatientRecord, error) {
	return s.repository.GetPrescriptionsByDoctor(ctx, doctorID)
}
