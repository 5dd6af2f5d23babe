package services

import (
	"MerakiHMS/database"
	"MerakiHMS/models"
	"MerakiHMS/repositories"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submissionInput(appointmentID, hospitalID string) CreateRecordInput {
	return CreateRecordInput{
		PatientID:     "p1",
		DoctorID:      "d1",
		AppointmentID: appointmentID,
		HospitalID:    hospitalID,
		Symptoms:      []string{"Cough"},
		Diagnosis:     []string{"Flu", "Fever"},
		Prescription: []models.Medicine{
			{MedicineName: "Paracetamol", Dosage: "500mg", Frequency: "3x daily", Duration: "5 days"},
		},
	}
}

func seedScheduled(t *testing.T, repo *repositories.AppointmentRepository, id, hospitalID string) {
	t.Helper()
	a := models.Appointment{
		ID: id, HospitalID: hospitalID, DoctorID: "d1", PatientID: "p1",
		Date: "2024-01-10", SlotStart: "09:00", SlotEnd: "09:30",
		Type: models.TypeWalkIn,
	}
	require.NoError(t, repo.Create(context.Background(), &a))
}

func TestSubmitCreatesRecordAndFlipsStatus(t *testing.T) {
	c := setupTestEnv(t)
	appointmentRepo := repositories.NewAppointmentRepository(c)
	recordRepo := repositories.NewRecordRepository(c)
	service := NewPrescriptionService(recordRepo, appointmentRepo)
	ctx := context.Background()

	seedScheduled(t, appointmentRepo, "A1", "h1")

	result, err := service.Submit(ctx, submissionInput("A1", "h1"))
	require.NoError(t, err)
	require.NotNil(t, result.Record)
	assert.Equal(t, "Flu, Fever", result.Record.Diagnosis)
	assert.True(t, result.StatusUpdated)
	assert.Empty(t, result.StatusError)
	require.NotNil(t, result.Appointment)
	assert.Equal(t, models.StatusCompleted, result.Appointment.Status)

	// Details read after submission reflects the completed status.
	stored, err := appointmentRepo.GetByID(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, stored.Status)
	assert.True(t, stored.PrescriptionGiven)
}

func TestSubmitRejectsDuplicate(t *testing.T) {
	c := setupTestEnv(t)
	appointmentRepo := repositories.NewAppointmentRepository(c)
	recordRepo := repositories.NewRecordRepository(c)
	service := NewPrescriptionService(recordRepo, appointmentRepo)
	ctx := context.Background()

	seedScheduled(t, appointmentRepo, "A1", "h1")

	_, err := service.Submit(ctx, submissionInput("A1", "h1"))
	require.NoError(t, err)

	_, err = service.Submit(ctx, submissionInput("A1", "h1"))
	assert.ErrorIs(t, err, ErrDuplicatePrescription)

	var count int64
	require.NoError(t, database.DB.Model(&models.PatientRecord{}).
		Where("appointment_id = ?", "A1").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSubmitPartialFailureAndFlipOnlyRetry(t *testing.T) {
	c := setupTestEnv(t)
	appointmentRepo := repositories.NewAppointmentRepository(c)
	recordRepo := repositories.NewRecordRepository(c)
	service := NewPrescriptionService(recordRepo, appointmentRepo)
	ctx := context.Background()

	seedScheduled(t, appointmentRepo, "A1", "h1")

	// A hospital mismatch makes the flip fail after the record is created.
	result, err := service.Submit(ctx, submissionInput("A1", "wrong-hospital"))
	require.NoError(t, err)
	require.NotNil(t, result.Record)
	assert.False(t, result.StatusUpdated)
	assert.NotEmpty(t, result.StatusError)

	// The record exists, the appointment is still scheduled.
	record, err := recordRepo.FindByAppointment(ctx, "A1")
	require.NoError(t, err)
	require.NotNil(t, record)

	stored, err := appointmentRepo.GetByID(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusScheduled, stored.Status)

	// Retrying the submission with the right hospital resumes at the flip
	// without duplicating the record.
	retry, err := service.Submit(ctx, submissionInput("A1", "h1"))
	require.NoError(t, err)
	assert.True(t, retry.StatusUpdated)
	assert.Equal(t, record.ID, retry.Record.ID)

	var count int64
	require.NoError(t, database.DB.Model(&models.PatientRecord{}).
		Where("appointment_id = ?", "A1").Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// The flip alone also succeeds as a plain retry path.
	flipped, err := appointmentRepo.MarkPrescriptionGiven(ctx, "h1", "A1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, flipped.Status)
}
