package repositories

import (
	"MerakiHMS/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(appointmentID string) models.PatientRecord {
	return models.PatientRecord{
		PatientID:     "p1",
		DoctorID:      "d1",
		AppointmentID: appointmentID,
		HospitalID:    "h1",
		Symptoms:      []string{"Cough", "Headache"},
		Diagnosis:     models.JoinDiagnosis([]string{"Flu", "Fever"}),
	}
}

func TestCreateRecordValidation(t *testing.T) {
	c := setupTestEnv(t)
	repo := NewRecordRepository(c)
	ctx := context.Background()

	noSymptoms := testRecord("A1")
	noSymptoms.Symptoms = nil
	err := repo.Create(ctx, &noSymptoms)
	assert.ErrorIs(t, err, ErrValidation)

	good := testRecord("A1")
	require.NoError(t, repo.Create(ctx, &good))
	assert.NotEmpty(t, good.ID)
}

func TestRecordDiagnosisRoundTrip(t *testing.T) {
	c := setupTestEnv(t)
	repo := NewRecordRepository(c)
	ctx := context.Background()

	record := testRecord("A1")
	require.NoError(t, repo.Create(ctx, &record))

	stored, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Flu, Fever", stored.Diagnosis)
	assert.Equal(t, []string{"Flu", "Fever"}, stored.DiagnosisList())
}

func TestGetPrescriptionsByDoctorFiltersEmptyMedicineList(t *testing.T) {
	c := setupTestEnv(t)
	repo := NewRecordRepository(c)
	ctx := context.Background()

	withMedicine := testRecord("A1")
	withMedicine.Prescription = []models.Medicine{
		{MedicineName: "Paracetamol", Dosage: "500mg", Frequency: "3x daily", Duration: "5 days"},
	}
	require.NoError(t, repo.Create(ctx, &withMedicine))

	withoutMedicine := testRecord("A2")
	require.NoError(t, repo.Create(ctx, &withoutMedicine))

	prescriptions, err := repo.GetPrescriptionsByDoctor(ctx, "d1")
	require.NoError(t, err)
	require.Len(t, prescriptions, 1)
	assert.Equal(t, withMedicine.ID, prescriptions[0].ID)
}

func TestUpdateRecordRevalidates(t *testing.T) {
	c := setupTestEnv(t)
	repo := NewRecordRepository(c)
	ctx := context.Background()

	record := testRecord("A1")
	require.NoError(t, repo.Create(ctx, &record))

	// Clearing symptoms must fail rather than persist an invalid document.
	empty := []string{}
	_, err := repo.Update(ctx, record.ID, RecordUpdate{Symptoms: &empty})
	assert.ErrorIs(t, err, ErrValidation)

	stored, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cough", "Headache"}, stored.Symptoms)

	// A valid partial update merges and persists.
	notes := "follow up in two weeks"
	diagnosis := []string{"Migraine"}
	updated, err := repo.Update(ctx, record.ID, RecordUpdate{Notes: &notes, Diagnosis: &diagnosis})
	require.NoError(t, err)
	assert.Equal(t, "follow up in two weeks", updated.Notes)
	assert.Equal(t, "Migraine", updated.Diagnosis)
	assert.Equal(t, []string{"Cough", "Headache"}, updated.Symptoms)
}

func TestDeleteRecord(t *testing.T) {
	c := setupTestEnv(t)
	repo := NewRecordRepository(c)
	ctx := context.Background()

	record := testRecord("A1")
	require.NoError(t, repo.Create(ctx, &record))

	require.NoError(t, repo.Delete(ctx, record.ID))

	_, err := repo.GetByID(ctx, record.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, record.ID), ErrNotFound)
}

func TestFindByAppointment(t *testing.T) {
	c := setupTestEnv(t)
	repo := NewRecordRepository(c)
	ctx := context.Background()

	found, err := repo.FindByAppointment(ctx, "A1")
	require.NoError(t, err)
	assert.Nil(t, found)

	record := testRecord("A1")
	require.NoError(t, repo.Create(ctx, &record))

	found, err = repo.FindByAppointment(ctx, "A1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, record.ID, found.ID)
}
