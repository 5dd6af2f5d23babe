package repositories

import (
	"MerakiHMS/database"
	"MerakiHMS/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAppointment(t *testing.T, repo *AppointmentRepository, a models.Appointment) models.Appointment {
	t.Helper()
	if a.PatientID == "" {
		a.PatientID = "p1"
	}
	if a.Type == "" {
		a.Type = models.TypeWalkIn
	}
	require.NoError(t, repo.Create(context.Background(), &a))
	return a
}

func TestMarkPrescriptionGivenIdempotent(t *testing.T) {
	c := setupTestEnv(t)
	repo := NewAppointmentRepository(c)
	ctx := context.Background()

	a := seedAppointment(t, repo, models.Appointment{
		ID: "A1", HospitalID: "h1", DoctorID: "d1",
		Date: "2024-01-10", SlotStart: "09:00", SlotEnd: "09:30",
	})

	first, err := repo.MarkPrescriptionGiven(ctx, "h1", a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, first.Status)
	assert.True(t, first.PrescriptionGiven)

	second, err := repo.MarkPrescriptionGiven(ctx, "h1", a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, second.Status)
}

func TestMarkPrescriptionGivenRejectsCancelled(t *testing.T) {
	c := setupTestEnv(t)
	repo := NewAppointmentRepository(c)
	ctx := context.Background()

	a := seedAppointment(t, repo, models.Appointment{
		ID: "A2", HospitalID: "h1", DoctorID: "d1",
		Date: "2024-01-10", SlotStart: "09:00", SlotEnd: "09:30",
		Status: models.StatusCancelled,
	})

	_, err := repo.MarkPrescriptionGiven(ctx, "h1", a.ID)
	assert.ErrorIs(t, err, ErrCancelled)

	stored, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, stored.Status)
}

func TestMarkPrescriptionGivenHospitalScope(t *testing.T) {
	c := setupTestEnv(t)
	repo := NewAppointmentRepository(c)
	ctx := context.Background()

	a := seedAppointment(t, repo, models.Appointment{
		ID: "A3", HospitalID: "h1", DoctorID: "d1",
		Date: "2024-01-10", SlotStart: "09:00", SlotEnd: "09:30",
	})

	_, err := repo.MarkPrescriptionGiven(ctx, "other-hospital", a.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.MarkPrescriptionGiven(ctx, "h1", "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetHistoryCutoff(t *testing.T) {
	c := setupTestEnv(t)
	repo := NewAppointmentRepository(c)
	ctx := context.Background()

	seedAppointment(t, repo, models.Appointment{
		ID: "past-day", HospitalID: "h1", DoctorID: "d1",
		Date: "2024-01-09", SlotStart: "09:00", SlotEnd: "09:30",
	})
	seedAppointment(t, repo, models.Appointment{
		ID: "elapsed-today", HospitalID: "h1", DoctorID: "d1",
		Date: "2024-01-10", SlotStart: "08:00", SlotEnd: "08:30",
	})
	seedAppointment(t, repo, models.Appointment{
		ID: "ends-now", HospitalID: "h1", DoctorID: "d1",
		Date: "2024-01-10", SlotStart: "09:30", SlotEnd: "10:00",
	})
	seedAppointment(t, repo, models.Appointment{
		ID: "later-today", HospitalID: "h1", DoctorID: "d1",
		Date: "2024-01-10", SlotStart: "11:00", SlotEnd: "11:30",
	})
	// Cancelled appointments whose slot elapsed still belong to history.
	seedAppointment(t, repo, models.Appointment{
		ID: "cancelled-past", HospitalID: "h1", DoctorID: "d1",
		Date: "2024-01-09", SlotStart: "10:00", SlotEnd: "10:30",
		Status: models.StatusCancelled,
	})

	now := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)
	history, err := repo.GetHistory(ctx, "h1", "d1", "", now)
	require.NoError(t, err)

	ids := map[string]bool{}
	for _, a := range history {
		ids[a.ID] = true
	}
	assert.True(t, ids["past-day"])
	assert.True(t, ids["elapsed-today"])
	assert.True(t, ids["ends-now"])
	assert.True(t, ids["cancelled-past"])
	assert.False(t, ids["later-today"])

	// Date filter narrows the view to one calendar day.
	filtered, err := repo.GetHistory(ctx, "h1", "d1", "2024-01-09", now)
	require.NoError(t, err)
	assert.Len(t, filtered, 2)
}

func TestGetByDoctorCacheAside(t *testing.T) {
	c := setupTestEnv(t)
	repo := NewAppointmentRepository(c)
	ctx := context.Background()

	a := seedAppointment(t, repo, models.Appointment{
		ID: "A4", HospitalID: "h1", DoctorID: "d1",
		Date: "2024-01-10", SlotStart: "09:00", SlotEnd: "09:30",
	})

	first, err := repo.GetByDoctor(ctx, "h1", "d1")
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Mutate the row behind the cache; a second read must serve the cached
	// copy until a repository write invalidates it.
	require.NoError(t, database.DB.Model(&models.Appointment{}).
		Where("id = ?", a.ID).Update("session_type", "changed").Error)

	cached, err := repo.GetByDoctor(ctx, "h1", "d1")
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Empty(t, cached[0].SessionType)

	_, err = repo.MarkPrescriptionGiven(ctx, "h1", a.ID)
	require.NoError(t, err)

	fresh, err := repo.GetByDoctor(ctx, "h1", "d1")
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, "changed", fresh[0].SessionType)
}

func TestCreateAppointmentValidation(t *testing.T) {
	c := setupTestEnv(t)
	repo := NewAppointmentRepository(c)
	ctx := context.Background()

	bad := models.Appointment{
		HospitalID: "h1", DoctorID: "d1", PatientID: "p1",
		Date: "2024-01-10", SlotStart: "10:00", SlotEnd: "09:00",
		Type: models.TypeWalkIn,
	}
	err := repo.Create(ctx, &bad)
	assert.ErrorIs(t, err, ErrValidation)

	good := models.Appointment{
		HospitalID: "h1", DoctorID: "d1", PatientID: "p1",
		Date: "2024-01-10", SlotStart: "09:00", SlotEnd: "09:30",
		Type: models.TypeWalkIn,
	}
	require.NoError(t, repo.Create(ctx, &good))
	assert.NotEmpty(t, good.ID)
	assert.Equal(t, models.StatusScheduled, good.Status)
}
