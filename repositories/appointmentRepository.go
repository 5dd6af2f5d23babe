package repositories

import (
	"MerakiHMS/cache"
	"MerakiHMS/database"
	"MerakiHMS/models"
	"MerakiHMS/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AppointmentCacheExpiry = 24 * time.Hour
)

type AppointmentRepository struct {
	cache *cache.Cache
}

func NewAppointmentRepository(cache *cache.Cache) *AppointmentRepository {
	return &AppointmentRepository{cache: cache}
}

// Create persists a new appointment from the booking flow. Status defaults
// to scheduled and the id is assigned when the caller leaves it blank.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if appointment.ID == "" {
		appointment.ID = uuid.New().String()
	}
	if appointment.Status == "" {
		appointment.Status = models.StatusScheduled
	}
	if err := utils.ValidateAppointmentDocument(*appointment); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return withLock(ctx, "appointment_lock:"+appointment.ID, func() error {
		if err := database.DB.Create(appointment).Error; err != nil {
			return fmt.Errorf("failed to create appointment: %w", err)
		}
		return r.invalidate(ctx, appointment)
	})
}

// GetByDoctor returns every appointment for the doctor within the hospital,
// unfiltered by time. Ordering is left to the caller.
func (r *AppointmentRepository) GetByDoctor(ctx context.Context, hospitalID, doctorID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getDoctorCacheKey(hospitalID, doctorID)
	var cached []models.Appointment
	if found, err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	} else if err != nil {
		log.Printf("Failed to get appointments from cache: %v", err)
	}

	var appointments []models.Appointment
	err := database.DB.
		Where("hospital_id = ? AND doctor_id = ?", hospitalID, doctorID).
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get appointments: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, appointments, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointments in cache: %v", err)
	}

	return appointments, nil
}

// GetByDoctorAndDate returns the doctor's appointments on one calendar date.
func (r *AppointmentRepository) GetByDoctorAndDate(ctx context.Context, hospitalID, doctorID, date string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appointments []models.Appointment
	err := database.DB.
		Where("hospital_id = ? AND doctor_id = ? AND date = ?", hospitalID, doctorID, date).
		Order("slot_start ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get appointments by date: %w", err)
	}
	return appointments, nil
}

// GetHistory returns appointments on the given date whose slot has fully
// elapsed at the query instant, irrespective of status. ISO dates and
// zero-padded HH:MM slots compare correctly as strings, so the cutoff is
// expressed directly in SQL.
func (r *AppointmentRepository) GetHistory(ctx context.Context, hospitalID, doctorID, date string, now time.Time) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	nowDate := now.UTC().Format("2006-01-02")
	nowClock := now.UTC().Format("15:04")

	query := database.DB.
		Where("hospital_id = ? AND doctor_id = ?", hospitalID, doctorID).
		Where("date < ? OR (date = ? AND slot_end <= ?)", nowDate, nowDate, nowClock)
	if date != "" {
		query = query.Where("date = ?", date)
	}

	var appointments []models.Appointment
	if err := query.Order("date DESC, slot_start DESC").Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to get appointment history: %w", err)
	}
	return appointments, nil
}

// GetByID loads one appointment with its patient preloaded.
func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getAppointmentCacheKey(id)
	var cached models.Appointment
	if found, err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	} else if err != nil {
		log.Printf("Failed to get appointment from cache: %v", err)
	}

	var appointment models.Appointment
	err := database.DB.
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, email, contact, age, gender")
		}).
		First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, appointment, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointment in cache: %v", err)
	}

	return &appointment, nil
}

// MarkPrescriptionGiven flips a scheduled appointment to completed. The call
// is idempotent: flipping an already-completed appointment is a no-op that
// returns the stored row, so a direct "mark done" can race a
// "create record then mark done" safely. A cancelled appointment is never
// flipped. ErrNotFound covers both an unknown id and a hospital mismatch.
func (r *AppointmentRepository) MarkPrescriptionGiven(ctx context.Context, hospitalID, id string) (*models.Appointment, error) {
	var result *models.Appointment

	err := withLock(ctx, "appointment_lock:"+id, func() error {
		var appointment models.Appointment
		err := database.DB.First(&appointment, "id = ? AND hospital_id = ?", id, hospitalID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load appointment: %w", err)
		}

		switch appointment.Status {
		case models.StatusCompleted:
			result = &appointment
			return nil
		case models.StatusCancelled:
			return ErrCancelled
		}

		updates := map[string]interface{}{
			"status":             models.StatusCompleted,
			"prescription_given": true,
		}
		if err := database.DB.Model(&appointment).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update appointment status: %w", err)
		}
		appointment.Status = models.StatusCompleted
		appointment.PrescriptionGiven = true

		result = &appointment
		return r.invalidate(ctx, &appointment)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *AppointmentRepository) invalidate(ctx context.Context, appointment *models.Appointment) error {
	if err := r.cache.Delete(ctx, r.getAppointmentCacheKey(appointment.ID)); err != nil {
		return fmt.Errorf("failed to delete appointment cache: %w", err)
	}
	return r.cache.Delete(ctx, r.getDoctorCacheKey(appointment.HospitalID, appointment.DoctorID))
}

func (r *AppointmentRepository) getAppointmentCacheKey(id string) string {
	return fmt.Sprintf("appointment_cache:%s", id)
}

func (r *AppointmentRepository) getDoctorCacheKey(hospitalID, doctorID string) string {
	return fmt.Sprintf("doctor_appointments_cache:%s:%s", hospitalID, doctorID)
}
