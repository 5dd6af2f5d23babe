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
	RecordCacheExpiry = 24 * time.Hour
)

type RecordRepository struct {
	cache *cache.Cache
}

func NewRecordRepository(cache *cache.Cache) *RecordRepository {
	return &RecordRepository{cache: cache}
}

// Create persists a new patient record. The four identity references are
// required; symptoms and diagnosis must each carry at least one entry. The
// medicine list may be empty; such records log symptoms/diagnosis only and
// never show up in prescription views.
func (r *RecordRepository) Create(ctx context.Context, record *models.PatientRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if err := utils.ValidateRecordDocument(*record); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return withLock(ctx, "record_lock:"+record.AppointmentID, func() error {
		if err := database.DB.Create(record).Error; err != nil {
			return fmt.Errorf("failed to create patient record: %w", err)
		}
		return r.invalidate(ctx, record)
	})
}

// GetByPatient returns every record for the patient, enriched at read time
// with the doctor's name/specialization and the patient's name/email.
func (r *RecordRepository) GetByPatient(ctx context.Context, patientID string) ([]models.PatientRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getPatientCacheKey(patientID)
	var cached []models.PatientRecord
	if found, err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	} else if err != nil {
		log.Printf("Failed to get patient records from cache: %v", err)
	}

	var records []models.PatientRecord
	err := database.DB.
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, specialization")
		}).
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, email")
		}).
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get patient records: %w", err)
	}

	if err := r.cache.SetJSON(ctx, cacheKey, records, RecordCacheExpiry); err != nil {
		log.Printf("Failed to set patient records in cache: %v", err)
	}

	return records, nil
}

// GetByID loads a single record with doctor/patient display fields.
func (r *RecordRepository) GetByID(ctx context.Context, id string) (*models.PatientRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var record models.PatientRecord
	err := database.DB.
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, specialization")
		}).
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, email")
		}).
		First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get patient record: %w", err)
	}
	return &record, nil
}

// RecordUpdate carries the updatable clinical fields of a record. Identity
// references never change after creation. Nil fields are left untouched;
// a non-nil field replaces the stored value and the full-document validators
// run against the merged result.
type RecordUpdate struct {
	Symptoms         *[]string          `json:"symptoms"`
	Diagnosis        *[]string          `json:"diagnosis"`
	Prescription     *[]models.Medicine `json:"prescription"`
	RecommendedTests *[]string          `json:"recommended_tests"`
	Notes            *string            `json:"notes"`
}

// Update applies a partial update and re-runs full-document validation, so
// clearing a required field fails with ErrValidation instead of persisting.
func (r *RecordRepository) Update(ctx context.Context, id string, update RecordUpdate) (*models.PatientRecord, error) {
	var result *models.PatientRecord

	err := withLock(ctx, "record_lock:"+id, func() error {
		var record models.PatientRecord
		err := database.DB.First(&record, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load patient record: %w", err)
		}

		if update.Symptoms != nil {
			record.Symptoms = *update.Symptoms
		}
		if update.Diagnosis != nil {
			record.Diagnosis = models.JoinDiagnosis(*update.Diagnosis)
		}
		if update.Prescription != nil {
			record.Prescription = *update.Prescription
		}
		if update.RecommendedTests != nil {
			record.RecommendedTests = *update.RecommendedTests
		}
		if update.Notes != nil {
			record.Notes = *update.Notes
		}

		if err := utils.ValidateRecordDocument(record); err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}

		if err := database.DB.Save(&record).Error; err != nil {
			return fmt.Errorf("failed to update patient record: %w", err)
		}

		result = &record
		return r.invalidate(ctx, &record)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes a record by id.
func (r *RecordRepository) Delete(ctx context.Context, id string) error {
	return withLock(ctx, "record_lock:"+id, func() error {
		var record models.PatientRecord
		err := database.DB.First(&record, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load patient record: %w", err)
		}

		if err := database.DB.Delete(&models.PatientRecord{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete patient record: %w", err)
		}
		return r.invalidate(ctx, &record)
	})
}

// GetPrescriptionsByDoctor returns the doctor's records that carry at least
// one medicine. The medicine list is a JSON column, so the non-empty filter
// runs over the fetched rows rather than in SQL.
func (r *RecordRepository) GetPrescriptionsByDoctor(ctx context.Context, doctorID string) ([]models.PatientRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var records []models.PatientRecord
	err := database.DB.
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, specialization")
		}).
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, email")
		}).
		Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor records: %w", err)
	}

	prescriptions := make([]models.PatientRecord, 0, len(records))
	for _, record := range records {
		if record.HasPrescription() {
			prescriptions = append(prescriptions, record)
		}
	}
	return prescriptions, nil
}

// FindByAppointment returns the record attached to an appointment, or nil
// when none exists yet. The submission workflow uses it as a duplicate guard.
func (r *RecordRepository) FindByAppointment(ctx context.Context, appointmentID string) (*models.PatientRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var record models.PatientRecord
	err := database.DB.First(&record, "appointment_id = ?", appointmentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up record by appointment: %w", err)
	}
	return &record, nil
}

func (r *RecordRepository) invalidate(ctx context.Context, record *models.PatientRecord) error {
	if err := r.cache.Delete(ctx, r.getPatientCacheKey(record.PatientID)); err != nil {
		return fmt.Errorf("failed to delete patient records cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "patient_records_cache:*")
}

func (r *RecordRepository) getPatientCacheKey(patientID string) string {
	return fmt.Sprintf("patient_records_cache:%s", patientID)
}
