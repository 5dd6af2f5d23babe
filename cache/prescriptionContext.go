package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	// Context lives as long as the access token that created it.
	PrescriptionContextExpiry = 24 * time.Hour
)

// PrescriptionContext is the carried-forward identity of a selected
// appointment, used to pre-fill the record-creation form. It survives page
// reloads because it lives server-side for the duration of the session, and
// it is cleared on logoff.
type PrescriptionContext struct {
	PatientID      string `json:"patient_id"`
	AppointmentID  string `json:"appointment_id"`
	HospitalID     string `json:"hospital_id"`
	PatientName    string `json:"patientName"`
	PatientEmail   string `json:"patientEmail"`
	PatientContact string `json:"patientContact"`
	SessionType    string `json:"sessionType"`
}

// PrescriptionContextStore keeps one prescription context per doctor session.
type PrescriptionContextStore struct {
	cache *Cache
}

func NewPrescriptionContextStore(cache *Cache) *PrescriptionContextStore {
	return &PrescriptionContextStore{cache: cache}
}

func (s *PrescriptionContextStore) Save(ctx context.Context, doctorID string, pc *PrescriptionContext) error {
	return s.cache.SetJSON(ctx, s.key(doctorID), pc, PrescriptionContextExpiry)
}

// Load returns the stored context for the doctor, or nil when none is set.
func (s *PrescriptionContextStore) Load(ctx context.Context, doctorID string) (*PrescriptionContext, error) {
	var pc PrescriptionContext
	found, err := s.cache.GetJSON(ctx, s.key(doctorID), &pc)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &pc, nil
}

func (s *PrescriptionContextStore) Clear(ctx context.Context, doctorID string) error {
	return s.cache.Delete(ctx, s.key(doctorID))
}

func (s *PrescriptionContextStore) key(doctorID string) string {
	return fmt.Sprintf("prescription_context:%s", doctorID)
}
