package utils

import (
	"MerakiHMS/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() models.PatientRecord {
	return models.PatientRecord{
		PatientID:     "p1",
		DoctorID:      "d1",
		AppointmentID: "a1",
		HospitalID:    "h1",
		Symptoms:      []string{"Cough"},
		Diagnosis:     "Flu",
	}
}

func TestValidateRecordDocument(t *testing.T) {
	require.NoError(t, ValidateRecordDocument(validRecord()))

	noSymptoms := validRecord()
	noSymptoms.Symptoms = nil
	assert.Error(t, ValidateRecordDocument(noSymptoms))

	blankSymptoms := validRecord()
	blankSymptoms.Symptoms = []string{"  ", ""}
	assert.Error(t, ValidateRecordDocument(blankSymptoms))

	noDiagnosis := validRecord()
	noDiagnosis.Diagnosis = ""
	assert.Error(t, ValidateRecordDocument(noDiagnosis))

	noPatient := validRecord()
	noPatient.PatientID = ""
	assert.Error(t, ValidateRecordDocument(noPatient))

	// Medicines are optional; a symptoms-plus-diagnosis record is valid.
	noMedicine := validRecord()
	noMedicine.Prescription = nil
	assert.NoError(t, ValidateRecordDocument(noMedicine))
}

func validAppointment() models.Appointment {
	return models.Appointment{
		HospitalID: "h1",
		DoctorID:   "d1",
		PatientID:  "p1",
		Date:       "2024-01-10",
		SlotStart:  "09:00",
		SlotEnd:    "09:30",
		Type:       models.TypeWalkIn,
		Status:     models.StatusScheduled,
	}
}

func TestValidateAppointmentDocument(t *testing.T) {
	require.NoError(t, ValidateAppointmentDocument(validAppointment()))

	badSlot := validAppointment()
	badSlot.SlotStart = "10:00"
	badSlot.SlotEnd = "09:30"
	assert.ErrorIs(t, ValidateAppointmentDocument(badSlot), ErrBadSlot)

	equalSlot := validAppointment()
	equalSlot.SlotEnd = equalSlot.SlotStart
	assert.ErrorIs(t, ValidateAppointmentDocument(equalSlot), ErrBadSlot)

	badType := validAppointment()
	badType.Type = "telepathy"
	assert.Error(t, ValidateAppointmentDocument(badType))

	badStatus := validAppointment()
	badStatus.Status = "done"
	assert.Error(t, ValidateAppointmentDocument(badStatus))

	badDate := validAppointment()
	badDate.Date = "10/01/2024"
	assert.Error(t, ValidateAppointmentDocument(badDate))
}
