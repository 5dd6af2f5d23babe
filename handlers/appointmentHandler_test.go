package handlers

import (
	"MerakiHMS/models"
	"MerakiHMS/repositories"
	"MerakiHMS/services"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppointmentRouter(t *testing.T) (*gin.Engine, *repositories.AppointmentRepository) {
	t.Helper()
	c := setupTestEnv(t)

	appointmentRepo := repositories.NewAppointmentRepository(c)
	patientRepo := repositories.NewPatientRepository(c)
	handler := NewAppointmentHandler(services.NewAppointmentService(appointmentRepo, patientRepo))

	router := gin.New()
	router.GET("/doctors/:hospital_id/:doctor_id/appointments", handler.ListAppointments)
	router.GET("/doctors/appointments/:appointment_id/details", handler.GetAppointmentDetails)
	router.PUT("/doctors/appointment/:hospital_id/:appointment_id/prescription", handler.MarkPrescriptionGiven)
	router.POST("/appointments", handler.CreateAppointment)

	return router, appointmentRepo
}

func seedHandlerAppointment(t *testing.T, repo *repositories.AppointmentRepository, id, status string) {
	t.Helper()
	a := models.Appointment{
		ID: id, HospitalID: "h1", DoctorID: "d1", PatientID: "p1",
		PatientName: "Jordan Blake",
		Date:        "2024-01-10", SlotStart: "09:00", SlotEnd: "09:30",
		Type: models.TypeWalkIn, Status: status,
	}
	require.NoError(t, repo.Create(context.Background(), &a))
}

func TestMarkPrescriptionGivenEndpoint(t *testing.T) {
	router, repo := newAppointmentRouter(t)
	seedHandlerAppointment(t, repo, "A1", models.StatusScheduled)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/doctors/appointment/h1/A1/prescription", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	var appointment models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appointment))
	assert.Equal(t, models.StatusCompleted, appointment.Status)

	// Second flip is a no-op, not an error.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/doctors/appointment/h1/A1/prescription", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
}

func TestMarkPrescriptionGivenEndpointErrors(t *testing.T) {
	router, repo := newAppointmentRouter(t)
	seedHandlerAppointment(t, repo, "A1", models.StatusScheduled)
	seedHandlerAppointment(t, repo, "A2", models.StatusCancelled)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/doctors/appointment/h1/no-such-id/prescription", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 404, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/doctors/appointment/other-hospital/A1/prescription", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 404, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/doctors/appointment/h1/A2/prescription", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 409, w.Code)
}

func TestGetAppointmentDetailsEndpoint(t *testing.T) {
	router, repo := newAppointmentRouter(t)
	seedHandlerAppointment(t, repo, "A1", models.StatusScheduled)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/doctors/appointments/A1/details", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	var details services.AppointmentDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &details))
	require.NotNil(t, details.Appointment)
	assert.Equal(t, "Jordan Blake", details.Appointment.PatientName)
	// Patient row does not exist; the denormalized copy carries the view.
	assert.Nil(t, details.Patient)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/doctors/appointments/unknown/details", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, 404, w.Code)
}

func TestCreateAppointmentEndpoint(t *testing.T) {
	router, _ := newAppointmentRouter(t)

	body, err := json.Marshal(models.Appointment{
		HospitalID: "h1", DoctorID: "d1", PatientID: "p1",
		Date: "2024-01-10", SlotStart: "09:00", SlotEnd: "09:30",
		Type: models.TypeWalkIn,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, 201, w.Code)

	// Reversed slot order is a validation failure.
	body, err = json.Marshal(models.Appointment{
		HospitalID: "h1", DoctorID: "d1", PatientID: "p1",
		Date: "2024-01-10", SlotStart: "10:00", SlotEnd: "09:00",
		Type: models.TypeWalkIn,
	})
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, 400, w.Code)
}
