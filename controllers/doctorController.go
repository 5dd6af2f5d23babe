package controllers

import (
	"MerakiHMS/handlers"
	"MerakiHMS/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupDoctorRoutes wires the doctor portal surface: appointment listing and
// filtering, enriched details, the status flip, profile lookup, prescription
// submission and the per-session prescription context.
func SetupDoctorRoutes(router *gin.Engine, appointmentHandler *handlers.AppointmentHandler, doctorHandler *handlers.DoctorHandler, prescriptionHandler *handlers.PrescriptionHandler) {
	doctors := router.Group("/doctors").Use(middlewares.BearerAuthMiddleware("Admin", "Doctor"))
	{
		doctors.GET("/:hospital_id/:doctor_id/appointments", appointmentHandler.ListAppointments)
		doctors.GET("/:hospital_id/:doctor_id/appointments/by-date", appointmentHandler.ListAppointmentsByDate)
		doctors.GET("/:hospital_id/:doctor_id/appointments/buckets", appointmentHandler.GetBuckets)
		doctors.GET("/:hospital_id/:doctor_id/history", appointmentHandler.ListHistory)

		doctors.GET("/appointments/:appointment_id/details", appointmentHandler.GetAppointmentDetails)
		doctors.PUT("/appointment/:hospital_id/:appointment_id/prescription", appointmentHandler.MarkPrescriptionGiven)

		doctors.GET("/profile", doctorHandler.GetProfile)

		doctors.POST("/prescriptions", prescriptionHandler.SubmitPrescription)
		doctors.PUT("/prescription-context", prescriptionHandler.SavePrescriptionContext)
		doctors.GET("/prescription-context", prescriptionHandler.GetPrescriptionContext)
		doctors.DELETE("/prescription-context", prescriptionHandler.ClearPrescriptionContext)
	}
}

// SetupAdminRoutes wires the booking-side endpoints used by the admin portal.
func SetupAdminRoutes(router *gin.Engine, appointmentHandler *handlers.AppointmentHandler, doctorHandler *handlers.DoctorHandler, patientHandler *handlers.PatientHandler) {
	admin := router.Group("/").Use(middlewares.BearerAuthMiddleware("Admin"))
	{
		admin.POST("/appointments", appointmentHandler.CreateAppointment)
		admin.POST("/doctors", doctorHandler.CreateDoctor)
		admin.POST("/patients", patientHandler.CreatePatient)
		admin.GET("/patients/:id", patientHandler.GetPatientByID)
	}
}
