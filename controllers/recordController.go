package controllers

import (
	"MerakiHMS/handlers"
	"MerakiHMS/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupRecordRoutes wires the patient-record CRUD surface.
func SetupRecordRoutes(router *gin.Engine, recordHandler *handlers.RecordHandler) {
	records := router.Group("/patient-records").Use(middlewares.BearerAuthMiddleware("Admin", "Doctor"))
	{
		records.POST("/", recordHandler.CreateRecord)
		records.GET("/patient/:patient_id", recordHandler.GetRecordsByPatient)
		records.GET("/doctor/:doctor_id/prescriptions", recordHandler.GetPrescriptionsByDoctor)
		records.GET("/:id", recordHandler.GetRecordByID)
		records.PUT("/:id", recordHandler.UpdateRecord)
		records.DELETE("/:id", recordHandler.DeleteRecord)
	}
}
