package handlers

import (
	"MerakiHMS/middlewares"
	"MerakiHMS/repositories"
	"MerakiHMS/services"

	"github.com/gin-gonic/gin"
)

type RecordHandler struct {
	service *services.RecordService
}

func NewRecordHandler(service *services.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

func (h *RecordHandler) CreateRecord(c *gin.Context) {
	var input services.CreateRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	record, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, record)
}

func (h *RecordHandler) GetRecordsByPatient(c *gin.Context) {
	patientID := c.Param("patient_id")

	records, err := h.service.GetByPatient(c.Request.Context(), patientID)
	if err != nil {
		middlewares.HttpError(c, "Failed to get patient records", 500, err)
		return
	}
	c.JSON(200, records)
}

func (h *RecordHandler) GetRecordByID(c *gin.Context) {
	id := c.Param("id")

	record, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": "Patient record not found"})
		return
	}
	c.JSON(200, record)
}

func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	id := c.Param("id")

	var update repositories.RecordUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	record, err := h.service.Update(c.Request.Context(), id, update)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, record)
}

func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Patient record deleted"})
}

func (h *RecordHandler) GetPrescriptionsByDoctor(c *gin.Context) {
	doctorID := c.Param("doctor_id")

	records, err := h.service.GetPrescriptionsByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		middlewares.HttpError(c, "Failed to get prescriptions", 500, err)
		return
	}
	c.JSON(200, records)
}
