package handlers

import (
	"MerakiHMS/models"
	"MerakiHMS/repositories"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	repository *repositories.PatientRepository
}

func NewPatientHandler(repository *repositories.PatientRepository) *PatientHandler {
	return &PatientHandler{repository: repository}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.repository.Create(c.Request.Context(), &patient); err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, patient)
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id := c.Param("id")

	patient, err := h.repository.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(200, patient)
}
