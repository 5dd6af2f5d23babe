package handlers

import (
	"MerakiHMS/middlewares"
	"MerakiHMS/models"
	"MerakiHMS/services"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	service *services.DoctorService
}

func NewDoctorHandler(service *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.service.Create(c.Request.Context(), &doctor); err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, doctor)
}

// GetProfile returns the doctor identity for the token's doctor id claim.
func (h *DoctorHandler) GetProfile(c *gin.Context) {
	doctorID, err := middlewares.ExtractDoctorIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Doctor identity missing from token"})
		return
	}

	doctor, err := h.service.GetProfile(c.Request.Context(), doctorID)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": "Doctor not found"})
		return
	}
	c.JSON(200, doctor)
}
