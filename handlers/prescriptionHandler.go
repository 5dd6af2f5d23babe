package handlers

import (
	"MerakiHMS/cache"
	"MerakiHMS/middlewares"
	"MerakiHMS/services"
	"errors"

	"github.com/gin-gonic/gin"
)

// PrescriptionHandler exposes the combined submission workflow and the
// per-session prescription context used to pre-fill the record form.
type PrescriptionHandler struct {
	service      *services.PrescriptionService
	contextStore *cache.PrescriptionContextStore
}

func NewPrescriptionHandler(service *services.PrescriptionService, contextStore *cache.PrescriptionContextStore) *PrescriptionHandler {
	return &PrescriptionHandler{service: service, contextStore: contextStore}
}

// SubmitPrescription creates the patient record and then marks the
// appointment completed. A flip failure after a successful create returns
// 200 with status_updated=false so the client knows the record exists.
func (h *PrescriptionHandler) SubmitPrescription(c *gin.Context) {
	var input services.CreateRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.service.Submit(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrDuplicatePrescription) {
			c.JSON(409, gin.H{"error": err.Error()})
			return
		}
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, result)
}

func (h *PrescriptionHandler) SavePrescriptionContext(c *gin.Context) {
	doctorID, err := middlewares.ExtractDoctorIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Doctor identity missing from token"})
		return
	}

	var pc cache.PrescriptionContext
	if err := c.ShouldBindJSON(&pc); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if pc.AppointmentID == "" || pc.PatientID == "" {
		c.JSON(400, gin.H{"error": "appointment_id and patient_id are required"})
		return
	}

	if err := h.contextStore.Save(c.Request.Context(), doctorID, &pc); err != nil {
		middlewares.HttpError(c, "Failed to save prescription context", 500, err)
		return
	}
	c.JSON(200, pc)
}

func (h *PrescriptionHandler) GetPrescriptionContext(c *gin.Context) {
	doctorID, err := middlewares.ExtractDoctorIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Doctor identity missing from token"})
		return
	}

	pc, err := h.contextStore.Load(c.Request.Context(), doctorID)
	if err != nil {
		middlewares.HttpError(c, "Failed to load prescription context", 500, err)
		return
	}
	if pc == nil {
		c.JSON(404, gin.H{"error": "No prescription context set"})
		return
	}
	c.JSON(200, pc)
}

func (h *PrescriptionHandler) ClearPrescriptionContext(c *gin.Context) {
	doctorID, err := middlewares.ExtractDoctorIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "Doctor identity missing from token"})
		return
	}

	if err := h.contextStore.Clear(c.Request.Context(), doctorID); err != nil {
		middlewares.HttpError(c, "Failed to clear prescription context", 500, err)
		return
	}
	c.Status(200)
}
