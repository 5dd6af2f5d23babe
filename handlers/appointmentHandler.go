package handlers

import (
	"MerakiHMS/middlewares"
	"MerakiHMS/models"
	"MerakiHMS/services"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.service.Create(c.Request.Context(), &appointment); err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, appointment)
}

func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	hospitalID := c.Param("hospital_id")
	doctorID := c.Param("doctor_id")

	appointments, err := h.service.GetAll(c.Request.Context(), hospitalID, doctorID)
	if err != nil {
		middlewares.HttpError(c, "Failed to get appointments", 500, err)
		return
	}
	c.JSON(200, appointments)
}

func (h *AppointmentHandler) ListAppointmentsByDate(c *gin.Context) {
	hospitalID := c.Param("hospital_id")
	doctorID := c.Param("doctor_id")
	date := c.Query("date")
	if date == "" {
		c.JSON(400, gin.H{"error": "date query parameter is required"})
		return
	}

	appointments, err := h.service.GetByDate(c.Request.Context(), hospitalID, doctorID, date)
	if err != nil {
		middlewares.HttpError(c, "Failed to get appointments by date", 500, err)
		return
	}
	c.JSON(200, appointments)
}

func (h *AppointmentHandler) ListHistory(c *gin.Context) {
	hospitalID := c.Param("hospital_id")
	doctorID := c.Param("doctor_id")
	date := c.Query("date")

	appointments, err := h.service.GetHistory(c.Request.Context(), hospitalID, doctorID, date)
	if err != nil {
		middlewares.HttpError(c, "Failed to get appointment history", 500, err)
		return
	}
	c.JSON(200, appointments)
}

func (h *AppointmentHandler) GetBuckets(c *gin.Context) {
	hospitalID := c.Param("hospital_id")
	doctorID := c.Param("doctor_id")

	buckets, err := h.service.GetBuckets(c.Request.Context(), hospitalID, doctorID)
	if err != nil {
		middlewares.HttpError(c, "Failed to partition appointments", 500, err)
		return
	}
	c.JSON(200, buckets)
}

func (h *AppointmentHandler) GetAppointmentDetails(c *gin.Context) {
	appointmentID := c.Param("appointment_id")

	details, err := h.service.GetDetails(c.Request.Context(), appointmentID)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": "Appointment not found"})
		return
	}
	c.JSON(200, details)
}

func (h *AppointmentHandler) MarkPrescriptionGiven(c *gin.Context) {
	hospitalID := c.Param("hospital_id")
	appointmentID := c.Param("appointment_id")

	appointment, err := h.service.MarkPrescriptionGiven(c.Request.Context(), hospitalID, appointmentID)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointment)
}
