package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salonify/models"
	"salonify/services/booking"
)

// BookingHandler exposes the scheduling engine's client-facing surface.
type BookingHandler struct {
	Engine booking.SchedulingEngine
	Logger *zap.Logger
}

func NewBookingHandler(engine booking.SchedulingEngine, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Engine: engine, Logger: logger}
}

// GetAvailableSlots returns the bookable start times for a cart on a date.
// GET /api/booking/slots?date=2026-09-01&serviceIds=a,b&professionalId=&durationMinutes=
func (h *BookingHandler) GetAvailableSlots(c *gin.Context) {
	date := c.Query("date")
	rawServices := c.Query("serviceIds")
	if date == "" || rawServices == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and serviceIds are required"})
		return
	}

	query := models.AvailabilityQuery{
		Date:           date,
		ServiceIDs:     strings.Split(rawServices, ","),
		ProfessionalID: c.Query("professionalId"),
	}
	if raw := c.Query("durationMinutes"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "durationMinutes must be a positive integer"})
			return
		}
		query.DurationOverrideMin = minutes
	}

	slots, err := h.Engine.GetAvailableSlots(c.Request.Context(), query)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// CreateBooking commits a cart.
// POST /api/booking
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Engine.CreateBooking(c.Request.Context(), input)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Reschedule replaces an existing appointment with a new booking. The new
// cart is committed before the old appointment is cancelled.
// POST /api/booking/reschedule/:id
func (h *BookingHandler) Reschedule(c *gin.Context) {
	oldID := c.Param("id")
	var input models.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Engine.Reschedule(c.Request.Context(), oldID, input)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// CalculatePrice quotes one service for a slated date/time.
// GET /api/booking/price?serviceId=&date=&time=&clientId=
func (h *BookingHandler) CalculatePrice(c *gin.Context) {
	serviceID := c.Query("serviceId")
	date := c.Query("date")
	clock := c.Query("time")
	if serviceID == "" || date == "" || clock == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceId, date and time are required"})
		return
	}

	quote, err := h.Engine.CalculatePrice(c.Request.Context(), serviceID, date, clock, c.Query("clientId"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// CanCancel reports whether the salon's cancellation window still permits
// cancelling (or rescheduling) the appointment.
// GET /api/booking/:id/can-cancel
func (h *BookingHandler) CanCancel(c *gin.Context) {
	check, err := h.Engine.CanCancel(c.Request.Context(), c.Param("id"), time.Now())
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, check)
}

// CancelBooking cancels an appointment, window permitting.
// DELETE /api/booking/:id
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	if err := h.Engine.CancelAppointment(c.Request.Context(), c.Param("id")); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
