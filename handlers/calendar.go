package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salonify/models"
	"salonify/services/booking"
)

// CalendarHandler exposes the staff-facing calendar operations: day views,
// drag-and-drop moves, resizes, status transitions and time blocks.
type CalendarHandler struct {
	Engine booking.SchedulingEngine
	Logger *zap.Logger
}

func NewCalendarHandler(engine booking.SchedulingEngine, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{Engine: engine, Logger: logger}
}

// ListDay returns every non-cancelled appointment for a date, optionally
// filtered to one professional.
// GET /api/calendar/day?date=2026-09-01&professionalId=
func (h *CalendarHandler) ListDay(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	appts, err := h.Engine.ListDay(c.Request.Context(), date, c.Query("professionalId"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "appointments": appts})
}

type moveRequest struct {
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	ProfessionalID string `json:"professionalId" binding:"required"`
}

// Move relocates an appointment to a new date, time and professional.
// PUT /api/calendar/appointments/:id/move
func (h *CalendarHandler) Move(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Engine.MoveAppointment(c.Request.Context(), c.Param("id"), req.Date, req.Time, req.ProfessionalID); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "moved"})
}

type resizeRequest struct {
	DurationMinutes int `json:"durationMinutes" binding:"required"`
}

// Resize changes an appointment's duration without moving its start.
// PUT /api/calendar/appointments/:id/resize
func (h *CalendarHandler) Resize(c *gin.Context) {
	var req resizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Engine.ResizeAppointment(c.Request.Context(), c.Param("id"), req.DurationMinutes); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "resized"})
}

// Confirm moves a pending appointment to confirmed.
// PUT /api/calendar/appointments/:id/confirm
func (h *CalendarHandler) Confirm(c *gin.Context) {
	if err := h.Engine.ConfirmAppointment(c.Request.Context(), c.Param("id")); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(models.StatusConfirmed)})
}

// Complete marks a confirmed appointment as completed.
// PUT /api/calendar/appointments/:id/complete
func (h *CalendarHandler) Complete(c *gin.Context) {
	if err := h.Engine.CompleteAppointment(c.Request.Context(), c.Param("id")); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": string(models.StatusCompleted)})
}

// CreateBlock reserves a stretch of a professional's day so no bookings can
// land on it.
// POST /api/calendar/blocks
func (h *CalendarHandler) CreateBlock(c *gin.Context) {
	var input models.CreateBlockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id, err := h.Engine.CreateBlock(c.Request.Context(), input)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"blockId": id})
}

// ReleaseBlock frees a previously blocked stretch of time. Blocks are not
// subject to the cancellation window.
// DELETE /api/calendar/blocks/:id
func (h *CalendarHandler) ReleaseBlock(c *gin.Context) {
	if err := h.Engine.ReleaseBlock(c.Request.Context(), c.Param("id")); err != nil {
		respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "released"})
}
