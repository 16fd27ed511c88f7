package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salonify/services/booking"
	"salonify/utils"
)

// respondEngineError maps the engine's error taxonomy onto HTTP statuses.
// Conflicts carry the clashing time range so the client can render a useful
// message.
func respondEngineError(c *gin.Context, err error) {
	var validation *booking.ValidationError
	var conflict *booking.ConflictError
	var notFound *booking.NotFoundError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":          "time conflict",
			"conflictingId":  conflict.ExistingID,
			"conflictStart":  conflict.ExistingStart,
			"conflictEnd":    conflict.ExistingEnd,
			"professionalId": conflict.ProfessionalID,
			"date":           conflict.Date,
		})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.Is(err, booking.ErrNoProfessionalForSlot):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, utils.ErrDayLocked):
		// Another writer holds the day; the caller should retry.
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "retryable": true})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
