package booking

import "salonify/models"

// The single overlap predicate shared by availability, commit, move and
// resize. Intervals are half-open [start, end) in minutes since midnight, so
// back-to-back bookings that touch at an endpoint never conflict.

// Overlaps reports whether [aStart, aEnd) intersects [bStart, bEnd).
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// findConflict checks a candidate interval against a professional's existing
// day. Cancelled appointments never occupy space, and excludeID skips the
// appointment being moved or resized so it cannot conflict with itself.
// Returns nil when the interval is free.
func (se *DefaultSchedulingEngine) findConflict(
	appts []models.Appointment,
	services map[string]models.Service,
	excludeID string,
	startMin, durationMin int,
) *ConflictError {
	endMin := startMin + durationMin
	for _, ap := range appts {
		if !ap.Occupies() || ap.ID == excludeID {
			continue
		}
		existingStart, err := TimeToMinutes(ap.Time)
		if err != nil {
			// A malformed stored time cannot be compared; skip rather than
			// wedge the whole calendar.
			continue
		}
		existingEnd := existingStart + se.effectiveDuration(ap, services)
		if Overlaps(startMin, endMin, existingStart, existingEnd) {
			return &ConflictError{
				ProfessionalID: ap.ProfessionalID,
				Date:           ap.Date,
				ExistingID:     ap.ID,
				ExistingStart:  MinutesToTime(existingStart),
				ExistingEnd:    MinutesToTime(existingEnd),
			}
		}
	}
	return nil
}
