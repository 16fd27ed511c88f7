package models

import "time"

// AppointmentStatus enumerates the lifecycle states of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusBlocked   AppointmentStatus = "BLOCKED"
)

// BlockServiceID is the synthetic service id carried by administrative
// blocks, which have no real catalog record behind them.
const BlockServiceID = "block"

// Appointment is one committed calendar entry for a professional. Cancelled
// appointments are kept for audit history and never occupy calendar space.
type Appointment struct {
	ID             string            `bson:"id" json:"id"`
	ClientID       string            `bson:"client_id,omitempty" json:"client_id,omitempty"` // empty for blocks
	ProfessionalID string            `bson:"professional_id" json:"professional_id"`
	ServiceID      string            `bson:"service_id" json:"service_id"`
	Date           string            `bson:"date" json:"date"` // "YYYY-MM-DD", salon-local
	Time           string            `bson:"time" json:"time"` // "HH:MM" start
	Status         AppointmentStatus `bson:"status" json:"status"`
	CustomDuration *int              `bson:"custom_duration,omitempty" json:"custom_duration,omitempty"` // minutes, overrides the service duration
	Notes          string            `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt      time.Time         `bson:"created_at" json:"created_at"`
	CancelledAt    *time.Time        `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`
	CompletedAt    *time.Time        `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

// Occupies reports whether the appointment takes up calendar space.
func (a Appointment) Occupies() bool {
	return a.Status != StatusCancelled
}

// IsBlock reports whether the appointment is an administrative block.
func (a Appointment) IsBlock() bool {
	return a.Status == StatusBlocked
}

// CanCancelStatus reports whether the status still permits cancellation.
func (a Appointment) CanCancelStatus() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed || a.Status == StatusBlocked
}

// CanTransitionTo enforces the lifecycle: PENDING -> CONFIRMED -> COMPLETED,
// with CANCELLED reachable from any state prior to COMPLETED. Blocks may only
// be cancelled (released).
func (a Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch next {
	case StatusConfirmed:
		return a.Status == StatusPending
	case StatusCompleted:
		return a.Status == StatusPending || a.Status == StatusConfirmed
	case StatusCancelled:
		return a.Status != StatusCompleted && a.Status != StatusCancelled
	default:
		return false
	}
}

// StartsAt resolves the appointment's wall-clock start instant in loc.
func (a Appointment) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", a.Date+" "+a.Time, loc)
}
