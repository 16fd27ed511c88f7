package booking

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "salonify/database/repository/appointment"
	"salonify/models"
)

// CanCancel applies the salon-wide cancellation window: the appointment must
// still be in a cancellable status and start at least CancellationWindow
// ahead of now. The same predicate gates rescheduling.
func (se *DefaultSchedulingEngine) CanCancel(ctx context.Context, appointmentID string, now time.Time) (models.CancelCheck, error) {
	ap, err := se.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if err == appointmentRepo.ErrNotFound {
			return models.CancelCheck{}, &NotFoundError{Entity: "appointment", ID: appointmentID}
		}
		return models.CancelCheck{}, fmt.Errorf("failed to load appointment %s: %w", appointmentID, err)
	}

	if !ap.CanCancelStatus() {
		return models.CancelCheck{
			Allowed: false,
			Reason:  fmt.Sprintf("appointment is %s", ap.Status),
		}, nil
	}

	startsAt, err := ap.StartsAt(se.location())
	if err != nil {
		return models.CancelCheck{}, NewValidationError("appointment", "stored date/time is malformed")
	}
	if startsAt.Sub(now) < se.CancellationWindow {
		return models.CancelCheck{
			Allowed: false,
			Reason: fmt.Sprintf("cancellation requires at least %d hours notice",
				int(se.CancellationWindow.Hours())),
		}, nil
	}
	return models.CancelCheck{Allowed: true}, nil
}

// CancelAppointment cancels after the window check passes. Cancellation is a
// status change, never a delete; the record stays for audit history.
func (se *DefaultSchedulingEngine) CancelAppointment(ctx context.Context, appointmentID string) error {
	check, err := se.CanCancel(ctx, appointmentID, se.now())
	if err != nil {
		return err
	}
	if !check.Allowed {
		return NewValidationError("appointment", check.Reason)
	}
	return se.Appointments.SetStatus(ctx, appointmentID, models.StatusCancelled, se.now())
}

// ConfirmAppointment transitions PENDING -> CONFIRMED.
func (se *DefaultSchedulingEngine) ConfirmAppointment(ctx context.Context, appointmentID string) error {
	return se.transition(ctx, appointmentID, models.StatusConfirmed)
}

// CompleteAppointment transitions a pending or confirmed appointment to
// COMPLETED.
func (se *DefaultSchedulingEngine) CompleteAppointment(ctx context.Context, appointmentID string) error {
	return se.transition(ctx, appointmentID, models.StatusCompleted)
}

func (se *DefaultSchedulingEngine) transition(ctx context.Context, appointmentID string, next models.AppointmentStatus) error {
	ap, err := se.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if err == appointmentRepo.ErrNotFound {
			return &NotFoundError{Entity: "appointment", ID: appointmentID}
		}
		return fmt.Errorf("failed to load appointment %s: %w", appointmentID, err)
	}
	if !ap.CanTransitionTo(next) {
		return NewValidationError("status", fmt.Sprintf("cannot transition %s appointment to %s", ap.Status, next))
	}
	return se.Appointments.SetStatus(ctx, appointmentID, next, se.now())
}
