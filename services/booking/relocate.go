package booking

import (
	"context"
	"fmt"

	appointmentRepo "salonify/database/repository/appointment"
	"salonify/models"
)

// MoveAppointment relocates an existing appointment to a new date, time and
// professional. The move is re-validated against the target professional's
// other commitments; schedule and specialty compatibility are deliberately
// not enforced so an administrator can override them from the calendar.
// Moving never recomputes price or re-fires financial side effects.
func (se *DefaultSchedulingEngine) MoveAppointment(ctx context.Context, id, newDate, newTime, newProfessionalID string) error {
	ap, err := se.loadRelocatable(ctx, id)
	if err != nil {
		return err
	}
	if _, err := se.parseDate(newDate); err != nil {
		return err
	}
	startMin, err := TimeToMinutes(newTime)
	if err != nil {
		return err
	}
	if newProfessionalID == "" {
		newProfessionalID = ap.ProfessionalID
	}

	release, err := se.locks().Acquire(ctx, newProfessionalID, newDate)
	if err != nil {
		return err
	}
	defer release()

	serviceIdx, err := se.serviceIndex(ctx)
	if err != nil {
		return err
	}
	duration := se.effectiveDuration(*ap, serviceIdx)

	occupied, err := se.Appointments.ListOccupiedForDay(ctx, newDate, newProfessionalID)
	if err != nil {
		return fmt.Errorf("failed to list appointments: %w", err)
	}
	if conflict := se.findConflict(occupied, serviceIdx, ap.ID, startMin, duration); conflict != nil {
		return conflict
	}

	return se.Appointments.Relocate(ctx, id, newDate, newTime, newProfessionalID)
}

// ResizeAppointment rewrites only the appointment's duration, clamped to a
// 15-minute floor. By default neighbors are NOT re-validated: the calendar
// UI signals overlap live while an administrator drags, and an intentional
// overlap with a block is allowed. StrictResize turns the conflict check
// back on.
func (se *DefaultSchedulingEngine) ResizeAppointment(ctx context.Context, id string, newDurationMin int) error {
	ap, err := se.loadRelocatable(ctx, id)
	if err != nil {
		return err
	}
	if newDurationMin < minResizeMinutes {
		newDurationMin = minResizeMinutes
	}

	if se.StrictResize {
		release, err := se.locks().Acquire(ctx, ap.ProfessionalID, ap.Date)
		if err != nil {
			return err
		}
		defer release()

		serviceIdx, err := se.serviceIndex(ctx)
		if err != nil {
			return err
		}
		startMin, err := TimeToMinutes(ap.Time)
		if err != nil {
			return err
		}
		occupied, err := se.Appointments.ListOccupiedForDay(ctx, ap.Date, ap.ProfessionalID)
		if err != nil {
			return fmt.Errorf("failed to list appointments: %w", err)
		}
		if conflict := se.findConflict(occupied, serviceIdx, ap.ID, startMin, newDurationMin); conflict != nil {
			return conflict
		}
	}

	return se.Appointments.SetDuration(ctx, id, newDurationMin)
}

// loadRelocatable fetches an appointment that may still be moved or resized.
func (se *DefaultSchedulingEngine) loadRelocatable(ctx context.Context, id string) (*models.Appointment, error) {
	ap, err := se.Appointments.GetByID(ctx, id)
	if err != nil {
		if err == appointmentRepo.ErrNotFound {
			return nil, &NotFoundError{Entity: "appointment", ID: id}
		}
		return nil, fmt.Errorf("failed to load appointment %s: %w", id, err)
	}
	if ap.Status == models.StatusCancelled || ap.Status == models.StatusCompleted {
		return nil, NewValidationError("appointment", fmt.Sprintf("appointment is %s and cannot be changed", ap.Status))
	}
	return ap, nil
}
