package booking

import (
	"context"
	"fmt"

	catalogRepo "salonify/database/repository/catalog"
	"salonify/models"
)

// CreateBlock reserves a professional's time administratively. A block is an
// appointment with status BLOCKED and a synthetic service id: it has no
// client, no price and no financial side effects, but it occupies calendar
// space exactly like a booking and is conflict-checked the same way.
func (se *DefaultSchedulingEngine) CreateBlock(ctx context.Context, in models.CreateBlockInput) (string, error) {
	if _, err := se.parseDate(in.Date); err != nil {
		return "", err
	}
	startMin, err := TimeToMinutes(in.Time)
	if err != nil {
		return "", err
	}
	if in.DurationMin <= 0 {
		return "", NewValidationError("duration_min", "block duration must be positive")
	}
	if in.ProfessionalID == "" {
		return "", NewValidationError("professional_id", "professional is required")
	}
	if _, err := se.Catalog.GetProfessional(ctx, in.ProfessionalID); err != nil {
		if err == catalogRepo.ErrProfessionalNotFound {
			return "", &NotFoundError{Entity: "professional", ID: in.ProfessionalID}
		}
		return "", fmt.Errorf("failed to load professional %s: %w", in.ProfessionalID, err)
	}

	release, err := se.locks().Acquire(ctx, in.ProfessionalID, in.Date)
	if err != nil {
		return "", err
	}
	defer release()

	serviceIdx, err := se.serviceIndex(ctx)
	if err != nil {
		return "", err
	}
	occupied, err := se.Appointments.ListOccupiedForDay(ctx, in.Date, in.ProfessionalID)
	if err != nil {
		return "", fmt.Errorf("failed to list appointments: %w", err)
	}
	if conflict := se.findConflict(occupied, serviceIdx, "", startMin, in.DurationMin); conflict != nil {
		return "", conflict
	}

	duration := in.DurationMin
	block := models.Appointment{
		ProfessionalID: in.ProfessionalID,
		ServiceID:      models.BlockServiceID,
		Date:           in.Date,
		Time:           MinutesToTime(startMin),
		Status:         models.StatusBlocked,
		CustomDuration: &duration,
		Notes:          in.Reason,
		CreatedAt:      se.now(),
	}

	ids, err := se.Appointments.CreateMany(ctx, []models.Appointment{block})
	if err != nil {
		return "", fmt.Errorf("failed to create block: %w", err)
	}
	return ids[0], nil
}

// ReleaseBlock frees a blocked window. Release reuses the cancellation
// status so audit history keeps the block around.
func (se *DefaultSchedulingEngine) ReleaseBlock(ctx context.Context, blockID string) error {
	ap, err := se.loadRelocatable(ctx, blockID)
	if err != nil {
		return err
	}
	if !ap.IsBlock() {
		return NewValidationError("appointment", "not a block")
	}
	return se.Appointments.SetStatus(ctx, blockID, models.StatusCancelled, se.now())
}
