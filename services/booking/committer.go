package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	catalogRepo "salonify/database/repository/catalog"
	packageRepo "salonify/database/repository/clientpackage"
	"salonify/models"
	"salonify/services/finance"
	"salonify/utils"
)

// CreateBooking commits a cart of services back-to-back on one professional,
// starting at the chosen time. Appointment creation is all-or-nothing for
// the whole cart; once the appointments are persisted, each leg's financial
// side effects are dispatched fire-and-forget.
func (se *DefaultSchedulingEngine) CreateBooking(ctx context.Context, in models.CreateBookingInput) (*models.BookingResult, error) {
	logger := utils.GetLogger()

	day, err := se.parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	startMin, err := TimeToMinutes(in.Time)
	if err != nil {
		return nil, err
	}
	if len(in.ServiceIDs) == 0 {
		return nil, NewValidationError("service_ids", "cart is empty")
	}
	if in.ClientID == "" {
		return nil, NewValidationError("client_id", "client is required")
	}
	if in.PackageID != "" && len(in.ServiceIDs) != 1 {
		return nil, NewValidationError("package_id", "package redemption requires a single-service cart")
	}

	client, err := se.Catalog.GetClient(ctx, in.ClientID)
	if err != nil {
		if err == catalogRepo.ErrClientNotFound {
			return nil, &NotFoundError{Entity: "client", ID: in.ClientID}
		}
		return nil, fmt.Errorf("failed to load client %s: %w", in.ClientID, err)
	}

	services, err := se.cartServices(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}
	totalDuration := 0
	for _, svc := range services {
		totalDuration += svc.OccupiedMinutes()
	}
	if totalDuration == 0 {
		return nil, NewValidationError("service_ids", "cart has no bookable duration")
	}

	if in.PackageID != "" {
		if err := se.checkPackage(ctx, in.PackageID, in.ClientID, in.ServiceIDs[0]); err != nil {
			return nil, err
		}
	}

	pro, err := se.resolveProfessional(ctx, in, services, day, startMin, totalDuration)
	if err != nil {
		return nil, err
	}

	release, err := se.locks().Acquire(ctx, pro.ID, in.Date)
	if err != nil {
		return nil, err
	}
	defer release()

	// Re-read under the lock so no other writer slipped a booking in between
	// the availability check and this commit.
	serviceIdx, err := se.serviceIndex(ctx)
	if err != nil {
		return nil, err
	}
	occupied, err := se.Appointments.ListOccupiedForDay(ctx, in.Date, pro.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	if conflict := se.findConflict(occupied, serviceIdx, "", startMin, totalDuration); conflict != nil {
		return nil, conflict
	}

	promos, err := se.Promotions.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}

	// Walk the cart with a time cursor: each leg starts where the previous
	// leg's buffer ends, with no extra gap in between.
	now := se.now()
	cursor := startMin
	appts := make([]models.Appointment, 0, len(services))
	quotes := make([]models.PriceQuote, 0, len(services))
	for _, svc := range services {
		appts = append(appts, models.Appointment{
			ClientID:       in.ClientID,
			ProfessionalID: pro.ID,
			ServiceID:      svc.ID,
			Date:           in.Date,
			Time:           MinutesToTime(cursor),
			Status:         models.StatusPending,
			Notes:          in.Notes,
			CreatedAt:      now,
		})
		at := day.Add(time.Duration(cursor) * time.Minute)
		quotes = append(quotes, Quote(svc, at, client, promos))
		cursor += svc.OccupiedMinutes()
	}

	ids, err := se.Appointments.CreateMany(ctx, appts)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointments: %w", err)
	}

	total := 0.0
	for i, svc := range services {
		total += quotes[i].FinalPrice
		payload := finance.SettlementPayload{
			AppointmentID:  ids[i],
			ClientID:       in.ClientID,
			ProfessionalID: pro.ID,
			ServiceID:      svc.ID,
			ServiceName:    svc.Name,
			ListPrice:      svc.Price,
			FinalPrice:     quotes[i].FinalPrice,
			DiscountReason: quotes[i].DiscountReason,
			CommissionPct:  pro.CommissionPct,
			PackageID:      in.PackageID,
			PaymentMethod:  in.PaymentMethodID,
		}
		if se.Dispatcher != nil {
			// Best effort from here on: the appointment exists, bookkeeping
			// is reconciled independently.
			if err := se.Dispatcher.DispatchSettlement(ctx, payload); err != nil {
				logger.Error("settlement dispatch failed",
					zap.String("appointmentId", ids[i]), zap.Error(err))
			}
		}
	}

	logger.Info("booking committed",
		zap.String("clientId", in.ClientID),
		zap.String("professionalId", pro.ID),
		zap.String("date", in.Date),
		zap.String("time", in.Time),
		zap.Int("legs", len(ids)))

	return &models.BookingResult{
		AppointmentIDs: ids,
		ProfessionalID: pro.ID,
		TotalPrice:     total,
	}, nil
}

// Reschedule books the replacement cart first and only then cancels the old
// appointment, so a failed new booking leaves the original intact. The same
// cancellation window that gates cancellation gates rescheduling.
func (se *DefaultSchedulingEngine) Reschedule(ctx context.Context, oldAppointmentID string, in models.CreateBookingInput) (*models.BookingResult, error) {
	check, err := se.CanCancel(ctx, oldAppointmentID, se.now())
	if err != nil {
		return nil, err
	}
	if !check.Allowed {
		return nil, NewValidationError("appointment", check.Reason)
	}

	result, err := se.CreateBooking(ctx, in)
	if err != nil {
		return nil, err
	}

	if err := se.Appointments.SetStatus(ctx, oldAppointmentID, models.StatusCancelled, se.now()); err != nil {
		// The new booking stands; the stale original needs manual cleanup.
		utils.GetLogger().Error("failed to cancel rescheduled appointment",
			zap.String("appointmentId", oldAppointmentID), zap.Error(err))
	}
	return result, nil
}

// checkPackage pre-validates a redemption before any appointment exists; the
// actual credit consumption happens at settlement.
func (se *DefaultSchedulingEngine) checkPackage(ctx context.Context, packageID, clientID, serviceID string) error {
	pkg, err := se.Packages.GetByID(ctx, packageID)
	if err != nil {
		if err == packageRepo.ErrPackageNotFound {
			return &NotFoundError{Entity: "package", ID: packageID}
		}
		return fmt.Errorf("failed to load package %s: %w", packageID, err)
	}
	if pkg.ClientID != clientID {
		return NewValidationError("package_id", "package belongs to a different client")
	}
	if pkg.Expired(se.now()) {
		return NewValidationError("package_id", "package has expired")
	}
	if pkg.CreditsFor(serviceID) <= 0 {
		return NewValidationError("package_id", "package has no remaining credit for this service")
	}
	return nil
}

// resolveProfessional returns the pinned professional, or the first eligible
// professional whose availability contains the chosen start time. Cost is
// O(professionals x day granularity) by design; the roster of a single salon
// keeps it trivial.
func (se *DefaultSchedulingEngine) resolveProfessional(
	ctx context.Context,
	in models.CreateBookingInput,
	services []models.Service,
	day time.Time,
	startMin, totalDuration int,
) (*models.Professional, error) {
	if in.ProfessionalID != "" {
		pro, err := se.Catalog.GetProfessional(ctx, in.ProfessionalID)
		if err != nil {
			if err == catalogRepo.ErrProfessionalNotFound {
				return nil, &NotFoundError{Entity: "professional", ID: in.ProfessionalID}
			}
			return nil, fmt.Errorf("failed to load professional %s: %w", in.ProfessionalID, err)
		}
		if !pro.CanPerform(in.ServiceIDs) {
			return nil, NewValidationError("professional_id", "professional does not perform every requested service")
		}
		return pro, nil
	}

	candidates, err := se.eligibleProfessionals(ctx, in.ServiceIDs, "")
	if err != nil {
		return nil, err
	}
	weekday := int(day.Weekday())
	serviceIdx, err := se.serviceIndex(ctx)
	if err != nil {
		return nil, err
	}
	for _, pro := range candidates {
		if !pro.Schedule.WorksOn(weekday) {
			continue
		}
		occupied, err := se.Appointments.ListOccupiedForDay(ctx, in.Date, pro.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list appointments for %s: %w", pro.ID, err)
		}
		for _, start := range se.slotStartsFor(pro, totalDuration, occupied, serviceIdx) {
			if start == startMin {
				p := pro
				return &p, nil
			}
		}
	}
	return nil, ErrNoProfessionalForSlot
}
