package booking

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "salonify/database/repository/appointment"
	catalogRepo "salonify/database/repository/catalog"
	packageRepo "salonify/database/repository/clientpackage"
	promotionRepo "salonify/database/repository/promotion"
	"salonify/models"
	"salonify/services/finance"
	"salonify/utils"
)

// SchedulingEngine is the salon's scheduling and booking core.
type SchedulingEngine interface {
	GetAvailableSlots(ctx context.Context, q models.AvailabilityQuery) ([]string, error)
	CreateBooking(ctx context.Context, in models.CreateBookingInput) (*models.BookingResult, error)
	Reschedule(ctx context.Context, oldAppointmentID string, in models.CreateBookingInput) (*models.BookingResult, error)
	MoveAppointment(ctx context.Context, id, newDate, newTime, newProfessionalID string) error
	ResizeAppointment(ctx context.Context, id string, newDurationMin int) error
	CreateBlock(ctx context.Context, in models.CreateBlockInput) (string, error)
	ReleaseBlock(ctx context.Context, blockID string) error
	CalculatePrice(ctx context.Context, serviceID, date, clock, clientID string) (*models.PriceQuote, error)
	CanCancel(ctx context.Context, appointmentID string, now time.Time) (models.CancelCheck, error)
	CancelAppointment(ctx context.Context, appointmentID string) error
	ConfirmAppointment(ctx context.Context, appointmentID string) error
	CompleteAppointment(ctx context.Context, appointmentID string) error
	ListDay(ctx context.Context, date, professionalID string) ([]models.Appointment, error)
}

// DefaultSchedulingEngine is the production implementation.
type DefaultSchedulingEngine struct {
	Catalog      catalogRepo.CatalogRepository
	Appointments appointmentRepo.AppointmentRepository
	Promotions   promotionRepo.PromotionRepository
	Packages     packageRepo.PackageRepository
	Dispatcher   finance.Dispatcher
	Locks        utils.DayLocker

	// Policy knobs, normally taken from config.
	GranularityMin     int // candidate start-time step
	DefaultDurationMin int // fallback when an appointment's service cannot be resolved
	CancellationWindow time.Duration
	StrictResize       bool
	Location           *time.Location

	// Now is the engine's clock; tests pin it.
	Now func() time.Time
}

const minResizeMinutes = 15

// granularity returns the candidate step, defaulting to 15 minutes.
func (se *DefaultSchedulingEngine) granularity() int {
	if se.GranularityMin > 0 {
		return se.GranularityMin
	}
	return 15
}

func (se *DefaultSchedulingEngine) defaultDuration() int {
	if se.DefaultDurationMin > 0 {
		return se.DefaultDurationMin
	}
	return 60
}

func (se *DefaultSchedulingEngine) location() *time.Location {
	if se.Location != nil {
		return se.Location
	}
	return time.Local
}

func (se *DefaultSchedulingEngine) now() time.Time {
	if se.Now != nil {
		return se.Now()
	}
	return time.Now()
}

func (se *DefaultSchedulingEngine) locks() utils.DayLocker {
	if se.Locks != nil {
		return se.Locks
	}
	return utils.NoopDayLocker{}
}

// parseDate validates a "YYYY-MM-DD" calendar day in the salon's location.
func (se *DefaultSchedulingEngine) parseDate(date string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, se.location())
	if err != nil {
		return time.Time{}, NewValidationError("date", fmt.Sprintf("invalid date %q, want YYYY-MM-DD", date))
	}
	return day, nil
}

// cartServices resolves every service id in the cart, in cart order.
func (se *DefaultSchedulingEngine) cartServices(ctx context.Context, serviceIDs []string) ([]models.Service, error) {
	services := make([]models.Service, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		svc, err := se.Catalog.GetService(ctx, id)
		if err != nil {
			if err == catalogRepo.ErrServiceNotFound {
				return nil, &NotFoundError{Entity: "service", ID: id}
			}
			return nil, fmt.Errorf("failed to load service %s: %w", id, err)
		}
		services = append(services, *svc)
	}
	return services, nil
}

// serviceIndex loads the full catalog once so existing appointments can be
// measured without a query per record.
func (se *DefaultSchedulingEngine) serviceIndex(ctx context.Context) (map[string]models.Service, error) {
	all, err := se.Catalog.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	idx := make(map[string]models.Service, len(all))
	for _, svc := range all {
		idx[svc.ID] = svc
	}
	return idx, nil
}

// effectiveDuration measures the calendar space an existing appointment
// occupies: the manual override when present, else the service's duration
// plus buffer. Records whose service cannot be resolved fall back to the
// default duration rather than failing the whole computation.
func (se *DefaultSchedulingEngine) effectiveDuration(ap models.Appointment, services map[string]models.Service) int {
	if ap.CustomDuration != nil && *ap.CustomDuration > 0 {
		return *ap.CustomDuration
	}
	if svc, ok := services[ap.ServiceID]; ok {
		return svc.OccupiedMinutes()
	}
	return se.defaultDuration()
}

func (se *DefaultSchedulingEngine) ListDay(ctx context.Context, date, professionalID string) ([]models.Appointment, error) {
	if _, err := se.parseDate(date); err != nil {
		return nil, err
	}
	return se.Appointments.ListForDay(ctx, date, professionalID)
}
