package booking

import (
	"context"
	"fmt"
	"sort"
	"time"

	appointmentRepo "salonify/database/repository/appointment"
	catalogRepo "salonify/database/repository/catalog"
	packageRepo "salonify/database/repository/clientpackage"
	"salonify/models"
	"salonify/services/finance"
)

// In-memory stand-ins for the mongo repositories. They implement only the
// behavior the engine depends on: deterministic ordering, the occupied
// filter, and atomic-looking mutations.

type fakeCatalog struct {
	services      []models.Service
	professionals []models.Professional
	clients       []models.Client
}

func (f *fakeCatalog) GetService(_ context.Context, id string) (*models.Service, error) {
	for _, s := range f.services {
		if s.ID == id {
			svc := s
			return &svc, nil
		}
	}
	return nil, catalogRepo.ErrServiceNotFound
}

func (f *fakeCatalog) ListServices(context.Context) ([]models.Service, error) {
	return append([]models.Service(nil), f.services...), nil
}

func (f *fakeCatalog) GetProfessional(_ context.Context, id string) (*models.Professional, error) {
	for _, p := range f.professionals {
		if p.ID == id {
			pro := p
			return &pro, nil
		}
	}
	return nil, catalogRepo.ErrProfessionalNotFound
}

func (f *fakeCatalog) ListProfessionals(context.Context) ([]models.Professional, error) {
	return append([]models.Professional(nil), f.professionals...), nil
}

func (f *fakeCatalog) GetClient(_ context.Context, id string) (*models.Client, error) {
	for _, c := range f.clients {
		if c.ID == id {
			cl := c
			return &cl, nil
		}
	}
	return nil, catalogRepo.ErrClientNotFound
}

type fakeAppointments struct {
	appts  []models.Appointment
	nextID int

	createErr error
}

func (f *fakeAppointments) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	for i := range f.appts {
		if f.appts[i].ID == id {
			ap := f.appts[i]
			return &ap, nil
		}
	}
	return nil, appointmentRepo.ErrNotFound
}

func (f *fakeAppointments) ListForDay(_ context.Context, date, professionalID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appts {
		if ap.Date != date {
			continue
		}
		if professionalID != "" && ap.ProfessionalID != professionalID {
			continue
		}
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}

func (f *fakeAppointments) ListOccupiedForDay(_ context.Context, date, professionalID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appts {
		if ap.Date == date && ap.ProfessionalID == professionalID && ap.Occupies() {
			out = append(out, ap)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}

func (f *fakeAppointments) CreateMany(_ context.Context, appts []models.Appointment) ([]string, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	ids := make([]string, len(appts))
	for i, ap := range appts {
		if ap.ID == "" {
			f.nextID++
			ap.ID = fmt.Sprintf("appt-%d", f.nextID)
		}
		f.appts = append(f.appts, ap)
		ids[i] = ap.ID
	}
	return ids, nil
}

func (f *fakeAppointments) Relocate(_ context.Context, id, newDate, newTime, newProfessionalID string) error {
	for i := range f.appts {
		if f.appts[i].ID == id {
			f.appts[i].Date = newDate
			f.appts[i].Time = newTime
			f.appts[i].ProfessionalID = newProfessionalID
			return nil
		}
	}
	return appointmentRepo.ErrNotFound
}

func (f *fakeAppointments) SetDuration(_ context.Context, id string, minutes int) error {
	for i := range f.appts {
		if f.appts[i].ID == id {
			d := minutes
			f.appts[i].CustomDuration = &d
			return nil
		}
	}
	return appointmentRepo.ErrNotFound
}

func (f *fakeAppointments) SetStatus(_ context.Context, id string, status models.AppointmentStatus, at time.Time) error {
	for i := range f.appts {
		if f.appts[i].ID == id {
			f.appts[i].Status = status
			switch status {
			case models.StatusCancelled:
				f.appts[i].CancelledAt = &at
			case models.StatusCompleted:
				f.appts[i].CompletedAt = &at
			}
			return nil
		}
	}
	return appointmentRepo.ErrNotFound
}

type fakePromotions struct {
	promos []models.Promotion
}

func (f *fakePromotions) ListActive(context.Context) ([]models.Promotion, error) {
	var out []models.Promotion
	for _, p := range f.promos {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakePackages struct {
	pkgs []models.ClientPackage
}

func (f *fakePackages) GetByID(_ context.Context, id string) (*models.ClientPackage, error) {
	for _, p := range f.pkgs {
		if p.ID == id {
			pkg := p
			return &pkg, nil
		}
	}
	return nil, packageRepo.ErrPackageNotFound
}

func (f *fakePackages) ListRedeemable(_ context.Context, clientID, serviceID string, now time.Time) ([]models.ClientPackage, error) {
	var out []models.ClientPackage
	for _, p := range f.pkgs {
		if p.ClientID == clientID && !p.Expired(now) && p.CreditsFor(serviceID) > 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePackages) ConsumeCredit(_ context.Context, packageID, clientID, serviceID string, now time.Time) error {
	for i := range f.pkgs {
		p := &f.pkgs[i]
		if p.ID != packageID || p.ClientID != clientID {
			continue
		}
		if p.Expired(now) || p.CreditsFor(serviceID) <= 0 {
			return packageRepo.ErrNoCredit
		}
		p.RemainingItems[serviceID]--
		return nil
	}
	return packageRepo.ErrPackageNotFound
}

type fakeDispatcher struct {
	payloads []finance.SettlementPayload
	err      error
}

func (f *fakeDispatcher) DispatchSettlement(_ context.Context, p finance.SettlementPayload) error {
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, p)
	return nil
}

// Shared fixture: a two-person salon on a Monday. Anna performs everything
// and breaks over lunch; Bea only cuts and takes no break.

const testDay = "2026-09-07" // a Monday

func minutes(m int) *int { return &m }

func testServices() []models.Service {
	return []models.Service{
		{ID: "cut", Name: "Haircut", DurationMin: 45, BufferMin: 15, Price: 50, Active: true},
		{ID: "color", Name: "Coloring", DurationMin: 60, BufferMin: 0, Price: 100, Active: true},
		{ID: "mani", Name: "Manicure", DurationMin: 30, BufferMin: 0, Price: 25, Active: true},
	}
}

func testProfessionals() []models.Professional {
	return []models.Professional{
		{
			ID:   "anna",
			Name: "Anna",
			Schedule: models.WorkSchedule{
				WorkDays:   []int{1, 2, 3, 4, 5},
				WorkStart:  "09:00",
				WorkEnd:    "18:00",
				BreakStart: "12:00",
				BreakEnd:   "13:00",
			},
			Specialties:   []string{"cut", "color", "mani"},
			CommissionPct: 40,
			Active:        true,
		},
		{
			ID:   "bea",
			Name: "Bea",
			Schedule: models.WorkSchedule{
				WorkDays:  []int{1, 2, 3, 4, 5, 6},
				WorkStart: "10:00",
				WorkEnd:   "16:00",
			},
			Specialties:   []string{"cut"},
			CommissionPct: 30,
			Active:        true,
		},
	}
}

func testClients() []models.Client {
	september := time.Date(1990, time.September, 12, 0, 0, 0, 0, time.UTC)
	return []models.Client{
		{ID: "carla", Name: "Carla", BirthDate: &september},
		{ID: "dan", Name: "Dan"},
	}
}

// newTestEngine wires the engine onto in-memory fakes with a pinned clock.
func newTestEngine() (*DefaultSchedulingEngine, *fakeAppointments, *fakeDispatcher) {
	appts := &fakeAppointments{}
	dispatcher := &fakeDispatcher{}
	engine := &DefaultSchedulingEngine{
		Catalog: &fakeCatalog{
			services:      testServices(),
			professionals: testProfessionals(),
			clients:       testClients(),
		},
		Appointments: appts,
		Promotions:   &fakePromotions{},
		Packages:     &fakePackages{},
		Dispatcher:   dispatcher,

		GranularityMin:     15,
		DefaultDurationMin: 60,
		CancellationWindow: 12 * time.Hour,
		Location:           time.UTC,
		Now: func() time.Time {
			return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
		},
	}
	return engine, appts, dispatcher
}
