package booking

import (
	"context"
	"fmt"
	"sort"

	catalogRepo "salonify/database/repository/catalog"
	"salonify/models"
)

// GetAvailableSlots computes every start time at which the requested cart
// could begin on the given date. When no professional is pinned the result is
// the union across eligible professionals: "any available professional can
// serve you at this time". An empty result is a normal answer, not an error.
func (se *DefaultSchedulingEngine) GetAvailableSlots(ctx context.Context, q models.AvailabilityQuery) ([]string, error) {
	day, err := se.parseDate(q.Date)
	if err != nil {
		return nil, err
	}
	if len(q.ServiceIDs) == 0 {
		return []string{}, nil
	}

	services, err := se.cartServices(ctx, q.ServiceIDs)
	if err != nil {
		return nil, err
	}

	totalDuration := q.DurationOverrideMin
	if totalDuration <= 0 {
		totalDuration = 0
		for _, svc := range services {
			totalDuration += svc.OccupiedMinutes()
		}
	}
	if totalDuration == 0 {
		return []string{}, nil
	}

	professionals, err := se.eligibleProfessionals(ctx, q.ServiceIDs, q.ProfessionalID)
	if err != nil {
		return nil, err
	}

	weekday := int(day.Weekday())
	serviceIdx, err := se.serviceIndex(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	var starts []int
	for _, pro := range professionals {
		if !pro.Schedule.WorksOn(weekday) {
			continue
		}
		occupied, err := se.Appointments.ListOccupiedForDay(ctx, q.Date, pro.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list appointments for %s: %w", pro.ID, err)
		}
		for _, start := range se.slotStartsFor(pro, totalDuration, occupied, serviceIdx) {
			if !seen[start] {
				seen[start] = true
				starts = append(starts, start)
			}
		}
	}

	sort.Ints(starts)
	slots := make([]string, len(starts))
	for i, start := range starts {
		slots[i] = MinutesToTime(start)
	}
	return slots, nil
}

// eligibleProfessionals narrows the roster to those whose specialties cover
// the whole cart, optionally pinned to a single professional.
func (se *DefaultSchedulingEngine) eligibleProfessionals(ctx context.Context, serviceIDs []string, pinnedID string) ([]models.Professional, error) {
	if pinnedID != "" {
		pro, err := se.Catalog.GetProfessional(ctx, pinnedID)
		if err != nil {
			if err == catalogRepo.ErrProfessionalNotFound {
				return nil, &NotFoundError{Entity: "professional", ID: pinnedID}
			}
			return nil, fmt.Errorf("failed to load professional %s: %w", pinnedID, err)
		}
		if !pro.CanPerform(serviceIDs) {
			return []models.Professional{}, nil
		}
		return []models.Professional{*pro}, nil
	}

	all, err := se.Catalog.ListProfessionals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list professionals: %w", err)
	}
	eligible := make([]models.Professional, 0, len(all))
	for _, pro := range all {
		if pro.CanPerform(serviceIDs) {
			eligible = append(eligible, pro)
		}
	}
	return eligible, nil
}

// slotStartsFor enumerates the candidate start times one professional can
// take, at the engine's granularity, from work start up to workEnd - duration
// inclusive. Candidates intruding on the break window or overlapping any
// occupied appointment are rejected.
func (se *DefaultSchedulingEngine) slotStartsFor(
	pro models.Professional,
	totalDuration int,
	occupied []models.Appointment,
	services map[string]models.Service,
) []int {
	workStart, err := TimeToMinutes(pro.Schedule.WorkStart)
	if err != nil {
		return nil
	}
	workEnd, err := TimeToMinutes(pro.Schedule.WorkEnd)
	if err != nil {
		return nil
	}

	breakStart, breakEnd := -1, -1
	if pro.Schedule.HasBreak() {
		if bs, err := TimeToMinutes(pro.Schedule.BreakStart); err == nil {
			breakStart = bs
		}
		if be, err := TimeToMinutes(pro.Schedule.BreakEnd); err == nil {
			breakEnd = be
		}
	}

	var starts []int
	for cur := workStart; cur+totalDuration <= workEnd; cur += se.granularity() {
		end := cur + totalDuration
		if breakStart >= 0 && breakEnd >= 0 && Overlaps(cur, end, breakStart, breakEnd) {
			continue
		}
		if se.findConflict(occupied, services, "", cur, totalDuration) != nil {
			continue
		}
		starts = append(starts, cur)
	}
	return starts
}
