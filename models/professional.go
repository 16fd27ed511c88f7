package models

// WorkSchedule describes a professional's recurring weekly availability.
// Times are salon-local wall-clock values in "HH:MM" form.
type WorkSchedule struct {
	WorkDays   []int  `bson:"work_days" json:"work_days"` // weekday integers, 0 = Sunday
	WorkStart  string `bson:"work_start" json:"work_start"`
	WorkEnd    string `bson:"work_end" json:"work_end"`
	BreakStart string `bson:"break_start,omitempty" json:"break_start,omitempty"`
	BreakEnd   string `bson:"break_end,omitempty" json:"break_end,omitempty"`
}

// HasBreak reports whether the schedule carries a midday break window.
func (ws WorkSchedule) HasBreak() bool {
	return ws.BreakStart != "" && ws.BreakEnd != ""
}

// WorksOn reports whether the given weekday (0 = Sunday) is a working day.
func (ws WorkSchedule) WorksOn(weekday int) bool {
	for _, d := range ws.WorkDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// Professional is a member of the salon team who performs services.
type Professional struct {
	ID            string       `bson:"id" json:"id"`
	Name          string       `bson:"name" json:"name"`
	Schedule      WorkSchedule `bson:"schedule" json:"schedule"`
	Specialties   []string     `bson:"specialties" json:"specialties"` // service ids they may perform
	CommissionPct float64      `bson:"commission_pct" json:"commission_pct"`
	Active        bool         `bson:"active" json:"active"`
}

// CanPerform reports whether every service in the cart is among the
// professional's specialties.
func (p Professional) CanPerform(serviceIDs []string) bool {
	for _, id := range serviceIDs {
		found := false
		for _, sp := range p.Specialties {
			if sp == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
