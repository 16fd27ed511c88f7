package models

// PromotionType is a closed set; the pricing engine switches over it
// exhaustively.
type PromotionType string

const (
	PromotionHappyHour PromotionType = "HAPPY_HOUR"
	PromotionBirthday  PromotionType = "BIRTHDAY"
)

// HappyHourRule is the recurring weekly window a HAPPY_HOUR promotion
// applies in. Hours are salon-local, inclusive on both ends.
type HappyHourRule struct {
	DaysOfWeek []int `bson:"days_of_week" json:"days_of_week"` // 0 = Sunday
	StartHour  int   `bson:"start_hour" json:"start_hour"`
	EndHour    int   `bson:"end_hour" json:"end_hour"`
}

// Covers reports whether the rule window contains the given weekday and
// minute-of-day.
func (r HappyHourRule) Covers(weekday int, minuteOfDay int) bool {
	inDay := false
	for _, d := range r.DaysOfWeek {
		if d == weekday {
			inDay = true
			break
		}
	}
	if !inDay {
		return false
	}
	return minuteOfDay >= r.StartHour*60 && minuteOfDay <= r.EndHour*60
}

// Promotion is a read-only pricing input. At most one promotion discounts a
// priced instance; HAPPY_HOUR is checked before BIRTHDAY and they never stack.
type Promotion struct {
	ID          string         `bson:"id" json:"id"`
	Type        PromotionType  `bson:"type" json:"type"`
	Name        string         `bson:"name" json:"name"`
	DiscountPct float64        `bson:"discount_pct" json:"discount_pct"`
	Active      bool           `bson:"active" json:"active"`
	HappyHour   *HappyHourRule `bson:"happy_hour,omitempty" json:"happy_hour,omitempty"` // set only for HAPPY_HOUR
}
