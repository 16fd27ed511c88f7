package models

// AvailabilityQuery asks for the bookable start times of a service cart on
// one date. ProfessionalID pins the search to a single professional;
// DurationOverrideMin, when > 0, replaces the summed cart duration (used
// after a manual resize).
type AvailabilityQuery struct {
	Date                string   `json:"date" binding:"required"`
	ServiceIDs          []string `json:"service_ids" binding:"required"`
	ProfessionalID      string   `json:"professional_id,omitempty"`
	DurationOverrideMin int      `json:"duration_override_min,omitempty"`
}

// CreateBookingInput is a client's booking request for an ordered cart of
// services scheduled back-to-back on one professional.
type CreateBookingInput struct {
	ClientID        string   `json:"client_id" binding:"required"`
	ServiceIDs      []string `json:"service_ids" binding:"required"`
	Date            string   `json:"date" binding:"required"`
	Time            string   `json:"time" binding:"required"`
	ProfessionalID  string   `json:"professional_id,omitempty"` // empty = any eligible professional
	PackageID       string   `json:"package_id,omitempty"`      // single-service carts only
	PaymentMethodID string   `json:"payment_method_id,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

// BookingResult reports the appointments created by one commit.
type BookingResult struct {
	AppointmentIDs []string `json:"appointment_ids"`
	ProfessionalID string   `json:"professional_id"`
	TotalPrice     float64  `json:"total_price"`
}

// CreateBlockInput reserves a professional's time administratively, with no
// client and no financial effect.
type CreateBlockInput struct {
	ProfessionalID string `json:"professional_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	DurationMin    int    `json:"duration_min" binding:"required"`
	Reason         string `json:"reason,omitempty"`
}

// PriceQuote is the pricing engine's answer. DiscountReason is empty when no
// promotion applied; "no discount" is a normal result, not an error.
type PriceQuote struct {
	FinalPrice     float64 `json:"final_price"`
	ListPrice      float64 `json:"list_price"`
	DiscountReason string  `json:"discount_reason,omitempty"`
}

// CancelCheck is the result of the cancellation-window predicate. The same
// predicate gates rescheduling.
type CancelCheck struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}
