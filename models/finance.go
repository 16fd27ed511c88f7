package models

import "time"

// LedgerEntryKind distinguishes real income from zero-amount package usage
// records, which exist purely for audit.
type LedgerEntryKind string

const (
	LedgerIncome       LedgerEntryKind = "income"
	LedgerPackageUsage LedgerEntryKind = "package_usage"
)

// LedgerEntry is one financial transaction tied to an appointment leg.
type LedgerEntry struct {
	ID            string          `bson:"id" json:"id"`
	AppointmentID string          `bson:"appointment_id" json:"appointment_id"`
	ClientID      string          `bson:"client_id" json:"client_id"`
	Kind          LedgerEntryKind `bson:"kind" json:"kind"`
	Amount        float64         `bson:"amount" json:"amount"`
	Description   string          `bson:"description" json:"description"`
	PaymentMethod string          `bson:"payment_method,omitempty" json:"payment_method,omitempty"`
	PaymentRef    string          `bson:"payment_ref,omitempty" json:"payment_ref,omitempty"` // gateway id when card-paid
	CreatedAt     time.Time       `bson:"created_at" json:"created_at"`
}

// CommissionRecord is the professional's cut for one appointment leg.
type CommissionRecord struct {
	ID             string    `bson:"id" json:"id"`
	AppointmentID  string    `bson:"appointment_id" json:"appointment_id"`
	ProfessionalID string    `bson:"professional_id" json:"professional_id"`
	BaseAmount     float64   `bson:"base_amount" json:"base_amount"` // amount commission was computed from
	Pct            float64   `bson:"pct" json:"pct"`
	Amount         float64   `bson:"amount" json:"amount"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// PaymentRequest is handed to the payment handler when a leg settles.
type PaymentRequest struct {
	ClientID string  `json:"client_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Method   string  `json:"method"` // "card" or "cash"
}

// PaymentReceipt is the payment handler's result.
type PaymentReceipt struct {
	Ref       string    `json:"ref"`
	Status    string    `json:"status"` // "paid" or "pending"
	CreatedAt time.Time `json:"created_at"`
}
