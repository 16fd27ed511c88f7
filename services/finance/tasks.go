package finance

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeBookingSettlement = "finance:settle"

// SettlementPayload carries everything one appointment leg needs to settle:
// ledger entry, commission, loyalty points, and optionally a package credit
// redemption instead of payment.
type SettlementPayload struct {
	AppointmentID  string  `json:"appointmentId"`
	ClientID       string  `json:"clientId"`
	ProfessionalID string  `json:"professionalId"`
	ServiceID      string  `json:"serviceId"`
	ServiceName    string  `json:"serviceName"`
	ListPrice      float64 `json:"listPrice"`  // undiscounted catalog price
	FinalPrice     float64 `json:"finalPrice"` // after promotions
	DiscountReason string  `json:"discountReason,omitempty"`
	CommissionPct  float64 `json:"commissionPct"`
	PackageID      string  `json:"packageId,omitempty"` // set = package-funded leg
	PaymentMethod  string  `json:"paymentMethod,omitempty"`
}

// NewSettlementTask builds the asynq task for one leg's settlement.
func NewSettlementTask(p SettlementPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingSettlement, b)
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.Queue("finance")}

	return task, opts, nil
}
