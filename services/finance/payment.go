package finance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"

	"salonify/models"
)

// PaymentHandler charges one settlement's amount.
type PaymentHandler interface {
	Process(ctx context.Context, req models.PaymentRequest) (*models.PaymentReceipt, error)
}

// StripePaymentHandler charges card payments through Stripe. Cash payments
// only produce a pending receipt for the front desk to fulfil.
type StripePaymentHandler struct {
	logger *zap.Logger
}

func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

func (h *StripePaymentHandler) Process(ctx context.Context, req models.PaymentRequest) (*models.PaymentReceipt, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	switch req.Method {
	case "card":
		return h.processCardPayment(ctx, req)
	case "cash":
		return h.processCashPayment(req)
	default:
		return nil, fmt.Errorf("unsupported payment method: %s", req.Method)
	}
}

func (h *StripePaymentHandler) processCardPayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentReceipt, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx
	params.AddMetadata("clientId", req.ClientID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent failed: %w", err)
	}

	h.logger.Info("card payment intent created",
		zap.String("paymentIntent", pi.ID),
		zap.Float64("amount", req.Amount))

	return &models.PaymentReceipt{
		Ref:       pi.ID,
		Status:    string(pi.Status),
		CreatedAt: time.Now(),
	}, nil
}

func (h *StripePaymentHandler) processCashPayment(req models.PaymentRequest) (*models.PaymentReceipt, error) {
	// Cash stays "pending" until the front desk marks it collected.
	receipt := &models.PaymentReceipt{
		Ref:       "cash_" + uuid.New().String(),
		Status:    "pending",
		CreatedAt: time.Now(),
	}
	h.logger.Info("cash payment recorded",
		zap.String("ref", receipt.Ref),
		zap.Float64("amount", req.Amount))
	return receipt, nil
}

func validateRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.ClientID == "" {
		return errors.New("missing client ID")
	}
	if req.Method != "card" && req.Method != "cash" {
		return errors.New("unsupported method")
	}
	return nil
}
