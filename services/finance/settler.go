package finance

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	packageRepo "salonify/database/repository/clientpackage"
	financeRepo "salonify/database/repository/finance"
	"salonify/models"
	"salonify/utils"
)

// Settler executes one leg's financial side effects. Package-funded legs
// consume a credit and record a zero-amount usage entry; paid legs record
// income at the effective price and accrue loyalty points. Commission is
// always recorded for the professional: on the effective price for paid
// legs, on the full list price for package-funded legs.
type Settler struct {
	Finance  financeRepo.FinanceRepository
	Packages packageRepo.PackageRepository
	Payments PaymentHandler
	Currency string
}

func (s *Settler) Settle(ctx context.Context, p SettlementPayload) error {
	logger := utils.GetLogger()

	if p.PackageID != "" {
		return s.settlePackageLeg(ctx, p, logger)
	}
	return s.settlePaidLeg(ctx, p, logger)
}

func (s *Settler) settlePackageLeg(ctx context.Context, p SettlementPayload, logger *zap.Logger) error {
	if err := s.Packages.ConsumeCredit(ctx, p.PackageID, p.ClientID, p.ServiceID, time.Now()); err != nil {
		return fmt.Errorf("package credit consumption failed: %w", err)
	}

	entry := models.LedgerEntry{
		AppointmentID: p.AppointmentID,
		ClientID:      p.ClientID,
		Kind:          models.LedgerPackageUsage,
		Amount:        0,
		Description:   fmt.Sprintf("package usage: %s", p.ServiceName),
	}
	if err := s.Finance.InsertLedgerEntry(ctx, entry); err != nil {
		logger.Error("package usage ledger entry failed",
			zap.String("appointmentId", p.AppointmentID), zap.Error(err))
	}

	// Commission comes out of the package's original sale, so it is based on
	// the full list price, not the zero amount charged here.
	s.recordCommission(ctx, p, p.ListPrice, logger)
	return nil
}

func (s *Settler) settlePaidLeg(ctx context.Context, p SettlementPayload, logger *zap.Logger) error {
	entry := models.LedgerEntry{
		AppointmentID: p.AppointmentID,
		ClientID:      p.ClientID,
		Kind:          models.LedgerIncome,
		Amount:        p.FinalPrice,
		Description:   serviceDescription(p),
		PaymentMethod: p.PaymentMethod,
	}

	if p.PaymentMethod != "" && s.Payments != nil {
		receipt, err := s.Payments.Process(ctx, models.PaymentRequest{
			ClientID: p.ClientID,
			Amount:   p.FinalPrice,
			Currency: s.Currency,
			Method:   p.PaymentMethod,
		})
		if err != nil {
			// Payment problems never undo the appointment; the ledger entry
			// still lands and is reconciled against the gateway later.
			logger.Error("payment processing failed",
				zap.String("appointmentId", p.AppointmentID), zap.Error(err))
		} else {
			entry.PaymentRef = receipt.Ref
		}
	}

	if err := s.Finance.InsertLedgerEntry(ctx, entry); err != nil {
		return fmt.Errorf("income ledger entry failed: %w", err)
	}

	points := int(math.Floor(p.FinalPrice / 10))
	if points > 0 {
		if err := s.Finance.AddLoyaltyPoints(ctx, p.ClientID, points); err != nil {
			logger.Error("loyalty accrual failed",
				zap.String("clientId", p.ClientID), zap.Error(err))
		}
	}

	s.recordCommission(ctx, p, p.FinalPrice, logger)
	return nil
}

func (s *Settler) recordCommission(ctx context.Context, p SettlementPayload, base float64, logger *zap.Logger) {
	rec := models.CommissionRecord{
		AppointmentID:  p.AppointmentID,
		ProfessionalID: p.ProfessionalID,
		BaseAmount:     base,
		Pct:            p.CommissionPct,
		Amount:         base * p.CommissionPct / 100,
	}
	if err := s.Finance.InsertCommission(ctx, rec); err != nil {
		logger.Error("commission record failed",
			zap.String("appointmentId", p.AppointmentID),
			zap.String("professionalId", p.ProfessionalID),
			zap.Error(err))
	}
}

func serviceDescription(p SettlementPayload) string {
	if p.DiscountReason != "" {
		return fmt.Sprintf("%s [%s]", p.ServiceName, p.DiscountReason)
	}
	return p.ServiceName
}
