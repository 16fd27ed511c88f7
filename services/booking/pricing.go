package booking

import (
	"context"
	"fmt"
	"time"

	catalogRepo "salonify/database/repository/catalog"
	"salonify/models"
)

// Quote prices one service instance slated for the given instant. At most one
// discount applies: the first matching active HAPPY_HOUR wins, then an active
// BIRTHDAY promotion when the client was born in the slated month. The two
// never stack. A quote with no discount is the normal full-price result.
func Quote(svc models.Service, at time.Time, client *models.Client, promos []models.Promotion) models.PriceQuote {
	quote := models.PriceQuote{
		FinalPrice: svc.Price,
		ListPrice:  svc.Price,
	}

	weekday := int(at.Weekday())
	minuteOfDay := at.Hour()*60 + at.Minute()

	for _, promo := range promos {
		if !promo.Active {
			continue
		}
		switch promo.Type {
		case models.PromotionHappyHour:
			if promo.HappyHour == nil {
				continue
			}
			if promo.HappyHour.Covers(weekday, minuteOfDay) {
				quote.FinalPrice = svc.Price * (1 - promo.DiscountPct/100)
				quote.DiscountReason = discountLabel(promo)
				return quote
			}
		case models.PromotionBirthday:
			// Evaluated in the second pass below so a later happy hour in
			// the list still takes precedence.
		}
	}

	if client == nil {
		return quote
	}
	for _, promo := range promos {
		if !promo.Active || promo.Type != models.PromotionBirthday {
			continue
		}
		if client.BornIn(at.Month()) {
			quote.FinalPrice = svc.Price * (1 - promo.DiscountPct/100)
			quote.DiscountReason = discountLabel(promo)
			return quote
		}
	}
	return quote
}

func discountLabel(promo models.Promotion) string {
	name := promo.Name
	if name == "" {
		switch promo.Type {
		case models.PromotionHappyHour:
			name = "happy hour"
		case models.PromotionBirthday:
			name = "birthday month"
		}
	}
	return fmt.Sprintf("%s (%.0f%% off)", name, promo.DiscountPct)
}

// CalculatePrice resolves the catalog and promotion state, then quotes the
// service for the given date and clock time. clientID may be empty; then
// birthday eligibility is simply not checked.
func (se *DefaultSchedulingEngine) CalculatePrice(ctx context.Context, serviceID, date, clock, clientID string) (*models.PriceQuote, error) {
	svc, err := se.Catalog.GetService(ctx, serviceID)
	if err != nil {
		if err == catalogRepo.ErrServiceNotFound {
			return nil, &NotFoundError{Entity: "service", ID: serviceID}
		}
		return nil, fmt.Errorf("failed to load service %s: %w", serviceID, err)
	}
	day, err := se.parseDate(date)
	if err != nil {
		return nil, err
	}
	startMin, err := TimeToMinutes(clock)
	if err != nil {
		return nil, err
	}
	at := day.Add(time.Duration(startMin) * time.Minute)

	promos, err := se.Promotions.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}

	var client *models.Client
	if clientID != "" {
		client, err = se.Catalog.GetClient(ctx, clientID)
		if err != nil {
			if err == catalogRepo.ErrClientNotFound {
				return nil, &NotFoundError{Entity: "client", ID: clientID}
			}
			return nil, fmt.Errorf("failed to load client %s: %w", clientID, err)
		}
	}

	quote := Quote(*svc, at, client, promos)
	return &quote, nil
}
