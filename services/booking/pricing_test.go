package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"salonify/models"
)

func happyHourPromo(pct float64) models.Promotion {
	return models.Promotion{
		ID:          "hh",
		Type:        models.PromotionHappyHour,
		Name:        "evening happy hour",
		DiscountPct: pct,
		Active:      true,
		HappyHour: &models.HappyHourRule{
			DaysOfWeek: []int{1}, // Mondays
			StartHour:  18,
			EndHour:    20,
		},
	}
}

func birthdayPromo(pct float64) models.Promotion {
	return models.Promotion{
		ID:          "bd",
		Type:        models.PromotionBirthday,
		Name:        "birthday month",
		DiscountPct: pct,
		Active:      true,
	}
}

func TestQuote_FullPrice(t *testing.T) {
	svc := models.Service{ID: "cut", Name: "Haircut", Price: 50}
	at := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)

	quote := Quote(svc, at, nil, nil)
	require.Equal(t, 50.0, quote.FinalPrice)
	require.Equal(t, 50.0, quote.ListPrice)
	require.Empty(t, quote.DiscountReason)
}

func TestQuote_HappyHour(t *testing.T) {
	svc := models.Service{ID: "cut", Price: 50}
	promos := []models.Promotion{happyHourPromo(20)}

	monday := func(hour, min int) time.Time {
		return time.Date(2026, 9, 7, hour, min, 0, 0, time.UTC)
	}

	quote := Quote(svc, monday(18, 30), nil, promos)
	require.Equal(t, 40.0, quote.FinalPrice)
	require.Equal(t, 50.0, quote.ListPrice)
	require.Equal(t, "evening happy hour (20% off)", quote.DiscountReason)

	// The window is inclusive on both ends.
	require.Equal(t, 40.0, Quote(svc, monday(18, 0), nil, promos).FinalPrice)
	require.Equal(t, 40.0, Quote(svc, monday(20, 0), nil, promos).FinalPrice)
	require.Equal(t, 50.0, Quote(svc, monday(17, 45), nil, promos).FinalPrice)
	require.Equal(t, 50.0, Quote(svc, monday(20, 15), nil, promos).FinalPrice)

	// Tuesday is not in the rule's day set.
	tuesday := time.Date(2026, 9, 8, 18, 30, 0, 0, time.UTC)
	require.Equal(t, 50.0, Quote(svc, tuesday, nil, promos).FinalPrice)
}

func TestQuote_Birthday(t *testing.T) {
	svc := models.Service{ID: "cut", Price: 50}
	promos := []models.Promotion{birthdayPromo(15)}
	september := time.Date(1990, time.September, 12, 0, 0, 0, 0, time.UTC)
	client := &models.Client{ID: "carla", BirthDate: &september}
	at := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)

	quote := Quote(svc, at, client, promos)
	require.Equal(t, 42.5, quote.FinalPrice)
	require.Equal(t, "birthday month (15% off)", quote.DiscountReason)

	// Wrong month: full price.
	october := time.Date(2026, 10, 7, 10, 0, 0, 0, time.UTC)
	require.Equal(t, 50.0, Quote(svc, october, client, promos).FinalPrice)

	// No client on record: birthday eligibility is not checked.
	require.Equal(t, 50.0, Quote(svc, at, nil, promos).FinalPrice)

	// No birth date either.
	require.Equal(t, 50.0, Quote(svc, at, &models.Client{ID: "dan"}, promos).FinalPrice)
}

func TestQuote_HappyHourBeatsBirthday(t *testing.T) {
	svc := models.Service{ID: "cut", Price: 100}
	promos := []models.Promotion{birthdayPromo(15), happyHourPromo(20)}
	september := time.Date(1990, time.September, 12, 0, 0, 0, 0, time.UTC)
	client := &models.Client{ID: "carla", BirthDate: &september}

	// Both promotions match; only the happy hour applies, never both.
	at := time.Date(2026, 9, 7, 19, 0, 0, 0, time.UTC)
	quote := Quote(svc, at, client, promos)
	require.Equal(t, 80.0, quote.FinalPrice)
	require.Equal(t, "evening happy hour (20% off)", quote.DiscountReason)

	// Outside the happy hour window the birthday discount takes over.
	earlier := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	quote = Quote(svc, earlier, client, promos)
	require.Equal(t, 85.0, quote.FinalPrice)
	require.Equal(t, "birthday month (15% off)", quote.DiscountReason)
}

func TestQuote_InactivePromotionIgnored(t *testing.T) {
	svc := models.Service{ID: "cut", Price: 50}
	promo := happyHourPromo(20)
	promo.Active = false

	at := time.Date(2026, 9, 7, 19, 0, 0, 0, time.UTC)
	require.Equal(t, 50.0, Quote(svc, at, nil, []models.Promotion{promo}).FinalPrice)
}

func TestCalculatePrice(t *testing.T) {
	engine, _, _ := newTestEngine()
	engine.Promotions = &fakePromotions{promos: []models.Promotion{birthdayPromo(15)}}

	// Carla is born in September.
	quote, err := engine.CalculatePrice(context.Background(), "cut", testDay, "10:00", "carla")
	require.NoError(t, err)
	require.Equal(t, 42.5, quote.FinalPrice)
	require.Equal(t, 50.0, quote.ListPrice)

	// Dan has no birth date on record.
	quote, err = engine.CalculatePrice(context.Background(), "cut", testDay, "10:00", "dan")
	require.NoError(t, err)
	require.Equal(t, 50.0, quote.FinalPrice)

	// Anonymous quote.
	quote, err = engine.CalculatePrice(context.Background(), "cut", testDay, "10:00", "")
	require.NoError(t, err)
	require.Equal(t, 50.0, quote.FinalPrice)

	_, err = engine.CalculatePrice(context.Background(), "nope", testDay, "10:00", "")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "service", nf.Entity)
}
