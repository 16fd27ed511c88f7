package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"salonify/models"
)

func carlaPackage(expiry time.Time, credits int) models.ClientPackage {
	return models.ClientPackage{
		ID:             "pkg-1",
		ClientID:       "carla",
		Name:           "5 cuts",
		RemainingItems: map[string]int{"cut": credits},
		ExpiresAt:      expiry,
	}
}

func TestCreateBooking_PackageRedemption(t *testing.T) {
	engine, _, dispatcher := newTestEngine()
	expiry := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	pkgs := &fakePackages{pkgs: []models.ClientPackage{carlaPackage(expiry, 3)}}
	engine.Packages = pkgs

	result, err := engine.CreateBooking(context.Background(), models.CreateBookingInput{
		ClientID:       "carla",
		ServiceIDs:     []string{"cut"},
		Date:           testDay,
		Time:           "09:00",
		ProfessionalID: "anna",
		PackageID:      "pkg-1",
	})
	require.NoError(t, err)
	require.Len(t, result.AppointmentIDs, 1)

	// The package id travels with the settlement; the credit itself is
	// consumed there, not at commit time.
	require.Len(t, dispatcher.payloads, 1)
	require.Equal(t, "pkg-1", dispatcher.payloads[0].PackageID)
	require.Equal(t, 50.0, dispatcher.payloads[0].ListPrice)
	require.Equal(t, 3, pkgs.pkgs[0].CreditsFor("cut"))
}

func TestCreateBooking_PackageGuards(t *testing.T) {
	engine, _, _ := newTestEngine()
	ctx := context.Background()
	future := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	past := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	base := models.CreateBookingInput{
		ClientID:       "carla",
		ServiceIDs:     []string{"cut"},
		Date:           testDay,
		Time:           "09:00",
		ProfessionalID: "anna",
		PackageID:      "pkg-1",
	}

	t.Run("expired", func(t *testing.T) {
		engine.Packages = &fakePackages{pkgs: []models.ClientPackage{carlaPackage(past, 3)}}
		_, err := engine.CreateBooking(ctx, base)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("no credit for service", func(t *testing.T) {
		engine.Packages = &fakePackages{pkgs: []models.ClientPackage{carlaPackage(future, 0)}}
		_, err := engine.CreateBooking(ctx, base)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("someone else's package", func(t *testing.T) {
		pkg := carlaPackage(future, 3)
		pkg.ClientID = "dan"
		engine.Packages = &fakePackages{pkgs: []models.ClientPackage{pkg}}
		_, err := engine.CreateBooking(ctx, base)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("unknown package", func(t *testing.T) {
		engine.Packages = &fakePackages{}
		_, err := engine.CreateBooking(ctx, base)
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
		require.Equal(t, "package", nf.Entity)
	})
}
