package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"salonify/models"
)

func TestCreateBooking_SingleService(t *testing.T) {
	engine, appts, dispatcher := newTestEngine()

	result, err := engine.CreateBooking(context.Background(), models.CreateBookingInput{
		ClientID:       "carla",
		ServiceIDs:     []string{"cut"},
		Date:           testDay,
		Time:           "09:00",
		ProfessionalID: "anna",
	})
	require.NoError(t, err)
	require.Len(t, result.AppointmentIDs, 1)
	require.Equal(t, "anna", result.ProfessionalID)
	require.Equal(t, 50.0, result.TotalPrice)

	require.Len(t, appts.appts, 1)
	ap := appts.appts[0]
	require.Equal(t, models.StatusPending, ap.Status)
	require.Equal(t, "09:00", ap.Time)
	require.Equal(t, testDay, ap.Date)
	require.Equal(t, "carla", ap.ClientID)

	require.Len(t, dispatcher.payloads, 1)
	p := dispatcher.payloads[0]
	require.Equal(t, result.AppointmentIDs[0], p.AppointmentID)
	require.Equal(t, 50.0, p.ListPrice)
	require.Equal(t, 50.0, p.FinalPrice)
	require.Equal(t, 40.0, p.CommissionPct)
}

func TestCreateBooking_MultiLegCursor(t *testing.T) {
	engine, appts, _ := newTestEngine()

	// cut occupies 60 minutes (45 + 15 buffer); color starts right after.
	result, err := engine.CreateBooking(context.Background(), models.CreateBookingInput{
		ClientID:       "carla",
		ServiceIDs:     []string{"cut", "color"},
		Date:           testDay,
		Time:           "09:00",
		ProfessionalID: "anna",
	})
	require.NoError(t, err)
	require.Len(t, result.AppointmentIDs, 2)
	require.Equal(t, 150.0, result.TotalPrice)

	require.Len(t, appts.appts, 2)
	require.Equal(t, "09:00", appts.appts[0].Time)
	require.Equal(t, "cut", appts.appts[0].ServiceID)
	require.Equal(t, "10:00", appts.appts[1].Time)
	require.Equal(t, "color", appts.appts[1].ServiceID)
}

func TestCreateBooking_PerLegPromotion(t *testing.T) {
	engine, _, dispatcher := newTestEngine()
	engine.Promotions = &fakePromotions{promos: []models.Promotion{{
		ID: "hh", Type: models.PromotionHappyHour, Name: "morning special",
		DiscountPct: 20, Active: true,
		HappyHour: &models.HappyHourRule{DaysOfWeek: []int{1}, StartHour: 10, EndHour: 11},
	}}}

	// Leg one starts 09:15, before the window; leg two lands 10:15, inside.
	result, err := engine.CreateBooking(context.Background(), models.CreateBookingInput{
		ClientID:       "dan",
		ServiceIDs:     []string{"cut", "color"},
		Date:           testDay,
		Time:           "09:15",
		ProfessionalID: "anna",
	})
	require.NoError(t, err)
	require.Equal(t, 130.0, result.TotalPrice)

	require.Len(t, dispatcher.payloads, 2)
	require.Equal(t, 50.0, dispatcher.payloads[0].FinalPrice)
	require.Empty(t, dispatcher.payloads[0].DiscountReason)
	require.Equal(t, 80.0, dispatcher.payloads[1].FinalPrice)
	require.Equal(t, "morning special (20% off)", dispatcher.payloads[1].DiscountReason)
}

func TestCreateBooking_Conflict(t *testing.T) {
	engine, appts, dispatcher := newTestEngine()
	appts.appts = []models.Appointment{{
		ID: "existing", ProfessionalID: "anna", ServiceID: "cut",
		Date: testDay, Time: "09:30", Status: models.StatusConfirmed,
	}}

	_, err := engine.CreateBooking(context.Background(), models.CreateBookingInput{
		ClientID:       "carla",
		ServiceIDs:     []string{"cut"},
		Date:           testDay,
		Time:           "09:00",
		ProfessionalID: "anna",
	})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "existing", conflict.ExistingID)

	// All or nothing: no leg was created, nothing dispatched.
	require.Len(t, appts.appts, 1)
	require.Empty(t, dispatcher.payloads)
}

func TestCreateBooking_StorageFailureLeavesNothing(t *testing.T) {
	engine, appts, dispatcher := newTestEngine()
	appts.createErr = errors.New("insert aborted")

	_, err := engine.CreateBooking(context.Background(), models.CreateBookingInput{
		ClientID:       "carla",
		ServiceIDs:     []string{"cut", "color"},
		Date:           testDay,
		Time:           "09:00",
		ProfessionalID: "anna",
	})
	require.Error(t, err)
	require.Empty(t, appts.appts)
	require.Empty(t, dispatcher.payloads)
}

func TestCreateBooking_NoDoubleBooking(t *testing.T) {
	engine, appts, _ := newTestEngine()
	input := models.CreateBookingInput{
		ClientID:       "carla",
		ServiceIDs:     []string{"cut"},
		Date:           testDay,
		Time:           "09:00",
		ProfessionalID: "anna",
	}

	_, err := engine.CreateBooking(context.Background(), input)
	require.NoError(t, err)

	_, err = engine.CreateBooking(context.Background(), input)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Len(t, appts.appts, 1)
}

func TestCreateBooking_AnyProfessional(t *testing.T) {
	engine, appts, _ := newTestEngine()

	// At noon Anna is on break; Bea takes the cut.
	result, err := engine.CreateBooking(context.Background(), models.CreateBookingInput{
		ClientID:   "carla",
		ServiceIDs: []string{"cut"},
		Date:       testDay,
		Time:       "12:00",
	})
	require.NoError(t, err)
	require.Equal(t, "bea", result.ProfessionalID)
	require.Equal(t, "bea", appts.appts[0].ProfessionalID)
}

func TestCreateBooking_NoProfessionalForSlot(t *testing.T) {
	engine, appts, _ := newTestEngine()

	// Only Anna colors, and 12:30 sits inside her break.
	_, err := engine.CreateBooking(context.Background(), models.CreateBookingInput{
		ClientID:   "carla",
		ServiceIDs: []string{"color"},
		Date:       testDay,
		Time:       "12:30",
	})
	require.ErrorIs(t, err, ErrNoProfessionalForSlot)
	require.Empty(t, appts.appts)
}

func TestCreateBooking_PinnedSpecialtyMismatch(t *testing.T) {
	engine, _, _ := newTestEngine()

	_, err := engine.CreateBooking(context.Background(), models.CreateBookingInput{
		ClientID:       "carla",
		ServiceIDs:     []string{"color"},
		Date:           testDay,
		Time:           "10:00",
		ProfessionalID: "bea",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "professional_id", verr.Field)
}

func TestCreateBooking_InputValidation(t *testing.T) {
	engine, _, _ := newTestEngine()
	ctx := context.Background()

	cases := []struct {
		name  string
		input models.CreateBookingInput
	}{
		{"empty cart", models.CreateBookingInput{
			ClientID: "carla", Date: testDay, Time: "09:00"}},
		{"missing client", models.CreateBookingInput{
			ServiceIDs: []string{"cut"}, Date: testDay, Time: "09:00"}},
		{"package with multi-service cart", models.CreateBookingInput{
			ClientID: "carla", ServiceIDs: []string{"cut", "color"},
			Date: testDay, Time: "09:00", PackageID: "pkg-1"}},
		{"bad time", models.CreateBookingInput{
			ClientID: "carla", ServiceIDs: []string{"cut"}, Date: testDay, Time: "9am"}},
	}
	for _, tc := range cases {
		_, err := engine.CreateBooking(ctx, tc.input)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, tc.name)
	}
}

func TestCreateBooking_UnknownClient(t *testing.T) {
	engine, _, _ := newTestEngine()

	_, err := engine.CreateBooking(context.Background(), models.CreateBookingInput{
		ClientID:   "ghost",
		ServiceIDs: []string{"cut"},
		Date:       testDay,
		Time:       "09:00",
	})
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "client", nf.Entity)
}
