package booking

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimeToMinutes(t *testing.T) {
	cases := []struct {
		clock string
		want  int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"12:30", 750},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := TimeToMinutes(tc.clock)
		require.NoError(t, err, tc.clock)
		require.Equal(t, tc.want, got, tc.clock)
	}
}

func TestTimeToMinutes_Invalid(t *testing.T) {
	for _, clock := range []string{"", "9:00", "09:5", "0900", "24:00", "09:60", "ab:cd", "09:0a", "-1:00"} {
		_, err := TimeToMinutes(clock)
		require.Error(t, err, clock)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, clock)
	}
}

func TestMinutesToTime(t *testing.T) {
	require.Equal(t, "00:00", MinutesToTime(0))
	require.Equal(t, "09:05", MinutesToTime(545))
	require.Equal(t, "23:59", MinutesToTime(1439))
}

func TestClockRoundTrip(t *testing.T) {
	for m := 0; m < 24*60; m += 15 {
		got, err := TimeToMinutes(MinutesToTime(m))
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
}
