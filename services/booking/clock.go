package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock arithmetic over salon-local wall-clock strings. Everything else in
// the engine works in integer minutes since midnight; these two functions are
// the only place "HH:MM" is parsed or formatted, and they round-trip exactly
// on the minute granularity.

// TimeToMinutes converts a 24-hour "HH:MM" clock string to minutes since
// midnight.
func TimeToMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, NewValidationError("time", fmt.Sprintf("invalid clock time %q, want HH:MM", clock))
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, NewValidationError("time", fmt.Sprintf("invalid clock time %q, want HH:MM", clock))
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, NewValidationError("time", fmt.Sprintf("invalid clock time %q, want HH:MM", clock))
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, NewValidationError("time", fmt.Sprintf("clock time %q out of range", clock))
	}
	return hh*60 + mm, nil
}

// MinutesToTime converts minutes since midnight back to a zero-padded
// "HH:MM" clock string.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
