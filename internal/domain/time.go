package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidTimeString = errors.New("invalid time string, expected HH:MM")

// TimeToMinutes converts a "HH:MM" local-clock string into minutes since
// local midnight. 23:59:59 would round-trip to just under 1440; this service
// only carries minute precision ("HH:MM"), so the ceiling is exactly 1439.
func TimeToMinutes(hhmm string) (float64, error) {
	parts := strings.Split(hhmm, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, hhmm)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, hhmm)
	}
	return float64(h*60 + m), nil
}

// MinutesToHHMM truncates (never rounds) arrival minutes to an "HH:MM" clock
// string. Truncation, not rounding, is load-bearing: it is what the
// rerouter's golden ETAs assume.
func MinutesToHHMM(min float64) string {
	total := int(min)
	h := total / 60
	m := total % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}

// WindowOK reports whether arrival falls within [earliest, latest], endpoints
// inclusive.
func WindowOK(arrival, earliest, latest float64) bool {
	return arrival >= earliest && arrival <= latest
}
