package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the ISO-8601 calendar date format used everywhere entries
// are serialized.
const DateLayout = "2006-01-02"

// NormalizeDate drops the clock and zone, returning midnight UTC of the
// same calendar day as seen in t's own location.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return NormalizeDate(a).Equal(NormalizeDate(b))
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a strict YYYY-MM-DD date. Impossible dates such as
// 2024-02-30 are rejected.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// ParseRating parses a rating typed by the user.
func ParseRating(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRating, s)
	}
	if v < MinRating || v > MaxRating {
		return 0, fmt.Errorf("%w (got %d)", ErrInvalidRating, v)
	}
	return v, nil
}

// ParseCompleted accepts true/false, 1/0 and yes/no in any case.
func ParseCompleted(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y":
		return true, nil
	case "false", "0", "no", "n", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid completed value %q", s)
}

// CheckBackfill rejects dates other than today unless backfilling is
// explicitly allowed.
func CheckBackfill(date, today time.Time, allow bool) error {
	if allow || SameDay(date, today) {
		return nil
	}
	return fmt.Errorf("%w (date %s, today %s)", ErrBackdateLocked, FormatDate(date), FormatDate(today))
}
