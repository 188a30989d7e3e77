package session

import (
	"strconv"
	"strings"
	"time"
)

// ParseCount parses a typed count or minimum price. The input must be a
// non-negative integer; zero is bumped to one.
func ParseCount(text string) (int, bool) {
	n, ok := parseDigits(text)
	if !ok {
		return 0, false
	}
	if n == 0 {
		n = 1
	}
	return n, true
}

// ParseMin parses a typed minimum distance. Zero is allowed.
func ParseMin(text string) (int, bool) {
	return parseDigits(text)
}

// ParseMax parses a maximum paired with an already collected minimum. The
// value must be a non-negative integer not smaller than min.
func ParseMax(text string, min int) (int, bool) {
	n, ok := parseDigits(text)
	if !ok || n < min {
		return 0, false
	}
	return n, true
}

func parseDigits(text string) (int, bool) {
	t := strings.TrimSpace(text)
	if t == "" || strings.HasPrefix(t, "-") || strings.HasPrefix(t, "+") {
		return 0, false
	}
	n, err := strconv.Atoi(t)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ValidCheckIn reports whether d is today or later. Both arguments are
// date-only values at midnight.
func ValidCheckIn(d, today time.Time) bool {
	return !d.Before(today)
}

// ValidCheckOut reports whether checkOut is strictly after checkIn.
func ValidCheckOut(checkOut, checkIn time.Time) bool {
	return checkOut.After(checkIn)
}
