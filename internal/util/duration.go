package util

import (
	"strconv"
	"strings"
)

// splitClock parses a wall-clock duration string of the form "H:M:S".
// Any deviation (wrong part count, non-integer part, empty string) reports
// failure; callers fall back to zero so a malformed cell never aborts a pass.
func splitClock(s string) (h, m, sec int, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, false
	}
	m, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, false
	}
	sec, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, false
	}
	return h, m, sec, true
}

// ToMinutes converts an "H:M:S" duration string to minutes.
// Returns 0 for anything it cannot parse.
func ToMinutes(s string) float64 {
	h, m, sec, ok := splitClock(s)
	if !ok {
		return 0
	}
	return float64(h)*60 + float64(m) + float64(sec)/60
}

// ToSeconds converts an "H:M:S" duration string to seconds.
// Returns 0 for anything it cannot parse.
func ToSeconds(s string) float64 {
	h, m, sec, ok := splitClock(s)
	if !ok {
		return 0
	}
	return float64(h)*3600 + float64(m)*60 + float64(sec)
}

// ToHours converts an "H:M:S" duration string to hours.
// Returns 0 for anything it cannot parse.
func ToHours(s string) float64 {
	return ToMinutes(s) / 60
}
