package timeparse

import (
	"regexp"
	"strconv"
)

// Jira counts time in working units: a day is 8 hours, a week is 5 working days.
const (
	hoursPerDay  = 8
	hoursPerWeek = 5 * hoursPerDay
)

var (
	reWeeks   = regexp.MustCompile(`(\d+)\s*w`)
	reDays    = regexp.MustCompile(`(\d+)\s*d`)
	reHours   = regexp.MustCompile(`(\d+)\s*h`)
	reMinutes = regexp.MustCompile(`(\d+)\s*m`)
)

// Parse converts a Jira duration string like "2h 30m", "1d 4h" or "1w" into
// fractional hours. Units are searched independently and summed, so any subset
// may appear in any order. Text that matches no unit contributes nothing and an
// empty input yields 0; Parse never fails.
func Parse(input string) float64 {
	if input == "" {
		return 0
	}

	total := 0.0
	if m := reWeeks.FindStringSubmatch(input); m != nil {
		n, _ := strconv.Atoi(m[1])
		total += float64(n) * hoursPerWeek
	}
	if m := reDays.FindStringSubmatch(input); m != nil {
		n, _ := strconv.Atoi(m[1])
		total += float64(n) * hoursPerDay
	}
	if m := reHours.FindStringSubmatch(input); m != nil {
		n, _ := strconv.Atoi(m[1])
		total += float64(n)
	}
	if m := reMinutes.FindStringSubmatch(input); m != nil {
		n, _ := strconv.Atoi(m[1])
		total += float64(n) / 60.0
	}
	return total
}
