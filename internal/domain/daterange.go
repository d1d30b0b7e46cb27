package domain

import "time"

// DateLayout is the canonical calendar-date form used everywhere a date
// crosses a boundary: record fields, storage columns, and forecast lookups.
const DateLayout = "2006-01-02"

// DatesBetween expands an inclusive start/end date pair into the ordered
// sequence of every calendar date from start to end, one "2006-01-02" entry
// per day. The sequence length is (end − start in days) + 1.
//
// Ordering is the caller's responsibility: if end is before start, or either
// date fails to parse, the result is empty. Pure; no side effects.
func DatesBetween(start, end string) []string {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return nil
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return nil
	}

	var dates []string
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates
}

// CountDays returns the inclusive number of calendar days between start and
// end: a one-day trip counts as 1. Returns 0 when either date is empty or
// malformed.
func CountDays(start, end string) int {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return 0
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return 0
	}
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// ValidDate reports whether s is a well-formed "2006-01-02" calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
