package utils

import (
	"fmt"
	"time"
)

// Calendar dates travel as "2006-01-02" strings on the wire and in the
// session state; clock times as "15:04" local strings.

const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// InclusiveDays counts calendar days between start and end, both endpoints
// included. Same-day trips count as 1.
func InclusiveDays(start, end time.Time) int {
	s := start.Truncate(24 * time.Hour)
	e := end.Truncate(24 * time.Hour)
	return int(e.Sub(s).Hours()/24) + 1
}

// DateSpan lists every calendar day from start to end inclusive.
func DateSpan(start, end time.Time) []time.Time {
	days := InclusiveDays(start, end)
	if days < 1 {
		return nil
	}
	out := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, start.AddDate(0, 0, i))
	}
	return out
}

// FormatDateRange renders a compact human range, e.g. "Jun 1-3, 2025" within
// a month or "Jun 28 - Jul 2, 2025" across months.
func FormatDateRange(start, end time.Time) string {
	if start.Month() == end.Month() && start.Year() == end.Year() {
		return fmt.Sprintf("%s %d-%d, %d", start.Format("Jan"), start.Day(), end.Day(), start.Year())
	}
	return fmt.Sprintf("%s - %s, %d", start.Format("Jan 2"), end.Format("Jan 2"), start.Year())
}
