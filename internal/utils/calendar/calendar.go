// Package calendar holds date arithmetic on calendar days.
package calendar

import (
	"fmt"
	"time"
)

// DateOnly strips the clock part of t, keeping the calendar day in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths moves t forward by the given number of calendar months and lands
// on anchorDay, clamped to the length of the target month. time.AddDate
// normalises overflow instead (Jan 31 + 1 month = Mar 3), which is wrong for
// due dates.
func AddMonths(t time.Time, months int, anchorDay int) time.Time {
	if anchorDay <= 0 {
		anchorDay = t.Day()
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	day := anchorDay
	if last := DaysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// MonthBounds returns the first and last day of a month.
func MonthBounds(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	if year < 1 || year > 9999 {
		return time.Time{}, time.Time{}, fmt.Errorf("year out of range: %d", year)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month), DaysIn(year, time.Month(month)), 0, 0, 0, 0, time.UTC)
	return start, end, nil
}
