// Package timeutil derives the canonical date and month keys the journal is
// indexed by, and the calendar-grid helpers built on them.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// LayoutDateKey is the time layout of a date-key.
	LayoutDateKey = "2006-01-02"
	// LayoutMonthKey is the time layout of a month-key.
	LayoutMonthKey = "2006-01"

	layoutLongMonth = "January 2006"
)

// MonthFormatter renders a display label for a month.
type MonthFormatter func(year int, month time.Month) string

// LongMonth renders labels like "March 2024".
func LongMonth(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format(layoutLongMonth)
}

// DateKey formats the calendar date of t as YYYY-MM-DD. The fields are read
// in t's own location, so pass local times.
func DateKey(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// MonthKey formats the calendar month of t as YYYY-MM.
func MonthKey(t time.Time) string {
	y, m, _ := t.Date()
	return fmt.Sprintf("%04d-%02d", y, int(m))
}

// MonthKeyOf returns the YYYY-MM prefix of a date-key.
func MonthKeyOf(dateKey string) string {
	if i := strings.LastIndex(dateKey, "-"); i > 0 {
		return dateKey[:i]
	}
	return dateKey
}

// ParseMonthKey reads the year and month from the first two "-" separated
// fields of key, so a date-key like 2024-03-15 names March 2024. ok is false
// when the year is not a number or the month is outside 1..12.
func ParseMonthKey(key string) (year int, month time.Month, ok bool) {
	parts := strings.Split(key, "-")
	if len(parts) < 2 {
		return 0, 0, false
	}
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	if idx := m - 1; idx < 0 || idx > 11 {
		return 0, 0, false
	}
	return y, time.Month(m), true
}

// NormalizeMonthKey rewrites anything ParseMonthKey accepts as a canonical
// YYYY-MM key.
func NormalizeMonthKey(key string) (string, bool) {
	y, m, ok := ParseMonthKey(key)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d", y, int(m)), true
}

// FormatMonthKey renders a month-key for display using f, or LongMonth when
// f is nil. Malformed keys are returned unchanged.
func FormatMonthKey(key string, f MonthFormatter) string {
	y, m, ok := ParseMonthKey(key)
	if !ok {
		return key
	}
	if f == nil {
		f = LongMonth
	}
	return f(y, m)
}

// IsFuture reports whether dateKey is after the calendar day of now. Keys are
// fixed width and big-endian, so string order is date order.
func IsFuture(dateKey string, now time.Time) bool {
	return dateKey > DateKey(now)
}

// ParseDateKey parses a strict YYYY-MM-DD key as midnight in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(LayoutDateKey, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", key)
	}
	return t, nil
}

// MonthStart returns midnight on the first day of the month named by key.
func MonthStart(key string, loc *time.Location) (time.Time, error) {
	y, m, ok := ParseMonthKey(key)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", key)
	}
	if loc == nil {
		loc = time.Local
	}
	return time.Date(y, m, 1, 0, 0, 0, 0, loc), nil
}

// NextMonth returns the first day of the month after then.
func NextMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()+1, 1, 0, 0, 0, 0, then.Location())
}

// PrevMonth returns the first day of the month before then.
func PrevMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()-1, 1, 0, 0, 0, 0, then.Location())
}

// DaysIn returns the number of days in then's month.
func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, then.Location()).Day()
}

// StartDay returns the weekday of the first day of then's month.
func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, then.Location()).Weekday()
}
