package app

import (
	"fmt"
	"time"

	"tableflip.dev/moodymap/pkg/journal"
	"tableflip.dev/moodymap/pkg/mood"
	"tableflip.dev/moodymap/pkg/timeutil"
)

// DayDescriptor is everything a calendar widget needs to draw one day cell.
type DayDescriptor struct {
	DateKey  string       `json:"date"`
	Day      int          `json:"day"`
	Weekday  time.Weekday `json:"weekday"`
	IsFuture bool         `json:"isFuture"`
	IsToday  bool         `json:"isToday"`
	HasEntry bool         `json:"hasEntry"`
	Mood     *int         `json:"mood,omitempty"`
	Marker   *mood.Color  `json:"marker,omitempty"`
	Tint     *mood.Color  `json:"tint,omitempty"`
	Label    string       `json:"label,omitempty"`
}

// VisibleMonth is the month-key the calendar currently shows.
func (s *Service) VisibleMonth() string {
	return s.visible
}

// SetVisibleMonth is the calendar's visible-month-changed notification.
func (s *Service) SetVisibleMonth(monthKey string) error {
	key, ok := timeutil.NormalizeMonthKey(monthKey)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidMonth, monthKey)
	}
	s.visible = key
	return nil
}

// ShiftMonth moves the visible month by delta months.
func (s *Service) ShiftMonth(delta int) {
	start, err := timeutil.MonthStart(s.visible, s.now().Location())
	if err != nil {
		start = s.now()
	}
	s.visible = timeutil.MonthKey(time.Date(start.Year(), start.Month()+time.Month(delta), 1, 0, 0, 0, 0, start.Location()))
}

// VisibleSummary aggregates the visible month.
func (s *Service) VisibleSummary() journal.Summary {
	return journal.SummarizeMonth(s.doc.Entries, s.visible)
}

// Days describes every day of monthKey in order.
func (s *Service) Days(monthKey string) ([]DayDescriptor, error) {
	start, err := timeutil.MonthStart(monthKey, s.now().Location())
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, monthKey)
	}
	now := s.now()
	today := timeutil.DateKey(now)

	n := timeutil.DaysIn(start)
	days := make([]DayDescriptor, 0, n)
	for i := 0; i < n; i++ {
		day := start.AddDate(0, 0, i)
		key := timeutil.DateKey(day)
		d := DayDescriptor{
			DateKey:  key,
			Day:      i + 1,
			Weekday:  day.Weekday(),
			IsFuture: timeutil.IsFuture(key, now),
			IsToday:  key == today,
		}
		if e, ok := s.doc.Entry(key); ok {
			m := e.Mood
			marker, tint := e.Marker(), e.Tint()
			d.HasEntry = true
			d.Mood = &m
			d.Marker = &marker
			d.Tint = &tint
			d.Label = e.Label()
		}
		days = append(days, d)
	}
	return days, nil
}
