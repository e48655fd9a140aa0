// Package mcp provides the Model Context Protocol server integration for moodymap.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"tableflip.dev/moodymap/pkg/app"
	"tableflip.dev/moodymap/pkg/entry"
	"tableflip.dev/moodymap/pkg/journal"
	"tableflip.dev/moodymap/pkg/store"
	"tableflip.dev/moodymap/pkg/timeutil"
)

// Service serializes journal access for concurrent MCP requests. Every call
// reloads the journal first so writes from the CLI or TUI are visible.
type Service struct {
	mu  sync.Mutex
	app *app.Service
}

// DayDTO is a transport-friendly projection of one calendar day.
type DayDTO struct {
	Date     string       `json:"date"`
	Day      int          `json:"day"`
	Weekday  string       `json:"weekday"`
	IsFuture bool         `json:"isFuture"`
	IsToday  bool         `json:"isToday"`
	Entry    *entry.Entry `json:"entry"`
	Marker   string       `json:"marker,omitempty"`
	Tint     string       `json:"tint,omitempty"`
	Label    string       `json:"label"`
}

// MonthDTO is a month grid plus its summary.
type MonthDTO struct {
	journal.Summary
	Title    string   `json:"title"`
	Marker   string   `json:"marker,omitempty"`
	StartsOn string   `json:"startsOn"`
	Days     []DayDTO `json:"days"`
}

// NewService opens a session on p.
func NewService(ctx context.Context, p store.Persistence, opts ...app.Option) (*Service, error) {
	if p == nil {
		return nil, errors.New("persistence is not configured")
	}
	a, err := app.New(ctx, p, opts...)
	if err != nil {
		return nil, err
	}
	return &Service{app: a}, nil
}

// RecordMood upserts the entry for date, or today when date is empty.
func (s *Service) RecordMood(ctx context.Context, date string, mood float64, note string) (entry.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.app.Reload(ctx)
	if date == "" {
		date = s.app.Today()
	}
	return s.app.Record(ctx, date, journal.Payload{Mood: mood, Note: note})
}

// GetDay describes date, or today when date is empty.
func (s *Service) GetDay(ctx context.Context, date string) (DayDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.app.Reload(ctx)
	if date == "" {
		date = s.app.Today()
	}
	if _, err := timeutil.ParseDateKey(date, s.app.Now().Location()); err != nil {
		return DayDTO{}, fmt.Errorf("%w: %v", app.ErrInvalidDate, err)
	}
	days, err := s.app.Days(timeutil.MonthKeyOf(date))
	if err != nil {
		return DayDTO{}, err
	}
	for _, d := range days {
		if d.DateKey == date {
			return s.day(d), nil
		}
	}
	return DayDTO{}, fmt.Errorf("%w: %q", app.ErrInvalidDate, date)
}

// MonthSummary aggregates month, or the current month when empty.
func (s *Service) MonthSummary(ctx context.Context, month string) (journal.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.app.Reload(ctx)
	if month == "" {
		month = timeutil.MonthKey(s.app.Now())
	}
	return s.app.Summary(month)
}

// MonthCalendar lays out month, or the current month when empty.
func (s *Service) MonthCalendar(ctx context.Context, month string) (MonthDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.app.Reload(ctx)
	if month == "" {
		month = timeutil.MonthKey(s.app.Now())
	}
	sum, err := s.app.Summary(month)
	if err != nil {
		return MonthDTO{}, err
	}
	days, err := s.app.Days(month)
	if err != nil {
		return MonthDTO{}, err
	}

	out := MonthDTO{
		Summary: sum,
		Title:   timeutil.FormatMonthKey(month, nil),
		Days:    make([]DayDTO, 0, len(days)),
	}
	if c, ok := sum.Marker(); ok {
		out.Marker = c.CSS()
	}
	if len(days) > 0 {
		out.StartsOn = days[0].Weekday.String()
	}
	for _, d := range days {
		out.Days = append(out.Days, s.day(d))
	}
	return out, nil
}

// Journal returns the whole persisted document.
func (s *Service) Journal(ctx context.Context) journal.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.app.Reload(ctx)
	return s.app.Journal()
}

func (s *Service) day(d app.DayDescriptor) DayDTO {
	dto := DayDTO{
		Date:     d.DateKey,
		Day:      d.Day,
		Weekday:  d.Weekday.String(),
		IsFuture: d.IsFuture,
		IsToday:  d.IsToday,
		Label:    d.Label,
	}
	if e, ok := s.app.Entry(d.DateKey); ok {
		dto.Entry = &e
	}
	if d.Marker != nil {
		dto.Marker = d.Marker.CSS()
	}
	if d.Tint != nil {
		dto.Tint = d.Tint.CSS()
	}
	return dto
}
