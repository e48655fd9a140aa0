// Package app is the controller shared by the CLI, the TUI and the MCP
// server. It owns the current journal document, the visible month and the
// day-detail state machine, and is the only path through which the journal
// is mutated.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/moodymap/pkg/entry"
	"tableflip.dev/moodymap/pkg/journal"
	"tableflip.dev/moodymap/pkg/store"
	"tableflip.dev/moodymap/pkg/timeutil"
)

var (
	// ErrNoPersistence is returned when a Service has no store to work with.
	ErrNoPersistence = errors.New("app: no persistence configured")
	// ErrFutureDate is returned when recording a day that has not happened yet.
	ErrFutureDate = errors.New("app: date is in the future")
	// ErrInvalidDate is returned for keys that are not YYYY-MM-DD dates.
	ErrInvalidDate = errors.New("app: invalid date")
	// ErrInvalidMonth is returned for keys that are not YYYY-MM months.
	ErrInvalidMonth = errors.New("app: invalid month")
)

// Service holds the journal for one session. It is not safe for concurrent
// use; each document it holds is an immutable value replaced on every save.
type Service struct {
	persistence store.Persistence
	now         func() time.Time

	doc     journal.Document
	visible string
	detail  Detail
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the source of "now", in the user's local time zone.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New loads the journal from p and opens the calendar on the current month.
func New(ctx context.Context, p store.Persistence, opts ...Option) (*Service, error) {
	if p == nil {
		return nil, ErrNoPersistence
	}
	s := &Service{persistence: p, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.doc = p.Load(ctx)
	s.visible = timeutil.MonthKey(s.now())
	return s, nil
}

// Journal returns the current document.
func (s *Service) Journal() journal.Document {
	return s.doc
}

// Now is the service clock.
func (s *Service) Now() time.Time {
	return s.now()
}

// Today is the date-key of the current local day.
func (s *Service) Today() string {
	return timeutil.DateKey(s.now())
}

// Entry returns the entry recorded for dateKey.
func (s *Service) Entry(dateKey string) (entry.Entry, bool) {
	return s.doc.Entry(dateKey)
}

// Reload replaces the held document with what is currently stored, e.g. after
// another process saved, and reports whether it changed. An open day detail
// is kept and re-pointed at the reloaded entry.
func (s *Service) Reload(ctx context.Context) bool {
	doc := s.persistence.Load(ctx)
	if doc.Equal(s.doc) {
		return false
	}
	s.doc = doc
	if s.detail.Mode == ModeViewing {
		if e, ok := s.doc.Entry(s.detail.Date); ok {
			s.detail.Entry = &e
		}
	}
	return true
}

// Record upserts one day directly, outside the day-detail flow. Future and
// malformed dates are rejected.
func (s *Service) Record(ctx context.Context, dateKey string, p journal.Payload) (entry.Entry, error) {
	if err := s.checkDay(dateKey); err != nil {
		return entry.Entry{}, err
	}
	return s.upsert(ctx, dateKey, p)
}

// Summary aggregates monthKey of the current document.
func (s *Service) Summary(monthKey string) (journal.Summary, error) {
	key, ok := timeutil.NormalizeMonthKey(monthKey)
	if !ok {
		return journal.Summary{}, fmt.Errorf("%w: %q", ErrInvalidMonth, monthKey)
	}
	return journal.SummarizeMonth(s.doc.Entries, key), nil
}

// MonthEntries lists the entries of monthKey by date.
func (s *Service) MonthEntries(monthKey string) []entry.Entry {
	if key, ok := timeutil.NormalizeMonthKey(monthKey); ok {
		monthKey = key
	}
	return journal.EntriesForMonth(s.doc.Entries, monthKey)
}

func (s *Service) checkDay(dateKey string) error {
	if _, err := timeutil.ParseDateKey(dateKey, s.now().Location()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	if timeutil.IsFuture(dateKey, s.now()) {
		return fmt.Errorf("%w: %s", ErrFutureDate, dateKey)
	}
	return nil
}

// upsert builds the next document, persists it and adopts it only once the
// save succeeded.
func (s *Service) upsert(ctx context.Context, dateKey string, p journal.Payload) (entry.Entry, error) {
	next := journal.Upsert(s.doc, dateKey, p, s.now())
	if err := s.persistence.Save(ctx, next); err != nil {
		return entry.Entry{}, err
	}
	s.doc = next
	e, _ := next.Entry(dateKey)
	return e, nil
}
