package app

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/moodymap/pkg/entry"
	"tableflip.dev/moodymap/pkg/journal"
	"tableflip.dev/moodymap/pkg/timeutil"
)

// Mode is the state of the day-detail interaction.
type Mode int

const (
	// ModeClosed means no day is open. It is the initial state.
	ModeClosed Mode = iota
	// ModeViewing shows an existing entry read-only.
	ModeViewing
	// ModeCreating is the form for a day without an entry.
	ModeCreating
	// ModeEditing is the form for a day with an entry.
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeClosed:
		return "closed"
	case ModeViewing:
		return "view"
	case ModeCreating:
		return "create"
	case ModeEditing:
		return "edit"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// IsForm reports whether the mode accepts a save.
func (m Mode) IsForm() bool {
	return m == ModeCreating || m == ModeEditing
}

// ErrInvalidTransition is returned for events the current mode does not accept.
var ErrInvalidTransition = errors.New("app: invalid day detail transition")

// Detail is what the day form is handed: the mode, the day and the existing
// entry if there is one. Form holds the values the form starts from.
type Detail struct {
	Mode  Mode            `json:"mode"`
	Date  string          `json:"date,omitempty"`
	Entry *entry.Entry    `json:"entry,omitempty"`
	Form  journal.Payload `json:"form"`
}

// Detail returns the current day-detail state.
func (s *Service) Detail() Detail {
	return s.detail
}

// ClickDay opens dateKey: Viewing when it has an entry, Creating otherwise.
// Future days, malformed keys and clicks while a day is open are ignored; the
// return value reports whether the state changed.
func (s *Service) ClickDay(dateKey string) bool {
	if s.detail.Mode != ModeClosed {
		return false
	}
	if _, err := timeutil.ParseDateKey(dateKey, s.now().Location()); err != nil {
		return false
	}
	if timeutil.IsFuture(dateKey, s.now()) {
		return false
	}

	d := Detail{Mode: ModeCreating, Date: dateKey, Form: journal.DefaultPayload(s.doc, dateKey)}
	if e, ok := s.doc.Entry(dateKey); ok {
		d.Mode = ModeViewing
		d.Entry = &e
	}
	s.detail = d
	return true
}

// StartEdit moves Viewing to Editing.
func (s *Service) StartEdit() error {
	if s.detail.Mode != ModeViewing {
		return fmt.Errorf("%w: edit from %s", ErrInvalidTransition, s.detail.Mode)
	}
	s.detail.Mode = ModeEditing
	s.detail.Form = journal.DefaultPayload(s.doc, s.detail.Date)
	return nil
}

// SetForm records in-progress form values so they survive redraws.
func (s *Service) SetForm(p journal.Payload) error {
	if !s.detail.Mode.IsForm() {
		return fmt.Errorf("%w: form input in %s", ErrInvalidTransition, s.detail.Mode)
	}
	s.detail.Form = p
	return nil
}

// Save upserts the open day with p and closes the detail. When the store
// fails the error is returned, the previous document is kept and the form
// stays open so the save can be retried.
func (s *Service) Save(ctx context.Context, p journal.Payload) (entry.Entry, error) {
	if !s.detail.Mode.IsForm() {
		return entry.Entry{}, fmt.Errorf("%w: save from %s", ErrInvalidTransition, s.detail.Mode)
	}
	e, err := s.upsert(ctx, s.detail.Date, p)
	if err != nil {
		s.detail.Form = p
		return entry.Entry{}, err
	}
	s.detail = Detail{}
	return e, nil
}

// Cancel closes any open day without saving.
func (s *Service) Cancel() {
	s.detail = Detail{}
}
