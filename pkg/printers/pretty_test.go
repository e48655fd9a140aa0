package printers

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/muesli/termenv"

	"tableflip.dev/moodymap/pkg/app"
	"tableflip.dev/moodymap/pkg/entry"
	"tableflip.dev/moodymap/pkg/journal"
	"tableflip.dev/moodymap/pkg/store"
)

type memoryPersistence struct {
	doc journal.Document
}

func (m *memoryPersistence) Load(context.Context) journal.Document { return m.doc.Clone() }

func (m *memoryPersistence) Save(_ context.Context, doc journal.Document) error {
	m.doc = doc.Clone()
	return nil
}

func (m *memoryPersistence) Watch(context.Context) (<-chan store.Event, error) {
	return nil, store.ErrWatchUnsupported
}

func plain(t *testing.T) (*PrettyPrint, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
	var buf bytes.Buffer
	return &PrettyPrint{Out: &buf, Profile: termenv.Ascii}, &buf
}

func TestMonthGrid(t *testing.T) {
	pp, buf := plain(t)

	now := time.Date(2024, time.February, 10, 12, 0, 0, 0, time.Local)
	p := &memoryPersistence{doc: journal.Empty()}
	svc, err := app.New(context.Background(), p, app.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	for _, d := range []string{"2024-02-01", "2024-02-02"} {
		if _, err := svc.Record(context.Background(), d, journal.Payload{Mood: 50}); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	days, err := svc.Days("2024-02")
	if err != nil {
		t.Fatalf("days: %v", err)
	}
	s, _ := svc.Summary("2024-02")
	pp.Month("2024-02", days, s)

	out := buf.String()
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[0], "February 2024") {
		t.Fatalf("expected month title, got %q", lines[0])
	}
	if lines[1] != "Su Mo Tu We Th Fr Sa" {
		t.Fatalf("expected weekday header, got %q", lines[1])
	}
	// Feb 1 2024 is a Thursday.
	if lines[2] != "             1  2  3" {
		t.Fatalf("unexpected first week %q", lines[2])
	}
	if !strings.Contains(out, "2 days logged, average mood 50") {
		t.Fatalf("expected summary line, got:\n%s", out)
	}
}

func TestDayEmptyNote(t *testing.T) {
	pp, buf := plain(t)
	e := entry.New("2024-05-10", 72, "", entry.NewTimestamp(time.Now()))
	pp.Day("2024-05-10", &e)

	out := buf.String()
	if !strings.Contains(out, "Friday, May 10, 2024") {
		t.Fatalf("expected long date title, got %q", out)
	}
	if !strings.Contains(out, "Mood Score: 72") {
		t.Fatalf("expected score, got %q", out)
	}
	if !strings.Contains(out, emptyNote) {
		t.Fatalf("expected placeholder note, got %q", out)
	}
}

func TestSummaryEmpty(t *testing.T) {
	pp, buf := plain(t)
	pp.Summary(journal.SummarizeMonth(nil, "2024-01"))
	if !strings.Contains(buf.String(), "No days logged") {
		t.Fatalf("unexpected summary %q", buf.String())
	}
}

func TestNewNonTerminalIsPlain(t *testing.T) {
	var buf bytes.Buffer
	pp := New(&buf)
	if pp.Profile != termenv.Ascii {
		t.Fatalf("expected ascii profile for a buffer")
	}
}
