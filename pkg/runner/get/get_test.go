package get

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"

	"tableflip.dev/moodymap/pkg/app"
	"tableflip.dev/moodymap/pkg/journal"
	"tableflip.dev/moodymap/pkg/printers"
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

func TestGet(t *testing.T) {
	now := time.Date(2025, time.October, 20, 12, 0, 0, 0, time.UTC)
	svc, err := app.New(context.Background(), &memoryPersistence{doc: journal.Seed()},
		app.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	date := journal.Seed().Dates()[0]

	tests := map[string]struct {
		date string
		json bool
		want string
	}{
		"seeded day":       {date: date, want: "Mood Score:"},
		"seeded day json":  {date: date, json: true, want: `"date": "` + date + `"`},
		"missing day":      {date: "2025-01-01", want: "Nothing recorded."},
		"missing day json": {date: "2025-01-01", json: true, want: `"entry": null`},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			g := Get{
				Date:    tc.date,
				JSON:    tc.json,
				Service: svc,
				Printer: &printers.PrettyPrint{Out: &buf, Profile: termenv.Ascii},
			}
			if err := g.Do(context.Background()); err != nil {
				t.Fatalf("get: %v", err)
			}
			if !strings.Contains(buf.String(), tc.want) {
				t.Fatalf("expected %q in:\n%s", tc.want, buf.String())
			}
		})
	}
}
