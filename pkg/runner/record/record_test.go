package record

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"

	"tableflip.dev/moodymap/pkg/app"
	"tableflip.dev/moodymap/pkg/entry"
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

func newService(t *testing.T, p store.Persistence) *app.Service {
	t.Helper()
	now := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)
	svc, err := app.New(context.Background(), p, app.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestRecordJSON(t *testing.T) {
	p := &memoryPersistence{doc: journal.Empty()}
	var buf bytes.Buffer
	r := Record{
		Date:    "2024-05-09",
		Payload: journal.Payload{Mood: 87.6, Note: "  good day  "},
		JSON:    true,
		Service: newService(t, p),
		Printer: &printers.PrettyPrint{Out: &buf, Profile: termenv.Ascii},
	}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("record: %v", err)
	}

	var got entry.Entry
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode output %q: %v", buf.String(), err)
	}
	if got.Mood != 88 || got.Note != "good day" {
		t.Fatalf("unexpected entry %+v", got)
	}
	if _, ok := p.doc.Entries["2024-05-09"]; !ok {
		t.Fatalf("expected the entry to be persisted")
	}
}

func TestRecordPretty(t *testing.T) {
	p := &memoryPersistence{doc: journal.Empty()}
	var buf bytes.Buffer
	r := Record{
		Date:    "2024-05-09",
		Payload: journal.Payload{Mood: 40},
		Service: newService(t, p),
		Printer: &printers.PrettyPrint{Out: &buf, Profile: termenv.Ascii},
	}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("record: %v", err)
	}
	if !strings.Contains(buf.String(), "1 day logged, average mood 40") {
		t.Fatalf("expected month summary, got:\n%s", buf.String())
	}
}

func TestRecordFutureRejected(t *testing.T) {
	p := &memoryPersistence{doc: journal.Empty()}
	r := Record{
		Date:    "2024-05-11",
		Payload: journal.Payload{Mood: 40},
		Service: newService(t, p),
		Printer: &printers.PrettyPrint{Out: &bytes.Buffer{}, Profile: termenv.Ascii},
	}
	if err := r.Do(context.Background()); !errors.Is(err, app.ErrFutureDate) {
		t.Fatalf("expected ErrFutureDate, got %v", err)
	}
	if len(p.doc.Entries) != 0 {
		t.Fatalf("expected nothing stored")
	}
}
