package journal

import (
	"reflect"
	"testing"
	"time"

	"tableflip.dev/moodymap/pkg/entry"
)

func mkEntry(date string, m int) entry.Entry {
	ts := entry.NewTimestamp(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	return entry.Entry{Date: date, Mood: m, CreatedAt: ts, UpdatedAt: ts}
}

func TestSummarizeMonthEmpty(t *testing.T) {
	s := SummarizeMonth(map[string]entry.Entry{}, "2024-03")
	if s.TotalDays != 0 {
		t.Fatalf("expected 0 days, got %d", s.TotalDays)
	}
	if s.AverageMood != nil {
		t.Fatalf("expected nil average, got %d", *s.AverageMood)
	}
	if _, ok := s.Marker(); ok {
		t.Fatalf("expected no marker for empty month")
	}
}

func TestSummarizeMonthRoundsHalfUp(t *testing.T) {
	entries := map[string]entry.Entry{
		"2024-03-01": mkEntry("2024-03-01", 40),
		"2024-03-02": mkEntry("2024-03-02", 61),
		"2024-02-29": mkEntry("2024-02-29", 0),
		"2024-04-01": mkEntry("2024-04-01", 100),
	}
	s := SummarizeMonth(entries, "2024-03")
	if s.TotalDays != 2 {
		t.Fatalf("expected 2 days, got %d", s.TotalDays)
	}
	if s.AverageMood == nil || *s.AverageMood != 51 {
		t.Fatalf("expected average 51, got %v", s.AverageMood)
	}
}

func TestEntriesForMonthPrefix(t *testing.T) {
	entries := map[string]entry.Entry{
		"2024-03-02": mkEntry("2024-03-02", 1),
		"2024-03-01": mkEntry("2024-03-01", 2),
		"2024-030-1": mkEntry("2024-030-1", 3),
		"2024-10-01": mkEntry("2024-10-01", 4),
	}
	got := EntriesForMonth(entries, "2024-03")
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Date != "2024-03-01" || got[1].Date != "2024-03-02" {
		t.Fatalf("unexpected order %v", got)
	}
	if got := EntriesForMonth(entries, "2024-01"); len(got) != 0 {
		t.Fatalf("expected no entries, got %v", got)
	}
}

func TestUpsertCreatesThenUpdates(t *testing.T) {
	t1 := time.Date(2024, time.May, 10, 8, 0, 0, 0, time.UTC)
	t2 := t1.Add(3 * time.Hour)

	empty := Empty()
	first := Upsert(empty, "2024-05-10", Payload{Mood: 87.6, Note: "  good day  "}, t1)

	if len(empty.Entries) != 0 {
		t.Fatalf("upsert mutated its input")
	}
	e, ok := first.Entry("2024-05-10")
	if !ok {
		t.Fatalf("expected entry after upsert")
	}
	want := entry.Entry{
		Date:      "2024-05-10",
		Mood:      88,
		Note:      "good day",
		CreatedAt: entry.NewTimestamp(t1),
		UpdatedAt: entry.NewTimestamp(t1),
	}
	if !reflect.DeepEqual(e, want) {
		t.Fatalf("got %+v, want %+v", e, want)
	}
	if !first.LastUpdated.Equal(t1) {
		t.Fatalf("expected lastUpdated %v, got %v", t1, first.LastUpdated)
	}

	second := Upsert(first, "2024-05-10", Payload{Mood: 10, Note: "bad"}, t2)
	e2 := second.Entries["2024-05-10"]
	if e2.Mood != 10 || e2.Note != "bad" {
		t.Fatalf("unexpected updated entry %+v", e2)
	}
	if !e2.CreatedAt.Equal(t1) {
		t.Fatalf("createdAt changed: %v", e2.CreatedAt)
	}
	if !e2.UpdatedAt.Equal(t2) {
		t.Fatalf("updatedAt did not advance: %v", e2.UpdatedAt)
	}
	if len(second.Entries) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(second.Entries))
	}
	if first.Entries["2024-05-10"].Mood != 88 {
		t.Fatalf("previous document was mutated")
	}
	if second.Version != CurrentVersion {
		t.Fatalf("expected version %d, got %d", CurrentVersion, second.Version)
	}
}

func TestDefaultPayload(t *testing.T) {
	doc := Upsert(Empty(), "2024-05-10", Payload{Mood: 33, Note: "meh"}, time.Now())
	if p := DefaultPayload(doc, "2024-05-10"); p.Mood != 33 || p.Note != "meh" {
		t.Fatalf("unexpected payload %+v", p)
	}
	if p := DefaultPayload(doc, "2024-05-11"); p.Mood != 50 || p.Note != "" {
		t.Fatalf("unexpected default payload %+v", p)
	}
}

func TestSeedIsFreshCopy(t *testing.T) {
	a := Seed()
	if a.Version != CurrentVersion {
		t.Fatalf("expected seed version %d, got %d", CurrentVersion, a.Version)
	}
	if len(a.Entries) == 0 {
		t.Fatalf("expected seed entries")
	}
	for k, e := range a.Entries {
		if k != e.Date {
			t.Fatalf("seed entry %s stored under %s", e.Date, k)
		}
		if e.Mood < 0 || e.Mood > 100 {
			t.Fatalf("seed entry %s out of range: %d", k, e.Mood)
		}
	}

	for k := range a.Entries {
		delete(a.Entries, k)
	}
	if b := Seed(); len(b.Entries) == 0 {
		t.Fatalf("mutating a seed copy leaked into the bundle")
	}
}

func TestDates(t *testing.T) {
	doc := Empty()
	doc = Upsert(doc, "2024-05-10", Payload{Mood: 1}, time.Now())
	doc = Upsert(doc, "2024-04-01", Payload{Mood: 1}, time.Now())
	if got := doc.Dates(); !reflect.DeepEqual(got, []string{"2024-04-01", "2024-05-10"}) {
		t.Fatalf("unexpected dates %v", got)
	}
}

func TestDocumentEqual(t *testing.T) {
	a := Document{Version: CurrentVersion}
	b := Empty()
	if !a.Equal(b) {
		t.Fatalf("nil and empty entries should be equal")
	}
	a.Entries = map[string]entry.Entry{"2024-03-01": mkEntry("2024-03-01", 40)}
	b = a.Clone()
	if !a.Equal(b) {
		t.Fatalf("clone should be equal")
	}
	b.Entries["2024-03-01"] = mkEntry("2024-03-01", 41)
	if a.Equal(b) {
		t.Fatalf("changed mood should not be equal")
	}
}
