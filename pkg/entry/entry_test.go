package entry

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNewNormalizes(t *testing.T) {
	now := NewTimestamp(time.Date(2024, time.May, 10, 8, 30, 0, 0, time.UTC))
	e := New("2024-05-10", 87.6, "  good day  ", now)
	if e.Mood != 88 {
		t.Fatalf("expected mood 88, got %d", e.Mood)
	}
	if e.Note != "good day" {
		t.Fatalf("expected trimmed note, got %q", e.Note)
	}
	if !e.CreatedAt.Equal(now.Time) || !e.UpdatedAt.Equal(now.Time) {
		t.Fatalf("expected both timestamps set to now")
	}
}

func TestTimestampJSON(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, time.May, 10, 8, 30, 0, 123456789, time.FixedZone("X", 3600)))
	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-05-10T07:30:00.123Z"` {
		t.Fatalf("unexpected json %s", b)
	}

	var back Timestamp
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != ts {
		t.Fatalf("round trip changed timestamp: %v != %v", back, ts)
	}
}

func TestTimestampZero(t *testing.T) {
	b, err := json.Marshal(Timestamp{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `""` {
		t.Fatalf("expected empty string, got %s", b)
	}
	var ts Timestamp
	if err := json.Unmarshal([]byte(`""`), &ts); err != nil || !ts.IsZero() {
		t.Fatalf("expected zero timestamp, got %v (%v)", ts, err)
	}
	if err := json.Unmarshal([]byte(`null`), &ts); err != nil || !ts.IsZero() {
		t.Fatalf("expected zero timestamp for null, got %v (%v)", ts, err)
	}
}

func TestTimestampInvalid(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Fatalf("expected error for invalid timestamp")
	}
}

func TestEntryJSONShape(t *testing.T) {
	now := NewTimestamp(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	b, err := json.Marshal(New("2024-03-01", 40, "", now))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{`"date":"2024-03-01"`, `"mood":40`, `"note":""`, `"createdAt":"2024-03-01T00:00:00.000Z"`, `"updatedAt":`} {
		if !strings.Contains(string(b), field) {
			t.Fatalf("expected %s in %s", field, b)
		}
	}
}

func TestTimestampKeepsStoredText(t *testing.T) {
	for _, in := range []string{
		`"2024-05-10T10:30:00.123456+02:00"`,
		`"2024-05-10T08:30:00Z"`,
		`"2024-05-10"`,
	} {
		var ts Timestamp
		if err := json.Unmarshal([]byte(in), &ts); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		b, err := json.Marshal(ts)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(b) != in {
			t.Fatalf("expected %s to be kept, got %s", in, b)
		}
	}
}

func TestParseTimestampDateOnly(t *testing.T) {
	ts, err := ParseTimestamp("2024-05-01")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !ts.Equal(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time %v", ts.Time)
	}
}

func TestParseTimestampCanonicalHasNoStoredText(t *testing.T) {
	ts, err := ParseTimestamp("2024-05-10T07:30:00.123Z")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := NewTimestamp(time.Date(2024, time.May, 10, 7, 30, 0, 123000000, time.UTC))
	if ts != want {
		t.Fatalf("expected %v to equal %v", ts, want)
	}
}
