package entry

import (
	"encoding/json"
	"fmt"
	"time"
)

// LayoutTimestamp is ISO-8601 in UTC with millisecond precision, the shape
// JavaScript's Date.toISOString produces.
const LayoutTimestamp = "2006-01-02T15:04:05.000Z07:00"

const layoutDate = "2006-01-02"

// ParseTime parses an RFC 3339 timestamp, with or without fractional seconds.
// A bare YYYY-MM-DD date is read as midnight UTC.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err == nil {
		return t, nil
	}
	if d, derr := time.Parse(layoutDate, v); derr == nil {
		return d, nil
	}
	return time.Time{}, err
}

// Timestamp is a point in time stored as an ISO-8601 string. The zero
// Timestamp is stored as "".
//
// A Timestamp read from JSON keeps its text when that text is not already
// in LayoutTimestamp form, so loading and saving a document does not
// rewrite offsets or sub-millisecond digits.
type Timestamp struct {
	time.Time
	raw string
}

// NewTimestamp normalizes t to UTC at millisecond precision so it survives a
// save/load round trip unchanged.
func NewTimestamp(t time.Time) Timestamp {
	if t.IsZero() {
		return Timestamp{}
	}
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

// ParseTimestamp parses v as ParseTime does and remembers v for String.
func ParseTimestamp(v string) (Timestamp, error) {
	if v == "" {
		return Timestamp{}, nil
	}
	parsed, err := ParseTime(v)
	if err != nil {
		return Timestamp{}, fmt.Errorf("entry: invalid timestamp %q: %w", v, err)
	}
	ts := Timestamp{Time: parsed}
	if ts.String() != v {
		ts.raw = v
	}
	return ts, nil
}

// SameDay reports whether t and then fall on the same local calendar day.
func (t Timestamp) SameDay(then time.Time) bool {
	ty, tm, td := t.Local().Date()
	y, m, d := then.Local().Date()
	return ty == y && tm == m && td == d
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*t = Timestamp{}
		return nil
	}
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(timestamp)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	if t.raw != "" {
		return t.raw
	}
	return t.UTC().Format(LayoutTimestamp)
}
