package journal

import (
	"time"

	"tableflip.dev/moodymap/pkg/entry"
	"tableflip.dev/moodymap/pkg/mood"
)

// Payload is what the day form produces: a raw mood and a raw note.
type Payload struct {
	Mood float64 `json:"mood"`
	Note string  `json:"note"`
}

// Upsert returns a new document with the entry for dateKey inserted or
// replaced. The mood is clamped and the note trimmed; an existing entry keeps
// its CreatedAt. doc is left untouched.
func Upsert(doc Document, dateKey string, p Payload, now time.Time) Document {
	ts := entry.NewTimestamp(now)
	e := entry.New(dateKey, p.Mood, p.Note, ts)
	if prev, ok := doc.Entries[dateKey]; ok {
		e.CreatedAt = prev.CreatedAt
	}

	next := doc.Clone()
	if next.Version == 0 {
		next.Version = CurrentVersion
	}
	next.LastUpdated = ts
	next.Entries[dateKey] = e
	return next
}

// DefaultPayload pre-fills the day form: the existing entry's values, or the
// default mood and an empty note.
func DefaultPayload(doc Document, dateKey string) Payload {
	if e, ok := doc.Entries[dateKey]; ok {
		return Payload{Mood: float64(e.Mood), Note: e.Note}
	}
	return Payload{Mood: mood.Default}
}
