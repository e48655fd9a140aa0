// Package entry defines a single day's mood record.
package entry

import (
	"fmt"
	"strings"

	"tableflip.dev/moodymap/pkg/mood"
)

// Entry is one day's record. Date always equals the key it is stored under.
type Entry struct {
	Date      string    `json:"date"`
	Mood      int       `json:"mood"`
	Note      string    `json:"note"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// New builds a normalized entry for date with both timestamps set to now.
func New(date string, rawMood float64, note string, now Timestamp) Entry {
	return Entry{
		Date:      date,
		Mood:      mood.Clamp(rawMood),
		Note:      strings.TrimSpace(note),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Equal reports whether e and o would be stored identically.
func (e Entry) Equal(o Entry) bool {
	return e.Date == o.Date && e.Mood == o.Mood && e.Note == o.Note &&
		e.CreatedAt.String() == o.CreatedAt.String() &&
		e.UpdatedAt.String() == o.UpdatedAt.String()
}

// Marker is the solid colour for this entry's mood.
func (e Entry) Marker() mood.Color {
	return mood.ColorFor(e.Mood)
}

// Tint is the background colour for this entry's mood.
func (e Entry) Tint() mood.Color {
	return mood.TintFor(e.Mood)
}

// Label is the short text shown on a calendar cell.
func (e Entry) Label() string {
	return fmt.Sprintf("%d", e.Mood)
}

func (e Entry) String() string {
	if e.Note == "" {
		return fmt.Sprintf("%s  %3d", e.Date, e.Mood)
	}
	return fmt.Sprintf("%s  %3d  %s", e.Date, e.Mood, e.Note)
}
