// Package journal holds the in-memory mood journal document and the pure
// operations over it: month aggregation, the single upsert mutation, and the
// seed bundle used when nothing valid is stored.
package journal

import (
	"sort"

	"tableflip.dev/moodymap/pkg/entry"
)

// CurrentVersion is the only schema version Load accepts.
const CurrentVersion = 1

// Document is the whole persisted journal. Treat it as a value: operations
// return new documents and never write to the Entries map of their input.
type Document struct {
	Version     int                    `json:"version"`
	LastUpdated entry.Timestamp        `json:"lastUpdated"`
	Entries     map[string]entry.Entry `json:"entries"`
}

// Empty returns a current-version document with no entries.
func Empty() Document {
	return Document{Version: CurrentVersion, Entries: map[string]entry.Entry{}}
}

// Clone returns a copy of d that shares no mutable state with it.
func (d Document) Clone() Document {
	out := Document{
		Version:     d.Version,
		LastUpdated: d.LastUpdated,
		Entries:     make(map[string]entry.Entry, len(d.Entries)),
	}
	for k, v := range d.Entries {
		out.Entries[k] = v
	}
	return out
}

// Equal reports whether d and o hold the same journal. A nil and an empty
// entry map are equal.
func (d Document) Equal(o Document) bool {
	if d.Version != o.Version || d.LastUpdated.String() != o.LastUpdated.String() || len(d.Entries) != len(o.Entries) {
		return false
	}
	for k, e := range d.Entries {
		oe, ok := o.Entries[k]
		if !ok || !e.Equal(oe) {
			return false
		}
	}
	return true
}

// Entry returns the entry stored under dateKey.
func (d Document) Entry(dateKey string) (entry.Entry, bool) {
	e, ok := d.Entries[dateKey]
	return e, ok
}

// Dates returns every date-key in ascending order.
func (d Document) Dates() []string {
	keys := make([]string, 0, len(d.Entries))
	for k := range d.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
