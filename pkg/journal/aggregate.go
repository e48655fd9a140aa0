package journal

import (
	"sort"
	"strings"

	"tableflip.dev/moodymap/pkg/entry"
	"tableflip.dev/moodymap/pkg/mood"
)

// Summary aggregates one month. AverageMood is nil when the month is empty.
type Summary struct {
	Month       string `json:"month"`
	TotalDays   int    `json:"totalDays"`
	AverageMood *int   `json:"averageMood"`
}

// EntriesForMonth selects every entry whose date lies in monthKey (YYYY-MM),
// ordered by date.
func EntriesForMonth(entries map[string]entry.Entry, monthKey string) []entry.Entry {
	prefix := monthKey + "-"
	out := make([]entry.Entry, 0)
	for _, e := range entries {
		if strings.HasPrefix(e.Date, prefix) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// SummarizeMonth counts the entries of monthKey and averages their moods,
// rounding half-up like mood.Clamp.
func SummarizeMonth(entries map[string]entry.Entry, monthKey string) Summary {
	selected := EntriesForMonth(entries, monthKey)
	s := Summary{Month: monthKey, TotalDays: len(selected)}
	if s.TotalDays == 0 {
		return s
	}
	sum := 0
	for _, e := range selected {
		sum += e.Mood
	}
	avg := mood.Clamp(float64(sum) / float64(s.TotalDays))
	s.AverageMood = &avg
	return s
}

// Marker is the colour matching the average, if any.
func (s Summary) Marker() (mood.Color, bool) {
	if s.AverageMood == nil {
		return mood.Color{}, false
	}
	return mood.ColorFor(*s.AverageMood), true
}
