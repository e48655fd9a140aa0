package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moodymap/pkg/journal"
)

// MoodOptions carries the fields of a day's entry.
type MoodOptions struct {
	Mood float64
	Note string
}

func AddMoodArgs(cmd *cobra.Command, o *MoodOptions) {
	cmd.Flags().Float64Var(&o.Mood, "mood", 0,
		"Mood score from 0 (low) to 100 (high). Values are rounded and clamped.")
	cmd.Flags().StringVar(&o.Note, "note", "",
		"Optional note for the day.")
	_ = cmd.MarkFlagRequired("mood")
}

// Payload builds the upsert payload. When no --note was given the remaining
// args are joined into the note.
func (o *MoodOptions) Payload(args []string) journal.Payload {
	note := o.Note
	if note == "" && len(args) > 0 {
		note = strings.Join(args, " ")
	}
	return journal.Payload{Mood: o.Mood, Note: note}
}
