// Package printers renders journal data for the terminal.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"tableflip.dev/moodymap/pkg/entry"
	"tableflip.dev/moodymap/pkg/journal"
	"tableflip.dev/moodymap/pkg/mood"
	"tableflip.dev/moodymap/pkg/timeutil"
)

const (
	layoutLongDay = "Monday, January 2, 2006"
	noteWidth     = 72
	emptyNote     = "No details saved for this day yet."
)

// PrettyPrint writes human-oriented output. Profile decides how mood colours
// are rendered; termenv.Ascii disables them.
type PrettyPrint struct {
	Out     io.Writer
	Profile termenv.Profile
	Months  timeutil.MonthFormatter
}

// New returns a printer for out, using the environment's colour profile
// when out is a terminal and plain text otherwise.
func New(out io.Writer) *PrettyPrint {
	if out == nil {
		out = os.Stdout
	}
	pp := &PrettyPrint{Out: out, Profile: termenv.Ascii}
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		pp.Profile = termenv.EnvColorProfile()
	}
	return pp
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return os.Stdout
	}
	return pp.Out
}

func (pp *PrettyPrint) Println(a ...any) {
	_, _ = fmt.Fprintln(pp.out(), a...)
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " day")
	default:
		_, _ = c.Fprintln(pp.out(), " days")
	}
}

// Score renders a mood number in its marker colour.
func (pp *PrettyPrint) Score(m int) string {
	return pp.Profile.String(fmt.Sprintf("%d", m)).
		Foreground(pp.Profile.Color(mood.ColorFor(m).Hex())).
		Bold().
		String()
}

// Swatch renders a two-cell block filled with c.
func (pp *PrettyPrint) Swatch(c mood.Color) string {
	return pp.Profile.String("  ").Background(pp.Profile.Color(c.Hex())).String()
}

// Day prints the read-only view of one day.
func (pp *PrettyPrint) Day(dateKey string, e *entry.Entry) {
	title := dateKey
	if t, err := timeutil.ParseDateKey(dateKey, time.Local); err == nil {
		title = t.Format(layoutLongDay)
	}
	pp.Title(title)

	if e == nil {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.out(), "Nothing recorded.")
		pp.NewLine()
		return
	}

	_, _ = fmt.Fprintf(pp.out(), "Mood Score: %s\n", pp.Score(e.Mood))
	note := e.Note
	if note == "" {
		note = emptyNote
	}
	_, _ = fmt.Fprintln(pp.out(), wordwrap.String(note, noteWidth))
	pp.NewLine()
}

// Entries prints a compact table of entries.
func (pp *PrettyPrint) Entries(entries ...entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = noteWidth
	tbl.Wrap = true
	for _, e := range entries {
		tbl.AddRow(e.Date, pp.Score(e.Mood), e.Note)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// JSON writes v as indented JSON.
func (pp *PrettyPrint) JSON(v any) error {
	enc := json.NewEncoder(pp.out())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Summary prints the one-line month summary.
func (pp *PrettyPrint) Summary(s journal.Summary) {
	f := color.New(color.Faint)
	if s.AverageMood == nil {
		_, _ = f.Fprintln(pp.out(), "No days logged this month.")
		return
	}
	label := "days"
	if s.TotalDays == 1 {
		label = "day"
	}
	_, _ = f.Fprintf(pp.out(), "%d %s logged, average mood ", s.TotalDays, label)
	_, _ = fmt.Fprintln(pp.out(), pp.Score(*s.AverageMood))
}
