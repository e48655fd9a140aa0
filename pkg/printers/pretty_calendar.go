package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/moodymap/pkg/app"
	"tableflip.dev/moodymap/pkg/journal"
	"tableflip.dev/moodymap/pkg/timeutil"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a calendar grid for monthKey with each logged day painted in
// its mood colours, followed by the month summary.
func (pp *PrettyPrint) Month(monthKey string, days []app.DayDescriptor, s journal.Summary) {
	tf := color.New(color.Bold)
	m := timeutil.FormatMonthKey(monthKey, pp.Months)
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", mid), m)

	hf := color.New(color.Faint)
	_, _ = hf.Fprintln(pp.out(), "Su Mo Tu We Th Fr Sa")

	if len(days) > 0 {
		// Pad out the start of the month.
		_, _ = fmt.Fprint(pp.out(), strings.Repeat("   ", int(days[0].Weekday)))
	}

	for i, d := range days {
		sep := " "
		if d.Weekday == 6 || i == len(days)-1 {
			sep = "\n"
		}
		_, _ = fmt.Fprint(pp.out(), pp.cell(d)+sep)
	}
	pp.NewLine()
	pp.Summary(s)
}

func (pp *PrettyPrint) cell(d app.DayDescriptor) string {
	s := pp.Profile.String(fmt.Sprintf("%2d", d.Day))
	switch {
	case d.HasEntry && d.Marker != nil && d.Tint != nil:
		s = s.Foreground(pp.Profile.Color(d.Marker.Hex())).
			Background(pp.Profile.Color(d.Tint.Hex())).
			Bold()
	case d.IsFuture:
		s = s.Faint()
	}
	if d.IsToday {
		s = s.Underline()
	}
	return s.String()
}
