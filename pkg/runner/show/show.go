package show

import (
	"context"
	"errors"

	"tableflip.dev/moodymap/pkg/app"
	"tableflip.dev/moodymap/pkg/entry"
	"tableflip.dev/moodymap/pkg/journal"
	"tableflip.dev/moodymap/pkg/printers"
)

// Show prints a month: the calendar grid and summary, or only the summary.
type Show struct {
	Month       string
	SummaryOnly bool
	JSON        bool

	Service *app.Service
	Printer *printers.PrettyPrint
}

type monthJSON struct {
	journal.Summary
	Entries []entry.Entry `json:"entries"`
}

func (n *Show) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no journal")
	}
	pp := n.Printer
	if pp == nil {
		pp = printers.New(nil)
	}

	s, err := n.Service.Summary(n.Month)
	if err != nil {
		return err
	}

	if n.SummaryOnly {
		if n.JSON {
			return pp.JSON(s)
		}
		pp.Summary(s)
		return nil
	}

	if n.JSON {
		entries := n.Service.MonthEntries(n.Month)
		if entries == nil {
			entries = []entry.Entry{}
		}
		return pp.JSON(monthJSON{Summary: s, Entries: entries})
	}

	days, err := n.Service.Days(n.Month)
	if err != nil {
		return err
	}
	pp.Month(n.Month, days, s)
	pp.NewLine()
	pp.Entries(n.Service.MonthEntries(n.Month)...)
	return nil
}
