package record

import (
	"context"
	"errors"

	"tableflip.dev/moodymap/pkg/app"
	"tableflip.dev/moodymap/pkg/journal"
	"tableflip.dev/moodymap/pkg/printers"
	"tableflip.dev/moodymap/pkg/timeutil"
)

// Record upserts the entry for one day and prints the result.
type Record struct {
	Date    string
	Payload journal.Payload
	JSON    bool

	Service *app.Service
	Printer *printers.PrettyPrint
}

func (n *Record) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not record, no journal")
	}
	e, err := n.Service.Record(ctx, n.Date, n.Payload)
	if err != nil {
		return err
	}

	pp := n.Printer
	if pp == nil {
		pp = printers.New(nil)
	}
	if n.JSON {
		return pp.JSON(e)
	}

	pp.Day(e.Date, &e)
	month := timeutil.MonthKeyOf(e.Date)
	pp.TitleWithCount(timeutil.FormatMonthKey(month, pp.Months), len(n.Service.MonthEntries(month)))
	s, err := n.Service.Summary(month)
	if err != nil {
		return err
	}
	pp.Summary(s)
	return nil
}
