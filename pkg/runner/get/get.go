package get

import (
	"context"
	"errors"

	"tableflip.dev/moodymap/pkg/app"
	"tableflip.dev/moodymap/pkg/entry"
	"tableflip.dev/moodymap/pkg/printers"
)

// Get prints the entry for one day, if any.
type Get struct {
	Date string
	JSON bool

	Service *app.Service
	Printer *printers.PrettyPrint
}

// dayJSON is the --json shape; Entry is null for days without a record.
type dayJSON struct {
	Date  string       `json:"date"`
	Entry *entry.Entry `json:"entry"`
}

func (n *Get) Do(_ context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no journal")
	}
	pp := n.Printer
	if pp == nil {
		pp = printers.New(nil)
	}

	var found *entry.Entry
	if e, ok := n.Service.Entry(n.Date); ok {
		found = &e
	}
	if n.JSON {
		return pp.JSON(dayJSON{Date: n.Date, Entry: found})
	}
	pp.Day(n.Date, found)
	return nil
}
