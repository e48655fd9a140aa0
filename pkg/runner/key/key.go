// Package key provides CLI helpers to display the mood colour legend.
package key

import (
	"context"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodymap/pkg/mood"
	"tableflip.dev/moodymap/pkg/printers"
)

// Key prints the colour used for each band of the mood scale.
type Key struct {
	// Step between printed scores; defaults to 10.
	Step    int
	Printer *printers.PrettyPrint
}

// Do renders the legend.
func (k *Key) Do(_ context.Context) error {
	pp := k.Printer
	if pp == nil {
		pp = printers.New(nil)
	}
	step := k.Step
	if step <= 0 {
		step = 10
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Mood"), bold.Sprint("Marker"), bold.Sprint("Tint"), bold.Sprint("Colour"))
	for m := mood.Max; m >= mood.Min; m -= step {
		tbl.AddRow(pp.Score(m), pp.Swatch(mood.ColorFor(m)), pp.Swatch(mood.TintFor(m)), mood.ColorFor(m).CSS())
	}
	tbl.RightAlign(0)

	pp.NewLine()
	pp.Println(tbl)
	pp.NewLine()
	return nil
}
