package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodymap/pkg/timeutil"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions selects a single day.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2020-2-28" or --on="2/28". Defaults to today.`)
}

// GetOn returns the date-key for the selected day. A short "M/D" date is
// taken in the current year and must exist in it.
func (o *OnOptions) GetOn(now time.Time) (string, error) {
	if o.OnString == "" {
		return timeutil.DateKey(now), nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, now.Location())
	if err != nil {
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, now.Location())
		if err != nil {
			return "", fmt.Errorf("invalid --on %q, expected YYYY-M-D or M/D", o.OnString)
		}
		day := t.Day()
		t = time.Date(now.Year(), t.Month(), day, 0, 0, 0, 0, now.Location())
		if t.Day() != day {
			return "", fmt.Errorf("invalid --on %q, no such day in %d", o.OnString, now.Year())
		}
	}
	return timeutil.DateKey(t), nil
}
