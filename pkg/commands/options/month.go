package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodymap/pkg/timeutil"
)

const layoutMonth = "2006-1"

// MonthOptions selects a calendar month.
type MonthOptions struct {
	Month string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		`Specify a month, example: --month="2024-05". Defaults to the current month.`)
}

// GetMonth returns the month-key for the selected month.
func (o *MonthOptions) GetMonth(now time.Time) (string, error) {
	if o.Month == "" {
		return timeutil.MonthKey(now), nil
	}
	t, err := time.ParseInLocation(layoutMonth, o.Month, now.Location())
	if err != nil {
		return "", fmt.Errorf("invalid --month %q, expected YYYY-MM", o.Month)
	}
	return timeutil.MonthKey(t), nil
}
