package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodymap/pkg/commands/options"
	"tableflip.dev/moodymap/pkg/printers"
	"tableflip.dev/moodymap/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"month", "calendar"},
		Short:   "Show a month as a mood calendar.",
		Example: `
moodymap show
moodymap show --month 2024-05
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, mo, false)
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addSummary(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize the days logged in a month.",
		Example: `
moodymap summary --month 2024-05 --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, mo, true)
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, mo *options.MonthOptions, summaryOnly bool) error {
	cmd.SilenceUsage = true
	month, err := mo.GetMonth(time.Now())
	if err != nil {
		return oo.HandleError(err)
	}
	svc, _, _, err := openJournal(cmd.Context())
	if err != nil {
		return oo.HandleError(err)
	}
	s := show.Show{
		Month:       month,
		SummaryOnly: summaryOnly,
		JSON:        oo.JSON,
		Service:     svc,
		Printer:     printers.New(cmd.OutOrStdout()),
	}
	return oo.HandleError(s.Do(cmd.Context()))
}
