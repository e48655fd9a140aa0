package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodymap/pkg/commands/options"
	"tableflip.dev/moodymap/pkg/printers"
	"tableflip.dev/moodymap/pkg/runner/record"
)

func addRecord(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	mo := &options.MoodOptions{}

	cmd := &cobra.Command{
		Use:   "record [note]",
		Short: "Record the mood for a day.",
		Long: options.Wrap80("Record or update the mood score and note for a day. " +
			"Scores are rounded to a whole number and clamped to 0..100. " +
			"Days in the future can not be recorded."),
		Example: `
moodymap record --mood 72 --note "long walk"
moodymap record --on 2024-05-10 --mood 40 rough day at work
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			date, err := on.GetOn(time.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			svc, _, _, err := openJournal(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			r := record.Record{
				Date:    date,
				Payload: mo.Payload(args),
				JSON:    oo.JSON,
				Service: svc,
				Printer: printers.New(cmd.OutOrStdout()),
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddMoodArgs(cmd, mo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
