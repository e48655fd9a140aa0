package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodymap/pkg/commands/options"
	"tableflip.dev/moodymap/pkg/printers"
	"tableflip.dev/moodymap/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the entry for a day.",
		Example: `
moodymap get
moodymap get --on 3/14 --json
`,
		Args: cobra.NoArgs,
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
			g := get.Get{
				Date:    date,
				JSON:    oo.JSON,
				Service: svc,
				Printer: printers.New(cmd.OutOrStdout()),
			}
			return oo.HandleError(g.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
