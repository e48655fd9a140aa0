package commands

import (
	"github.com/spf13/cobra"

	teaui "tableflip.dev/moodymap/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive mood calendar",
		Example: `
moodymap ui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, p, _, err := openJournal(cmd.Context())
			if err != nil {
				return err
			}
			return teaui.Run(cmd.Context(), svc, p)
		},
	}

	topLevel.AddCommand(cmd)
}
