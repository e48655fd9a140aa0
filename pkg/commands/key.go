package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodymap/pkg/printers"
	"tableflip.dev/moodymap/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	k := key.Key{}
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the mood colour legend.",
		Example: `
moodymap key
moodymap key --step 5
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k.Printer = printers.New(cmd.OutOrStdout())
			return k.Do(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&k.Step, "step", 10, "Score step between legend rows.")

	topLevel.AddCommand(cmd)
}
