package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/moodymap/pkg/app"
	"tableflip.dev/moodymap/pkg/commands/options"
	"tableflip.dev/moodymap/pkg/store"
)

var (
	oo      = &options.OutputOptions{}
	verbose bool
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "moodymap",
		Short: options.Wrap80("Track how each day felt and see the month as a colour-coded calendar."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addRecord(topLevel)
	addGet(topLevel)
	addShow(topLevel)
	addSummary(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// setupLogging installs the default slog logger on stderr. Configuration
// errors are left for the command itself to report.
func setupLogging() {
	level := slog.LevelWarn
	if cfg, err := store.LoadConfig(); err == nil {
		level = cfg.LogLevel()
	}
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// openJournal loads the configured store and opens a session on it.
func openJournal(ctx context.Context) (*app.Service, store.Persistence, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	p, err := store.Load(cfg, store.WithLogger(slog.Default()))
	if err != nil {
		return nil, nil, nil, err
	}
	svc, err := app.New(ctx, p)
	if err != nil {
		return nil, nil, nil, err
	}
	return svc, p, cfg, nil
}
