package info

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"tableflip.dev/moodymap/pkg/app"
	"tableflip.dev/moodymap/pkg/store"
	"tableflip.dev/moodymap/pkg/timeutil"
)

// Info reports where the journal lives and what it holds.
type Info struct {
	Config  store.Config
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(_ context.Context) error {
	out := n.Out
	if out == nil {
		out = os.Stdout
	}

	if override := os.Getenv(store.ConfigPathEnv); override != "" {
		_, _ = fmt.Fprintln(out, store.ConfigPathEnv, "found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, store.ConfigPathEnv, "env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path:", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.log_level:", n.Config.LogLevel())
	if f := store.ConfigFile(n.Config); f != "" {
		_, _ = fmt.Fprintln(out, "Config file:", f)
	}
	_, _ = fmt.Fprintln(out, "Journal file:", filepath.Join(n.Config.BasePath(), store.Key))

	if n.Service == nil {
		return fmt.Errorf("failed to open the journal")
	}

	doc := n.Service.Journal()
	_, _ = fmt.Fprintf(out, "Version: %d\n", doc.Version)
	_, _ = fmt.Fprintf(out, "Last updated: %s\n", doc.LastUpdated)

	_, _ = fmt.Fprintln(out, "Months:")
	counts := map[string]int{}
	months := []string{}
	for _, d := range doc.Dates() {
		m := timeutil.MonthKeyOf(d)
		if counts[m] == 0 {
			months = append(months, m)
		}
		counts[m]++
	}
	if len(months) == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", "no entries")
	}
	for _, m := range months {
		_, _ = fmt.Fprintf(out, "  %s  %d\n", m, counts[m])
	}
	return nil
}
