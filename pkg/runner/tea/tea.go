package teaui

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/moodymap/pkg/app"
	"tableflip.dev/moodymap/pkg/store"
)

// Run launches the Bubble Tea UI. When p supports watching, the calendar
// reloads whenever another process saves the journal.
func Run(ctx context.Context, svc *app.Service, p store.Persistence) error {
	if svc == nil {
		return errors.New("ui requires a journal")
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var watch <-chan store.Event
	if p != nil {
		ch, err := p.Watch(ctx)
		switch {
		case err == nil:
			watch = ch
		case errors.Is(err, store.ErrWatchUnsupported):
		default:
			slog.Warn("journal changes from other processes will not be shown", "err", err)
		}
	}

	prog := tea.NewProgram(New(ctx, svc, watch), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
