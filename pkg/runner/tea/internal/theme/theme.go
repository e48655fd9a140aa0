package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moodymap/pkg/runner/tea/internal/calendar"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Title    lipgloss.Style
	Summary  lipgloss.Style
	Calendar calendar.Options
	Detail   DetailTheme
	Footer   FooterTheme
}

// DetailTheme groups styles used by the day panel.
type DetailTheme struct {
	Panel lipgloss.Style
	Title lipgloss.Style
	Label lipgloss.Style
	Empty lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Summary: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Calendar: calendar.Options{
			HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			EmptyStyle:    lipgloss.NewStyle(),
			EntryStyle:    lipgloss.NewStyle().Bold(true),
			FutureStyle:   lipgloss.NewStyle().Faint(true),
			TodayStyle:    lipgloss.NewStyle().Underline(true),
			SelectedStyle: lipgloss.NewStyle().Reverse(true),
			ShowHeader:    true,
		},
		Detail: DetailTheme{
			Panel: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(40),
			Title: lipgloss.NewStyle().Bold(true),
			Label: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Empty: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
	}
}
