package teaui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moodymap/pkg/app"
	"tableflip.dev/moodymap/pkg/journal"
	"tableflip.dev/moodymap/pkg/mood"
	"tableflip.dev/moodymap/pkg/runner/tea/internal/calendar"
	"tableflip.dev/moodymap/pkg/runner/tea/internal/theme"
	"tableflip.dev/moodymap/pkg/store"
	"tableflip.dev/moodymap/pkg/timeutil"
)

const (
	helpCalendar = "←/→/↑/↓ move, [/] month, enter open, q quit"
	helpViewing  = "e edit, esc close"
	helpForm     = "↑/↓ mood ±1, pgup/pgdn ±10, type a note, enter save, esc cancel"
)

// Model contains UI state. The day-detail state machine lives in the
// Service; the model only tracks the cursor and the note being typed.
type Model struct {
	svc   *app.Service
	ctx   context.Context
	watch <-chan store.Event

	cursor string
	input  textinput.Model
	status string
	err    bool

	theme      theme.Theme
	termWidth  int
	termHeight int
}

// messages
type errMsg struct{ err error }
type journalChangedMsg struct{ ev store.Event }

// New creates a new UI model backed by the Service. watch may be nil.
func New(ctx context.Context, svc *app.Service, watch <-chan store.Event) Model {
	ti := textinput.New()
	ti.Placeholder = "How did the day go?"
	ti.CharLimit = 512
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	if ctx == nil {
		ctx = context.Background()
	}
	m := Model{
		svc:   svc,
		ctx:   ctx,
		watch: watch,
		input: ti,
		theme: theme.Default(),
	}
	if svc != nil {
		m.cursor = svc.Today()
	}
	return m
}

// Init starts listening for journal changes.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m Model) waitForChange() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	ch := m.watch
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return journalChangedMsg{ev}
	}
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case errMsg:
		m.setError(msg.err)
	case journalChangedMsg:
		if msg.ev.Type == store.EventWatchError {
			slog.Debug("journal watch error", "err", msg.ev.Err)
		} else {
			if m.svc.Reload(m.ctx) {
				m.setStatus("Journal reloaded")
			}
		}
		cmds = append(cmds, m.waitForChange())
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.svc.Detail().Mode {
		case app.ModeClosed:
			cmds = append(cmds, m.updateCalendar(msg))
		case app.ModeViewing:
			cmds = append(cmds, m.updateViewing(msg))
		case app.ModeCreating, app.ModeEditing:
			cmds = append(cmds, m.updateForm(msg))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateCalendar(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "q", "esc":
		return tea.Quit
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "up", "k":
		m.moveCursor(-7)
	case "down", "j":
		m.moveCursor(7)
	case "[":
		m.shiftMonth(-1)
	case "]":
		m.shiftMonth(1)
	case "t":
		m.cursor = m.svc.Today()
		_ = m.svc.SetVisibleMonth(timeutil.MonthKeyOf(m.cursor))
	case "enter", "space":
		if m.svc.ClickDay(m.cursor) {
			return m.openForm()
		}
		m.setStatus("Future days can not be recorded")
	}
	return nil
}

func (m *Model) updateViewing(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q":
		m.svc.Cancel()
		m.setStatus("")
	case "e", "enter":
		if err := m.svc.StartEdit(); err != nil {
			m.setError(err)
			return nil
		}
		return m.openForm()
	}
	return nil
}

func (m *Model) updateForm(msg tea.KeyPressMsg) tea.Cmd {
	form := m.svc.Detail().Form
	switch msg.String() {
	case "esc":
		m.svc.Cancel()
		m.closeForm()
		m.setStatus("Cancelled")
		return nil
	case "enter":
		form.Note = m.input.Value()
		e, err := m.svc.Save(m.ctx, form)
		if err != nil {
			m.setError(err)
			return nil
		}
		m.closeForm()
		m.setStatus(fmt.Sprintf("Saved %s: %s", e.Date, e.Label()))
		return nil
	case "up":
		m.adjustMood(form, 1)
		return nil
	case "down":
		m.adjustMood(form, -1)
		return nil
	case "pgup":
		m.adjustMood(form, 10)
		return nil
	case "pgdown":
		m.adjustMood(form, -10)
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	form.Note = m.input.Value()
	_ = m.svc.SetForm(form)
	return cmd
}

func (m *Model) adjustMood(form journal.Payload, delta int) {
	form.Mood = float64(mood.Normalize(form.Mood + float64(delta)))
	form.Note = m.input.Value()
	_ = m.svc.SetForm(form)
}

func (m *Model) openForm() tea.Cmd {
	d := m.svc.Detail()
	if !d.Mode.IsForm() {
		m.setStatus("")
		return nil
	}
	m.input.SetValue(d.Form.Note)
	m.input.CursorEnd()
	m.setStatus("")
	return m.input.Focus()
}

func (m *Model) closeForm() {
	m.input.Reset()
	m.input.Blur()
}

// moveCursor moves the selection by delta days, following it across month
// boundaries. Future days can not be selected.
func (m *Model) moveCursor(delta int) {
	loc := m.svc.Now().Location()
	cur, err := timeutil.ParseDateKey(m.cursor, loc)
	if err != nil {
		cur, _ = timeutil.ParseDateKey(m.svc.Today(), loc)
	}
	next := timeutil.DateKey(cur.AddDate(0, 0, delta))
	if timeutil.IsFuture(next, m.svc.Now()) {
		return
	}
	m.cursor = next
	_ = m.svc.SetVisibleMonth(timeutil.MonthKeyOf(next))
}

// shiftMonth pages the calendar, keeping the day of month where possible
// and pulling the cursor back to today when it would land in the future.
func (m *Model) shiftMonth(delta int) {
	m.svc.ShiftMonth(delta)
	loc := m.svc.Now().Location()
	start, err := timeutil.MonthStart(m.svc.VisibleMonth(), loc)
	if err != nil {
		return
	}
	day := 1
	if cur, err := timeutil.ParseDateKey(m.cursor, loc); err == nil {
		day = cur.Day()
	}
	if n := timeutil.DaysIn(start); day > n {
		day = n
	}
	next := timeutil.DateKey(time.Date(start.Year(), start.Month(), day, 0, 0, 0, 0, loc))
	if timeutil.IsFuture(next, m.svc.Now()) {
		next = m.svc.Today()
		if timeutil.MonthKeyOf(next) != m.svc.VisibleMonth() {
			// Whole month is in the future; nothing to select.
			next = timeutil.DateKey(start)
		}
	}
	m.cursor = next
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.err = false
}

func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	m.status = "ERR: " + err.Error()
	m.err = true
	if errors.Is(err, app.ErrInvalidTransition) {
		slog.Debug("ignored ui event", "err", err)
	}
}

// View renders the calendar, the open day and the status line.
func (m Model) View() string {
	if m.svc == nil {
		return ""
	}
	month := m.svc.VisibleMonth()
	header := m.theme.Title.Render(timeutil.FormatMonthKey(month, nil))

	sum := m.svc.VisibleSummary()
	summary := "No days logged"
	if sum.AverageMood != nil {
		summary = fmt.Sprintf("%d logged · average %d", sum.TotalDays, *sum.AverageMood)
		if c, ok := sum.Marker(); ok {
			summary = m.theme.Summary.Render(fmt.Sprintf("%d logged · average ", sum.TotalDays)) +
				lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Bold(true).Render(fmt.Sprintf("%d", *sum.AverageMood))
		}
	} else {
		summary = m.theme.Summary.Render(summary)
	}

	left := lipgloss.JoinVertical(lipgloss.Left, header, m.renderCalendar(month), "", summary)
	body := left
	if panel := m.renderDetail(); panel != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", panel)
	}

	help := helpCalendar
	switch m.svc.Detail().Mode {
	case app.ModeViewing:
		help = helpViewing
	case app.ModeCreating, app.ModeEditing:
		help = helpForm
	}
	footer := m.theme.Footer.Help.Render(help)
	if m.status != "" {
		style := m.theme.Footer.Status
		if m.err {
			style = m.theme.Footer.Error
		}
		footer = style.Render(m.status) + "\n" + footer
	}
	return body + "\n\n" + footer
}

func (m Model) renderCalendar(month string) string {
	descs, err := m.svc.Days(month)
	if err != nil || len(descs) == 0 {
		return ""
	}
	days := make([]calendar.Day, 0, len(descs))
	for _, d := range descs {
		day := calendar.Day{
			Day:        d.Day,
			IsToday:    d.IsToday,
			IsFuture:   d.IsFuture,
			IsSelected: d.DateKey == m.cursor,
		}
		if d.Marker != nil && d.Tint != nil {
			day.Marker = d.Marker.Hex()
			day.Tint = d.Tint.Hex()
		}
		days = append(days, day)
	}
	start, err := timeutil.MonthStart(month, m.svc.Now().Location())
	if err != nil {
		return ""
	}
	return calendar.Render(start, days, m.theme.Calendar)
}

func (m Model) renderDetail() string {
	d := m.svc.Detail()
	if d.Mode == app.ModeClosed {
		return ""
	}
	t := m.theme.Detail

	title := d.Date
	if day, err := timeutil.ParseDateKey(d.Date, m.svc.Now().Location()); err == nil {
		title = day.Format("Monday, January 2, 2006")
	}

	lines := []string{t.Title.Render(title)}
	switch d.Mode {
	case app.ModeViewing:
		if d.Entry == nil {
			break
		}
		lines = append(lines, t.Label.Render("Mood Score: ")+m.score(d.Entry.Mood))
		if d.Entry.Note == "" {
			lines = append(lines, t.Empty.Render("No details saved for this day yet."))
		} else {
			lines = append(lines, d.Entry.Note)
		}
	case app.ModeCreating, app.ModeEditing:
		verb := "New entry"
		if d.Mode == app.ModeEditing {
			verb = "Editing"
		}
		lines = append(lines,
			t.Label.Render(verb),
			t.Label.Render("Mood: ")+m.score(mood.Normalize(d.Form.Mood))+" "+m.meter(mood.Normalize(d.Form.Mood)),
			t.Label.Render("Note: ")+m.input.View(),
		)
	}
	return t.Panel.Render(strings.Join(lines, "\n"))
}

func (m Model) score(v int) string {
	c := mood.ColorFor(v)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Bold(true).Render(fmt.Sprintf("%d", v))
}

// meter draws a ten-step bar for v.
func (m Model) meter(v int) string {
	filled := (v + 5) / 10
	c := mood.ColorFor(v)
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(strings.Repeat("█", filled))
	return bar + m.theme.Detail.Label.Render(strings.Repeat("░", 10-filled))
}
