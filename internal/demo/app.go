// Package demo is the interactive toastkit showcase: an event log with one
// reusable toast sliding over it.
package demo

import (
	"fmt"
	"log/slog"
	"strings"

	"toastkit/internal/toast"
	"toastkit/internal/ui"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Default terminal size assumed until the first tea.WindowSizeMsg.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configures the demo text. Empty fields fall back to defaults.
type Options struct {
	Title    string
	Subtitle string
	Logger   *slog.Logger
}

// Model is the root demo model.
type Model struct {
	keys    ui.KeyMap
	help    help.Model
	log     viewport.Model
	surface *ui.Surface
	toast   *toast.Toast
	logger  *slog.Logger

	title    string
	subtitle string
	events   []entry
	width    int
	height   int
}

// Ensure Model implements tea.Model.
var _ tea.Model = (*Model)(nil)

// New creates the demo around t, which should already carry the configured
// appearance. New owns t's lifecycle handlers from here on.
func New(t *toast.Toast, opts Options) *Model {
	if opts.Title == "" {
		opts.Title = "Saved"
	}
	if opts.Subtitle == "" {
		opts.Subtitle = "Your changes are safe"
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	m := &Model{
		keys:     ui.DefaultKeyMap(),
		help:     ui.NewHelp(),
		log:      viewport.New(0, 0),
		surface:  ui.NewSurface(defaultWidth, defaultHeight),
		toast:    t,
		logger:   opts.Logger,
		title:    opts.Title,
		subtitle: opts.Subtitle,
	}
	t.On(toast.ShowStart, func() { m.record(toast.ShowStart) }).
		On(toast.ShowEnd, func() { m.record(toast.ShowEnd) }).
		On(toast.HideStart, func() { m.record(toast.HideStart) }).
		On(toast.HideEnd, func() { m.record(toast.HideEnd) })
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Toast returns the hosted toast.
func (m *Model) Toast() *toast.Toast { return m.toast }

// entry is one line of the event log.
type entry struct {
	text string
	busy bool
}

// Events returns the lifecycle log, oldest first.
func (m *Model) Events() []string {
	out := make([]string, len(m.events))
	for i, e := range m.events {
		out[i] = e.text
	}
	return out
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toast):
			cmds = append(cmds, m.show(func(t *toast.Toast) {
				t.WithText(m.title, m.subtitle).WithLayout(toast.TitleAndSubtitle).WithImage(nil)
			}))
		case key.Matches(msg, m.keys.TitleOnly):
			cmds = append(cmds, m.show(func(t *toast.Toast) {
				t.WithText(m.title, m.subtitle).WithLayout(toast.TitleOnly).WithImage(nil)
			}))
		case key.Matches(msg, m.keys.Image):
			cmds = append(cmds, m.show(func(t *toast.Toast) {
				t.WithText(m.title, m.subtitle).WithLayout(toast.TitleAndSubtitle).WithImage(Checkmark(16))
			}))
		case key.Matches(msg, m.keys.Spinner):
			cmds = append(cmds, m.show(func(t *toast.Toast) {
				t.WithText("Working", "").WithLayout(toast.TitleOnly).WithAccessory(NewSpinnerView())
			}))
		case key.Matches(msg, m.keys.Hide):
			cmds = append(cmds, m.toast.Hide())
		}
	}

	cmds = append(cmds, m.toast.Update(msg))

	var cmd tea.Cmd
	m.log, cmd = m.log.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// show reconfigures the toast and shows it. While a toast is on screen the
// key is only logged.
func (m *Model) show(configure func(*toast.Toast)) tea.Cmd {
	if !m.toast.IsHidden() {
		m.logger.Debug("toast busy", "phase", m.toast.Phase())
		m.append(entry{text: fmt.Sprintf("busy (%s)", m.toast.Phase()), busy: true})
		return nil
	}
	configure(m.toast)
	return m.toast.Show(m.surface)
}

func (m *Model) record(ev toast.Event) {
	m.logger.Info("toast event", "event", ev, "toast", m.toast.ID())
	m.append(entry{text: ev.String()})
}

func (m *Model) append(e entry) {
	m.events = append(m.events, e)
	m.log.SetContent(m.renderEvents())
	m.log.GotoBottom()
}

func (m *Model) renderEvents() string {
	if len(m.events) == 0 {
		return ui.Styles.Empty.Render("No toast events yet")
	}
	var b strings.Builder
	for i, ev := range m.events {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(ui.Styles.Muted.Render(fmt.Sprintf("%3d ", i+1)))
		style := ui.Styles.Event
		if ev.busy {
			style = ui.Styles.Busy
		}
		b.WriteString(style.Render(ev.text))
	}
	return b.String()
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.surface.Resize(width, height)
	m.help.Width = width

	// title + help rows, plus box border and padding
	m.log.Width = max(1, width-4)
	m.log.Height = max(1, height-4)
	m.log.SetContent(m.renderEvents())
}

// View implements tea.Model.
func (m *Model) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		ui.Styles.Title.Render("toastkit"),
		ui.Styles.Box.Render(m.log.View()),
		m.help.View(m.keys),
	)
	return m.surface.Compose(body)
}
