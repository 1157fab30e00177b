// Package ui draws a palette session as a floating Bubble Tea panel.
package ui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/cmdpal/internal/config"
	"github.com/oakwood-commons/cmdpal/pkg/palette"
)

// Lines around the row list: query, rule, rule, description.
const chromeLines = 4

const minPanelWidth = 16

// Options configure the panel.
type Options struct {
	Title     string
	Border    config.Border
	Width     int
	MaxHeight int // visible command rows
	KeyMode   config.KeyMode
	NoColor   bool
	// Query seeds the input before the first render.
	Query string
}

// OptionsFromConfig copies the window settings out of a loaded config.
func OptionsFromConfig(c config.UIConfig) Options {
	return Options{
		Title:     c.Title,
		Border:    c.Border,
		Width:     c.Width,
		MaxHeight: c.MaxHeight,
		KeyMode:   c.KeyMode,
		NoColor:   c.NoColor,
	}
}

// flushMsg asks the model to draw the session's pending state.
type flushMsg struct{}

// Model is the Bubble Tea model for one palette session. It implements
// palette.Renderer: the session pushes views into it on flush.
type Model struct {
	session *palette.Session
	input   textinput.Model
	keys    KeyMap
	opts    Options
	theme   Theme
	border  lipgloss.Border

	termWidth  int
	termHeight int

	view         palette.View
	flushPending bool

	chosen *palette.Command
	done   bool
}

var _ palette.Renderer = (*Model)(nil)

// NewModel wraps s. The session should be fresh; the model owns it until
// the program exits.
func NewModel(s *palette.Session, opts Options) *Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type to filter"
	ti.CharLimit = 256
	ti.SetWidth(max(opts.Width-2-len(ti.Prompt)-1, 1))
	ti.Focus()

	m := &Model{
		session: s,
		input:   ti,
		keys:    KeyMapFor(opts.KeyMode),
		opts:    opts,
		theme:   DefaultTheme(),
		border:  borderFor(opts.Border),
	}
	if opts.Query != "" {
		m.input.SetValue(opts.Query)
		m.session.SetQuery(opts.Query)
	}
	return m
}

// Render stores v for the next View call.
func (m *Model) Render(v palette.View) {
	m.view = v
}

// Chosen returns the command picked with execute, or nil if the palette was
// dismissed.
func (m *Model) Chosen() *palette.Command {
	return m.chosen
}

// LastView returns the most recently flushed view.
func (m *Model) LastView() palette.View {
	return m.view
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.scheduleFlush())
}

// scheduleFlush returns a command delivering flushMsg after the current
// update. Several changes inside one update share a single flush.
func (m *Model) scheduleFlush() tea.Cmd {
	if m.flushPending || !m.session.Dirty() {
		return nil
	}
	m.flushPending = true
	return func() tea.Msg { return flushMsg{} }
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.input.SetWidth(max(m.panelWidth()-2-len(m.input.Prompt)-1, 1))
		return m, nil
	case flushMsg:
		m.flushPending = false
		m.session.Flush(m)
		return m, nil
	case tea.KeyPressMsg:
		switch m.keys.Lookup(msg.String()) {
		case KeyActionNext:
			m.session.Next()
			return m, m.scheduleFlush()
		case KeyActionPrev:
			m.session.Prev()
			return m, m.scheduleFlush()
		case KeyActionExecute:
			cmd, ok := m.session.ExecuteSelected()
			if !ok {
				return m, nil
			}
			m.chosen = &cmd
			m.done = true
			return m, tea.Quit
		case KeyActionClose:
			m.session.Close()
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q := m.input.Value(); q != m.session.Query() {
		m.session.SetQuery(q)
	}
	return m, tea.Batch(cmd, m.scheduleFlush())
}

func (m *Model) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	v := tea.NewView(m.renderPanel())
	v.AltScreen = true
	return v
}

func (m *Model) panelWidth() int {
	w := m.opts.Width
	if m.termWidth > 0 && w > m.termWidth {
		w = m.termWidth
	}
	return max(w, minPanelWidth)
}

// maxRows is the number of command rows shown at once: MaxHeight, reduced
// so the whole panel fits the terminal.
func (m *Model) maxRows() int {
	rows := m.opts.MaxHeight
	if fit := m.termHeight - chromeLines - 2; m.termHeight > 0 && rows > fit {
		rows = fit
	}
	return max(rows, 1)
}

func (m *Model) renderPanel() string {
	width := m.panelWidth()
	inner := width - 2

	rule := repeatToWidth("─", inner)
	muted := func(s string) string { return s }
	selected := muted
	if !m.opts.NoColor {
		muted = painter(lipgloss.NewStyle().Foreground(m.theme.MutedFG))
		selected = painter(lipgloss.NewStyle().
			Foreground(m.theme.SelectedFG).
			Background(m.theme.SelectedBG))
	}

	lines := []string{m.input.View(), muted(rule)}

	rows := m.view.Rows
	start, end := visibleWindow(len(rows), m.view.Selected-1, m.maxRows())
	for i := start; i < end; i++ {
		line := fitLine(rows[i], inner)
		switch {
		case m.view.Empty:
			line = muted(line)
		case i == m.view.Selected-1:
			line = selected(line)
		}
		lines = append(lines, line)
	}

	lines = append(lines, muted(rule))
	desc := m.view.Description
	if m.view.Empty || desc == palette.NoDescriptionText {
		desc = muted(fitLine(desc, inner))
	} else {
		desc = fitLine(desc, inner)
	}
	lines = append(lines, desc)

	height := len(lines) + 2
	return panelWithTitle(m.opts.Title, strings.Join(lines, "\n"), width, height, m.border, m.opts.NoColor, m.theme)
}
