package ui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/oakwood-commons/cmdpal/pkg/palette"
)

// Run drives s in a Bubble Tea program until the user executes a command or
// dismisses the palette. It returns the chosen command, or nil when
// dismissed. The session is closed on return.
func Run(s *palette.Session, opts Options, progOpts ...tea.ProgramOption) (*palette.Command, error) {
	m := NewModel(s, opts)
	defer s.Close()
	if _, err := tea.NewProgram(m, progOpts...).Run(); err != nil {
		return nil, err
	}
	return m.Chosen(), nil
}

// Snapshot renders s once, as the first frame of Run would look in a
// terminal of the given size. Zero sizes leave the panel at its configured
// dimensions.
func Snapshot(s *palette.Session, opts Options, width, height int) string {
	m := NewModel(s, opts)
	if width > 0 || height > 0 {
		m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	}
	s.Flush(m)
	return m.renderPanel()
}
