// Package tui runs the command palette in a terminal. Hosts configure a
// palette.Registry and call Run; the chosen command comes back to the host,
// which decides how to invoke it.
package tui

import (
	"io"
	"os"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"

	"github.com/oakwood-commons/cmdpal/internal/ui"
	"github.com/oakwood-commons/cmdpal/pkg/palette"
)

// defaultFallbackTermWidth is used when terminal size cannot be detected.
const defaultFallbackTermWidth = 120

// DetectTerminalSize returns the best-effort terminal width and height by querying
// stdout, stderr, and stdin, then falling back to the COLUMNS environment variable.
// If detection fails completely, returns (120, 24).
func DetectTerminalSize() (width int, height int) {
	fds := []uintptr{os.Stdout.Fd(), os.Stderr.Fd(), os.Stdin.Fd()}
	for _, fd := range fds {
		if w, h, err := term.GetSize(int(fd)); err == nil && (w > 0 || h > 0) {
			return w, h
		}
	}
	if col := os.Getenv("COLUMNS"); col != "" {
		if w, err := strconv.Atoi(col); err == nil && w > 0 {
			return w, 0
		}
	}
	return defaultFallbackTermWidth, 24
}

// Run opens a session on reg and shows it until the user executes a command
// or dismisses the palette. It returns the chosen command, or nil when the
// palette was dismissed. Open errors (palette.ErrSetupMissing,
// palette.ErrNoCommandsConfigured, palette.ErrAlreadyOpen) are returned
// unchanged.
//
// Extra ProgramOptions (e.g. WithIO) are passed to tea.NewProgram.
func Run(reg *palette.Registry, cfg Config, opts ...tea.ProgramOption) (*palette.Command, error) {
	s, err := palette.Open(reg, palette.WithShowIcons(cfg.ShowIcons))
	if err != nil {
		return nil, err
	}
	if cfg.TermWidth > 0 || cfg.TermHeight > 0 {
		w, h := cfg.TermWidth, cfg.TermHeight
		if w <= 0 || h <= 0 {
			dw, dh := DetectTerminalSize()
			if w <= 0 {
				w = dw
			}
			if h <= 0 {
				h = dh
			}
		}
		opts = append([]tea.ProgramOption{tea.WithWindowSize(w, h)}, opts...)
	}
	return ui.Run(s, cfg.options(), opts...)
}

// RenderSnapshot draws the first frame of the palette for the commands in
// reg without taking a terminal. The registry open flag is not touched.
func RenderSnapshot(reg *palette.Registry, cfg Config) string {
	s := palette.NewSession(reg.List(), palette.WithShowIcons(cfg.ShowIcons))
	return ui.Snapshot(s, cfg.options(), cfg.TermWidth, cfg.TermHeight)
}

// WithIO returns tea.ProgramOptions to set custom input/output.
func WithIO(in io.Reader, out io.Writer) []tea.ProgramOption {
	opts := []tea.ProgramOption{}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}
	return opts
}
