package tui

import (
	"github.com/oakwood-commons/cmdpal/internal/config"
	"github.com/oakwood-commons/cmdpal/internal/ui"
)

// Config holds host-provided settings for running the palette. Zero Title,
// Width and MaxHeight fall back to DefaultConfig; ShowIcons false is honored,
// so hosts wanting icons should start from DefaultConfig.
type Config struct {
	Title     string
	Border    string // single, double, rounded, solid or shadow
	Width     int    // panel width in columns
	MaxHeight int    // maximum visible command rows
	ShowIcons bool
	KeyMode   string // default, emacs or vim
	NoColor   bool
	// Query pre-fills the filter input.
	Query string
	// TermWidth and TermHeight fix the terminal size instead of detecting it.
	TermWidth  int
	TermHeight int
}

// DefaultConfig returns the window defaults shipped with cmdpal.
func DefaultConfig() Config {
	def, err := config.Default()
	if err != nil {
		return Config{
			Title:     " Commands ",
			Border:    string(config.BorderRounded),
			Width:     60,
			MaxHeight: 20,
			ShowIcons: true,
			KeyMode:   string(config.KeyModeDefault),
		}
	}
	return FromUIConfig(def.UI)
}

// FromUIConfig converts loaded window settings.
func FromUIConfig(c config.UIConfig) Config {
	return Config{
		Title:     c.Title,
		Border:    string(c.Border),
		Width:     c.Width,
		MaxHeight: c.MaxHeight,
		ShowIcons: c.ShowIcons,
		KeyMode:   string(c.KeyMode),
		NoColor:   c.NoColor,
	}
}

// options fills zero fields from the defaults and resolves names.
func (c Config) options() ui.Options {
	def := DefaultConfig()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.MaxHeight <= 0 {
		c.MaxHeight = def.MaxHeight
	}
	border, ok := config.NormalizeBorder(c.Border)
	if !ok {
		border = config.BorderRounded
	}
	keyMode, ok := config.NormalizeKeyMode(c.KeyMode)
	if !ok {
		keyMode = config.KeyModeDefault
	}
	return ui.Options{
		Title:     c.Title,
		Border:    border,
		Width:     c.Width,
		MaxHeight: c.MaxHeight,
		KeyMode:   keyMode,
		NoColor:   c.NoColor,
		Query:     c.Query,
	}
}
