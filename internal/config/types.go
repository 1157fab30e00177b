// Package config loads the cmdpal configuration: embedded defaults
// deep-merged with an optional user YAML or TOML file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oakwood-commons/cmdpal/pkg/palette"
)

// ErrInvalidConfig is returned when a merged configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Border is the frame style of the palette window.
type Border string

const (
	BorderSingle  Border = "single"
	BorderDouble  Border = "double"
	BorderRounded Border = "rounded"
	BorderSolid   Border = "solid"
	BorderShadow  Border = "shadow"
)

// ValidBorders lists the accepted border styles.
var ValidBorders = []Border{BorderSingle, BorderDouble, BorderRounded, BorderSolid, BorderShadow}

// NormalizeBorder maps aliases and case variants onto a Border. The second
// result is false for unknown values.
func NormalizeBorder(val string) (Border, bool) {
	switch strings.TrimSpace(strings.ToLower(val)) {
	case "single", "normal", "square":
		return BorderSingle, true
	case "double":
		return BorderDouble, true
	case "rounded", "round":
		return BorderRounded, true
	case "solid", "thick":
		return BorderSolid, true
	case "shadow":
		return BorderShadow, true
	default:
		return "", false
	}
}

// KeyMode selects the navigation key set.
type KeyMode string

const (
	KeyModeDefault KeyMode = "default"
	KeyModeEmacs   KeyMode = "emacs"
	KeyModeVim     KeyMode = "vim"
)

// ValidKeyModes lists the accepted key modes.
var ValidKeyModes = []KeyMode{KeyModeDefault, KeyModeEmacs, KeyModeVim}

// NormalizeKeyMode maps case variants onto a KeyMode. The second result is
// false for unknown values.
func NormalizeKeyMode(val string) (KeyMode, bool) {
	mode := KeyMode(strings.TrimSpace(strings.ToLower(val)))
	for _, m := range ValidKeyModes {
		if m == mode {
			return m, true
		}
	}
	return "", false
}

// IsValidKeyMode reports whether mode names a known key mode, ignoring case.
func IsValidKeyMode(mode string) bool {
	_, ok := NormalizeKeyMode(mode)
	return ok
}

// Config is the merged configuration.
type Config struct {
	Commands []CommandConfig `yaml:"commands" json:"commands" toml:"commands"`
	UI       UIConfig        `yaml:"ui" json:"ui" toml:"ui"`
}

// UIConfig holds the window options.
type UIConfig struct {
	Border    Border  `yaml:"border" json:"border" toml:"border"`
	Width     int     `yaml:"width" json:"width" toml:"width"`
	// MaxHeight caps the visible command rows; the panel adds its chrome.
	MaxHeight int     `yaml:"max_height" json:"max_height" toml:"max_height"`
	Title     string  `yaml:"title" json:"title" toml:"title"`
	ShowIcons bool    `yaml:"show_icons" json:"show_icons" toml:"show_icons"`
	KeyMode   KeyMode `yaml:"key_mode" json:"key_mode" toml:"key_mode"`
	NoColor   bool    `yaml:"no_color" json:"no_color" toml:"no_color"`
}

// CommandConfig is a command as written in a config file. Only literal
// actions can be expressed in a file; callbacks are registered from Go.
type CommandConfig struct {
	Name        string `yaml:"name" json:"name" toml:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`
	Category    string `yaml:"category,omitempty" json:"category,omitempty" toml:"category,omitempty"`
	Icon        string `yaml:"icon,omitempty" json:"icon,omitempty" toml:"icon,omitempty"`
	Action      string `yaml:"action" json:"action" toml:"action"`
}

// Command converts c into a palette command with a literal action.
func (c CommandConfig) Command() palette.Command {
	cmd := palette.Command{
		Name:        c.Name,
		Description: c.Description,
		Category:    c.Category,
		Icon:        c.Icon,
	}
	if c.Action != "" {
		cmd.Action = palette.Literal(c.Action)
	}
	return cmd
}

// PaletteCommands converts every configured command, in order.
func (c Config) PaletteCommands() []palette.Command {
	out := make([]palette.Command, 0, len(c.Commands))
	for _, cc := range c.Commands {
		out = append(out, cc.Command())
	}
	return out
}

// Validate checks the window options and every command.
func (c *Config) Validate() error {
	border, ok := NormalizeBorder(string(c.UI.Border))
	if !ok {
		return fmt.Errorf("%w: ui.border %q (want one of %v)", ErrInvalidConfig, c.UI.Border, ValidBorders)
	}
	c.UI.Border = border
	if c.UI.Width <= 0 {
		return fmt.Errorf("%w: ui.width must be positive, got %d", ErrInvalidConfig, c.UI.Width)
	}
	if c.UI.MaxHeight <= 0 {
		return fmt.Errorf("%w: ui.max_height must be positive, got %d", ErrInvalidConfig, c.UI.MaxHeight)
	}
	keyMode, ok := NormalizeKeyMode(string(c.UI.KeyMode))
	if !ok {
		return fmt.Errorf("%w: ui.key_mode %q (want one of %v)", ErrInvalidConfig, c.UI.KeyMode, ValidKeyModes)
	}
	c.UI.KeyMode = keyMode
	for i, cc := range c.Commands {
		if err := cc.Command().Validate(); err != nil {
			return fmt.Errorf("%w: commands[%d]: %w", ErrInvalidConfig, i, err)
		}
	}
	return nil
}
