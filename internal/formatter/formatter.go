// Package formatter renders command listings and configuration for
// non-interactive output.
package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/oakwood-commons/cmdpal/pkg/palette"
)

// Format names an output encoding.
type Format string

const (
	OutputTable    Format = "table"
	OutputYAML     Format = "yaml"
	OutputJSON     Format = "json"
	OutputTOML     Format = "toml"
	OutputMarkdown Format = "markdown"
	OutputHTML     Format = "html"
	OutputTree     Format = "tree"
)

// ListFormats are the encodings accepted by WriteCommands.
var ListFormats = []Format{OutputTable, OutputTree, OutputYAML, OutputJSON, OutputTOML, OutputMarkdown, OutputHTML}

// DataFormats are the encodings accepted by Encode.
var DataFormats = []Format{OutputYAML, OutputJSON, OutputTOML}

// ParseFormat matches s case-insensitively against allowed.
func ParseFormat(s string, allowed []Format) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "yml" {
		f = OutputYAML
	}
	if f == "md" {
		f = OutputMarkdown
	}
	for _, a := range allowed {
		if f == a {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported output format %q (want one of %v)", s, allowed)
}

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Background(lipgloss.Color("236"))
	keyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Record is the serialized shape of a command.
type Record struct {
	Name        string `yaml:"name" json:"name" toml:"name"`
	Category    string `yaml:"category,omitempty" json:"category,omitempty" toml:"category,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty"`
	Icon        string `yaml:"icon,omitempty" json:"icon,omitempty" toml:"icon,omitempty"`
	Kind        string `yaml:"kind" json:"kind" toml:"kind"`
	Action      string `yaml:"action,omitempty" json:"action,omitempty" toml:"action,omitempty"`
}

// Records converts commands for serialization.
func Records(cmds []palette.Command) []Record {
	out := make([]Record, len(cmds))
	for i, c := range cmds {
		out[i] = Record{
			Name:        c.Name,
			Category:    c.Category,
			Description: c.Description,
			Icon:        c.Icon,
			Kind:        c.Action.Kind().String(),
			Action:      c.Action.String(),
		}
	}
	return out
}

// Options tune human-readable output.
type Options struct {
	NoColor bool
	// Width caps the table width; 0 detects the terminal.
	Width int
}

// WriteCommands renders cmds to w in format f.
func WriteCommands(w io.Writer, f Format, cmds []palette.Command, opts Options) error {
	var out string
	switch f {
	case OutputTable:
		out = RenderCommandTable(cmds, opts)
	case OutputMarkdown:
		out = RenderMarkdown(cmds)
	case OutputHTML:
		out = RenderHTML(cmds)
	case OutputTree:
		out = RenderTree(cmds)
	case OutputYAML, OutputJSON:
		return Encode(w, f, Records(cmds))
	case OutputTOML:
		// TOML documents need a table at the top level.
		return Encode(w, f, map[string][]Record{"commands": Records(cmds)})
	default:
		return fmt.Errorf("unsupported output format %q", f)
	}
	_, err := io.WriteString(w, out)
	return err
}

// Encode writes v to w as YAML, JSON or TOML.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case OutputYAML:
		s, err := FormatYAML(v, YAMLFormatOptions{LiteralBlockStrings: true})
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = io.WriteString(w, s)
		return err
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case OutputTOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		_, err := w.Write(buf.Bytes())
		return err
	default:
		return fmt.Errorf("unsupported data format %q", f)
	}
}
