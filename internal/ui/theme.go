package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/cmdpal/internal/config"
)

// Theme holds the colors of the palette window.
type Theme struct {
	TitleFG     color.Color
	BorderColor color.Color
	SelectedFG  color.Color
	SelectedBG  color.Color
	MutedFG     color.Color
}

// DefaultTheme returns the built-in palette colors.
func DefaultTheme() Theme {
	return Theme{
		TitleFG:     lipgloss.Color("81"),  // cyan title
		BorderColor: lipgloss.Color("238"), // subtle frame
		SelectedFG:  lipgloss.Color("250"),
		SelectedBG:  lipgloss.Color("24"), // deep teal selection
		MutedFG:     lipgloss.Color("243"),
	}
}

// painter adapts a style to a single-string render func.
func painter(st lipgloss.Style) func(string) string {
	return func(s string) string { return st.Render(s) }
}

// shadowBorder leaves the top and left open and casts a shade on the right
// and bottom edges.
var shadowBorder = lipgloss.Border{
	Top:         " ",
	Bottom:      "▀",
	Left:        " ",
	Right:       "█",
	TopLeft:     " ",
	TopRight:    "▄",
	BottomLeft:  " ",
	BottomRight: "▀",
}

// solidBorder is a frame of full blocks.
var solidBorder = lipgloss.BlockBorder()

// borderFor returns the lipgloss border for a configured style. Unknown
// styles fall back to rounded.
func borderFor(b config.Border) lipgloss.Border {
	switch b {
	case config.BorderSingle:
		return lipgloss.NormalBorder()
	case config.BorderDouble:
		return lipgloss.DoubleBorder()
	case config.BorderSolid:
		return solidBorder
	case config.BorderShadow:
		return shadowBorder
	default:
		return lipgloss.RoundedBorder()
	}
}
