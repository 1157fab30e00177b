package palette

import (
	"strings"

	runewidth "github.com/mattn/go-runewidth"
)

const (
	// NoMatchesText replaces the row list when nothing matches the query.
	NoMatchesText = "No matches found"
	// NoDescriptionText is shown when the selection has no description or
	// there is no selection.
	NoDescriptionText = "No description"

	selectedMarker = ">"
	rowSeparator   = "│"
)

// FormatRow renders cmd as a single display line:
//
//	<marker> <category padded to width> │ [<icon>] <name>
//
// The category column is padded even when empty so rows stay aligned.
func FormatRow(cmd Command, selected bool, maxCategoryWidth int, showIcons bool) string {
	marker := " "
	if selected {
		marker = selectedMarker
	}
	parts := []string{marker, runewidth.FillRight(cmd.Category, maxCategoryWidth), rowSeparator}
	if showIcons && cmd.Icon != "" {
		parts = append(parts, cmd.Icon)
	}
	parts = append(parts, cmd.Name)
	return strings.Join(parts, " ")
}

// MaxCategoryWidth returns the widest category display width in cmds, or 0.
func MaxCategoryWidth(cmds []Command) int {
	width := 0
	for _, c := range cmds {
		if w := runewidth.StringWidth(c.Category); w > width {
			width = w
		}
	}
	return width
}
