package formatter

import (
	"os"
	"strings"

	runewidth "github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/oakwood-commons/cmdpal/pkg/palette"
)

const (
	colSep       = "  "
	minColWidth  = 4
	defaultWidth = 120
)

// CommandColumns are the table headers, in order.
var CommandColumns = []string{"CATEGORY", "NAME", "DESCRIPTION", "ACTION"}

// getTerminalWidth returns the terminal width, or a default if detection fails
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// RenderCommandTable renders cmds as an aligned table.
func RenderCommandTable(cmds []palette.Command, opts Options) string {
	rows := make([][]string, len(cmds))
	for i, c := range cmds {
		name := c.Name
		if c.Icon != "" {
			name = c.Icon + " " + name
		}
		rows[i] = []string{c.Category, name, c.Description, c.Action.String()}
	}
	width := opts.Width
	if width <= 0 {
		width = getTerminalWidth()
	}
	return RenderTable(CommandColumns, rows, width, opts.NoColor)
}

// RenderTable renders rows under columns, shrinking the widest columns until
// the table fits totalWidth.
func RenderTable(columns []string, rows [][]string, totalWidth int, noColor bool) string {
	if len(columns) == 0 {
		return ""
	}
	widths := calculateColumnWidths(columns, rows, totalWidth)

	var b strings.Builder
	header := make([]string, len(columns))
	for i, col := range columns {
		cell := padRight(truncate(col, widths[i]), widths[i])
		if !noColor {
			cell = headerStyle.Render(cell)
		}
		header[i] = cell
	}
	b.WriteString(strings.TrimRight(strings.Join(header, colSep), " ") + "\n")

	sepLine := strings.Repeat("─", tableWidth(widths))
	if !noColor {
		sepLine = separatorStyle.Render(sepLine)
	}
	b.WriteString(sepLine + "\n")

	for _, row := range rows {
		cells := make([]string, len(columns))
		for i := range columns {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			cell := padRight(truncate(val, widths[i]), widths[i])
			if i == 0 && !noColor {
				cell = keyStyle.Render(cell)
			}
			cells[i] = cell
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, colSep), " ") + "\n")
	}
	return b.String()
}

func tableWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	return total + runewidth.StringWidth(colSep)*(len(widths)-1)
}

// calculateColumnWidths starts from each column's natural width and takes
// one column off the widest column at a time until the table fits.
func calculateColumnWidths(columns []string, rows [][]string, totalWidth int) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = runewidth.StringWidth(col)
	}
	for _, row := range rows {
		for i := range columns {
			if i < len(row) {
				widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
			}
		}
	}
	if totalWidth <= 0 {
		return widths
	}
	for tableWidth(widths) > totalWidth {
		widest := 0
		for i, w := range widths {
			if w > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minColWidth {
			break
		}
		widths[widest]--
	}
	return widths
}

// truncate cuts s to maxLen display columns, ending in "..." when cut.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 || runewidth.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return runewidth.Truncate(s, maxLen, "")
	}
	return runewidth.Truncate(s, maxLen, "...")
}

func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
