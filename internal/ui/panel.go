package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	runewidth "github.com/mattn/go-runewidth"
)

// repeatToWidth repeats fill until reaching width display columns.
func repeatToWidth(fill string, width int) string {
	if width <= 0 {
		return ""
	}
	if fill == "" {
		fill = " "
	}
	var b strings.Builder
	w := 0
	for w < width {
		b.WriteString(fill)
		w += runewidth.StringWidth(fill)
	}
	return runewidth.Truncate(b.String(), width, "")
}

// fitLine truncates or pads plain text to exactly width columns.
func fitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}

// padStyled pads a string that may carry ANSI sequences to width columns.
func padStyled(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// panelWithTitle frames content with border and writes title centered into
// the top edge. Content lines are padded to the inner width and the line
// count is padded or trimmed to height-2.
func panelWithTitle(title, content string, width, height int, border lipgloss.Border, noColor bool, th Theme) string {
	if width < 4 {
		width = 4
	}
	if height < 3 {
		height = 3
	}
	innerWidth := width - 2
	innerHeight := height - 2

	lines := strings.Split(content, "\n")
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	for len(lines) < innerHeight {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padStyled(lines[i], innerWidth)
	}

	borderStyle := lipgloss.NewStyle().Border(border)
	if !noColor {
		borderStyle = borderStyle.BorderForeground(th.BorderColor)
	}
	bordered := borderStyle.Render(strings.Join(lines, "\n"))

	if title == "" || border.TopLeft == "" || border.TopRight == "" {
		return bordered
	}
	out := strings.Split(bordered, "\n")

	titleInner := innerWidth
	trimmed := title
	if runewidth.StringWidth(trimmed) > titleInner {
		trimmed = runewidth.Truncate(trimmed, titleInner, "")
	}
	titleWidth := runewidth.StringWidth(trimmed)
	leftPad := (titleInner - titleWidth) / 2
	rightPad := titleInner - leftPad - titleWidth

	paint := func(s string) string { return s }
	titlePaint := paint
	if !noColor {
		paint = painter(lipgloss.NewStyle().Foreground(th.BorderColor))
		titlePaint = painter(lipgloss.NewStyle().Foreground(th.TitleFG).Bold(true))
	}
	out[0] = paint(border.TopLeft+repeatToWidth(border.Top, leftPad)) +
		titlePaint(trimmed) +
		paint(repeatToWidth(border.Top, rightPad)+border.TopRight)
	return strings.Join(out, "\n")
}

// visibleWindow returns the half-open index range of rows to draw so that
// the 0-based selected index stays in view.
func visibleWindow(total, selected, maxVisible int) (int, int) {
	if maxVisible <= 0 || total <= maxVisible {
		return 0, total
	}
	start := 0
	if selected >= maxVisible {
		start = selected - maxVisible + 1
	}
	end := start + maxVisible
	if end > total {
		end = total
		start = end - maxVisible
	}
	return start, end
}
