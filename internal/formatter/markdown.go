package formatter

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/oakwood-commons/cmdpal/pkg/palette"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"`", "\\`",
	"<", `\<`,
	">", `\>`,
	"\n", " ",
)

// RenderMarkdown renders cmds as a GitHub-style pipe table.
func RenderMarkdown(cmds []palette.Command) string {
	var b strings.Builder
	b.WriteString("| Category | Name | Description | Action |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, c := range cmds {
		name := c.Name
		if c.Icon != "" {
			name = c.Icon + " " + name
		}
		action := c.Action.String()
		if c.Action.Kind() == palette.ActionLiteral && action != "" && !strings.ContainsAny(action, "|`\n") {
			action = "`" + action + "`"
		} else {
			// Table pipes and backticks cannot be escaped inside a code span.
			action = markdownEscaper.Replace(action)
		}
		b.WriteString("| " + markdownEscaper.Replace(c.Category) +
			" | " + markdownEscaper.Replace(name) +
			" | " + markdownEscaper.Replace(c.Description) +
			" | " + action + " |\n")
	}
	return b.String()
}

// RenderHTML renders the markdown table of cmds as an HTML fragment.
func RenderHTML(cmds []palette.Command) string {
	extensions := parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(RenderMarkdown(cmds)))

	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return string(markdown.Render(doc, renderer))
}
