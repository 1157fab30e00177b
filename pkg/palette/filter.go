package palette

import "strings"

// FilterCommands returns the commands whose name, description or category
// contains query as a literal, case-insensitive substring. Matches keep their
// input order. An empty query returns cmds itself; cmds is never modified.
func FilterCommands(cmds []Command, query string) []Command {
	if query == "" {
		return cmds
	}
	q := strings.ToLower(query)
	out := make([]Command, 0, len(cmds))
	for _, c := range cmds {
		if matches(c, q) {
			out = append(out, c)
		}
	}
	return out
}

// matches expects q already lowercased.
func matches(c Command, q string) bool {
	if strings.Contains(strings.ToLower(c.Name), q) {
		return true
	}
	if c.Description != "" && strings.Contains(strings.ToLower(c.Description), q) {
		return true
	}
	return c.Category != "" && strings.Contains(strings.ToLower(c.Category), q)
}
