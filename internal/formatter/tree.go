package formatter

import (
	"strings"

	"github.com/xlab/treeprint"

	"github.com/oakwood-commons/cmdpal/pkg/palette"
)

// uncategorized labels the branch for commands without a category.
const uncategorized = "(uncategorized)"

// RenderTree renders cmds grouped by category. Categories appear in the
// order of their first command; commands keep their registration order.
func RenderTree(cmds []palette.Command) string {
	tree := treeprint.New()
	branches := make(map[string]treeprint.Tree)
	for _, c := range cmds {
		cat := c.Category
		if cat == "" {
			cat = uncategorized
		}
		branch, ok := branches[cat]
		if !ok {
			branch = tree.AddBranch(cat)
			branches[cat] = branch
		}
		branch.AddNode(formatKeyValue(c.Name, c.Action.String()))
	}
	return tree.String()
}

// formatKeyValue formats a key-value pair for display.
// An empty value yields just the key.
func formatKeyValue(key, value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	if value == "" {
		return key
	}
	return key + ": " + value
}
