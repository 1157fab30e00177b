package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/cmdpal/internal/completion"
)

// completeWhere completes CEL predicates for `list --where`.
func completeWhere(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	p, err := completion.NewCELProvider()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return completion.NewEngine(p).ShellCandidates(toComplete), cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
}

type completionFunc = func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective)

func completeValues[T ~string](values []T) completionFunc {
	return func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var out []string
		for _, v := range values {
			if strings.HasPrefix(string(v), toComplete) {
				out = append(out, string(v))
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}

func completeConfigFile(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return []string{"yaml", "yml", "toml"}, cobra.ShellCompDirectiveFilterFileExt
}
