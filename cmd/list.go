package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oakwood-commons/cmdpal/internal/cel"
	"github.com/oakwood-commons/cmdpal/internal/formatter"
	"github.com/oakwood-commons/cmdpal/internal/limiter"
	"github.com/oakwood-commons/cmdpal/pkg/logger"
	"github.com/oakwood-commons/cmdpal/pkg/palette"
)

var (
	listOutput formatter.Format
	listQuery  string
	listWhere  string
	listLimits limiter.Config
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print configured commands without opening the palette",
	Example: "\n  cmdpal list\n  cmdpal list -q git -o json\n  cmdpal list --where 'cmd.category == \"Git\" && cmd.kind == \"literal\"'\n" +
		"  cmdpal list -o markdown > COMMANDS.md\n",
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	if err := listLimits.Validate(); err != nil {
		return err
	}
	lgr := logger.FromContext(cmd.Context())

	_, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cmds := palette.FilterCommands(cfg.PaletteCommands(), listQuery)

	if listWhere != "" {
		eval, err := cel.NewEvaluator()
		if err != nil {
			return err
		}
		pred, err := eval.Compile(listWhere)
		if err != nil {
			return err
		}
		if cmds, err = pred.Filter(cmds); err != nil {
			return err
		}
	}
	cmds = limiter.Apply(listLimits, cmds)
	lgr.V(1).Info("listing commands", "count", len(cmds), "format", string(listOutput))

	return formatter.WriteCommands(cmd.OutOrStdout(), listOutput, cmds, formatter.Options{NoColor: params.NoColor})
}

func init() { //nolint:gochecknoinits
	f := listCmd.Flags()
	out := newFormatFlag(&listOutput, formatter.OutputTable, formatter.ListFormats)
	f.VarP(out, "output", "o", out.usage())
	f.StringVarP(&listQuery, "query", "q", "", "keep commands whose name, description or category contains this text")
	f.StringVar(&listWhere, "where", "", "CEL predicate over cmd.name, cmd.description, cmd.category, cmd.icon, cmd.kind and cmd.action")
	f.IntVar(&listLimits.Limit, "limit", 0, "show only the first N commands")
	f.IntVar(&listLimits.Offset, "offset", 0, "skip the first N commands")
	f.IntVar(&listLimits.Tail, "tail", 0, "show only the last N commands")
	_ = listCmd.RegisterFlagCompletionFunc("where", completeWhere)
	_ = listCmd.RegisterFlagCompletionFunc("output", completeValues(formatter.ListFormats))
}
