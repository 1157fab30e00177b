package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/cmdpal/internal/config"
	"github.com/oakwood-commons/cmdpal/internal/invoker"
	"github.com/oakwood-commons/cmdpal/pkg/logger"
	"github.com/oakwood-commons/cmdpal/pkg/palette"
	"github.com/oakwood-commons/cmdpal/pkg/settings"
	"github.com/oakwood-commons/cmdpal/pkg/tui"
)

var (
	params = settings.NewCliParams()

	query          string
	keyMode        string // empty = use config
	panelWidth     int
	panelHeight    int
	renderSnapshot bool
)

// runPaletteFn is swapped in tests to avoid starting a terminal program.
var runPaletteFn = tui.Run

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName,
	Short: "Searchable command palette for the terminal",
	Long: `cmdpal shows a floating list of commands from your config file. Type to
filter by name, description or category, move with the arrow keys and press
Enter to run the selected command.

Commands are read from --config-file or $XDG_CONFIG_HOME/cmdpal/config.yaml.`,
	Example: "\n  cmdpal\n  cmdpal -q git\n  eval \"$(cmdpal --print)\"\n  cmdpal list -o json --where 'cmd.category == \"Git\"'\n",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		lgr, err := logger.Setup(params.MinLogLevel, params.LogFile)
		if err != nil {
			return err
		}
		lgr = logger.WithValues(lgr, logger.ComponentKey, cmd.Name())
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = settings.IntoContext(ctx, params)
		cmd.SetContext(logger.WithLogger(ctx, lgr))
		return nil
	},
	RunE: runRoot,
}

func runRoot(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	lgr := logger.FromContext(ctx)

	path, cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyUIFlags(&cfg.UI); err != nil {
		return err
	}

	reg := palette.NewRegistry(palette.WithLogger(*lgr))
	if err := reg.Configure(cfg.PaletteCommands()); err != nil {
		return err
	}

	tcfg := tui.FromUIConfig(cfg.UI)
	tcfg.Query = query
	if renderSnapshot {
		w, h := tui.DetectTerminalSize()
		tcfg.TermWidth, tcfg.TermHeight = w, h
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderSnapshot(reg, tcfg))
		return nil
	}

	progOpts, cleanup := getProgramOptions()
	defer cleanup()
	chosen, err := runPaletteFn(reg, tcfg, progOpts...)
	if err != nil {
		if errors.Is(err, palette.ErrSetupMissing) || errors.Is(err, palette.ErrNoCommandsConfigured) {
			return fmt.Errorf("warning: %w; add a commands list to %s", err, describeConfigPath(path))
		}
		return err
	}
	if chosen == nil {
		lgr.V(1).Info("palette dismissed")
		return nil
	}

	if params.PrintOnly {
		fmt.Fprintln(cmd.OutOrStdout(), chosen.Action.String())
		return nil
	}
	inv := invoker.New(
		invoker.WithLogger(*lgr),
		invoker.WithIO(os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr()),
	)
	return inv.InvokeCommand(ctx, *chosen)
}

// applyUIFlags overrides config values with flags the user set.
func applyUIFlags(ui *config.UIConfig) error {
	if params.NoColor {
		ui.NoColor = true
	}
	if keyMode != "" {
		mode, ok := config.NormalizeKeyMode(keyMode)
		if !ok {
			return fmt.Errorf("invalid --keymap %q (want one of %v)", keyMode, config.ValidKeyModes)
		}
		ui.KeyMode = mode
	}
	if panelWidth < 0 || panelHeight < 0 {
		return fmt.Errorf("--width and --height must be non-negative")
	}
	if panelWidth > 0 {
		ui.Width = panelWidth
	}
	if panelHeight > 0 {
		ui.MaxHeight = panelHeight
	}
	return nil
}

func init() { //nolint:gochecknoinits
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&params.ConfigFile, "config-file", "", "path to a YAML or TOML config file")
	pf.Int8Var(&params.MinLogLevel, "log-level", params.MinLogLevel, "minimum log level: -1 debug, 0 info, 1 warn, 2 error")
	pf.StringVar(&params.LogFile, "log-file", "", "write logs to this file instead of stderr")
	pf.BoolVar(&params.NoColor, "no-color", false, "disable color output")

	f := rootCmd.Flags()
	f.StringVarP(&query, "query", "q", "", "initial filter text")
	f.BoolVar(&params.PrintOnly, "print", false, "print the selected command line instead of running it")
	f.StringVar(&keyMode, "keymap", "", "navigation keys: default, emacs or vim (default from config)")
	f.IntVar(&panelWidth, "width", 0, "panel width in columns (default from config)")
	f.IntVar(&panelHeight, "height", 0, "maximum visible command rows (default from config)")
	f.BoolVar(&renderSnapshot, "snapshot", false, "render the palette once to stdout and exit")
	_ = rootCmd.RegisterFlagCompletionFunc("keymap", completeValues(config.ValidKeyModes))
	_ = rootCmd.RegisterFlagCompletionFunc("config-file", completeConfigFile)

	rootCmd.Version = cliVersionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.AddCommand(versionCmd, listCmd, configCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
