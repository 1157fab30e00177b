package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/cmdpal/internal/config"
	"github.com/oakwood-commons/cmdpal/internal/formatter"
)

var configOutput formatter.Format

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect cmdpal configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the merged configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return formatter.Encode(cmd.OutOrStdout(), configOutput, cfg)
	},
}

var configDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the built-in default configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultConfigYAML())
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file cmdpal would load",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := config.ResolvePath(params.ConfigFile)
		if path == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (not found)\n", describeConfigPath(""))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() { //nolint:gochecknoinits
	out := newFormatFlag(&configOutput, formatter.OutputYAML, formatter.DataFormats)
	configGetCmd.Flags().VarP(out, "output", "o", out.usage())
	_ = configGetCmd.RegisterFlagCompletionFunc("output", completeValues(formatter.DataFormats))
	configCmd.AddCommand(configGetCmd, configDefaultCmd, configPathCmd)
}
