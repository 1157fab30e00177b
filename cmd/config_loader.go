package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/oakwood-commons/cmdpal/internal/config"
	"github.com/oakwood-commons/cmdpal/internal/formatter"
)

// loadConfig resolves and loads the config file named by --config-file or
// found in the user config directory. path is empty when only the built-in
// defaults were used.
func loadConfig() (string, config.Config, error) {
	path := config.ResolvePath(params.ConfigFile)
	cfg, err := config.Load(path)
	if err != nil {
		return path, cfg, fmt.Errorf("load config: %w", err)
	}
	return path, cfg, nil
}

// describeConfigPath names the file a user should edit.
func describeConfigPath(path string) string {
	if path != "" {
		return path
	}
	return filepath.Join("$XDG_CONFIG_HOME", config.AppName, "config.yaml")
}

// formatFlag is a pflag.Value restricted to a set of output formats.
type formatFlag struct {
	value   *formatter.Format
	allowed []formatter.Format
}

var _ pflag.Value = (*formatFlag)(nil)

func newFormatFlag(value *formatter.Format, def formatter.Format, allowed []formatter.Format) *formatFlag {
	*value = def
	return &formatFlag{value: value, allowed: allowed}
}

func (f *formatFlag) String() string { return string(*f.value) }

func (f *formatFlag) Set(s string) error {
	parsed, err := formatter.ParseFormat(s, f.allowed)
	if err != nil {
		return err
	}
	*f.value = parsed
	return nil
}

func (f *formatFlag) Type() string { return "format" }

func (f *formatFlag) usage() string {
	names := make([]string, len(f.allowed))
	for i, a := range f.allowed {
		names[i] = string(a)
	}
	return "output format: " + strings.Join(names, ", ")
}
