// Package settings provides build metadata, per-run options, and context
// helpers shared by the cmdpal CLI and library packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "cmdpal"

// VersionInformation is populated at build time via ldflags.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-dev",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds the options of a single invocation of the CLI.
type Run struct {
	// MinLogLevel is a zapcore level: -1 debug, 0 info, 1 warn, 2 error.
	MinLogLevel int8
	// LogFile receives log output instead of stderr when set. The palette
	// owns the terminal while open, so interactive runs should log to a file.
	LogFile    string
	ConfigFile string
	NoColor    bool
	// PrintOnly prints the selected action instead of invoking it.
	PrintOnly bool
}

// NewCliParams returns the defaults used by the CLI before flags are parsed.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 1,
	}
}
