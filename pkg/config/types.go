// Package config holds the runtime options of a gitfetch invocation.
// Options come from command-line flags layered over GITFETCH_* environment
// variables; there is no configuration file.
package config

// Environment variables read by FromEnv.
const (
	EnvHost         = "GITFETCH_HOST"
	EnvTemplatesDir = "GITFETCH_TEMPLATES_DIR"
	EnvLogLevel     = "GITFETCH_LOG_LEVEL"
	EnvLogFormat    = "GITFETCH_LOG_FORMAT"
	EnvLogFile      = "GITFETCH_LOG_FILE"
)

// Defaults.
const (
	DefaultHost         = "https://github.com"
	DefaultTemplatesDir = "./ascii-templates"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

// Options controls one run.
type Options struct {
	// Host is the site root profiles are fetched from.
	Host string
	// TemplatesDir holds the ASCII-art templates.
	TemplatesDir string
	// Table prints a field table instead of a template.
	Table bool

	// Verbose sends debug diagnostics to stderr.
	Verbose bool
	// LogLevel is the minimum diagnostic level written to LogFile.
	LogLevel string
	// LogFormat is "text" or "json".
	LogFormat string
	// LogFile, when set, receives diagnostics with size-based rotation.
	LogFile string
}

// Default returns the built-in options.
func Default() Options {
	return Options{
		Host:         DefaultHost,
		TemplatesDir: DefaultTemplatesDir,
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
	}
}
