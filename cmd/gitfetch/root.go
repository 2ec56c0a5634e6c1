package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gitfetch/gitfetch/internal/pipeline"
	"github.com/gitfetch/gitfetch/pkg/config"
	"github.com/gitfetch/gitfetch/pkg/fetch"
	"github.com/gitfetch/gitfetch/pkg/logging"
	"github.com/gitfetch/gitfetch/pkg/output"
	"github.com/gitfetch/gitfetch/pkg/present"
	"github.com/gitfetch/gitfetch/pkg/tracing"

	"github.com/spf13/cobra"
)

const usage = "Usage:\n  gitfetch <github-username>"

// errUsage is returned after the usage text has already been printed.
var errUsage = errors.New("usage")

// exitError carries a non-zero exit code whose cause was already reported.
type exitError struct{ code int }

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// app is the state shared by the commands of one invocation.
type app struct {
	opts   config.Options
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		opts:   config.FromEnv(),
		stdout: stdout,
		stderr: stderr,
	}

	cmd := &cobra.Command{
		Use:   "gitfetch <github-username>",
		Short: "Show a GitHub profile in the terminal",
		Long: `Gitfetch downloads a public GitHub profile page, picks out the name,
username, bio, location, repository count and follower counts, and prints
them inside a randomly chosen ASCII-art template.

Templates are read from ./ascii-templates unless --templates-dir is set.
Run "gitfetch templates pull" to download them.`,
		Args:          a.usageArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFetch(cmd.Context(), args[0])
		},
	}

	// Usernames must not be shadowed by generated commands.
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVar(&a.opts.Host, "host", a.opts.Host, "Site to fetch profiles from (env "+config.EnvHost+")")
	flags.BoolVar(&a.opts.Table, "table", false, "Print the profile as a table instead of ASCII art")

	pflags := cmd.PersistentFlags()
	pflags.StringVar(&a.opts.TemplatesDir, "templates-dir", a.opts.TemplatesDir, "ASCII template directory (env "+config.EnvTemplatesDir+")")
	pflags.BoolVarP(&a.opts.Verbose, "verbose", "v", false, "Write debug diagnostics to stderr")
	pflags.StringVar(&a.opts.LogLevel, "log-level", a.opts.LogLevel, "Diagnostic level: debug, info, warn, error (env "+config.EnvLogLevel+")")
	pflags.StringVar(&a.opts.LogFormat, "log-format", a.opts.LogFormat, "Diagnostic format: text or json (env "+config.EnvLogFormat+")")
	pflags.StringVar(&a.opts.LogFile, "log-file", a.opts.LogFile, "Write diagnostics to a rotated file (env "+config.EnvLogFile+")")

	cmd.AddCommand(newVersionCmd(a))
	cmd.AddCommand(newTemplatesCmd(a))

	return cmd
}

// usageArgs accepts exactly one username. Anything else prints the usage
// text in the warning colour.
func (a *app) usageArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return nil
	}
	output.NewWithWriters(a.stdout, a.stderr).Colored(usage, output.ColorWarn)
	return errUsage
}

func (a *app) runFetch(ctx context.Context, username string) error {
	if err := a.opts.Validate(); err != nil {
		return err
	}

	logger, closeLog := a.newLogger()
	defer closeLog()

	shutdown, err := tracing.Setup(ctx, "gitfetch", version)
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
		shutdown = func(context.Context) error { return nil }
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			logger.Warn("flushing traces failed", "error", err)
		}
	}()

	printer := output.NewWithWriters(a.stdout, a.stderr)
	runner := &pipeline.Runner{
		Fetcher: fetch.New(
			fetch.WithBaseURL(a.opts.Host),
			fetch.WithLogger(logging.WithComponent(logger, "fetch")),
		),
		Presenter: present.New(printer,
			present.WithDir(a.opts.TemplatesDir),
			present.WithTable(a.opts.Table),
			present.WithLogger(logging.WithComponent(logger, "present")),
		),
		Printer: printer,
		Logger:  logger,
	}

	if code := runner.Run(ctx, username); code != pipeline.ExitOK {
		return &exitError{code: code}
	}
	return nil
}

// newLogger builds the diagnostic logger. Diagnostics are discarded unless
// --verbose or --log-file is given. An explicit debug level adds source
// locations.
func (a *app) newLogger() (*slog.Logger, func()) {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(a.opts.LogLevel)
	cfg.Format = logging.ParseFormat(a.opts.LogFormat)
	cfg.AddSource = cfg.Level == slog.LevelDebug
	closer := func() {}

	switch {
	case a.opts.LogFile != "":
		w := logging.NewFileWriter(a.opts.LogFile)
		cfg.Output = w
		if a.opts.Verbose {
			cfg.Output = io.MultiWriter(w, a.stderr)
			cfg.Level = slog.LevelDebug
		}
		closer = func() { _ = w.Close() }
	case a.opts.Verbose:
		cfg.Output = a.stderr
		cfg.Level = slog.LevelDebug
	default:
		return logging.NewDiscardLogger(), closer
	}

	logger, _ := logging.WithRunID(logging.NewStructuredLogger(cfg))
	return logger, closer
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err, os.Stderr))
}

// exitCode maps a command error to a process exit code, printing errors that
// were not reported yet.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return pipeline.ExitOK
	}

	var ee *exitError
	switch {
	case errors.As(err, &ee):
		return ee.code
	case errors.Is(err, errUsage):
		return pipeline.ExitFailure
	default:
		output.NewWithWriter(stderr).Error(err.Error())
		return pipeline.ExitFailure
	}
}
