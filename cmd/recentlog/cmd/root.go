// Package cmd provides the CLI commands for recentlog.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yarp-shell/recentlog/internal/config"
	"github.com/yarp-shell/recentlog/internal/errors"
	"github.com/yarp-shell/recentlog/internal/logging"
	"github.com/yarp-shell/recentlog/internal/output"
	"github.com/yarp-shell/recentlog/internal/platform"
	"github.com/yarp-shell/recentlog/internal/recentlog"
	"github.com/yarp-shell/recentlog/pkg/version"
)

// envFunc returns the platform facts used to resolve the yarp log directory.
type envFunc func() (platform.Env, error)

// rootOptions holds the flags shared by the root command and its subcommands.
type rootOptions struct {
	configPath string
	debug      bool
	dir        string
	pattern    string

	env envFunc
}

// session is the per-invocation state built from config and flags.
type session struct {
	cfg     *config.Config
	logger  *slog.Logger
	reader  *recentlog.Reader
	cleanup func()
}

func (s *session) Close() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

// NewRootCmd creates the root command for the recentlog CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(platform.FromRuntime)
}

func newRootCmd(env envFunc) *cobra.Command {
	opts := &rootOptions{env: env}
	var lines int

	cmd := &cobra.Command{
		Use:   "recentlog",
		Short: "Print the most recent yarp log file",
		Long: `recentlog finds the most recently modified *.log file in the yarp
shell's log directory and prints its contents to standard output.

  Linux:   ~/.local/share/yarp/logs/*.log
  Windows: ~/AppData/Roaming/yarp/logs/*.log

On failure nothing is written to standard output, a diagnostic is
written to standard error and the exit status is 1.`,
		Example: `  # Print the newest log
  recentlog

  # Only the last 50 lines
  recentlog -n 50

  # Read from another directory
  recentlog --dir /tmp/yarp-logs`,
		Version:       version.Version,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, opts, lines)
		},
	}

	cmd.SetVersionTemplate("recentlog version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.ConfigError(err.Error(), err).
			WithSuggestion("Run 'recentlog --help' for usage")
	})

	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "Print only the last N lines (0 prints everything)")

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (default ~/.config/recentlog/config.yaml)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.dir, "dir", "", "Read logs from this directory instead of the yarp default")
	cmd.PersistentFlags().StringVar(&opts.pattern, "pattern", "", "Glob matched inside the log directory (default *.log)")

	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newPathCmd(opts))
	cmd.AddCommand(newViewCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runRoot(cmd *cobra.Command, opts *rootOptions, lines int) error {
	if lines < 0 {
		return errors.ConfigError(fmt.Sprintf("--lines must not be negative, got %d", lines), nil)
	}

	s, err := opts.open(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	_, content, err := s.reader.Read()
	if err != nil {
		logFailure(s.logger, err)
		return err
	}

	return output.New(cmd.OutOrStdout()).Content(recentlog.Tail(content, lines))
}

// loadConfig loads the config file and applies flag overrides on top.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.dir != "" {
		cfg.LogDir = o.dir
	}
	if o.pattern != "" {
		if err := config.ValidatePattern(o.pattern); err != nil {
			return nil, err
		}
		cfg.Pattern = o.pattern
	}
	if o.debug {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// open loads config, sets up logging and builds the reader.
func (o *rootOptions) open(stderr io.Writer) (*session, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	// The directory is resolved before logging so a log_file inside it can
	// be refused before the rotating writer creates it.
	dir := cfg.LogDir
	family := "override"
	if dir == "" {
		env, err := o.env()
		if err != nil {
			return nil, err
		}
		if dir, err = platform.LogDir(env); err != nil {
			return nil, err
		}
		family = platform.FamilyOf(env.GOOS).String()
	}
	if err := checkLogFile(cfg.LogFile, dir, cfg.Pattern); err != nil {
		return nil, err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.FilePath = cfg.LogFile
	logCfg.Stderr = stderr
	logger, cleanup, err := logging.Setup(logCfg)
	if err != nil {
		return nil, errors.ConfigError("failed to setup logging", err).
			WithDetail("log_file", cfg.LogFile)
	}

	s := &session{
		cfg:     cfg,
		logger:  logger,
		cleanup: cleanup,
		reader: recentlog.NewReader(recentlog.Options{
			Dir:     dir,
			Pattern: cfg.Pattern,
			Logger:  logger,
		}),
	}

	logger.Debug("session ready",
		slog.String("version", version.Short()),
		slog.String("platform", family),
		slog.String("log_dir", dir),
		slog.String("pattern", cfg.Pattern))

	return s, nil
}

// checkLogFile refuses a log_file the reader would list as a candidate.
func checkLogFile(logFile, dir, pattern string) error {
	if logFile == "" {
		return nil
	}
	file, err := filepath.Abs(logFile)
	if err != nil {
		return errors.ConfigError(fmt.Sprintf("invalid log_file %s", logFile), err)
	}
	logDir, err := filepath.Abs(dir)
	if err != nil {
		return errors.ConfigError(fmt.Sprintf("invalid log directory %s", dir), err)
	}
	if filepath.Dir(file) != logDir {
		return nil
	}
	if ok, _ := filepath.Match(pattern, filepath.Base(file)); !ok {
		return nil
	}
	return errors.ConfigError(
		fmt.Sprintf("log_file %s matches %s in the log directory being read", logFile, pattern), nil).
		WithDetail("log_file", logFile).
		WithDetail("log_dir", dir).
		WithSuggestion("Point log_file outside the log directory")
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return errors.ConfigError(err.Error(), err).
			WithSuggestion(fmt.Sprintf("Run '%s --help' for usage", cmd.CommandPath()))
	}
	return nil
}

// logFailure records err at debug level; the user-facing diagnostic is
// printed by main.
func logFailure(logger *slog.Logger, err error) {
	attrs := []any{}
	for k, v := range errors.FormatForLog(err) {
		attrs = append(attrs, slog.Any(k, v))
	}
	logger.Debug("run failed", attrs...)
}
