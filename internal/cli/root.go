package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Barritosaurus/schedsim/internal/config"
	"github.com/Barritosaurus/schedsim/internal/logging"
	"github.com/Barritosaurus/schedsim/internal/simulation"
)

var ErrInvalidArgs = errors.New("invalid args")

type flags struct {
	configPath   string
	policies     []string
	inputFormat  string
	output       string
	maxProcesses int
	strict       bool
	debug        bool
	logLevel     string
	logFormat    string
}

// NewRootCmd creates the root cobra command for the schedsim CLI.
func NewRootCmd() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:   "schedsim <process-file>",
		Short: "Simulate FCFS and SJF CPU scheduling",
		Long: "schedsim reads a list of processes (pid, arrival, burst) and reports waiting\n" +
			"and turnaround times with a per-process timeline for each policy.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg)

			return run(cmd, args[0], cfg, logger)
		},
	}

	fl := root.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML config file")
	fl.StringSliceVar(&f.policies, "policy", nil, "Policies to run, in order (fcfs, sjf)")
	fl.StringVar(&f.inputFormat, "input-format", "", "Input format (text, csv, json, yaml); inferred from the extension if empty")
	fl.StringVar(&f.output, "output", "", "Report format (plain, table)")
	fl.IntVar(&f.maxProcesses, "max-processes", 0, "Drop records beyond this count (0 = unbounded)")
	fl.BoolVar(&f.strict, "strict", false, "Fail on unreadable or invalid input instead of scheduling nothing")
	fl.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	fl.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fl.StringVar(&f.logFormat, "log-format", "", "Log format (text, json)")

	return root
}

// resolveConfig loads the config file, if any, and lays explicitly set
// flags over it.
func resolveConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("policy") {
		cfg.Policies = f.policies
	}
	if changed("input-format") {
		cfg.InputFormat = f.inputFormat
	}
	if changed("output") {
		cfg.Output = f.output
	}
	if changed("max-processes") {
		cfg.MaxProcesses = f.maxProcesses
	}
	if changed("strict") {
		cfg.Strict = f.strict
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("log-format") {
		cfg.LogFormat = f.logFormat
	}
	if f.debug {
		cfg.LogLevel = "debug"
	}

	return cfg, cfg.Validate()
}

// newLogger builds the run logger, tagged with a fresh run id. Logs go to
// stderr unless the command's error writer was redirected.
func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	level := logging.ParseLevel(cfg.LogLevel)

	var logger *slog.Logger
	if w == os.Stderr {
		logger = logging.NewLogger(level, cfg.LogFormat)
	} else {
		logger = logging.NewLoggerWithWriter(level, cfg.LogFormat, w)
	}

	return logger.With("run_id", uuid.NewString())
}

func run(cmd *cobra.Command, path string, cfg config.Config, logger *slog.Logger) error {
	records, err := simulation.Ingest(path, cfg, logger)
	if err != nil {
		return err
	}

	return simulation.Run(cmd.OutOrStdout(), records, cfg, logger)
}
