// Package simulation ties input loading, the scheduling policies and the
// reports together for one run.
package simulation

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Barritosaurus/schedsim/internal/config"
	"github.com/Barritosaurus/schedsim/internal/process"
	"github.com/Barritosaurus/schedsim/internal/report"
	"github.com/Barritosaurus/schedsim/internal/scheduler"
)

// Ingest loads, caps and validates the records at path. Records beyond
// cfg.MaxProcesses are dropped before validation, so they can never reject
// the source. Unless cfg.Strict is set, an unreadable or invalid source is
// logged and yields no records.
func Ingest(path string, cfg config.Config, logger *slog.Logger) ([]process.Record, error) {
	records, err := load(path, cfg)
	if err == nil {
		var dropped int
		records, dropped = process.Truncate(records, cfg.MaxProcesses)
		if dropped > 0 {
			logger.Warn("process capacity exceeded, dropping extra records",
				"max_processes", cfg.MaxProcesses, "dropped", dropped)
		}
		err = process.Validate(records)
	}
	if err != nil {
		if cfg.Strict {
			return nil, err
		}
		logger.Warn("process input unusable, scheduling no processes", "path", path, "error", err)
		return nil, nil
	}
	logger.Debug("processes loaded", "path", path, "count", len(records))

	return records, nil
}

func load(path string, cfg config.Config) ([]process.Record, error) {
	format, err := process.ParseFormat(cfg.InputFormat)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = process.FormatFromPath(path)
	}

	f, closeFn, err := process.Open(path)
	if err != nil {
		return nil, err
	}
	records, err := process.Load(f, format)
	if cerr := closeFn(); err == nil {
		err = cerr
	}

	return records, err
}

// Run schedules records under every policy in cfg and writes one report
// per policy to w, separated by a blank line. Each policy gets its own copy
// of the records.
func Run(w io.Writer, records []process.Record, cfg config.Config, logger *slog.Logger) error {
	write, err := report.Writer(cfg.Output)
	if err != nil {
		return err
	}
	policies := make([]scheduler.Policy, len(cfg.Policies))
	for i, name := range cfg.Policies {
		if policies[i], err = scheduler.Lookup(name); err != nil {
			return err
		}
	}

	for i, policy := range policies {
		s := policy(process.Clone(records))
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := write(w, s); err != nil {
			return fmt.Errorf("writing %s report: %w", s.Policy, err)
		}
		logger.Debug("policy scheduled", "policy", s.Policy, "processes", len(s.Results), "elapsed", s.Elapsed)
	}

	return nil
}
