// Package report writes schedules for display, either as the plain
// WT/TAT listing with a detailed timeline or as a tabular report.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Barritosaurus/schedsim/internal/scheduler"
	"github.com/Barritosaurus/schedsim/internal/timeline"
)

var ErrUnknownFormat = errors.New("unknown output format")

const (
	FormatPlain = "plain"
	FormatTable = "table"
)

// WriteFunc writes one schedule to w.
type WriteFunc func(w io.Writer, s scheduler.Schedule) error

// Writer resolves an output format name.
func Writer(format string) (WriteFunc, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatPlain, "":
		return Plain, nil
	case FormatTable:
		return Table, nil
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownFormat, format, FormatPlain, FormatTable)
	}
}

// Plain writes the policy header, one "P<id> WT=<n> TAT=<n>" line per
// process and the detailed timeline, all in input order.
func Plain(w io.Writer, s scheduler.Schedule) error {
	ew := &errWriter{w: w}
	ew.printf("%s:\n", scheduler.Title(s.Policy))
	for _, r := range s.Results {
		ew.printf("P%d WT=%d TAT=%d\n", r.Process.ID, r.Waiting, r.Turnaround)
	}
	ew.printf("\nDetailed timeline:\n")
	for _, row := range timeline.Render(s.Results, s.Elapsed) {
		ew.printf("P%d: %s\n", row.ID, row.Cells)
	}

	return ew.err
}

// errWriter keeps the first write error and skips everything after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
