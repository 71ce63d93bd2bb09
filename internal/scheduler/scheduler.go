// Package scheduler computes non-preemptive single-CPU schedules over a
// fixed set of processes. Each policy reads its input without modifying it
// and returns a fresh Schedule.
package scheduler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Barritosaurus/schedsim/internal/process"
)

var ErrUnknownPolicy = errors.New("unknown scheduling policy")

type (
	// Result is the computed timing of one process.
	Result struct {
		Process    process.Record
		Start      int64
		Completion int64
		Waiting    int64
		Turnaround int64
	}

	// Schedule is the outcome of one policy run. Results keep the input
	// order; Order lists indices into Results in execution order.
	Schedule struct {
		Policy  string
		Results []Result
		Order   []int
		Elapsed int64
	}

	// Policy schedules a sequence of records.
	Policy func(records []process.Record) Schedule
)

const (
	NameFCFS = "fcfs"
	NameSJF  = "sjf"
)

var (
	policies = map[string]Policy{
		NameFCFS: FCFS,
		NameSJF:  SJF,
	}
	titles = map[string]string{
		NameFCFS: "FCFS Scheduling",
		NameSJF:  "SJF Non-Preemptive Scheduling",
	}
)

// Names lists the registered policies in a stable order.
func Names() []string {
	return []string{NameFCFS, NameSJF}
}

// Lookup resolves a policy by name, ignoring case.
func Lookup(name string) (Policy, error) {
	p, ok := policies[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownPolicy, name, strings.Join(Names(), ", "))
	}

	return p, nil
}

// Title returns the report header for a policy name.
func Title(name string) string {
	if t, ok := titles[name]; ok {
		return t
	}

	return strings.ToUpper(name) + " Scheduling"
}

// complete fills in the derived fields for a process started at start.
func complete(r process.Record, start int64) Result {
	completion := start + r.BurstTime
	return Result{
		Process:    r,
		Start:      start,
		Completion: completion,
		Waiting:    start - r.ArrivalTime,
		Turnaround: completion - r.ArrivalTime,
	}
}
