package scheduler

import "github.com/Barritosaurus/schedsim/internal/process"

// FCFS runs processes strictly in the order given. The input is not sorted:
// callers supply it in arrival order. When the next process has not arrived
// yet the CPU idles until it does.
func FCFS(records []process.Record) Schedule {
	var (
		clock   int64
		results = make([]Result, len(records))
		order   = make([]int, len(records))
	)
	for i, r := range records {
		if clock < r.ArrivalTime {
			clock = r.ArrivalTime
		}
		results[i] = complete(r, clock)
		order[i] = i
		clock = results[i].Completion
	}

	return Schedule{
		Policy:  NameFCFS,
		Results: results,
		Order:   order,
		Elapsed: clock,
	}
}
