package scheduler

import "github.com/Barritosaurus/schedsim/internal/process"

// SJF is non-preemptive shortest-job-first. At every decision point it
// picks, among unfinished processes that have arrived, the one with the
// smallest burst time. Equal bursts go to the process that comes first in
// the input, since the scan only replaces its candidate on a strictly
// smaller burst.
//
// When nothing is eligible the clock jumps to the earliest pending arrival
// instead of stepping one unit at a time; the resulting schedule is the
// same.
func SJF(records []process.Record) Schedule {
	var (
		clock    int64
		done     int
		finished = make([]bool, len(records))
		results  = make([]Result, len(records))
		order    = make([]int, 0, len(records))
	)
	for done < len(records) {
		idx := -1
		nextArrival := int64(-1)
		for i, r := range records {
			if finished[i] {
				continue
			}
			if r.ArrivalTime > clock {
				if nextArrival < 0 || r.ArrivalTime < nextArrival {
					nextArrival = r.ArrivalTime
				}
				continue
			}
			if idx < 0 || r.BurstTime < records[idx].BurstTime {
				idx = i
			}
		}

		// idle
		if idx < 0 {
			clock = nextArrival
			continue
		}

		results[idx] = complete(records[idx], clock)
		clock = results[idx].Completion
		finished[idx] = true
		order = append(order, idx)
		done++
	}

	return Schedule{
		Policy:  NameSJF,
		Results: results,
		Order:   order,
		Elapsed: clock,
	}
}
