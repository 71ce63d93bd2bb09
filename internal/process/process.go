package process

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRecord = errors.New("invalid process record")
	ErrDuplicateID   = errors.New("duplicate process id")
)

// Record is a single process as read from the input source. Records are
// never modified once loaded; schedulers derive their timing from them.
type Record struct {
	ID          int64
	ArrivalTime int64
	BurstTime   int64
}

// Validate checks every record for a non-negative arrival time, a positive
// burst time and an id not used by an earlier record.
func Validate(records []Record) error {
	seen := make(map[int64]int, len(records))
	for i, r := range records {
		if r.ArrivalTime < 0 {
			return fmt.Errorf("%w: P%d (row %d) has negative arrival time %d", ErrInvalidRecord, r.ID, i+1, r.ArrivalTime)
		}
		if r.BurstTime <= 0 {
			return fmt.Errorf("%w: P%d (row %d) has non-positive burst time %d", ErrInvalidRecord, r.ID, i+1, r.BurstTime)
		}
		if first, ok := seen[r.ID]; ok {
			return fmt.Errorf("%w: P%d on rows %d and %d", ErrDuplicateID, r.ID, first+1, i+1)
		}
		seen[r.ID] = i
	}

	return nil
}

// Truncate keeps at most max records and reports how many were dropped.
// A max of zero or less means no limit.
func Truncate(records []Record, max int) ([]Record, int) {
	if max <= 0 || len(records) <= max {
		return records, 0
	}

	return records[:max], len(records) - max
}

// Clone returns an independent copy so that separate runs never share a
// backing array.
func Clone(records []Record) []Record {
	if records == nil {
		return nil
	}
	out := make([]Record, len(records))
	copy(out, records)

	return out
}
