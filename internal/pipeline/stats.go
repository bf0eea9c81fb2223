package pipeline

import "sync/atomic"

// RunStats tracks aggregate counters and byte totals across a batch run.
// All counters except Total are updated concurrently by workers, hence
// the atomics; Total is set once before any worker starts.
type RunStats struct {
	Total int

	Succeeded   atomic.Int64
	Skipped     atomic.Int64
	Failed      atomic.Int64
	Artifacts   atomic.Int64
	InputBytes  atomic.Int64
	OutputBytes atomic.Int64
}

// SpaceSaved returns the aggregate byte difference between inputs and
// outputs. Negative means the outputs grew overall (all artifacts of a
// source are counted, so growth is the normal case here).
func (s *RunStats) SpaceSaved() int64 {
	return s.InputBytes.Load() - s.OutputBytes.Load()
}
