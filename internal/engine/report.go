package engine

import (
	"time"

	"macsweep/internal/remove"
)

// Report aggregates one run. Built incrementally by the orchestrator and
// read-only to everything else. TotalBytesFreed sums sizes over outcomes
// with status removed; simulated and skipped outcomes never contribute.
type Report struct {
	Outcomes        []remove.Outcome
	TotalBytesFreed int64
	StartedAt       time.Time
	FinishedAt      time.Time
	FreeSpaceBefore uint64
	FreeSpaceAfter  uint64
}

func (r *Report) append(out remove.Outcome) {
	r.Outcomes = append(r.Outcomes, out)
	if out.Status == remove.StatusRemoved {
		r.TotalBytesFreed += out.SizeBytes
	}
}

// Counts returns how many outcomes landed in each status.
func (r *Report) Counts() (removed, skipped, simulated int) {
	for _, out := range r.Outcomes {
		switch out.Status {
		case remove.StatusRemoved:
			removed++
		case remove.StatusSkipped:
			skipped++
		case remove.StatusSimulated:
			simulated++
		}
	}
	return
}
