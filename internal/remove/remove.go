// Package remove executes (or simulates) the removal of a single candidate
// and reports the outcome. Failures here are never fatal to a run.
package remove

import (
	"strings"

	"macsweep/internal/fsutil"
	"macsweep/internal/resolve"
	"macsweep/internal/snapshot"
	"macsweep/internal/trash"
)

// Mode selects the execution policy for a run. The modes are mutually
// exclusive and resolved from raw flags before they reach the engine.
type Mode int

const (
	DryRun Mode = iota
	TrashBackup
	PermanentDelete
)

func (m Mode) String() string {
	switch m {
	case DryRun:
		return "dry-run"
	case TrashBackup:
		return "trash"
	case PermanentDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Status classifies the outcome of one execution.
type Status int

const (
	StatusRemoved Status = iota
	StatusSkipped
	StatusSimulated
)

func (s Status) String() string {
	switch s {
	case StatusRemoved:
		return "removed"
	case StatusSkipped:
		return "skipped"
	case StatusSimulated:
		return "simulated"
	default:
		return "unknown"
	}
}

// Outcome records what happened to one candidate. Immutable once produced.
// Reason is set only for skips.
type Outcome struct {
	Path      string
	Category  resolve.Category
	SizeBytes int64
	Status    Status
	Reason    string
}

// Executor performs removals. It owns no policy: the mode arrives per call.
type Executor struct {
	trash *trash.Trash
	snaps snapshot.Manager
}

func New(t *trash.Trash, snaps snapshot.Manager) *Executor {
	return &Executor{trash: t, snaps: snaps}
}

// Execute measures the candidate, performs (or simulates) its removal per
// mode, and returns the outcome. In DryRun mode the filesystem is never
// mutated; only the size probe reads it.
func (e *Executor) Execute(c resolve.Candidate, mode Mode) Outcome {
	if c.Category == resolve.Snapshots {
		return e.executeSnapshot(c, mode)
	}

	size := fsutil.PathSize(c.Path)
	out := Outcome{Path: c.Path, Category: c.Category, SizeBytes: size}

	if mode == DryRun {
		out.Status = StatusSimulated
		return out
	}

	var err error
	switch mode {
	case TrashBackup:
		err = e.trash.Move(c.Path)
	case PermanentDelete:
		err = trash.PermanentDelete(c.Path)
	}
	if err != nil {
		out.Status = StatusSkipped
		out.SizeBytes = 0
		out.Reason = skipReason(err)
		return out
	}

	out.Status = StatusRemoved
	return out
}

// executeSnapshot deletes through the snapshot primitive instead of the
// filesystem. Snapshot sizes are not observable, so they contribute 0.
func (e *Executor) executeSnapshot(c resolve.Candidate, mode Mode) Outcome {
	out := Outcome{Path: c.Path, Category: c.Category}

	if mode == DryRun {
		out.Status = StatusSimulated
		return out
	}

	name := strings.TrimPrefix(c.Path, resolve.SnapshotScheme)
	if err := e.snaps.Delete(snapshot.Snapshot{Name: name}); err != nil {
		out.Status = StatusSkipped
		out.Reason = skipReason(err)
		return out
	}
	out.Status = StatusRemoved
	return out
}
