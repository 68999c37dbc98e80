// Package engine is the cleanup orchestrator: it holds the single-instance
// lock for the duration of a run, walks the enabled categories in their
// declared order, executes every candidate, and aggregates the report.
package engine

import (
	"errors"
	"time"

	"macsweep/internal/fsutil"
	"macsweep/internal/lock"
	"macsweep/internal/remove"
	"macsweep/internal/resolve"
)

// ErrPrivilegeRequired is the fatal error for a run that enables
// SystemCaches without holding elevated privilege. The engine never
// escalates privilege itself; the caller establishes it beforehand.
var ErrPrivilegeRequired = errors.New("system caches require elevated privilege")

// Config is the fully resolved input to a run. Defaulting and config-file
// merging happen entirely outside the engine.
type Config struct {
	Mode                remove.Mode
	EnabledCategories   map[resolve.Category]bool
	TempFileAgeDays     int
	DownloadFileAgeDays int
	ExcludePatterns     []string

	// ElevatedPrivilege records whether the caller verified that the
	// process holds elevated privilege. Required when SystemCaches is
	// enabled; checked before any filesystem mutation.
	ElevatedPrivilege bool
}

// Orchestrator runs the engine. Single-threaded and run-to-completion: each
// candidate is fully resolved, executed, and recorded before the next one.
type Orchestrator struct {
	resolver *resolve.Resolver
	executor *remove.Executor
	guard    *lock.Guard
	sink     Sink
	diskPath string
}

func New(resolver *resolve.Resolver, executor *remove.Executor, guard *lock.Guard) *Orchestrator {
	return &Orchestrator{
		resolver: resolver,
		executor: executor,
		guard:    guard,
		sink:     NopSink{},
		diskPath: "/",
	}
}

// SetEventSink installs the sink that receives structured run events.
func (o *Orchestrator) SetEventSink(sink Sink) {
	if sink != nil {
		o.sink = sink
	}
}

// SetDiskPath overrides the path used for free-space accounting.
func (o *Orchestrator) SetDiskPath(path string) {
	o.diskPath = path
}

// Run executes one cleanup pass and returns its report. It fails fatally
// only when the lock is held by a live competing run or when SystemCaches
// is enabled without elevated privilege — in both cases before any mutation
// and without producing a report. Every other failure is recorded as a
// per-candidate skip. The lock is released on every exit path.
func (o *Orchestrator) Run(cfg Config) (*Report, error) {
	if err := o.guard.Acquire(); err != nil {
		return nil, err
	}
	defer o.guard.Release()

	if cfg.EnabledCategories[resolve.SystemCaches] && !cfg.ElevatedPrivilege {
		return nil, ErrPrivilegeRequired
	}

	o.resolver.SetExcludePatterns(cfg.ExcludePatterns)
	thresholds := resolve.Thresholds{
		TempFileAgeDays:     cfg.TempFileAgeDays,
		DownloadFileAgeDays: cfg.DownloadFileAgeDays,
	}

	report := &Report{
		StartedAt:       time.Now(),
		FreeSpaceBefore: fsutil.FreeSpace(o.diskPath),
	}
	o.sink.Emit(Event{Kind: EventRunStarted, Mode: cfg.Mode})

	for _, cat := range resolve.Categories() {
		if !cfg.EnabledCategories[cat] {
			continue
		}
		o.sink.Emit(Event{Kind: EventCategoryStarted, Category: cat})

		for candidate := range o.resolver.Resolve(cat, thresholds) {
			outcome := o.executor.Execute(candidate, cfg.Mode)
			report.append(outcome)
			o.sink.Emit(Event{Kind: EventOutcome, Category: cat, Outcome: &outcome})
		}
	}

	report.FinishedAt = time.Now()
	report.FreeSpaceAfter = fsutil.FreeSpace(o.diskPath)
	o.sink.Emit(Event{Kind: EventRunFinished, BytesFreed: report.TotalBytesFreed})

	return report, nil
}
