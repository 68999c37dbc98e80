package resolve

import (
	"iter"
	"sort"
)

// maxSnapshotsPerRun caps how many local snapshots one run will remove.
const maxSnapshotsPerRun = 5

// snapshots yields the oldest local snapshots, capped per run, as candidates
// with synthetic snapshot:// paths. Listing failures yield no candidates;
// the snapshot subsystem being unavailable is not an error of the run.
func (r *Resolver) snapshots() iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		snaps, err := r.snaps.List()
		if err != nil {
			return
		}

		// The embedded date stamp sorts chronologically.
		sort.Slice(snaps, func(i, j int) bool {
			return snaps[i].Stamp() < snaps[j].Stamp()
		})
		if len(snaps) > maxSnapshotsPerRun {
			snaps = snaps[:maxSnapshotsPerRun]
		}

		for _, s := range snaps {
			if !yield(Candidate{Path: SnapshotScheme + s.Name, Category: Snapshots}) {
				return
			}
		}
	}
}
