package resolve

import (
	"iter"
	"os"
	"path/filepath"

	"macsweep/internal/paths"
)

// userCaches yields the immediate children of the user cache root. The root
// itself is never a candidate, and neither is anything on the fixed
// protected denylist — those exclusions hold regardless of configuration.
func (r *Resolver) userCaches() iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		entries, err := os.ReadDir(r.roots.UserCacheRoot)
		if err != nil {
			return // unreadable root yields no candidates
		}
		for _, entry := range entries {
			if paths.IsProtectedCacheName(entry.Name()) || r.excluded(entry.Name()) {
				continue
			}
			c := Candidate{
				Path:     filepath.Join(r.roots.UserCacheRoot, entry.Name()),
				Category: UserCaches,
				IsDir:    entry.IsDir(),
			}
			if !yield(c) {
				return
			}
		}
	}
}

// systemCaches yields the immediate children of the system-wide cache roots.
// The orchestrator gates this category on elevated privilege before any
// resolution happens; the resolver does not re-check.
func (r *Resolver) systemCaches() iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		for _, root := range r.roots.SystemCacheRoots {
			entries, err := os.ReadDir(root)
			if err != nil {
				continue
			}
			for _, entry := range entries {
				c := Candidate{
					Path:     filepath.Join(root, entry.Name()),
					Category: SystemCaches,
					IsDir:    entry.IsDir(),
				}
				if !yield(c) {
					return
				}
			}
		}
	}
}
