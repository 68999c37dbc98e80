package resolve

import (
	"iter"
	"os"
	"path/filepath"

	wildcard "github.com/IGLOU-EU/go-wildcard"
)

// sideFilePatterns match the transient database companions (write-ahead log
// and shared-memory files) that browsers leave next to their stores. The
// databases themselves are never candidates.
var sideFilePatterns = []string{"*.db-wal", "*.db-shm"}

// browserCaches yields the fixed per-browser cache directories that exist,
// plus transient database side-files in the Safari support directory. The
// fixed list makes candidates unique by construction.
func (r *Resolver) browserCaches() iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		for _, dir := range r.roots.BrowserCacheDirs() {
			info, err := os.Stat(dir)
			if err != nil {
				continue // browser not installed
			}
			c := Candidate{Path: dir, Category: BrowserCaches, IsDir: info.IsDir()}
			if !yield(c) {
				return
			}
		}

		entries, err := os.ReadDir(r.roots.SafariSupportDir)
		if err != nil {
			return
		}
		for _, entry := range entries {
			if entry.IsDir() || !isSideFile(entry.Name()) {
				continue
			}
			c := Candidate{
				Path:     filepath.Join(r.roots.SafariSupportDir, entry.Name()),
				Category: BrowserCaches,
			}
			if !yield(c) {
				return
			}
		}
	}
}

func isSideFile(name string) bool {
	for _, pattern := range sideFilePatterns {
		if wildcard.Match(pattern, name) {
			return true
		}
	}
	return false
}
