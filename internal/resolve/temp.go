package resolve

import (
	"iter"
	"os"
	"path/filepath"
	"time"
)

// tempFiles yields regular files under the temp scratch roots whose
// modification time is at least ageDays old. Files currently held open by
// another process are excluded at resolution time; the check is best-effort,
// so a file that becomes in-use afterwards surfaces as a removal skip.
func (r *Resolver) tempFiles(ageDays int) iter.Seq[Candidate] {
	cutoff := time.Now().AddDate(0, 0, -ageDays)
	return func(yield func(Candidate) bool) {
		for _, root := range r.roots.TempRoots() {
			entries, err := os.ReadDir(root)
			if err != nil {
				continue
			}
			for _, entry := range entries {
				if entry.IsDir() || !entry.Type().IsRegular() {
					continue
				}
				info, err := entry.Info()
				if err != nil {
					continue // vanished between listing and stat
				}
				if info.ModTime().After(cutoff) {
					continue
				}
				path := filepath.Join(root, entry.Name())
				if r.inUse.InUse(path) {
					continue
				}
				if !yield(Candidate{Path: path, Category: TempFiles}) {
					return
				}
			}
		}
	}
}

// downloads yields top-level regular files under the downloads root older
// than ageDays. Non-recursive: subdirectories are never touched.
func (r *Resolver) downloads(ageDays int) iter.Seq[Candidate] {
	cutoff := time.Now().AddDate(0, 0, -ageDays)
	return func(yield func(Candidate) bool) {
		entries, err := os.ReadDir(r.roots.DownloadsRoot)
		if err != nil {
			return
		}
		for _, entry := range entries {
			if entry.IsDir() || !entry.Type().IsRegular() {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			if info.ModTime().After(cutoff) {
				continue
			}
			c := Candidate{
				Path:     filepath.Join(r.roots.DownloadsRoot, entry.Name()),
				Category: Downloads,
			}
			if !yield(c) {
				return
			}
		}
	}
}
