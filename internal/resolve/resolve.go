// Package resolve turns enabled cleanup categories into lazy sequences of
// removal candidates, applying the category-specific exclusion rules.
package resolve

import (
	"iter"

	wildcard "github.com/IGLOU-EU/go-wildcard"

	"macsweep/internal/inuse"
	"macsweep/internal/paths"
	"macsweep/internal/snapshot"
)

// Category is one whitelisted class of cleanup target. The set is closed:
// a new category must declare both its roots and its exclusion rules.
type Category int

const (
	UserCaches Category = iota
	BrowserCaches
	TempFiles
	Downloads
	SystemCaches
	Snapshots
)

func (c Category) String() string {
	switch c {
	case UserCaches:
		return "user-caches"
	case BrowserCaches:
		return "browser-caches"
	case TempFiles:
		return "temp-files"
	case Downloads:
		return "downloads"
	case SystemCaches:
		return "system-caches"
	case Snapshots:
		return "snapshots"
	default:
		return "unknown"
	}
}

// Categories returns all categories in the fixed processing order.
func Categories() []Category {
	return []Category{UserCaches, BrowserCaches, TempFiles, Downloads, SystemCaches, Snapshots}
}

// Candidate is a single entity proposed for removal. Snapshot candidates
// carry a synthetic snapshot:// path for uniform reporting.
type Candidate struct {
	Path     string
	Category Category
	IsDir    bool
}

// SnapshotScheme prefixes the synthetic paths of snapshot candidates.
const SnapshotScheme = "snapshot://"

// Thresholds carries the age limits that gate TempFiles and Downloads
// inclusion.
type Thresholds struct {
	TempFileAgeDays     int
	DownloadFileAgeDays int
}

// Resolver produces candidates against a fixed set of whitelist roots.
type Resolver struct {
	roots    paths.Roots
	inUse    inuse.Checker
	snaps    snapshot.Manager
	excludes []string
}

func New(roots paths.Roots, checker inuse.Checker, snaps snapshot.Manager) *Resolver {
	return &Resolver{roots: roots, inUse: checker, snaps: snaps}
}

// SetExcludePatterns installs user-supplied wildcard patterns that remove
// matching user-cache entries from consideration.
func (r *Resolver) SetExcludePatterns(patterns []string) {
	r.excludes = patterns
}

// Resolve returns a finite, lazy sequence of candidates for one category.
// Each iteration performs a fresh filesystem scan; ordering follows the
// underlying directory listing and is not guaranteed stable across runs.
// Paths are unique per category by construction.
func (r *Resolver) Resolve(cat Category, th Thresholds) iter.Seq[Candidate] {
	switch cat {
	case UserCaches:
		return r.userCaches()
	case BrowserCaches:
		return r.browserCaches()
	case TempFiles:
		return r.tempFiles(th.TempFileAgeDays)
	case Downloads:
		return r.downloads(th.DownloadFileAgeDays)
	case SystemCaches:
		return r.systemCaches()
	case Snapshots:
		return r.snapshots()
	default:
		return func(func(Candidate) bool) {}
	}
}

func (r *Resolver) excluded(name string) bool {
	for _, pattern := range r.excludes {
		if wildcard.Match(pattern, name) {
			return true
		}
	}
	return false
}
