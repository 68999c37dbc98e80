// Package testutil provides fixtures for engine tests. All file operations
// use t.TempDir() for isolated, auto-cleaned state.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"macsweep/internal/paths"
)

// Fixture lays out a whitelist root structure inside a temp directory.
type Fixture struct {
	T    *testing.T
	Root string

	Roots paths.Roots
}

// NewFixture creates the standard directory layout and returns Roots
// pointing at it.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()

	root := t.TempDir()
	f := &Fixture{
		T:    t,
		Root: root,
		Roots: paths.Roots{
			UserCacheRoot:    filepath.Join(root, "Library/Caches"),
			SafariSupportDir: filepath.Join(root, "Library/Safari"),
			SystemCacheRoots: []string{filepath.Join(root, "SystemCaches")},
			SystemTempRoot:   filepath.Join(root, "tmp"),
			UserTempRoot:     filepath.Join(root, "var-folders"),
			DownloadsRoot:    filepath.Join(root, "Downloads"),
			TrashDir:         filepath.Join(root, "Trash"),
			LockFile:         filepath.Join(root, "macsweep.lock"),
		},
	}

	for _, dir := range []string{
		f.Roots.UserCacheRoot,
		f.Roots.SafariSupportDir,
		f.Roots.SystemCacheRoots[0],
		f.Roots.SystemTempRoot,
		f.Roots.UserTempRoot,
		f.Roots.DownloadsRoot,
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("create %s: %v", dir, err)
		}
	}
	return f
}

// CreateFile writes a file of the given size under the fixture root and
// returns its absolute path.
func (f *Fixture) CreateFile(relPath string, size int) string {
	f.T.Helper()

	full := filepath.Join(f.Root, relPath)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		f.T.Fatalf("create dir for %s: %v", full, err)
	}
	if err := os.WriteFile(full, make([]byte, size), 0o644); err != nil {
		f.T.Fatalf("create %s: %v", full, err)
	}
	return full
}

// CreateFileWithAge creates a file and backdates its modification time.
func (f *Fixture) CreateFileWithAge(relPath string, size int, age time.Duration) string {
	f.T.Helper()

	full := f.CreateFile(relPath, size)
	old := time.Now().Add(-age)
	if err := os.Chtimes(full, old, old); err != nil {
		f.T.Fatalf("backdate %s: %v", full, err)
	}
	return full
}

// CreateDirWithFile creates a directory containing one file of the given
// size and backdates the directory.
func (f *Fixture) CreateDirWithFile(relDir, name string, size int, age time.Duration) string {
	f.T.Helper()

	f.CreateFileWithAge(filepath.Join(relDir, name), size, age)
	dir := filepath.Join(f.Root, relDir)
	old := time.Now().Add(-age)
	if err := os.Chtimes(dir, old, old); err != nil {
		f.T.Fatalf("backdate %s: %v", dir, err)
	}
	return dir
}
