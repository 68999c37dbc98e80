// Package trash implements removal as a move into a recoverable holding
// area, plus the permanent-delete fallback.
package trash

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Trash moves paths into a single destination directory.
type Trash struct {
	dir string
}

func New(dir string) *Trash {
	return &Trash{dir: dir}
}

// Move relocates path into the trash directory. Name collisions get a
// timestamp suffix so nothing already in the trash is overwritten. A
// cross-device rename fails and is reported to the caller; the engine treats
// that as a per-candidate skip, not an error of the run.
func (t *Trash) Move(path string) error {
	if err := os.MkdirAll(t.dir, 0o700); err != nil {
		return fmt.Errorf("ensure trash dir: %w", err)
	}

	dest := filepath.Join(t.dir, filepath.Base(path))
	if _, err := os.Lstat(dest); err == nil {
		suffix := time.Now().Format("15.04.05")
		dest = filepath.Join(t.dir, fmt.Sprintf("%s %s", filepath.Base(path), suffix))
	}

	return os.Rename(path, dest)
}

// PermanentDelete removes path recursively with no recovery.
func PermanentDelete(path string) error {
	return os.RemoveAll(path)
}
