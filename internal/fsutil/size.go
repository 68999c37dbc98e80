// Package fsutil provides size probing for cleanup candidates.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shirou/gopsutil/v4/disk"
)

// PathSize returns the byte size of path: the file length for a regular
// file, or the recursive total for a directory. Vanished or unreadable
// entries contribute 0; the probe never fails. A 0 result is
// indistinguishable from an empty target, which is an accepted
// approximation.
func PathSize(path string) int64 {
	info, err := os.Lstat(path)
	if err != nil {
		return 0
	}
	if !info.IsDir() {
		return info.Size()
	}
	return dirSize(path)
}

func dirSize(dir string) int64 {
	var size int64
	filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip inaccessible entries
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		size += info.Size()
		return nil
	})
	return size
}

// FreeSpace returns the free bytes on the filesystem holding path, or 0 if
// the probe fails. Used for before/after accounting only, so a failed probe
// is not an error.
func FreeSpace(path string) uint64 {
	usage, err := disk.Usage(path)
	if err != nil {
		return 0
	}
	return usage.Free
}
