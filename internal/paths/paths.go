// Package paths declares the fixed set of filesystem locations the cleanup
// engine is allowed to touch. The whitelist is deliberately not configurable
// beyond age thresholds: every category resolves against these roots and
// nothing else.
package paths

import (
	"os"
	"path/filepath"
)

// Roots holds the whitelisted filesystem locations for one run. Production
// code uses Default(); tests point the fields at temp directories.
type Roots struct {
	UserCacheRoot    string   // ~/Library/Caches
	SafariSupportDir string   // ~/Library/Safari (side-file scan only)
	SystemCacheRoots []string // /Library/Caches, /System/Library/Caches
	SystemTempRoot   string   // /private/tmp
	UserTempRoot     string   // per-session $TMPDIR scratch
	DownloadsRoot    string   // ~/Downloads
	TrashDir         string   // ~/.Trash
	LockFile         string   // single-instance pidfile
}

// Default returns the macOS whitelist for the current user.
func Default() (Roots, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Roots{}, err
	}

	return Roots{
		UserCacheRoot:    filepath.Join(home, "Library/Caches"),
		SafariSupportDir: filepath.Join(home, "Library/Safari"),
		SystemCacheRoots: []string{
			"/Library/Caches",
			"/System/Library/Caches",
		},
		SystemTempRoot: "/private/tmp",
		UserTempRoot:   os.TempDir(),
		DownloadsRoot:  filepath.Join(home, "Downloads"),
		TrashDir:       filepath.Join(home, ".Trash"),
		LockFile:       filepath.Join(os.TempDir(), "macsweep.lock"),
	}, nil
}

// protectedCacheNames are entries under the user cache root that are
// load-bearing for system chrome. They are never candidates, regardless of
// configuration.
var protectedCacheNames = map[string]bool{
	"com.apple.Safari":         true, // active browser index cache
	"com.apple.sharedfilelist": true, // recent-items sidebar cache
	"com.apple.LaunchServices": true,
	"CloudKit":                 true,
}

// IsProtectedCacheName reports whether a user-cache entry is on the fixed
// denylist.
func IsProtectedCacheName(name string) bool {
	return protectedCacheNames[name]
}

// browserCacheSubpaths are the per-browser cache directories relative to the
// user cache root. Only entries that exist are resolved.
var browserCacheSubpaths = []string{
	"Google/Chrome/Default/Cache",
	"Google/Chrome/Default/Code Cache",
	"Firefox/Profiles",
	"Arc/Cache",
	"com.microsoft.edgemac",
}

// BrowserCacheDirs returns the absolute fixed browser cache paths under the
// user cache root.
func (r Roots) BrowserCacheDirs() []string {
	dirs := make([]string, 0, len(browserCacheSubpaths))
	for _, sub := range browserCacheSubpaths {
		dirs = append(dirs, filepath.Join(r.UserCacheRoot, sub))
	}
	return dirs
}

// TempRoots returns the temp scratch roots in scan order.
func (r Roots) TempRoots() []string {
	return []string{r.SystemTempRoot, r.UserTempRoot}
}
