// Package inuse answers whether a file is currently held open by another
// process. The check is best-effort: a file can become in-use between the
// check and a later removal, which the executor handles as a skip.
package inuse

import (
	"bytes"
	"os/exec"
)

// Checker reports whether a path is held open by a live process.
type Checker interface {
	InUse(path string) bool
}

// LsofChecker shells out to lsof, the platform primitive for open-file
// queries. Any lsof failure (not installed, no access) is treated as
// "not in use" — the check protects against obvious mistakes, it is not a
// transactional guarantee.
type LsofChecker struct{}

func (LsofChecker) InUse(path string) bool {
	// lsof exits non-zero when nothing holds the file open.
	out, err := exec.Command("lsof", "-t", "--", path).Output()
	if err != nil {
		return false
	}
	return len(bytes.TrimSpace(out)) > 0
}

// Never is a Checker that considers nothing in use. Used when the in-use
// check is irrelevant (dry-run listings, tests).
type Never struct{}

func (Never) InUse(string) bool { return false }
