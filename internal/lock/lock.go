// Package lock provides the single-instance guard: an advisory pidfile that
// ensures only one cleanup run proceeds at a time on a host.
//
// The check-then-create sequence is not atomic against a racing acquire.
// That race is accepted for a single-user desktop tool; upgrading to a
// kernel advisory lock would change stale-lock recovery semantics.
package lock

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// AlreadyRunningError is returned by Acquire when the lock is held by a
// process that is still alive. The caller must abort the run.
type AlreadyRunningError struct {
	PID int
}

func (e *AlreadyRunningError) Error() string {
	return fmt.Sprintf("another cleanup run is in progress (pid %d)", e.PID)
}

// Guard implements the Unlocked -> Locked(pid) -> Unlocked lifecycle around
// a pidfile.
type Guard struct {
	path  string
	alive func(pid int32) bool
}

func New(path string) *Guard {
	return &Guard{path: path, alive: pidAlive}
}

func pidAlive(pid int32) bool {
	ok, err := process.PidExists(pid)
	return err == nil && ok
}

// Acquire takes the lock for the current process. If a lock artifact exists
// and its owner is alive, Acquire fails with AlreadyRunningError. A stale
// lock (owner dead, or unreadable content) is overwritten.
func (g *Guard) Acquire() error {
	if data, err := os.ReadFile(g.path); err == nil {
		if pid, perr := strconv.Atoi(strings.TrimSpace(string(data))); perr == nil {
			if pid != os.Getpid() && g.alive(int32(pid)) {
				return &AlreadyRunningError{PID: pid}
			}
		}
		// Stale lock: owner is gone or the artifact is garbage.
	}

	pid := strconv.Itoa(os.Getpid())
	if err := os.WriteFile(g.path, []byte(pid+"\n"), 0o644); err != nil {
		return fmt.Errorf("write lock file %s: %w", g.path, err)
	}
	return nil
}

// Release removes the lock artifact unconditionally. Called exactly once per
// successful Acquire, on every exit path.
func (g *Guard) Release() {
	os.Remove(g.path)
}
