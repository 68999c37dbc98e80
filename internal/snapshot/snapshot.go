// Package snapshot wraps the platform's local point-in-time snapshot
// subsystem. Snapshots are not filesystem paths; they are listed and deleted
// through the tmutil primitive.
package snapshot

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// Snapshot identifies one local APFS snapshot by its full name, e.g.
// "com.apple.TimeMachine.2024-01-02-123456.local".
type Snapshot struct {
	Name string
}

var stampRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}-\d{6}`)

// Stamp returns the date token embedded in the snapshot name, which is what
// the deletion primitive expects. Empty if the name carries no stamp.
func (s Snapshot) Stamp() string {
	return stampRe.FindString(s.Name)
}

// Manager lists and deletes local snapshots.
type Manager interface {
	List() ([]Snapshot, error)
	Delete(s Snapshot) error
}

// TMUtil is the production Manager backed by /usr/bin/tmutil.
type TMUtil struct{}

func (TMUtil) List() ([]Snapshot, error) {
	out, err := exec.Command("tmutil", "listlocalsnapshots", "/").Output()
	if err != nil {
		return nil, fmt.Errorf("tmutil listlocalsnapshots: %w", err)
	}
	return parseList(string(out)), nil
}

func (TMUtil) Delete(s Snapshot) error {
	stamp := s.Stamp()
	if stamp == "" {
		return fmt.Errorf("snapshot %q has no date stamp", s.Name)
	}
	if out, err := exec.Command("tmutil", "deletelocalsnapshots", stamp).CombinedOutput(); err != nil {
		return fmt.Errorf("tmutil deletelocalsnapshots %s: %w (%s)", stamp, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// parseList extracts snapshot names from tmutil listlocalsnapshots output,
// skipping the "Snapshots for disk ..." header.
func parseList(out string) []Snapshot {
	var snaps []Snapshot
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.HasPrefix(line, "com.apple.TimeMachine.") {
			continue
		}
		snaps = append(snaps, Snapshot{Name: line})
	}
	return snaps
}
