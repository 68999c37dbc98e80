package remove

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"macsweep/internal/resolve"
	"macsweep/internal/snapshot"
	"macsweep/internal/trash"
)

type fakeSnapshots struct {
	deleted []string
	err     error
}

func (f *fakeSnapshots) List() ([]snapshot.Snapshot, error) { return nil, nil }
func (f *fakeSnapshots) Delete(s snapshot.Snapshot) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, s.Name)
	return nil
}

func newExecutor(t *testing.T) (*Executor, string) {
	t.Helper()
	trashDir := filepath.Join(t.TempDir(), "Trash")
	return New(trash.New(trashDir), &fakeSnapshots{}), trashDir
}

func writeFile(t *testing.T, path string, size int) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExecute_DryRunNeverMutates(t *testing.T) {
	e, trashDir := newExecutor(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "cache.bin"), 1234)

	out := e.Execute(resolve.Candidate{Path: path, Category: resolve.UserCaches}, DryRun)

	if out.Status != StatusSimulated {
		t.Errorf("status = %s, want simulated", out.Status)
	}
	if out.SizeBytes != 1234 {
		t.Errorf("size = %d, want 1234", out.SizeBytes)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error("dry run removed the file")
	}
	if entries, _ := os.ReadDir(trashDir); len(entries) != 0 {
		t.Error("dry run touched the trash")
	}
}

func TestExecute_TrashBackup(t *testing.T) {
	e, trashDir := newExecutor(t)
	path := writeFile(t, filepath.Join(t.TempDir(), "cache.bin"), 2048)

	out := e.Execute(resolve.Candidate{Path: path, Category: resolve.UserCaches}, TrashBackup)

	if out.Status != StatusRemoved {
		t.Fatalf("status = %s (%s), want removed", out.Status, out.Reason)
	}
	if out.SizeBytes != 2048 {
		t.Errorf("size = %d, want 2048", out.SizeBytes)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("source still exists")
	}
	if _, err := os.Stat(filepath.Join(trashDir, "cache.bin")); err != nil {
		t.Errorf("not in trash: %v", err)
	}
}

func TestExecute_PermanentDelete(t *testing.T) {
	e, _ := newExecutor(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "victim", "inner.bin"), 512)

	out := e.Execute(resolve.Candidate{Path: filepath.Join(dir, "victim"), Category: resolve.UserCaches, IsDir: true}, PermanentDelete)

	if out.Status != StatusRemoved {
		t.Fatalf("status = %s (%s), want removed", out.Status, out.Reason)
	}
	if out.SizeBytes != 512 {
		t.Errorf("size = %d, want 512", out.SizeBytes)
	}
	if _, err := os.Stat(filepath.Join(dir, "victim")); !os.IsNotExist(err) {
		t.Error("directory still exists")
	}
}

func TestExecute_VanishedIsSkip(t *testing.T) {
	e, _ := newExecutor(t)
	out := e.Execute(resolve.Candidate{Path: filepath.Join(t.TempDir(), "gone"), Category: resolve.TempFiles}, TrashBackup)

	if out.Status != StatusSkipped {
		t.Fatalf("status = %s, want skipped", out.Status)
	}
	if out.Reason == "" {
		t.Error("skip carries no reason")
	}
	if out.SizeBytes != 0 {
		t.Errorf("skipped outcome has size %d, must not contribute bytes", out.SizeBytes)
	}
}

func TestExecute_Snapshot(t *testing.T) {
	snaps := &fakeSnapshots{}
	e := New(trash.New(filepath.Join(t.TempDir(), "Trash")), snaps)
	c := resolve.Candidate{
		Path:     resolve.SnapshotScheme + "com.apple.TimeMachine.2024-03-01-101010.local",
		Category: resolve.Snapshots,
	}

	if out := e.Execute(c, DryRun); out.Status != StatusSimulated {
		t.Errorf("dry-run snapshot status = %s", out.Status)
	}
	if len(snaps.deleted) != 0 {
		t.Fatal("dry run deleted a snapshot")
	}

	out := e.Execute(c, TrashBackup)
	if out.Status != StatusRemoved {
		t.Fatalf("status = %s (%s), want removed", out.Status, out.Reason)
	}
	if len(snaps.deleted) != 1 || snaps.deleted[0] != "com.apple.TimeMachine.2024-03-01-101010.local" {
		t.Errorf("deleted = %v", snaps.deleted)
	}
}

func TestExecute_SnapshotFailureIsSkip(t *testing.T) {
	snaps := &fakeSnapshots{err: errors.New("tmutil: snapshot busy")}
	e := New(trash.New(filepath.Join(t.TempDir(), "Trash")), snaps)
	c := resolve.Candidate{
		Path:     resolve.SnapshotScheme + "com.apple.TimeMachine.2024-03-01-101010.local",
		Category: resolve.Snapshots,
	}

	out := e.Execute(c, PermanentDelete)
	if out.Status != StatusSkipped || out.Reason == "" {
		t.Errorf("outcome = %+v, want skipped with reason", out)
	}
}
