package trash

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMove_RelocatesIntoTrash(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "cachefile")
	if err := os.WriteFile(src, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	tr := New(filepath.Join(root, "Trash"))
	if err := tr.Move(src); err != nil {
		t.Fatalf("Move: %v", err)
	}

	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("source still exists after Move")
	}
	if _, err := os.Stat(filepath.Join(root, "Trash", "cachefile")); err != nil {
		t.Errorf("file not in trash: %v", err)
	}
}

func TestMove_CollisionKeepsBoth(t *testing.T) {
	root := t.TempDir()
	trashDir := filepath.Join(root, "Trash")
	tr := New(trashDir)

	for _, dir := range []string{"a", "b"} {
		src := filepath.Join(root, dir, "same-name")
		if err := os.MkdirAll(filepath.Dir(src), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(src, []byte(dir), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := tr.Move(src); err != nil {
			t.Fatalf("Move %s: %v", src, err)
		}
	}

	entries, err := os.ReadDir(trashDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("trash holds %d entries, want 2 (collision overwrote)", len(entries))
	}
}

func TestMove_VanishedSource(t *testing.T) {
	root := t.TempDir()
	tr := New(filepath.Join(root, "Trash"))

	err := tr.Move(filepath.Join(root, "gone"))
	if err == nil {
		t.Error("Move of missing path should fail (executor maps it to a skip)")
	}
}

func TestPermanentDelete_Directory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "victim")
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := PermanentDelete(dir); err != nil {
		t.Fatalf("PermanentDelete: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("directory still exists")
	}
}
