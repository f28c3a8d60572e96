package shelf

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_SignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "lists.db")
	if err := os.WriteFile(dbPath, []byte("x"), 0o644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	w, err := NewWatcher(dbPath)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(dbPath, []byte("xy"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	select {
	case <-w.Changes:
	case <-time.After(3 * time.Second):
		t.Fatal("no change signal after write")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "lists.db")
	if err := os.WriteFile(dbPath, []byte("x"), 0o644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	w, err := NewWatcher(dbPath)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("y"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	select {
	case <-w.Changes:
		t.Fatal("unexpected signal for unrelated file")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_CloseWithoutStart(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "lists.db")

	// Start can fail (e.g. the directory vanished); the handle must still
	// be releasable without blocking on a loop that never ran.
	w, err := NewWatcher(dbPath)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- w.Close() }()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Close = %v, want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Close blocked on an unstarted watcher")
	}
}

func TestWatcher_MatchesSidecars(t *testing.T) {
	t.Parallel()
	w := &Watcher{dbPath: "/data/lists.db"}

	tests := []struct {
		name string
		want bool
	}{
		{"/data/lists.db", true},
		{"/data/lists.db-wal", true},
		{"/data/lists.db-journal", true},
		{"/data/other.db", false},
		{"/data/events.jsonl", false},
	}
	for _, tt := range tests {
		if got := w.isDBFile(tt.name); got != tt.want {
			t.Errorf("isDBFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
