package inputwatch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func waitFor(t *testing.T, ch <-chan string, want string) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case got := <-ch:
			if got == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %q", want)
		}
	}
}

func TestWatcher_DeliversChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	writeFile(t, path, "10 6 40")

	changes := make(chan string, 16)
	w, err := New(path, func(s string) { changes <- s }, withDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	initial, err := w.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if initial != "10 6 40" {
		t.Errorf("Read() = %q", initial)
	}
	w.Start()

	writeFile(t, path, "12 6 40")
	waitFor(t, changes, "12 6 40")

	// Editors that save through a temporary file and rename.
	tmp := filepath.Join(filepath.Dir(path), ".input.txt.swp")
	writeFile(t, tmp, "4 2 10")
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("rename: %v", err)
	}
	waitFor(t, changes, "4 2 10")
}

func TestWatcher_IgnoresOtherFilesAndDuplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	writeFile(t, path, "1")

	changes := make(chan string, 16)
	w, err := New(path, func(s string) { changes <- s }, withDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := w.Read(); err != nil {
		t.Fatal(err)
	}
	w.Start()

	writeFile(t, filepath.Join(dir, "other.txt"), "2")
	writeFile(t, path, "1") // same contents as already delivered

	select {
	case got := <-changes:
		t.Errorf("unexpected delivery %q", got)
	case <-time.After(200 * time.Millisecond):
	}

	w.Stop()
	w.Stop()
}

func TestWatcher_StopBeforeStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	writeFile(t, path, "")

	w, err := New(path, func(string) {})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	w.Stop()
	w.Start() // no-op after Stop
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "input.txt"), func(string) {})
	if err == nil {
		t.Fatal("New() should fail when the directory does not exist")
	}
}
