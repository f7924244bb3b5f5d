package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileCallsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("A=1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- File(ctx, path, 20*time.Millisecond, func(context.Context) error {
			changed <- struct{}{}
			return nil
		})
	}()

	// Writes to other files in the directory are ignored; keep writing the
	// watched file until the watcher has started and reports a change.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case <-changed:
			cancel()
			if err := <-done; err != nil {
				t.Errorf("File returned %v", err)
			}
			return
		case <-tick.C:
			if err := os.WriteFile(filepath.Join(dir, "other"), []byte("x"), 0644); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(path, []byte("A=2\n"), 0644); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("onChange was not called")
		}
	}
}

func TestFileMissingDirectory(t *testing.T) {
	err := File(context.Background(), filepath.Join(t.TempDir(), "nope", ".env"), DefaultDebounce, func(context.Context) error { return nil })
	if err == nil {
		t.Errorf("File on a missing directory returned nil")
	}
}
