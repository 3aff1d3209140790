package watch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gradient.png")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	fired := make(chan struct{}, 10)
	w, err := New(path, 20*time.Millisecond, func() error {
		fired <- struct{}{}
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	w.Start()
	defer w.Stop()

	if err := os.WriteFile(path, []byte("v2"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("onChange was not called after the file was written")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gradient.png")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	fired := make(chan struct{}, 10)
	w, err := New(path, 20*time.Millisecond, func() error {
		fired <- struct{}{}
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	w.Start()
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "other.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
		t.Fatal("onChange should not fire for a different file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_ReportsCallbackErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gradient.png")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	errs := make(chan error, 10)
	w, err := New(path, 20*time.Millisecond, func() error { return boom }, func(err error) { errs <- err })
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	w.Start()
	defer w.Stop()

	if err := os.WriteFile(path, []byte("v2"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-errs:
		if !errors.Is(err, boom) {
			t.Errorf("onError got %v, want %v", err, boom)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("onError was not called")
	}
}

func TestWatcher_StopIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gradient.png")
	w, err := New(path, time.Millisecond, nil, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	w.Start()
	w.Stop()
	w.Stop()
	w.Start()
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope", "gradient.png"), time.Millisecond, nil, nil)
	if err == nil {
		t.Error("New should fail when the directory does not exist")
	}
}
