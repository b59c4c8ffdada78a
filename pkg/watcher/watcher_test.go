package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Dicklesworthstone/restricted_input/pkg/model"
)

func TestDebouncer_CoalescesTriggers(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls, last atomic.Int32

	for i := 1; i <= 5; i++ {
		i := i
		d.Trigger(func() {
			calls.Add(1)
			last.Store(int32(i))
		})
	}
	time.Sleep(100 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Fatalf("Expected 1 call, got %d", got)
	}
	if got := last.Load(); got != 5 {
		t.Fatalf("Expected last callback to win, got %d", got)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Cancel()
	time.Sleep(60 * time.Millisecond)
	if calls.Load() != 0 {
		t.Fatal("Cancelled callback ran")
	}
}

func TestDebouncer_DefaultWait(t *testing.T) {
	if got := NewDebouncer(0).Wait(); got != DefaultDebounce {
		t.Fatalf("Expected default wait %v, got %v", DefaultDebounce, got)
	}
}

const formV1 = "fields:\n  - name: pin\n    allowed_keys: [\"0-9\"]\n"
const formV2 = "fields:\n  - name: pin\n    allowed_keys: [\"0-9\"]\n    caret: left\n"

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "form.yaml")
	if err := os.WriteFile(path, []byte(formV1), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan model.Form, 4)
	w, err := New(path, func(f model.Form, err error) {
		if err != nil {
			t.Errorf("reload error: %v", err)
			return
		}
		reloaded <- f
	}, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	if err := os.WriteFile(path, []byte(formV2), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case f := <-reloaded:
		if len(f.Fields) != 1 || !f.Fields[0].StickLeft() {
			t.Errorf("Unexpected reloaded form: %+v", f)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for reload")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start returned %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancel")
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close returned %v", err)
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "form.yaml")
	if err := os.WriteFile(path, []byte(formV1), 0o644); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	w, err := New(path, func(model.Form, error) { calls.Add(1) }, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(150 * time.Millisecond)
	if calls.Load() != 0 {
		t.Fatalf("Expected no reloads, got %d", calls.Load())
	}
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "form.yaml"), nil)
	if err == nil {
		t.Fatal("Expected error for missing directory")
	}
}
