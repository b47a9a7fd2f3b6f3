package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "sprites.yaml")
	other := filepath.Join(dir, "notes.yaml")

	w, err := NewWatcher(target)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	// Changes to unrelated files are filtered out
	if err := os.WriteFile(other, []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(target, []byte("player:\n  health: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "sprites.yaml" {
			t.Errorf("event for %q, expected sprites.yaml", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}
}

func TestWatcherNothingToWatch(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "dir", "pong.yaml"))
	if !errors.Is(err, ErrNothingToWatch) {
		t.Errorf("expected ErrNothingToWatch, got %v", err)
	}
}

func TestWatcherCloseClosesChannels(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "pong.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	_ = w.Close()

	select {
	case _, ok := <-w.Events:
		if ok {
			t.Error("Events should be closed")
		}
	case <-time.After(time.Second):
		t.Error("Events not closed after Close")
	}
}
