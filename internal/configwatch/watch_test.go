package configwatch

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

// loadLevel treats the whole file as a level name.
func loadLevel(path string) (slog.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(string(data)))); err != nil {
		return 0, err
	}
	return l, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestWatch_ReloadsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("info"), 0o644); err != nil {
		t.Fatal(err)
	}

	var level slog.LevelVar
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, &level, loadLevel, quietLogger()) }()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("debug"), 0o644); err != nil {
		t.Fatal(err)
	}
	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		return level.Level() == slog.LevelDebug
	}, "log level not reloaded")

	// A broken file keeps the current level.
	if err := os.WriteFile(path, []byte("loud"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(500 * time.Millisecond)
	if level.Level() != slog.LevelDebug {
		t.Errorf("level = %v after bad reload, want DEBUG", level.Level())
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("Watch did not stop on cancel")
	}
}

func TestWatch_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("info"), 0o644); err != nil {
		t.Fatal(err)
	}

	calls := make(chan string, 8)
	load := func(p string) (slog.Level, error) {
		calls <- p
		return slog.LevelInfo, nil
	}

	var level slog.LevelVar
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go Watch(ctx, path, &level, load, quietLogger())

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("debug"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case p := <-calls:
		t.Errorf("unexpected reload of %s", p)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	var level slog.LevelVar
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "gone", "config.yaml"), &level, loadLevel, quietLogger())
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if errors.Is(err, context.Canceled) {
		t.Fatalf("unexpected error: %v", err)
	}
}
