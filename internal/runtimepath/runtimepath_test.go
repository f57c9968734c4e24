package runtimepath

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDir_PrefersXDGRuntimeDir(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/tmp/fake-runtime")

	dir, err := Dir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != "/tmp/fake-runtime" {
		t.Errorf("dir = %q, want /tmp/fake-runtime", dir)
	}
}

func TestSocketPath(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/tmp/fake-runtime")

	path, err := SocketPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join("/tmp/fake-runtime", "stagehand.sock") {
		t.Errorf("socket path = %q", path)
	}
}

func TestStateDir_PrefersXDGStateHome(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/fake-state")

	dir, err := StateDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != filepath.Join("/tmp/fake-state", "stagehand") {
		t.Errorf("state dir = %q", dir)
	}
}

func TestStateDir_FallsBackToHome(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "")

	dir, err := StateDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(dir, filepath.Join(".local", "state", "stagehand")) {
		t.Errorf("state dir = %q, want ~/.local/state/stagehand", dir)
	}
}
