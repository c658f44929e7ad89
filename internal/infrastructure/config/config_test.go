package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadApp_Defaults(t *testing.T) {
	// t.Setenv registers the restore, unsetenv makes the var truly absent
	// so the envconfig defaults kick in.
	t.Setenv("PACETRACK_ADDR", "x")
	t.Setenv("PACETRACK_DATA_DIR", "x")
	os.Unsetenv("PACETRACK_ADDR")
	os.Unsetenv("PACETRACK_DATA_DIR")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")

	cfg, err := LoadApp()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.DataDir != filepath.Join("/tmp/xdg", "pacetrack") {
		t.Errorf("expected XDG data dir, got %q", cfg.DataDir)
	}
}

func TestLoadApp_ExplicitValues(t *testing.T) {
	t.Setenv("PACETRACK_ADDR", "127.0.0.1:9090")
	t.Setenv("PACETRACK_DATA_DIR", "/var/lib/pacetrack")

	cfg, err := LoadApp()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Addr != "127.0.0.1:9090" {
		t.Errorf("expected configured addr, got %q", cfg.Addr)
	}
	if cfg.DataDir != "/var/lib/pacetrack" {
		t.Errorf("expected configured data dir, got %q", cfg.DataDir)
	}
}
