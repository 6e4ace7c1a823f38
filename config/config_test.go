package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Scenario.Name != "default" {
		t.Errorf("scenario name = %q, want %q", cfg.Scenario.Name, "default")
	}
	if cfg.Scenario.Tolerance != 1e-6 {
		t.Errorf("tolerance = %v, want 1e-6", cfg.Scenario.Tolerance)
	}
	if len(cfg.Players) == 0 {
		t.Fatal("defaults contain no players")
	}
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	data := []byte("scenario:\n  name: override\nplayers:\n  - name: solo\n    position: [1, 2]\n    heading: [0, 1]\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}

	if cfg.Scenario.Name != "override" {
		t.Errorf("scenario name = %q, want %q", cfg.Scenario.Name, "override")
	}
	if len(cfg.Players) != 1 || cfg.Players[0].Name != "solo" {
		t.Errorf("players = %+v, want single player %q", cfg.Players, "solo")
	}
	// Tolerance not present in the file keeps the default
	if cfg.Scenario.Tolerance != 1e-6 {
		t.Errorf("tolerance = %v, want default 1e-6", cfg.Scenario.Tolerance)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}
