package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Algorithm != "bubble_sort" {
		t.Errorf("expected algorithm bubble_sort, got %s", cfg.Algorithm)
	}
	if cfg.Speed <= 0 {
		t.Error("speed should be positive")
	}
	if len(cfg.Input.Values) == 0 {
		t.Error("expected default values")
	}
	if len(cfg.Input.Graph) == 0 {
		t.Error("expected default graph")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := []byte(`
algorithm: binary_search
speed: 5.0
input:
  values: [1, 3, 5, 7]
  target: 5
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Algorithm != "binary_search" {
		t.Errorf("algorithm = %s", cfg.Algorithm)
	}
	if cfg.Speed != 5.0 {
		t.Errorf("speed = %f", cfg.Speed)
	}
	if !reflect.DeepEqual(cfg.Input.Values, []int{1, 3, 5, 7}) {
		t.Errorf("values = %v", cfg.Input.Values)
	}
	// untouched fields keep defaults
	if cfg.Width != DefaultWidth {
		t.Errorf("width = %d, want default", cfg.Width)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/run.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("bubble_sort", "tiny")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if !reflect.DeepEqual(cfg.Input.Values, []int{3, 1, 2}) {
		t.Errorf("values = %v", cfg.Input.Values)
	}

	if GetPreset("bubble_sort", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "tiny") != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("binary_search")) == 0 {
		t.Error("expected presets for binary_search")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Algorithm = "dfs"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if back.Algorithm != "dfs" {
		t.Errorf("algorithm = %s", back.Algorithm)
	}
}
