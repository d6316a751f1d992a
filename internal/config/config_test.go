package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.IdleCPUThreshold != 5.0 {
		t.Errorf("IdleCPUThreshold = %v, want 5.0", cfg.IdleCPUThreshold)
	}
	if cfg.HighCostThreshold != 100.0 {
		t.Errorf("HighCostThreshold = %v, want 100.0", cfg.HighCostThreshold)
	}
	if cfg.InventoryFile != "cloud_inventory.json" {
		t.Errorf("InventoryFile = %q", cfg.InventoryFile)
	}
	if cfg.OutputFile != "cloud_inventory_output.json" {
		t.Errorf("OutputFile = %q", cfg.OutputFile)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "costopt.yaml")
	content := "idle_cpu_threshold: 10.0\ninventory_file: snapshot.json\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.IdleCPUThreshold != 10.0 {
		t.Errorf("IdleCPUThreshold = %v, want override 10.0", cfg.IdleCPUThreshold)
	}
	if cfg.InventoryFile != "snapshot.json" {
		t.Errorf("InventoryFile = %q, want override snapshot.json", cfg.InventoryFile)
	}
	// Untouched keys keep their defaults.
	if cfg.HighCostThreshold != 100.0 {
		t.Errorf("HighCostThreshold = %v, want default 100.0", cfg.HighCostThreshold)
	}
	if cfg.OutputFile != "cloud_inventory_output.json" {
		t.Errorf("OutputFile = %q, want default", cfg.OutputFile)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"negative idle threshold", "idle_cpu_threshold: -1\n", "idle_cpu_threshold"},
		{"negative cost threshold", "high_cost_threshold: -5\n", "high_cost_threshold"},
		{"empty inventory file", `inventory_file: ""` + "\n", "inventory_file"},
		{"not yaml", "{{{\n", "unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "costopt.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}
