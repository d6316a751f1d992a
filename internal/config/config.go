package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied when no config file overrides them.
const (
	DefaultIdleCPUThreshold  = 5.0
	DefaultHighCostThreshold = 100.0
	DefaultInventoryFile     = "cloud_inventory.json"
	DefaultOutputFile        = "cloud_inventory_output.json"
)

// Config carries the tunable policy values for one run. Thresholds are
// passed explicitly into the analyzer and loader instead of living as
// package globals so tests can probe boundary values.
type Config struct {
	// Running instances below this CPU percentage count as idle.
	IdleCPUThreshold float64 `yaml:"idle_cpu_threshold"`
	// Instances costing more than this per month are flagged as expensive.
	HighCostThreshold float64 `yaml:"high_cost_threshold"`

	InventoryFile string `yaml:"inventory_file"`
	OutputFile    string `yaml:"output_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		IdleCPUThreshold:  DefaultIdleCPUThreshold,
		HighCostThreshold: DefaultHighCostThreshold,
		InventoryFile:     DefaultInventoryFile,
		OutputFile:        DefaultOutputFile,
	}
}

// Load reads a YAML config file and overlays it on the defaults.
// A missing file is not an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.IdleCPUThreshold < 0 {
		return fmt.Errorf("idle_cpu_threshold must not be negative, got %v", c.IdleCPUThreshold)
	}
	if c.HighCostThreshold < 0 {
		return fmt.Errorf("high_cost_threshold must not be negative, got %v", c.HighCostThreshold)
	}
	if c.InventoryFile == "" {
		return fmt.Errorf("inventory_file must not be empty")
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output_file must not be empty")
	}
	return nil
}
