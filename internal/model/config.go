package model

import "runtime"

// Config holds the full runtime configuration.
type Config struct {
	Search SearchConfig `yaml:"search" json:"search"`
	Output OutputConfig `yaml:"output" json:"output"`
}

// SearchConfig controls the clique search engine.
type SearchConfig struct {
	Workers int `yaml:"workers" json:"workers"` // parallel top-level branches; <=1 runs sequentially
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	Verbose  bool   `yaml:"verbose" json:"verbose"`
	NoPrint  bool   `yaml:"no_print" json:"no_print"`   // run the full search but skip materialization/printing
	JSONPath string `yaml:"json_path" json:"json_path"` // optional JSON report destination
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Workers: runtime.NumCPU(),
		},
		Output: OutputConfig{},
	}
}
