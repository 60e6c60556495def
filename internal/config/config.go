// Package config holds the server configuration, loadable from a YAML file.
// Command-line flags override whatever the file sets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr     string `yaml:"addr"`
	DataDir  string `yaml:"data_dir"`
	LogLevel string `yaml:"log_level"`
	Solver   Solver `yaml:"solver"`
}

type Solver struct {
	// Engine selects the search engine: backtrack (default) or parallel.
	Engine string `yaml:"engine"`
	// Conn is the movement model: 4 (orthogonal) or 8 (with diagonals).
	Conn int `yaml:"conn"`
	// MaxNodes bounds the moves a single solve may explore; 0 is unbounded.
	MaxNodes int `yaml:"max_nodes"`
	// Workers used by the parallel engine; 0 means one per CPU.
	Workers int `yaml:"workers"`
}

func Default() Config {
	return Config{
		Addr:     ":8080",
		DataDir:  "./data",
		LogLevel: "info",
		Solver:   Solver{Engine: "backtrack", Conn: 4},
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Solver.Conn != 4 && cfg.Solver.Conn != 8 {
		return cfg, fmt.Errorf("config %s: solver.conn must be 4 or 8", path)
	}
	return cfg, nil
}
