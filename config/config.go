// Package config loads lmax settings from a YAML (or JSON) file and the
// environment, on top of built-in defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlmax/analysis"
	"github.com/katalvlaran/lvlmax/edgelist"
	"github.com/katalvlaran/lvlmax/longestpath"
	"github.com/katalvlaran/lvlmax/report"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the top-level configuration.
//
// Thread Safety: safe to read concurrently; not safe to modify after Load.
type Config struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	Input   InputConfig   `json:"input" yaml:"input"`
	Output  OutputConfig  `json:"output" yaml:"output"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// SearchConfig selects and tunes the longest-path search.
type SearchConfig struct {
	Strategy      string        `json:"strategy" yaml:"strategy"`
	Heuristic     string        `json:"heuristic" yaml:"heuristic"`
	Pairs         bool          `json:"pairs" yaml:"pairs"`
	MaxPairs      int           `json:"max_pairs" yaml:"max_pairs"`
	Restarts      int           `json:"restarts" yaml:"restarts"`
	MaxExpansions int           `json:"max_expansions" yaml:"max_expansions"`
	Seed          int64         `json:"seed" yaml:"seed"`
	Workers       int           `json:"workers" yaml:"workers"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
	ProgressEvery int           `json:"progress_every" yaml:"progress_every"`
}

// InputConfig describes the edge-list file.
type InputConfig struct {
	Mode string `json:"mode" yaml:"mode"` // auto, plain, spatial
	IDs  string `json:"ids" yaml:"ids"`   // int, string
}

// OutputConfig describes the report.
type OutputConfig struct {
	Format      string `json:"format" yaml:"format"`             // text, json, yaml
	MetricsFile string `json:"metrics_file" yaml:"metrics_file"` // Prometheus textfile, empty = off
}

// LoggingConfig configures logrus.
type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"` // auto, text, json
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Search: SearchConfig{
			Strategy:      longestpath.DoubleSweep.String(),
			Heuristic:     longestpath.HeuristicAuto.String(),
			Restarts:      32,
			Seed:          1,
			ProgressEvery: 0,
		},
		Input: InputConfig{
			Mode: edgelist.ModeAuto.String(),
			IDs:  "int",
		},
		Output: OutputConfig{
			Format: string(report.FormatText),
		},
		Logging: LoggingConfig{
			Level:  log.InfoLevel.String(),
			Format: "auto",
		},
	}
}

// Load starts from Default, overlays the file at path (skipped when path is
// empty) and then LMAX_* environment variables, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	loadEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// Try YAML first, then JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return fmt.Errorf("parse (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}

	return nil
}

func loadEnv(cfg *Config) {
	if v := os.Getenv("LMAX_STRATEGY"); v != "" {
		cfg.Search.Strategy = v
	}
	if v := os.Getenv("LMAX_HEURISTIC"); v != "" {
		cfg.Search.Heuristic = v
	}
	if v := os.Getenv("LMAX_RESTARTS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Search.Restarts = i
		}
	}
	if v := os.Getenv("LMAX_SEED"); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Search.Seed = i
		}
	}
	if v := os.Getenv("LMAX_WORKERS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Search.Workers = i
		}
	}
	if v := os.Getenv("LMAX_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Search.Timeout = d
		}
	}
	if v := os.Getenv("LMAX_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LMAX_METRICS_FILE"); v != "" {
		cfg.Output.MetricsFile = v
	}
}

// Validate checks every enumerated value and numeric range.
func (c Config) Validate() error {
	if _, err := longestpath.ParseKind(c.Search.Strategy); err != nil {
		return fmt.Errorf("%w: search.strategy: %w", ErrInvalid, err)
	}
	if _, err := longestpath.ParseHeuristic(c.Search.Heuristic); err != nil {
		return fmt.Errorf("%w: search.heuristic: %w", ErrInvalid, err)
	}
	if c.Search.MaxPairs < 0 {
		return fmt.Errorf("%w: search.max_pairs must be >= 0", ErrInvalid)
	}
	if c.Search.Restarts < 0 {
		return fmt.Errorf("%w: search.restarts must be >= 0", ErrInvalid)
	}
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("%w: search.max_expansions must be >= 0", ErrInvalid)
	}
	if c.Search.Workers < 0 {
		return fmt.Errorf("%w: search.workers must be >= 0", ErrInvalid)
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("%w: search.timeout must be >= 0", ErrInvalid)
	}
	if _, err := edgelist.ParseMode(c.Input.Mode); err != nil {
		return fmt.Errorf("%w: input.mode: %w", ErrInvalid, err)
	}
	switch strings.ToLower(c.Input.IDs) {
	case "int", "string":
	default:
		return fmt.Errorf("%w: input.ids must be int or string, got %q", ErrInvalid, c.Input.IDs)
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("%w: output.format: %w", ErrInvalid, err)
	}
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %w", ErrInvalid, err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "auto", "text", "json":
	default:
		return fmt.Errorf("%w: logging.format must be auto, text or json, got %q", ErrInvalid, c.Logging.Format)
	}

	return nil
}

// AnalysisOptions converts the search section into analysis options.
// Call Validate first; unparsable names fall back to their defaults here.
func (c SearchConfig) AnalysisOptions() []analysis.Option {
	kind, err := longestpath.ParseKind(c.Strategy)
	if err != nil {
		kind = longestpath.DoubleSweep
	}
	h, _ := longestpath.ParseHeuristic(c.Heuristic)

	opts := []analysis.Option{
		analysis.WithStrategy(kind),
		analysis.WithHeuristic(h),
		analysis.WithMaxExpansions(c.MaxExpansions),
		analysis.WithSeed(c.Seed),
		analysis.WithWorkers(c.Workers),
		analysis.WithProgressEvery(c.ProgressEvery),
		analysis.WithRestarts(c.Restarts),
	}
	if c.Pairs {
		opts = append(opts, analysis.WithPairs(c.MaxPairs))
	}

	return opts
}
