package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmax/config"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, config.Default().Validate())

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := write(t, "lmax.yaml", `
search:
  strategy: bestfirst
  heuristic: euclidean
  pairs: true
  max_pairs: 500
  timeout: 90s
input:
  mode: spatial
output:
  format: json
  metrics_file: /tmp/lmax.prom
logging:
  level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "bestfirst", cfg.Search.Strategy)
	require.True(t, cfg.Search.Pairs)
	require.Equal(t, 500, cfg.Search.MaxPairs)
	require.Equal(t, 90*time.Second, cfg.Search.Timeout)
	require.Equal(t, int64(1), cfg.Search.Seed, "unset keys keep defaults")
	require.Equal(t, "int", cfg.Input.IDs)
	require.Equal(t, "spatial", cfg.Input.Mode)
	require.Equal(t, "/tmp/lmax.prom", cfg.Output.MetricsFile)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadJSONFallback(t *testing.T) {
	path := write(t, "lmax.json", `{"search": {"strategy": "relax", "restarts": 0}}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "relax", cfg.Search.Strategy)
	require.Zero(t, cfg.Search.Restarts)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LMAX_STRATEGY", "relax")
	t.Setenv("LMAX_RESTARTS", "7")
	t.Setenv("LMAX_TIMEOUT", "2m")
	t.Setenv("LMAX_WORKERS", "not-a-number")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "relax", cfg.Search.Strategy)
	require.Equal(t, 7, cfg.Search.Restarts)
	require.Equal(t, 2*time.Minute, cfg.Search.Timeout)
	require.Zero(t, cfg.Search.Workers, "unparsable values are ignored")
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(write(t, "bad.yaml", "search: [unclosed"))
	require.Error(t, err)

	_, err = config.Load(write(t, "bad.yaml", "search:\n  strategy: tabu\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	mutations := map[string]func(*config.Config){
		"heuristic":  func(c *config.Config) { c.Search.Heuristic = "manhattan" },
		"max_pairs":  func(c *config.Config) { c.Search.MaxPairs = -1 },
		"restarts":   func(c *config.Config) { c.Search.Restarts = -1 },
		"expansions": func(c *config.Config) { c.Search.MaxExpansions = -5 },
		"workers":    func(c *config.Config) { c.Search.Workers = -1 },
		"timeout":    func(c *config.Config) { c.Search.Timeout = -time.Second },
		"mode":       func(c *config.Config) { c.Input.Mode = "csv" },
		"ids":        func(c *config.Config) { c.Input.IDs = "uuid" },
		"format":     func(c *config.Config) { c.Output.Format = "xml" },
		"level":      func(c *config.Config) { c.Logging.Level = "loud" },
		"log format": func(c *config.Config) { c.Logging.Format = "logfmt" },
	}
	for name, mutate := range mutations {
		cfg := config.Default()
		mutate(&cfg)
		require.ErrorIs(t, cfg.Validate(), config.ErrInvalid, name)
	}
}

func TestAnalysisOptions(t *testing.T) {
	s := config.Default().Search
	require.Len(t, s.AnalysisOptions(), 7)
	s.Pairs = true
	require.Len(t, s.AnalysisOptions(), 8)
}
