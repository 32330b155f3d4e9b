package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(context.Background(), "test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestAnalyze_CycleText(t *testing.T) {
	path := writeFile(t, "c5.edges", "0 1\n1 2\n2 3\n3 4\n4 0\n")
	out, _, err := run(t, "analyze", path, "--strategy", "relax", "--restarts", "0", "--log-format", "json")
	require.NoError(t, err)
	require.Equal(t,
		"|VLCC| (nodes in LCC): 5\n"+
			"∆(LCC) (max degree in LCC): 2\n"+
			"k(LCC) (average degree in LCC): 2\n"+
			"Lmax (longest simple path): 4\n", out)
}

func TestAnalyze_StarJSONWithMetricsFile(t *testing.T) {
	path := writeFile(t, "star.edges", "0 1\n0 2\n0 3\n")
	metrics := filepath.Join(t.TempDir(), "lmax.prom")
	out, stderr, err := run(t, "analyze", path, "-o", "json", "--strategy", "bestfirst", "--pairs",
		"--metrics-file", metrics, "--log-format", "json")
	require.NoError(t, err)

	var got map[string]float64
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, map[string]float64{"VLCC": 4, "Delta(LCC)": 3, "k(LCC)": 1.5, "Lmax": 2}, got)

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	require.Contains(t, string(prom), `lvlmax_search_items_total{outcome="ok",strategy="bestfirst"} 6`)
	require.Contains(t, stderr, `"run":`)
}

func TestAnalyze_StringIDsFromConfig(t *testing.T) {
	cfg := writeFile(t, "lmax.yaml", "input:\n  ids: string\nsearch:\n  strategy: doublesweep\n  restarts: 4\noutput:\n  format: yaml\n")
	path := writeFile(t, "tri.edges", "a b\nb c\nc a\nx y\n")
	out, _, err := run(t, "--config", cfg, "analyze", path, "--log-format", "json")
	require.NoError(t, err)
	require.Contains(t, out, "VLCC: 3")
	require.Contains(t, out, "Lmax: 2")
}

func TestAnalyze_Errors(t *testing.T) {
	bad := writeFile(t, "bad.edges", "1 2\n1 2 3\n")
	_, _, err := run(t, "analyze", bad, "--log-format", "json")
	require.ErrorContains(t, err, "line 2")

	good := writeFile(t, "ok.edges", "1 2\n")
	_, _, err = run(t, "analyze", good, "--strategy", "tabu")
	require.Error(t, err)

	_, _, err = run(t, "analyze")
	require.Error(t, err)
}

func TestGenerate_ThenAnalyze(t *testing.T) {
	file := filepath.Join(t.TempDir(), "rgg.edges")
	_, _, err := run(t, "generate", "-n", "120", "--lcc-min", "0.5", "--lcc-max", "0.98", "--seed", "3",
		"-o", file, "--log-format", "json")
	require.NoError(t, err)

	out, _, err := run(t, "analyze", file, "--mode", "spatial", "--strategy", "bestfirst",
		"--restarts", "8", "--max-expansions", "20000", "-o", "json", "--log-format", "json")
	require.NoError(t, err)

	var got map[string]float64
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 4)
	require.GreaterOrEqual(t, got["Lmax"], 1.0)
}

func TestGenerate_FixtureToStdout(t *testing.T) {
	out, _, err := run(t, "generate", "-t", "cycle", "-n", "4", "--log-format", "json")
	require.NoError(t, err)
	require.Equal(t, "0 1\n1 2\n2 3\n3 0\n", out)

	_, _, err = run(t, "generate", "-t", "hexagon")
	require.ErrorContains(t, err, "unknown topology")
}
