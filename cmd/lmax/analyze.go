package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvlmax/analysis"
	"github.com/katalvlaran/lvlmax/config"
	"github.com/katalvlaran/lvlmax/edgelist"
	"github.com/katalvlaran/lvlmax/parallel"
	"github.com/katalvlaran/lvlmax/report"
)

// analyzeFlags mirror the config keys; only flags set on the command line
// override the loaded config.
type analyzeFlags struct {
	strategy      string
	heuristic     string
	pairs         bool
	maxPairs      int
	restarts      int
	maxExpansions int
	seed          int64
	workers       int
	timeout       time.Duration
	progressEvery int
	mode          string
	ids           string
	output        string
	metricsFile   string
}

func newAnalyzeCmd(ctx context.Context, g *globalFlags) *cobra.Command {
	af := &analyzeFlags{}
	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Report |VLCC|, Δ(LCC), k(LCC) and Lmax of an edge-list file",
		Args:  cobra.ExactArgs(1),
	}
	f := cmd.Flags()
	f.StringVar(&af.strategy, "strategy", "", "path strategy: bestfirst, doublesweep, relax")
	f.StringVar(&af.heuristic, "heuristic", "", "bestfirst heuristic: auto, euclidean, degree")
	f.BoolVar(&af.pairs, "pairs", false, "evaluate (start, goal) pairs instead of restarts (bestfirst only)")
	f.IntVar(&af.maxPairs, "max-pairs", 0, "sample this many pairs (0 = all)")
	f.IntVar(&af.restarts, "restarts", 0, "random restarts (0 = every LCC vertex)")
	f.IntVar(&af.maxExpansions, "max-expansions", 0, "cap bestfirst frontier pops per item (0 = unbounded)")
	f.Int64Var(&af.seed, "seed", 0, "seed for pair sampling and restarts")
	f.IntVar(&af.workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	f.DurationVar(&af.timeout, "timeout", 0, "stop searching after this long and report the best so far")
	f.IntVar(&af.progressEvery, "progress-every", 0, "log progress every N work items")
	f.StringVar(&af.mode, "mode", "", "input form: auto, plain, spatial")
	f.StringVar(&af.ids, "ids", "", "vertex id type: int, string")
	f.StringVarP(&af.output, "output", "o", "", "report format: text, json, yaml")
	f.StringVar(&af.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := g.load()
		if err != nil {
			return err
		}
		af.apply(cmd.Flags(), &cfg)
		if err = cfg.Validate(); err != nil {
			return err
		}
		logger := newLogger(cfg.Logging, cmd.ErrOrStderr())

		if strings.ToLower(cfg.Input.IDs) == "string" {
			return analyzeFile(ctx, cmd.OutOrStdout(), logger, cfg, args[0], edgelist.ParseString)
		}

		return analyzeFile(ctx, cmd.OutOrStdout(), logger, cfg, args[0], edgelist.ParseInt)
	}

	return cmd
}

func (af *analyzeFlags) apply(f *pflag.FlagSet, cfg *config.Config) {
	if f.Changed("strategy") {
		cfg.Search.Strategy = af.strategy
	}
	if f.Changed("heuristic") {
		cfg.Search.Heuristic = af.heuristic
	}
	if f.Changed("pairs") {
		cfg.Search.Pairs = af.pairs
	}
	if f.Changed("max-pairs") {
		cfg.Search.MaxPairs = af.maxPairs
	}
	if f.Changed("restarts") {
		cfg.Search.Restarts = af.restarts
	}
	if f.Changed("max-expansions") {
		cfg.Search.MaxExpansions = af.maxExpansions
	}
	if f.Changed("seed") {
		cfg.Search.Seed = af.seed
	}
	if f.Changed("workers") {
		cfg.Search.Workers = af.workers
	}
	if f.Changed("timeout") {
		cfg.Search.Timeout = af.timeout
	}
	if f.Changed("progress-every") {
		cfg.Search.ProgressEvery = af.progressEvery
	}
	if f.Changed("mode") {
		cfg.Input.Mode = af.mode
	}
	if f.Changed("ids") {
		cfg.Input.IDs = af.ids
	}
	if f.Changed("output") {
		cfg.Output.Format = af.output
	}
	if f.Changed("metrics-file") {
		cfg.Output.MetricsFile = af.metricsFile
	}
}

func analyzeFile[V cmp.Ordered](
	ctx context.Context,
	out io.Writer,
	logger *log.Entry,
	cfg config.Config,
	path string,
	parse edgelist.IDParser[V],
) error {
	mode, _ := edgelist.ParseMode(cfg.Input.Mode)
	format, _ := report.ParseFormat(cfg.Output.Format)

	logger.WithField("file", path).Debug("reading edge list")
	g, err := edgelist.ReadFile(path, parse, edgelist.WithMode(mode))
	if err != nil {
		return err
	}
	logger.WithFields(log.Fields{
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
		"spatial":  g.Spatial(),
	}).Info("graph loaded")

	if cfg.Search.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Search.Timeout)
		defer cancel()
	}

	reg := prometheus.NewRegistry()
	opts := append(cfg.Search.AnalysisOptions(),
		analysis.WithLogger(logger),
		analysis.WithMetrics(parallel.NewMetrics(reg)))

	res, err := analysis.Analyze(ctx, g.View(), opts...)
	if err != nil {
		return err
	}
	if res.Search.Partial {
		logger.WithFields(log.Fields{
			"completed": res.Search.Completed,
			"total":     res.Search.Total,
		}).Warn("search stopped early, Lmax is a partial result")
	}

	if err = report.Write(out, res.Metrics(), format); err != nil {
		return err
	}
	if cfg.Output.MetricsFile != "" {
		if err = prometheus.WriteToTextfile(cfg.Output.MetricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}
