package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlmax/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	verbose    bool
}

func newRootCmd(ctx context.Context, version string) *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:          "lmax",
		Short:        "Measure the largest connected component and estimate its longest simple path",
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "path to YAML/JSON config file")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&g.logFormat, "log-format", "", "log format (auto, text, json)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "verbose output (debug level)")

	root.AddCommand(newAnalyzeCmd(ctx, g), newGenerateCmd(g))

	return root
}

// load reads the config file and applies the global logging flags.
func (g *globalFlags) load() (config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return cfg, err
	}
	if g.logLevel != "" {
		cfg.Logging.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Logging.Format = g.logFormat
	}
	if g.verbose {
		cfg.Logging.Level = log.DebugLevel.String()
	}

	return cfg, cfg.Validate()
}

// newLogger builds a logger writing to w: text on a terminal, JSON otherwise,
// unless the config forces one. Every entry carries the run id.
func newLogger(cfg config.LoggingConfig, w io.Writer) *log.Entry {
	logger := log.New()
	logger.SetOutput(w)
	if lvl, err := log.ParseLevel(cfg.Level); err == nil {
		logger.SetLevel(lvl)
	}

	format := strings.ToLower(cfg.Format)
	if format == "" || format == "auto" {
		format = "json"
		if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			format = "text"
		}
	}
	if format == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{
			DisableQuote: true,
			PadLevelText: true,
		})
	}

	return logger.WithField("run", uuid.NewString())
}
