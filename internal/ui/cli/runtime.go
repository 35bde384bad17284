// Package cli implements the hotkeyc command line.
package cli

import (
	"context"
	"fmt"
	"hotkeyc/internal/core/app"
	"hotkeyc/internal/core/config"
	"hotkeyc/internal/shared/observability"
	"hotkeyc/internal/shared/util"
	"hotkeyc/internal/ui/report"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func Run(args []string) int {
	return run(context.Background(), args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return 2
	}

	if opts.version {
		fmt.Fprintf(stdout, "hotkeyc v%s\n", versionString)
		return 0
	}

	configureLogging(stderr, opts.verbose)

	if err := validateModeOptions(opts); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		return 1
	}

	if cfg.Observability.EnableTracing {
		shutdown, err := observability.InitTracing(ctx, cfg.Observability.OTLPEndpoint)
		if err != nil {
			slog.Error("failed to initialise tracing", "error", err)
			return 1
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				slog.Warn("failed to flush traces", "error", err)
			}
		}()
	}

	compiler, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialise compiler", "error", err)
		return 1
	}

	table, err := compiler.Compile(ctx, cfg.Root)
	if err != nil {
		slog.Error("compile failed", "error", err)
		return 1
	}

	if opts.traceInclude {
		chain, ok := table.IncludeChain(opts.args[0], opts.args[1])
		if !ok {
			fmt.Fprintf(stderr, "no include chain from %s to %s\n", opts.args[0], opts.args[1])
			return 1
		}
		if err := report.RenderIncludeChain(stdout, chain); err != nil {
			slog.Error("failed to write include chain", "error", err)
			return 1
		}
		return 0
	}

	if err := report.Render(stdout, table, cfg.Output.Format, report.Options{Color: cfg.Output.ColorEnabled()}); err != nil {
		slog.Error("failed to render table", "error", err)
		return 1
	}

	if opts.stats {
		if err := report.RenderStats(stderr, prometheus.DefaultGatherer); err != nil {
			slog.Warn("failed to render stats", "error", err)
		}
	}
	return 0
}

func validateModeOptions(opts cliOptions) error {
	if opts.traceInclude && len(opts.args) != 2 {
		return fmt.Errorf("-trace-include requires two file arguments: hotkeyc -trace-include <from> <to>")
	}
	if !opts.traceInclude && len(opts.args) > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(opts.args, " "))
	}
	return nil
}

// loadConfig reads the settings file, applies env and flag overrides, then
// validates the result. A missing default settings file falls back to the
// defaults. A root taken from the settings file is relative to that file.
func loadConfig(opts cliOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath == config.DefaultPath {
		cfg, err = config.LoadOptional(opts.configPath)
	} else {
		cfg, err = config.Load(opts.configPath)
	}
	if err != nil {
		return nil, err
	}
	if cfg.Root != "" {
		cfg.Root = util.ResolveRelative(filepath.Dir(opts.configPath), cfg.Root)
	}

	config.ApplyEnvOverrides(cfg)
	if opts.root != "" {
		cfg.Root = opts.root
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))

	if errs := config.Validate(cfg); len(errs) > 0 {
		return nil, errs[0]
	}
	if strings.TrimSpace(cfg.Root) == "" {
		return nil, fmt.Errorf("no root config file: set root in %s, HOTKEYC_ROOT or -root", opts.configPath)
	}
	return cfg, nil
}

func configureLogging(w io.Writer, verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
}
