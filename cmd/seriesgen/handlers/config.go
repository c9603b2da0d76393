package handlers

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/mattn/go-isatty"

	"github.com/rakuda/seriesgen/internal/config"
	"github.com/rakuda/seriesgen/internal/config/wizard"
)

// Factory function variables - can be replaced in tests.
var (
	// loadEnv reads .env and the SERIESGEN_* variables.
	loadEnv = func() (config.Env, error) { return config.LoadEnv() }

	// discoverConfig finds and loads seriesgen.yaml.
	discoverConfig = config.Discover

	// selectSeries prompts for a series when none is given.
	selectSeries = wizard.SelectSeries

	// isInteractive reports whether prompts can be shown.
	isInteractive = func() bool {
		return isTerminal(os.Stdin) && isTerminal(os.Stdout)
	}
)

// loadConfig loads the configuration and applies environment overrides.
// The returned path is empty when the built-in defaults are used.
func loadConfig(configPath string) (*config.Spec, string, error) {
	env, err := loadEnv()
	if err != nil {
		return nil, "", err
	}
	if configPath == "" {
		configPath = env.ConfigPath
	}

	cfg, path, err := discoverConfig(configPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	env.Apply(cfg)
	return cfg, path, nil
}

// resolveSelection picks the series and start phase from arguments, config
// defaults or an interactive prompt, in that order.
func resolveSelection(ctx context.Context, cfg *config.Spec, name string, startPhase int, hasStartPhase bool) (string, int, error) {
	if name == "" {
		name = cfg.DefaultSeries
	}
	if name == "" {
		if !isInteractive() {
			return "", 0, fmt.Errorf("no series given and default_series is unset (available: %s)", strings.Join(cfg.SeriesNames(), ", "))
		}
		sel, err := selectSeries(ctx, cfg)
		if err != nil {
			return "", 0, fmt.Errorf("series selection canceled: %w", err)
		}
		return sel.Series, sel.StartPhase, nil
	}

	if !hasStartPhase {
		startPhase = cfg.DefaultStartPhase
		if startPhase == 0 {
			startPhase = 1
		}
	}
	return name, startPhase, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func logFrom(ctx context.Context) logr.Logger {
	return logr.FromContextOrDiscard(ctx)
}
