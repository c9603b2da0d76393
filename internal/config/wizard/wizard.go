package wizard

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rakuda/seriesgen/internal/config"
)

// Selection is the answer of the series prompt.
type Selection struct {
	Series     string
	StartPhase int
}

// InitResult holds the answers of the init prompts.
type InitResult struct {
	Prefix     string
	RoutesDir  string
	PagesDir   string
	OutputDir  string
	RoutesFile string

	// DefaultSeries is optional; empty keeps "generate" argument-driven.
	DefaultSeries     string
	DefaultStartPhase int
}

// SelectSeries asks which series to generate and from which phase.
// The context is used for cancellation support (e.g., Ctrl+C).
func SelectSeries(ctx context.Context, spec *config.Spec) (*Selection, error) {
	if len(spec.Series) == 0 {
		return nil, errNoSeries
	}

	sel := &Selection{Series: spec.Series[0].Name}
	phase := strconv.Itoa(max(spec.DefaultStartPhase, 1))

	if err := runSeriesGroup(ctx, spec, sel, &phase); err != nil {
		return nil, fmt.Errorf("series: %w", err)
	}

	n, err := parseStartPhase(phase)
	if err != nil {
		return nil, err
	}
	sel.StartPhase = n
	return sel, nil
}

// RunInit runs the init prompts, pre-filled from defaults.
func RunInit(ctx context.Context, defaults *config.Spec) (*InitResult, error) {
	result := &InitResult{
		Prefix:     defaults.Prefix,
		RoutesDir:  defaults.Paths.RoutesDir,
		PagesDir:   defaults.Paths.PagesDir,
		OutputDir:  defaults.Paths.OutputDir,
		RoutesFile: defaults.Paths.RoutesFile,
	}

	if err := runProjectGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}

	var phase string
	if err := runDefaultsGroup(ctx, defaults, result, &phase); err != nil {
		return nil, fmt.Errorf("defaults: %w", err)
	}
	if result.DefaultSeries != "" && phase != "" {
		n, err := parseStartPhase(phase)
		if err != nil {
			return nil, err
		}
		result.DefaultStartPhase = n
	}

	return result, nil
}
