package wizard

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/rakuda/seriesgen/internal/config"
)

// runSeriesGroup prompts for the series and the start phase.
func runSeriesGroup(ctx context.Context, spec *config.Spec, sel *Selection, phase *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Series").
				Description("Adjective vocabulary to generate").
				Options(SeriesOptions(spec)...).
				Value(&sel.Series),
			huh.NewInput().
				Title("Start Phase").
				Description("Phase number of the first identifier").
				Placeholder("1001").
				Value(phase).
				Validate(validateStartPhase),
		).Title("Generate"),
	).RunWithContext(ctx)
}

// runProjectGroup prompts for the identifier prefix and project paths.
func runProjectGroup(ctx context.Context, result *InitResult) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Prefix").
				Description("Leading token of every generated slug").
				Value(&result.Prefix).
				Validate(validatePrefix),
			huh.NewInput().
				Title("Routes Directory").
				Description("Where route files are written").
				Value(&result.RoutesDir).
				Validate(validateRelPath),
			huh.NewInput().
				Title("Pages Directory").
				Description("Where page directories are created").
				Value(&result.PagesDir).
				Validate(validateRelPath),
			huh.NewInput().
				Title("Output Directory").
				Description("Where fragment files and manifests are written").
				Value(&result.OutputDir).
				Validate(validateRelPath),
			huh.NewInput().
				Title("Aggregator File").
				Description("Router file that imports and registers every route").
				Value(&result.RoutesFile).
				Validate(validateRelPath),
		).Title("Project Layout"),
	).RunWithContext(ctx)
}

// runDefaultsGroup optionally pins a default series for argument-less runs.
func runDefaultsGroup(ctx context.Context, spec *config.Spec, result *InitResult, phase *string) error {
	opts := append([]huh.Option[string]{huh.NewOption("none (pass series on the command line)", "")}, SeriesOptions(spec)...)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default Series").
				Description("Used by \"seriesgen generate\" without arguments").
				Options(opts...).
				Value(&result.DefaultSeries),
		).Title("Defaults"),
	).RunWithContext(ctx)
	if err != nil || result.DefaultSeries == "" {
		return err
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default Start Phase").
				Placeholder("1001").
				Value(phase).
				Validate(validateStartPhase),
		),
	).RunWithContext(ctx)
}

func validateStartPhase(s string) error {
	_, err := parseStartPhase(s)
	return err
}

func parseStartPhase(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errStartPhaseRequired
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, errStartPhaseInvalid
	}
	return n, nil
}

func validatePrefix(s string) error {
	if normalizePrefix(s) == "" {
		return errPrefixRequired
	}
	return nil
}

func validateRelPath(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errPathRequired
	}
	if filepath.IsAbs(s) {
		return errPathAbsolute
	}
	return nil
}
