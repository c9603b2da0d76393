package handlers

import (
	"context"

	"github.com/rakuda/seriesgen/internal/artifact"
	"github.com/rakuda/seriesgen/internal/splice"
)

// SpliceOptions carries the splice command's arguments and flags.
type SpliceOptions struct {
	ConfigPath string
	Series     string
	StartPhase int
	EndPhase   int

	Mode           string
	Lenient        bool
	AllowDuplicate bool
}

// Splice inserts previously generated fragment files into the aggregator.
func Splice(ctx context.Context, opts SpliceOptions) error {
	cfg, _, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	applyGenerateFlags(cfg, GenerateOptions{
		Mode:           opts.Mode,
		Lenient:        opts.Lenient,
		AllowDuplicate: opts.AllowDuplicate,
	})

	if _, err := cfg.FindSeries(opts.Series); err != nil {
		return err
	}

	imports, registrations, err := artifact.ReadFragments(cfg.Resolve(cfg.Paths.OutputDir), opts.Series)
	if err != nil {
		return err
	}

	return spliceAggregator(ctx, cfg, cfg.Resolve(cfg.Paths.RoutesFile), splice.Fragments{
		Series:        opts.Series,
		StartPhase:    opts.StartPhase,
		EndPhase:      opts.EndPhase,
		Imports:       imports,
		Registrations: registrations,
	})
}
