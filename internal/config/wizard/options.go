package wizard

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/rakuda/seriesgen/internal/config"
)

// SeriesOptions converts the configured series to select options labelled
// with their identifier counts.
func SeriesOptions(spec *config.Spec) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(spec.Series))
	for _, sr := range spec.Series {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%d identifiers)", sr.Name, IdentifierCount(spec, sr)), sr.Name))
	}
	return opts
}

// IdentifierCount returns how many identifiers a series expands to.
// Misconfigured series count as zero.
func IdentifierCount(spec *config.Spec, sr config.Series) int {
	if sr.EffectiveLayout() == config.LayoutRole {
		return len(sr.Adjectives)
	}
	cats, err := spec.SeriesCategories(sr)
	if err != nil {
		return 0
	}
	return len(sr.Adjectives) * len(cats)
}
