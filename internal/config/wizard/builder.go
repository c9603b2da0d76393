package wizard

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"

	"github.com/rakuda/seriesgen/internal/config"
)

// BuildSpec applies the init answers to a copy of base.
func BuildSpec(result *InitResult, base *config.Spec) *config.Spec {
	cfg := *base

	cfg.Prefix = normalizePrefix(result.Prefix)
	cfg.Paths = config.Paths{
		RoutesDir:  cleanPath(result.RoutesDir),
		PagesDir:   cleanPath(result.PagesDir),
		OutputDir:  cleanPath(result.OutputDir),
		RoutesFile: cleanPath(result.RoutesFile),
	}
	cfg.DefaultSeries = result.DefaultSeries
	cfg.DefaultStartPhase = result.DefaultStartPhase

	return &cfg
}

// normalizePrefix turns free text such as "eBay Shop" into "ebay-shop".
func normalizePrefix(s string) string {
	return slug.Make(strings.TrimSpace(s))
}

func cleanPath(p string) string {
	return filepath.ToSlash(filepath.Clean(strings.TrimSpace(p)))
}
