package series

import (
	"github.com/rakuda/seriesgen/internal/config"
	"github.com/rakuda/seriesgen/internal/util/naming"
)

// Identifier is one generated unit: a route file, a page and one entry in
// each aggregator block.
type Identifier struct {
	Prefix    string
	Category  string
	Adjective string
	Noun      string
	Series    string
	Phase     int
	Color     string
	Layout    config.Layout

	routeRoot    string
	symbolSuffix string
}

// Slug returns the kebab-case name, e.g. ebay-listing-alpha-engine-demo.
// The role layout omits category and noun.
func (id Identifier) Slug() string {
	if id.Layout == config.LayoutRole {
		return naming.Slugify(id.Prefix, id.Adjective, id.Series)
	}
	return naming.Slugify(id.Prefix, id.Category, id.Adjective, id.Noun, id.Series)
}

// Symbol returns the aggregator variable name, e.g. ebayListingAlphaEngineDemoRouter.
func (id Identifier) Symbol() string {
	suffix := id.symbolSuffix
	if suffix == "" {
		suffix = naming.DefaultSymbolSuffix
	}
	return naming.RouterSymbol(id.Slug(), suffix)
}

// Path returns the mounted URL path, e.g. /api/ebay-listing-alpha-engine-demo.
func (id Identifier) Path() string {
	root := id.routeRoot
	if root == "" {
		root = naming.DefaultRouteRoot
	}
	return naming.ToPathWithRoot(root, id.Slug())
}

// PageDir returns the page directory name: the slug without its prefix.
func (id Identifier) PageDir() string {
	if id.Layout == config.LayoutRole {
		return naming.Slugify(id.Adjective, id.Series)
	}
	return naming.Slugify(id.Category, id.Adjective, id.Noun, id.Series)
}

// ColorName returns the colour without its shade: "indigo" for "indigo-600".
func (id Identifier) ColorName() string {
	for i := len(id.Color) - 1; i >= 0; i-- {
		if id.Color[i] == '-' {
			return id.Color[:i]
		}
	}
	return id.Color
}
