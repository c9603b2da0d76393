package config

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/rakuda/seriesgen/internal/util/naming"
)

// Spec is the full generator configuration.
type Spec struct {
	// Prefix is the leading slug token of every identifier ("ebay").
	Prefix string `yaml:"prefix"`

	// RouteRoot is prepended to slugs to form URL paths ("/api/").
	RouteRoot string `yaml:"route_root"`

	// SymbolSuffix is appended to camelCase symbols ("Router").
	SymbolSuffix string `yaml:"symbol_suffix"`

	Paths     Paths      `yaml:"paths"`
	Splice    SpliceSpec `yaml:"splice"`
	Templates Templates  `yaml:"templates,omitempty"`
	Storage   Storage    `yaml:"storage,omitempty"`

	// Colors is the palette rotated across phases ("indigo-600", ...).
	Colors []string `yaml:"colors"`

	Categories []Category `yaml:"categories"`
	Series     []Series   `yaml:"series"`

	// DefaultSeries and DefaultStartPhase make "seriesgen generate" usable
	// without arguments for fixed single-series projects.
	DefaultSeries     string `yaml:"default_series,omitempty"`
	DefaultStartPhase int    `yaml:"default_start_phase,omitempty"`

	// baseDir anchors relative paths; it is the directory of the loaded
	// config file, or empty for the working directory.
	baseDir string
}

// Paths locates the generated trees and the aggregator file.
type Paths struct {
	RoutesDir  string `yaml:"routes_dir"`
	PagesDir   string `yaml:"pages_dir"`
	OutputDir  string `yaml:"output_dir"`
	RoutesFile string `yaml:"routes_file"`
}

// SpliceMode selects how the aggregator file is updated.
type SpliceMode string

const (
	// SpliceAnchored is the find/replace splice against two text anchors.
	SpliceAnchored SpliceMode = "anchored"
	// SpliceStructured parses the registration function and inserts only
	// missing entries before its own closing brace.
	SpliceStructured SpliceMode = "structured"
)

// SpliceSpec configures the aggregator update.
type SpliceSpec struct {
	EntryAnchor      string     `yaml:"entry_anchor"`
	ClosingDelimiter string     `yaml:"closing_delimiter"`
	Mode             SpliceMode `yaml:"mode"`

	// Lenient turns a missing entry anchor into a logged no-op.
	Lenient bool `yaml:"lenient,omitempty"`

	// AllowDuplicate disables the already-spliced guard.
	AllowDuplicate bool `yaml:"allow_duplicate,omitempty"`
}

// Templates points at template files overriding the built-in ones.
type Templates struct {
	API  string `yaml:"api,omitempty"`
	Page string `yaml:"page,omitempty"`
}

// Storage mirrors generated artifacts to an S3-compatible bucket.
// Credentials come from the environment only.
type Storage struct {
	Bucket   string `yaml:"bucket,omitempty"`
	Prefix   string `yaml:"prefix,omitempty"`
	Endpoint string `yaml:"endpoint,omitempty"`
	Region   string `yaml:"region,omitempty"`

	AccessKey string `yaml:"-"`
	SecretKey string `yaml:"-"`
}

// Enabled reports whether a bucket is configured.
func (s Storage) Enabled() bool {
	return s.Bucket != ""
}

// Category is one entry of the category word list with its page metadata.
type Category struct {
	Name  string `yaml:"name"`
	Noun  string `yaml:"noun"`
	Label string `yaml:"label,omitempty"`
	Tabs  []Tab  `yaml:"tabs,omitempty"`
}

// Tab is one navigation tab of a generated page.
type Tab struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

// Layout selects which parts make up a series' slugs.
type Layout string

const (
	// LayoutCatalog is prefix-category-adjective-noun-series.
	LayoutCatalog Layout = "catalog"
	// LayoutRole is prefix-adjective-series, for single-purpose generators.
	LayoutRole Layout = "role"
)

// Series is a named batch sharing one adjective vocabulary.
type Series struct {
	Name       string   `yaml:"name"`
	Adjectives []string `yaml:"adjectives"`
	Layout     Layout   `yaml:"layout,omitempty"`

	// Categories restricts and orders the categories used by this series.
	// Empty means all configured categories.
	Categories []string `yaml:"categories,omitempty"`

	// Nouns overrides the category nouns, index-aligned with Categories.
	Nouns []string `yaml:"nouns,omitempty"`
}

// EffectiveLayout returns the layout, defaulting to catalog.
func (s Series) EffectiveLayout() Layout {
	if s.Layout == "" {
		return LayoutCatalog
	}
	return s.Layout
}

// FindSeries returns the named series or a ConfigError wrapping ErrUnknownSeries.
func (s *Spec) FindSeries(name string) (Series, error) {
	for _, sr := range s.Series {
		if sr.Name == name {
			return sr, nil
		}
	}
	return Series{}, configErr("series", ErrUnknownSeries, "%q (available: %s)", name, strings.Join(s.SeriesNames(), ", "))
}

// SeriesNames lists the configured series in order.
func (s *Spec) SeriesNames() []string {
	names := make([]string, 0, len(s.Series))
	for _, sr := range s.Series {
		names = append(names, sr.Name)
	}
	return names
}

// FindCategory returns the named category.
func (s *Spec) FindCategory(name string) (Category, error) {
	i := slices.IndexFunc(s.Categories, func(c Category) bool { return c.Name == name })
	if i < 0 {
		return Category{}, configErr("categories", ErrUnknownCategory, "%q", name)
	}
	return s.Categories[i], nil
}

// TabsFor returns the tab metadata of a category. A category without tabs
// cannot have a page rendered for it.
func (s *Spec) TabsFor(category string) ([]Tab, error) {
	c, err := s.FindCategory(category)
	if err != nil {
		return nil, err
	}
	if len(c.Tabs) == 0 {
		return nil, configErr("categories", ErrMissingTabs, "%q", category)
	}
	return c.Tabs, nil
}

// SeriesCategories resolves the categories of a series, applying its noun
// overrides.
func (s *Spec) SeriesCategories(sr Series) ([]Category, error) {
	if len(sr.Nouns) > 0 && len(sr.Nouns) != len(sr.Categories) {
		return nil, configErr("series."+sr.Name+".nouns", ErrListLengthMismatch,
			"%d nouns for %d categories", len(sr.Nouns), len(sr.Categories))
	}
	if len(sr.Categories) == 0 {
		return slices.Clone(s.Categories), nil
	}
	out := make([]Category, 0, len(sr.Categories))
	for i, name := range sr.Categories {
		c, err := s.FindCategory(name)
		if err != nil {
			return nil, err
		}
		if len(sr.Nouns) > 0 {
			c.Noun = sr.Nouns[i]
		}
		out = append(out, c)
	}
	return out, nil
}

// BaseDir returns the directory relative paths are resolved against.
func (s *Spec) BaseDir() string {
	return s.baseDir
}

// SetBaseDir overrides the directory relative paths are resolved against.
func (s *Spec) SetBaseDir(dir string) {
	s.baseDir = dir
}

// Resolve makes p absolute against the base directory. Absolute paths and
// empty strings are returned unchanged.
func (s *Spec) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	if s.baseDir == "" {
		return filepath.Clean(p)
	}
	return filepath.Join(s.baseDir, p)
}

// Symbol returns the aggregator symbol for a slug.
func (s *Spec) Symbol(slug string) string {
	return naming.RouterSymbol(slug, s.SymbolSuffix)
}

// RoutePath returns the mounted URL path for a slug.
func (s *Spec) RoutePath(slug string) string {
	return naming.ToPathWithRoot(s.RouteRoot, slug)
}
