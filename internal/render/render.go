package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/rakuda/seriesgen/internal/config"
	"github.com/rakuda/seriesgen/internal/series"
)

// Placeholder names.
const (
	VarSlug      = "slug"
	VarSymbol    = "symbol"
	VarPath      = "path"
	VarSeries    = "series"
	VarCategory  = "category"
	VarColor     = "color"
	VarColorName = "color-name"
	VarTabs      = "tabs"
	VarPhase     = "phase"
)

var (
	// ErrUnresolved is returned when a template references an unknown variable.
	ErrUnresolved = errors.New("unresolved template variables")

	// ErrNoTabs is returned when a page is rendered without tab metadata.
	ErrNoTabs = errors.New("no tabs for page")
)

var placeholderRe = regexp.MustCompile(`\{\{\s*([a-z-]+)\s*\}\}`)

// Vars maps placeholder names to their values.
type Vars map[string]string

// IdentifierVars returns the variables every template can use.
func IdentifierVars(id series.Identifier) Vars {
	return Vars{
		VarSlug:      id.Slug(),
		VarSymbol:    id.Symbol(),
		VarPath:      id.Path(),
		VarSeries:    id.Series,
		VarCategory:  id.Category,
		VarColor:     id.Color,
		VarColorName: id.ColorName(),
		VarPhase:     strconv.Itoa(id.Phase),
	}
}

// Render replaces every {{ name }} in template with vars[name] in one pass.
func Render(template string, vars Vars) (string, error) {
	if template == "" {
		return "", nil
	}

	var missing []string
	result := placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		name := placeholderRe.FindStringSubmatch(m)[1]
		v, ok := vars[name]
		if !ok {
			if !slices.Contains(missing, name) {
				missing = append(missing, name)
			}
			return m
		}
		return v
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrUnresolved, strings.Join(missing, ", "))
	}
	return result, nil
}

// APIRoute renders the route file of an identifier.
func APIRoute(tmpl string, id series.Identifier) (string, error) {
	out, err := Render(tmpl, IdentifierVars(id))
	if err != nil {
		return "", fmt.Errorf("route %s: %w", id.Slug(), err)
	}
	return out, nil
}

// UIPage renders the page of an identifier with its category tabs.
func UIPage(tmpl string, id series.Identifier, tabs []config.Tab) (string, error) {
	if len(tabs) == 0 {
		return "", fmt.Errorf("page %s: %w (category %q)", id.Slug(), ErrNoTabs, id.Category)
	}
	tabsJSON, err := TabsJSON(tabs)
	if err != nil {
		return "", err
	}

	vars := IdentifierVars(id)
	vars[VarTabs] = tabsJSON
	out, err := Render(tmpl, vars)
	if err != nil {
		return "", fmt.Errorf("page %s: %w", id.Slug(), err)
	}
	return out, nil
}

type tabJSON struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// TabsJSON renders one compact JSON object per tab, joined by ",\n  " to
// sit inside a two-space indented array literal.
func TabsJSON(tabs []config.Tab) (string, error) {
	lines := make([]string, 0, len(tabs))
	for _, t := range tabs {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(tabJSON{Key: t.Key, Label: t.Label, Path: t.Path}); err != nil {
			return "", fmt.Errorf("failed to encode tab %q: %w", t.Key, err)
		}
		lines = append(lines, strings.TrimSuffix(buf.String(), "\n"))
	}
	return strings.Join(lines, ",\n  "), nil
}
