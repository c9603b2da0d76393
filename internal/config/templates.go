package config

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed templates/api-route.ts.tmpl
var defaultAPITemplate string

//go:embed templates/page.tsx.tmpl
var defaultPageTemplate string

// TemplateSet holds the template bodies used for one run.
type TemplateSet struct {
	API  string
	Page string
}

// DefaultTemplates returns the built-in route and page templates.
func DefaultTemplates() TemplateSet {
	return TemplateSet{API: defaultAPITemplate, Page: defaultPageTemplate}
}

// LoadTemplates reads the configured template overrides, falling back to
// the built-in templates for any that are unset.
func (s *Spec) LoadTemplates() (TemplateSet, error) {
	set := DefaultTemplates()

	if s.Templates.API != "" {
		body, err := readTemplate(s.Resolve(s.Templates.API))
		if err != nil {
			return TemplateSet{}, err
		}
		set.API = body
	}
	if s.Templates.Page != "" {
		body, err := readTemplate(s.Resolve(s.Templates.Page))
		if err != nil {
			return TemplateSet{}, err
		}
		set.Page = body
	}
	return set, nil
}

// TemplateFiles returns the resolved override paths, for watching.
func (s *Spec) TemplateFiles() []string {
	var files []string
	for _, p := range []string{s.Templates.API, s.Templates.Page} {
		if p != "" {
			files = append(files, s.Resolve(p))
		}
	}
	return files
}

func readTemplate(path string) (string, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", path, err)
	}
	return string(data), nil
}
