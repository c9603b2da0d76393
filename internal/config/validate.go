package config

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/apimachinery/pkg/util/validation"
)

// Validate checks the configuration and returns a *ConfigError describing
// the first problem found.
func (s *Spec) Validate() error {
	if err := validateToken("prefix", s.Prefix); err != nil {
		return err
	}
	if s.RouteRoot == "" || !strings.HasPrefix(s.RouteRoot, "/") || !strings.HasSuffix(s.RouteRoot, "/") {
		return configErr("route_root", ErrInvalidToken, "%q must start and end with /", s.RouteRoot)
	}
	if len(s.Colors) == 0 {
		return configErr("colors", ErrEmptyColors, "")
	}

	if err := s.validateSplice(); err != nil {
		return err
	}
	if err := s.validateCategories(); err != nil {
		return err
	}
	if err := s.validateSeries(); err != nil {
		return err
	}

	if s.DefaultSeries != "" {
		if _, err := s.FindSeries(s.DefaultSeries); err != nil {
			return err
		}
	}

	return nil
}

func (s *Spec) validateSplice() error {
	switch s.Splice.Mode {
	case "", SpliceAnchored, SpliceStructured:
	default:
		return configErr("splice.mode", ErrInvalidSpliceMode, "%q (want %s or %s)", s.Splice.Mode, SpliceAnchored, SpliceStructured)
	}
	if s.Splice.EntryAnchor == "" {
		return configErr("splice.entry_anchor", ErrInvalidToken, "must not be empty")
	}
	if s.Splice.ClosingDelimiter == "" {
		return configErr("splice.closing_delimiter", ErrInvalidToken, "must not be empty")
	}
	return nil
}

func (s *Spec) validateCategories() error {
	seen := sets.New[string]()
	for i, c := range s.Categories {
		field := fmt.Sprintf("categories[%d]", i)
		if err := validateToken(field+".name", c.Name); err != nil {
			return err
		}
		if err := validateToken(field+".noun", c.Noun); err != nil {
			return err
		}
		if seen.Has(c.Name) {
			return configErr(field+".name", ErrDuplicateToken, "%q", c.Name)
		}
		seen.Insert(c.Name)
	}
	return nil
}

func (s *Spec) validateSeries() error {
	names := sets.New[string]()
	for i, sr := range s.Series {
		field := fmt.Sprintf("series[%d]", i)
		if err := validateToken(field+".name", sr.Name); err != nil {
			return err
		}
		if names.Has(sr.Name) {
			return configErr(field+".name", ErrDuplicateToken, "%q", sr.Name)
		}
		names.Insert(sr.Name)

		switch sr.Layout {
		case "", LayoutCatalog, LayoutRole:
		default:
			return configErr(field+".layout", ErrInvalidLayout, "%q", sr.Layout)
		}

		adjectives := sets.New[string]()
		for j, adj := range sr.Adjectives {
			if err := validateToken(fmt.Sprintf("%s.adjectives[%d]", field, j), adj); err != nil {
				return err
			}
			if adjectives.Has(adj) {
				return configErr(fmt.Sprintf("%s.adjectives[%d]", field, j), ErrDuplicateToken, "%q", adj)
			}
			adjectives.Insert(adj)
		}

		for j, noun := range sr.Nouns {
			if err := validateToken(fmt.Sprintf("%s.nouns[%d]", field, j), noun); err != nil {
				return err
			}
		}
		categories := sets.New[string]()
		for j, name := range sr.Categories {
			if categories.Has(name) {
				return configErr(fmt.Sprintf("%s.categories[%d]", field, j), ErrDuplicateToken, "%q", name)
			}
			categories.Insert(name)
		}
		if _, err := s.SeriesCategories(sr); err != nil {
			return err
		}
	}
	return nil
}

// validateToken accepts lower-case kebab tokens within the DNS-1123 label rules.
func validateToken(field, token string) error {
	if !slug.IsSlug(token) {
		return configErr(field, ErrInvalidToken, "%q is not a lower-case slug", token)
	}
	if msgs := validation.IsDNS1123Label(token); len(msgs) > 0 {
		return configErr(field, ErrInvalidToken, "%q: %s", token, strings.Join(msgs, "; "))
	}
	return nil
}
