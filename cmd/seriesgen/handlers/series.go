package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rakuda/seriesgen/internal/config/wizard"
)

type seriesSummary struct {
	Name        string `json:"name"`
	Layout      string `json:"layout"`
	Adjectives  int    `json:"adjectives"`
	Identifiers int    `json:"identifiers"`
	Default     bool   `json:"default,omitempty"`
}

// Series lists the configured series.
func Series(_ context.Context, configPath string, jsonOutput bool) error {
	cfg, _, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	summaries := make([]seriesSummary, 0, len(cfg.Series))
	for _, sr := range cfg.Series {
		summaries = append(summaries, seriesSummary{
			Name:        sr.Name,
			Layout:      string(sr.EffectiveLayout()),
			Adjectives:  len(sr.Adjectives),
			Identifiers: wizard.IdentifierCount(cfg, sr),
			Default:     sr.Name == cfg.DefaultSeries,
		})
	}

	if jsonOutput {
		b, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Println(string(b))
		return nil
	}

	t := table.New().
		Headers("SERIES", "LAYOUT", "ADJECTIVES", "IDENTIFIERS", "").
		Border(lipgloss.HiddenBorder())
	for _, s := range summaries {
		mark := ""
		if s.Default {
			mark = "default"
		}
		t.Row(s.Name, s.Layout, strconv.Itoa(s.Adjectives), strconv.Itoa(s.Identifiers), mark)
	}
	fmt.Println(t.Render())
	return nil
}
