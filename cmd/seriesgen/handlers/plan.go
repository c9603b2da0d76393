package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rakuda/seriesgen/internal/series"
)

type planEntry struct {
	Phase  int    `json:"phase"`
	Slug   string `json:"slug"`
	Symbol string `json:"symbol"`
	Path   string `json:"path"`
	Color  string `json:"color"`
}

// Plan prints the identifiers of a series without writing anything.
func Plan(ctx context.Context, configPath, name string, startPhase int, hasStartPhase, jsonOutput bool) error {
	cfg, _, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	name, startPhase, err = resolveSelection(ctx, cfg, name, startPhase, hasStartPhase)
	if err != nil {
		return err
	}

	p, err := series.Build(cfg, name, startPhase)
	if err != nil {
		return err
	}

	entries := make([]planEntry, 0, p.Len())
	for _, id := range p.Identifiers {
		entries = append(entries, planEntry{
			Phase:  id.Phase,
			Slug:   id.Slug(),
			Symbol: id.Symbol(),
			Path:   id.Path(),
			Color:  id.Color,
		})
	}

	if jsonOutput {
		b, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		fmt.Println(string(b))
		return nil
	}

	fmt.Print(renderPlan(p, entries))
	return nil
}

func renderPlan(p *series.Plan, entries []planEntry) string {
	t := table.New().
		Headers("PHASE", "SLUG", "SYMBOL", "PATH", "COLOR").
		Border(lipgloss.HiddenBorder())
	for _, e := range entries {
		t.Row(strconv.Itoa(e.Phase), e.Slug, e.Symbol, e.Path, e.Color)
	}

	out := titleStyle.Render(fmt.Sprintf("%s: %d identifiers, phase %s", seriesLabel(p.Series), p.Len(), p.PhaseRange())) + "\n"
	if dups := p.Duplicates(); len(dups) > 0 {
		out += dimStyle.Render(fmt.Sprintf("duplicate slugs: %v", dups)) + "\n"
	}
	return out + t.Render() + "\n"
}
