package handlers

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rakuda/seriesgen/internal/artifact"
	"github.com/rakuda/seriesgen/internal/util/naming"
)

var (
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// stdoutFile is read at call time so captured output is never a terminal.
func stdoutFile() *os.File {
	return os.Stdout
}

// seriesLabel returns "Blaze series" for "blaze".
func seriesLabel(name string) string {
	return naming.Capitalize(name) + " series"
}

// kindOrder is the display order of artifact kinds.
var kindOrder = []artifact.Kind{
	artifact.KindAPIRoute,
	artifact.KindUIPage,
	artifact.KindImports,
	artifact.KindRegistrations,
	artifact.KindManifest,
}

// renderArtifactBreakdown summarises a run by artifact kind.
func renderArtifactBreakdown(res *artifact.Result) string {
	counts := make(map[artifact.Kind]int)
	sizes := make(map[artifact.Kind]int)
	for _, a := range res.Artifacts {
		counts[a.Kind]++
		sizes[a.Kind] += len(a.Content)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("  Artifacts"))
	b.WriteString("\n")
	for _, k := range kindOrder {
		if counts[k] == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %-14s %4d %s\n", k, counts[k], dimStyle.Render(formatBytes(sizes[k])))
	}
	b.WriteString("\n")
	return b.String()
}

// renderDryRun lists every artifact a run would write.
func renderDryRun(res *artifact.Result, styled bool) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("  Dry run: %d artifacts, nothing written", len(res.Artifacts))))
	b.WriteString("\n")

	t := table.New().
		Headers("ROOT", "PATH", "KIND", "SIZE").
		Border(lipgloss.HiddenBorder())
	if styled {
		t = t.StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return sectionStyle
			}
			return lipgloss.NewStyle()
		})
	}
	for _, a := range res.Artifacts {
		t.Row(string(a.Root), a.Path, string(a.Kind), formatBytes(len(a.Content)))
	}
	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}

func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
