package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rakuda/seriesgen/internal/series"
)

// ImportLine is the aggregator import statement of an identifier.
func ImportLine(id series.Identifier) string {
	return fmt.Sprintf("import %s from './%s';", id.Symbol(), id.Slug())
}

// RegistrationLine is the aggregator registration statement of an identifier.
func RegistrationLine(id series.Identifier) string {
	return fmt.Sprintf("  app.use('%s', %s);", id.Path(), id.Symbol())
}

// ImportsFragment joins the import lines of a plan, one per line.
func ImportsFragment(p *series.Plan) string {
	return joinLines(p, ImportLine)
}

// RegistrationsFragment joins the registration lines of a plan, one per line.
func RegistrationsFragment(p *series.Plan) string {
	return joinLines(p, RegistrationLine)
}

func joinLines(p *series.Plan, line func(series.Identifier) string) string {
	lines := make([]string, 0, p.Len())
	for _, id := range p.Identifiers {
		lines = append(lines, line(id))
	}
	return strings.Join(lines, "\n") + "\n"
}

// ReadFragments reads the fragment files of a series from dir.
func ReadFragments(dir, seriesName string) (imports, registrations string, err error) {
	// #nosec G304
	imp, err := os.ReadFile(filepath.Join(dir, ImportsFile(seriesName)))
	if err != nil {
		return "", "", fmt.Errorf("failed to read imports fragment: %w", err)
	}
	// #nosec G304
	reg, err := os.ReadFile(filepath.Join(dir, RegistrationsFile(seriesName)))
	if err != nil {
		return "", "", fmt.Errorf("failed to read registrations fragment: %w", err)
	}
	return string(imp), string(reg), nil
}
