package series

import (
	"fmt"
	"strconv"

	"github.com/rakuda/seriesgen/internal/config"
)

// Plan is the ordered identifier sequence of one series run.
type Plan struct {
	Series      string
	Layout      config.Layout
	StartPhase  int
	Identifiers []Identifier
}

// Build expands the named series into a Plan starting at startPhase.
// An unknown series is a configuration error; an empty word list yields an
// empty plan.
func Build(spec *config.Spec, name string, startPhase int) (*Plan, error) {
	sr, err := spec.FindSeries(name)
	if err != nil {
		return nil, err
	}
	cats, err := spec.SeriesCategories(sr)
	if err != nil {
		return nil, err
	}

	p := &Plan{Series: sr.Name, Layout: sr.EffectiveLayout(), StartPhase: startPhase}

	var tuples [][]string
	switch p.Layout {
	case config.LayoutRole:
		tuples = Expand(sr.Adjectives)
	default:
		// expand over positions so a repeated category keeps its own noun
		idx := make([]string, len(cats))
		for i := range cats {
			idx[i] = strconv.Itoa(i)
		}
		tuples = Expand(sr.Adjectives, idx)
	}
	if len(tuples) == 0 {
		return p, nil
	}
	if len(spec.Colors) == 0 {
		return nil, &config.ConfigError{Field: "colors", Err: config.ErrEmptyColors}
	}

	p.Identifiers = make([]Identifier, 0, len(tuples))
	for i, t := range tuples {
		id := Identifier{
			Prefix:       spec.Prefix,
			Adjective:    t[0],
			Series:       sr.Name,
			Phase:        startPhase + i,
			Color:        spec.Colors[i%len(spec.Colors)],
			Layout:       p.Layout,
			routeRoot:    spec.RouteRoot,
			symbolSuffix: spec.SymbolSuffix,
		}
		if p.Layout == config.LayoutRole {
			// category only carries tab metadata here; it rotates per phase
			if len(cats) > 0 {
				id.Category = cats[i%len(cats)].Name
			}
		} else {
			j, _ := strconv.Atoi(t[1])
			c := cats[j]
			id.Category = c.Name
			id.Noun = c.Noun
		}
		p.Identifiers = append(p.Identifiers, id)
	}
	return p, nil
}

// Len returns the number of identifiers.
func (p *Plan) Len() int {
	return len(p.Identifiers)
}

// EndPhase returns the phase of the last identifier, or StartPhase-1 for an
// empty plan.
func (p *Plan) EndPhase() int {
	return p.StartPhase + len(p.Identifiers) - 1
}

// PhaseRange formats the phase range as "start-end".
func (p *Plan) PhaseRange() string {
	return fmt.Sprintf("%d-%d", p.StartPhase, p.EndPhase())
}

// Duplicates returns the slugs that occur more than once, in first
// occurrence order. Nouns are free-form, so collisions are possible and are
// left for the caller to act on.
func (p *Plan) Duplicates() []string {
	seen := make(map[string]int, len(p.Identifiers))
	var dups []string
	for _, id := range p.Identifiers {
		s := id.Slug()
		seen[s]++
		if seen[s] == 2 {
			dups = append(dups, s)
		}
	}
	return dups
}
