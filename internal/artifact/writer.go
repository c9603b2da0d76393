package artifact

import (
	"context"
	"fmt"
	"path"

	"github.com/go-logr/logr"

	"github.com/rakuda/seriesgen/internal/config"
	"github.com/rakuda/seriesgen/internal/render"
	"github.com/rakuda/seriesgen/internal/series"
)

// Writer renders the artifacts of a plan and writes them to a Sink.
type Writer struct {
	spec      *config.Spec
	templates config.TemplateSet
	sink      Sink

	skipPages bool
	log       logr.Logger
	observe   func(Artifact)
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithoutPages skips the page artifacts.
func WithoutPages() WriterOption {
	return func(w *Writer) { w.skipPages = true }
}

// WithLogger sets the logger. The default discards.
func WithLogger(log logr.Logger) WriterOption {
	return func(w *Writer) { w.log = log }
}

// WithObserver registers a callback invoked after each successful write.
func WithObserver(fn func(Artifact)) WriterOption {
	return func(w *Writer) { w.observe = fn }
}

// NewWriter creates a Writer.
func NewWriter(spec *config.Spec, templates config.TemplateSet, sink Sink, opts ...WriterOption) *Writer {
	w := &Writer{spec: spec, templates: templates, sink: sink, log: logr.Discard()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Result summarises a written run.
type Result struct {
	Series      string
	StartPhase  int
	EndPhase    int
	Identifiers int
	Artifacts   []Artifact
	Manifest    *Manifest
}

// Summary is the one-line report of a run.
func (r *Result) Summary() string {
	return fmt.Sprintf("[%s] Generated %d files. Phase %d-%d", r.Series, r.Identifiers, r.StartPhase, r.EndPhase)
}

// Render produces every artifact of the plan without writing: routes and
// pages in plan order, then the two fragments and the manifest.
func (w *Writer) Render(p *series.Plan) ([]Artifact, *Manifest, error) {
	perID := 2
	if w.skipPages {
		perID = 1
	}
	out := make([]Artifact, 0, p.Len()*perID+3)

	for _, id := range p.Identifiers {
		route, err := render.APIRoute(w.templates.API, id)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, Artifact{
			Kind:    KindAPIRoute,
			Root:    RootRoutes,
			Path:    id.Slug() + ".ts",
			Content: []byte(route),
		})

		if w.skipPages {
			continue
		}
		tabs, err := w.spec.TabsFor(id.Category)
		if err != nil {
			return nil, nil, err
		}
		page, err := render.UIPage(w.templates.Page, id, tabs)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, Artifact{
			Kind:    KindUIPage,
			Root:    RootPages,
			Path:    path.Join(id.PageDir(), "page.tsx"),
			Content: []byte(page),
		})
	}

	out = append(out,
		Artifact{Kind: KindImports, Root: RootOutput, Path: ImportsFile(p.Series), Content: []byte(ImportsFragment(p))},
		Artifact{Kind: KindRegistrations, Root: RootOutput, Path: RegistrationsFile(p.Series), Content: []byte(RegistrationsFragment(p))},
	)

	m := &Manifest{Series: p.Series, StartPhase: p.StartPhase, EndPhase: p.EndPhase()}
	for _, a := range out {
		m.Add(a)
	}
	data, err := m.Marshal()
	if err != nil {
		return nil, nil, err
	}
	out = append(out, Artifact{Kind: KindManifest, Root: RootOutput, Path: ManifestFile(p.Series), Content: data})

	return out, m, nil
}

// Write renders the plan and writes every artifact in order. The first
// failed write aborts the run; files already written stay in place.
func (w *Writer) Write(ctx context.Context, p *series.Plan) (*Result, error) {
	artifacts, m, err := w.Render(p)
	if err != nil {
		return nil, err
	}

	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := w.sink.Put(ctx, a); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", a, err)
		}
		w.log.V(1).Info("wrote artifact", "root", string(a.Root), "path", a.Path, "bytes", len(a.Content))
		if w.observe != nil {
			w.observe(a)
		}
	}

	return &Result{
		Series:      p.Series,
		StartPhase:  p.StartPhase,
		EndPhase:    p.EndPhase(),
		Identifiers: p.Len(),
		Artifacts:   artifacts,
		Manifest:    m,
	}, nil
}
