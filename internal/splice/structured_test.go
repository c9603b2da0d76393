package splice

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aggregatorWithHelper = `import { Express } from 'express';
import aRouter from './a';

export function registerEbayRoutes(app: Express) {
  app.use('/api/a', aRouter);
  // closing } in a comment
  const note = "}";
}

export function helper() {
  return {};
}
`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument(aggregatorWithHelper, DefaultAnchors().Entry)
	require.NoError(t, err)

	assert.Equal(t, "import { Express } from 'express';\nimport aRouter from './a';\n\n", doc.Prologue)
	assert.Equal(t, "export function registerEbayRoutes(app: Express) {", doc.Header)
	assert.Equal(t, "\n  app.use('/api/a', aRouter);\n  // closing } in a comment\n  const note = \"}\";\n", doc.Body)
	assert.Equal(t, "}\n\nexport function helper() {\n  return {};\n}\n", doc.Epilogue)
	assert.Equal(t, aggregatorWithHelper, doc.String())

	assert.True(t, doc.ImportedSymbols().Has("aRouter"))
	assert.False(t, doc.ImportedSymbols().Has("Express"), "named imports are not default imports")
	assert.Equal(t, []string{"aRouter"}, doc.RegisteredSymbols().UnsortedList())
}

func TestParseDocument_Errors(t *testing.T) {
	entry := DefaultAnchors().Entry

	_, err := ParseDocument("no anchor here\n", entry)
	assert.ErrorIs(t, err, ErrAnchorNotFound)

	_, err = ParseDocument("export function registerEbayRoutes(app) {\n  app.use('/x', x);\n", entry)
	assert.ErrorIs(t, err, ErrUnbalanced)

	_, err = ParseDocument("export function registerEbayRoutes(app) {\n  const s = 'open;\n}\n", entry)
	assert.ErrorIs(t, err, ErrUnbalanced)

	_, err = ParseDocument("export function registerEbayRoutes;\n", entry)
	assert.ErrorIs(t, err, ErrUnbalanced)
}

func TestParseDocument_AnchorAtStart(t *testing.T) {
	doc, err := ParseDocument("export function registerEbayRoutes() {\n}\n", DefaultAnchors().Entry)
	require.NoError(t, err)
	assert.Empty(t, doc.Prologue)
	assert.Equal(t, "\n", doc.Body)
}

func TestStructured_InsertsInsideFunction(t *testing.T) {
	out, res, err := Structured(aggregatorWithHelper, demoFragments(), defaultOptions())
	require.NoError(t, err)

	want := `import { Express } from 'express';
import aRouter from './a';

// Phase 1001-1002 (Demo series)
import bRouter from './b';
import cRouter from './c';

export function registerEbayRoutes(app: Express) {
  app.use('/api/a', aRouter);
  // closing } in a comment
  const note = "}";

  // Phase 1001-1002 (Demo series)
  app.use('/api/b', bRouter);
  app.use('/api/c', cRouter);
}

export function helper() {
  return {};
}
`
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("Structured() mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, res.SkippedSymbols)
}

func TestStructured_MatchesAnchoredOnPlainFile(t *testing.T) {
	anchored, _, err := Anchored(aggregator, demoFragments(), defaultOptions())
	require.NoError(t, err)
	structured, _, err := Structured(aggregator, demoFragments(), defaultOptions())
	require.NoError(t, err)
	assert.Equal(t, anchored, structured)
}

func TestStructured_SkipsExistingSymbols(t *testing.T) {
	once, _, err := Structured(aggregator, demoFragments(), defaultOptions())
	require.NoError(t, err)

	again, res, err := Structured(once, demoFragments(), defaultOptions())
	require.NoError(t, err)
	assert.False(t, res.Changed())
	assert.Equal(t, once, again)
	assert.ElementsMatch(t, []string{"bRouter", "cRouter"}, res.SkippedSymbols)
}

func TestStructured_PartialOverlap(t *testing.T) {
	f := demoFragments()
	f.Imports = "import aRouter from './a';\nimport bRouter from './b';\n"
	f.Registrations = "  app.use('/api/a', aRouter);\n  app.use('/api/b', bRouter);\n"

	out, res, err := Structured(aggregator, f, defaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"aRouter"}, res.SkippedSymbols)
	assert.Equal(t, 1, countLines(out, "import aRouter from './a';"))
	assert.Equal(t, 1, countLines(out, "  app.use('/api/b', bRouter);"))
}

func TestStructured_MissingAnchor(t *testing.T) {
	content := "function other() {\n}\n"

	_, _, err := Structured(content, demoFragments(), defaultOptions())
	require.ErrorIs(t, err, ErrAnchorNotFound)

	opts := defaultOptions()
	opts.Policy = Lenient
	out, res, err := Structured(content, demoFragments(), opts)
	require.NoError(t, err)
	assert.True(t, res.AnchorMissing)
	assert.False(t, res.Changed())
	assert.Equal(t, content, out)
}

func countLines(s, line string) int {
	n := 0
	for _, l := range splitLines(s) {
		if l == line {
			n++
		}
	}
	return n
}
