package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rakuda/seriesgen/internal/artifact"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{3 << 20, "3.0 MiB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatBytes(tt.n))
	}
}

func TestSeriesLabel(t *testing.T) {
	assert.Equal(t, "Blaze series", seriesLabel("blaze"))
}

func testResult() *artifact.Result {
	return &artifact.Result{
		Series: "demo", StartPhase: 1, EndPhase: 2, Identifiers: 2,
		Artifacts: []artifact.Artifact{
			{Kind: artifact.KindAPIRoute, Root: artifact.RootRoutes, Path: "ebay-a.ts", Content: make([]byte, 2048)},
			{Kind: artifact.KindAPIRoute, Root: artifact.RootRoutes, Path: "ebay-b.ts", Content: make([]byte, 1024)},
			{Kind: artifact.KindImports, Root: artifact.RootOutput, Path: "demo-imports.txt", Content: []byte("x\n")},
		},
	}
}

func TestRenderArtifactBreakdown(t *testing.T) {
	out := renderArtifactBreakdown(testResult())

	assert.Contains(t, out, "Artifacts")
	assert.Contains(t, out, "api-route")
	assert.Contains(t, out, "3.0 KiB")
	assert.Contains(t, out, "imports")
	assert.NotContains(t, out, "ui-page")
}

func TestRenderDryRun(t *testing.T) {
	out := renderDryRun(testResult(), false)

	assert.Contains(t, out, "Dry run: 3 artifacts, nothing written")
	assert.Contains(t, out, "ebay-a.ts")
	assert.Contains(t, out, "demo-imports.txt")
	assert.Contains(t, out, "2.0 KiB")
}
