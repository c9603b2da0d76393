package handlers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakuda/seriesgen/internal/artifact"
	"github.com/rakuda/seriesgen/internal/config"
	"github.com/rakuda/seriesgen/internal/config/wizard"
	"github.com/rakuda/seriesgen/internal/platform/s3"
	"github.com/rakuda/seriesgen/internal/splice"
	"github.com/rakuda/seriesgen/internal/watch"
)

func TestGenerate_WritesAndSplices(t *testing.T) {
	stubEnvironment(t)
	cfgPath := setupProject(t)
	dir := filepath.Dir(cfgPath)

	var err error
	output := captureOutput(func() {
		err = Generate(context.Background(), GenerateOptions{
			ConfigPath: cfgPath, Series: "demo", StartPhase: 1, HasStartPhase: true,
		})
	})
	require.NoError(t, err)

	assert.Contains(t, output, "[demo] Generated 4 files. Phase 1-4\n")
	assert.Contains(t, output, "[demo] Updated ebay-routes.ts\n")
	assert.Contains(t, output, "Done! Phase 1-4 (Demo series)\n")

	for _, rel := range []string{
		"routes/ebay-listing-alpha-engine-demo.ts",
		"routes/ebay-order-beta-routing-demo.ts",
		"pages/listing-alpha-engine-demo/page.tsx",
		"pages/order-beta-routing-demo/page.tsx",
		"out/demo-imports.txt",
		"out/demo-registrations.txt",
		"out/demo-manifest.yaml",
	} {
		assert.FileExists(t, filepath.Join(dir, rel))
	}

	aggregator := readFile(t, filepath.Join(dir, "routes", "ebay-routes.ts"))
	assert.Equal(t, 2, strings.Count(aggregator, "// Phase 1-4 (Demo series)"))
	assert.Contains(t, aggregator, "import ebayListingAlphaEngineDemoRouter from './ebay-listing-alpha-engine-demo';")
	assert.Contains(t, aggregator, "  app.use('/api/ebay-order-beta-routing-demo', ebayOrderBetaRoutingDemoRouter);")
	assert.Less(t,
		strings.Index(aggregator, "import ebayListingAlphaEngineDemoRouter"),
		strings.Index(aggregator, "export function registerEbayRoutes"))
	assert.True(t, strings.HasSuffix(aggregator, "}\n"))
}

func TestGenerate_RerunIsRejected(t *testing.T) {
	stubEnvironment(t)
	cfgPath := setupProject(t)
	opts := GenerateOptions{ConfigPath: cfgPath, Series: "demo", StartPhase: 1, HasStartPhase: true}

	captureOutput(func() { require.NoError(t, Generate(context.Background(), opts)) })

	var err error
	captureOutput(func() { err = Generate(context.Background(), opts) })
	require.Error(t, err)
	assert.True(t, errors.Is(err, splice.ErrAlreadySpliced))
	assert.Contains(t, err.Error(), "--allow-duplicate")

	opts.AllowDuplicate = true
	captureOutput(func() { err = Generate(context.Background(), opts) })
	require.NoError(t, err)

	aggregator := readFile(t, filepath.Join(filepath.Dir(cfgPath), "routes", "ebay-routes.ts"))
	assert.Equal(t, 4, strings.Count(aggregator, "// Phase 1-4 (Demo series)"))
}

func TestGenerate_UnknownSeries(t *testing.T) {
	stubEnvironment(t)
	cfgPath := setupProject(t)

	var err error
	captureOutput(func() {
		err = Generate(context.Background(), GenerateOptions{ConfigPath: cfgPath, Series: "nope", StartPhase: 1, HasStartPhase: true})
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnknownSeries)
	assert.Contains(t, err.Error(), "available: demo, solo")
}

func TestGenerate_DryRunWritesNothing(t *testing.T) {
	stubEnvironment(t)
	cfgPath := setupProject(t)
	dir := filepath.Dir(cfgPath)

	var err error
	output := captureOutput(func() {
		err = Generate(context.Background(), GenerateOptions{
			ConfigPath: cfgPath, Series: "demo", StartPhase: 7, HasStartPhase: true, DryRun: true,
		})
	})
	require.NoError(t, err)

	assert.Contains(t, output, "Dry run: 11 artifacts, nothing written")
	assert.Contains(t, output, "listing-alpha-engine-demo/page.tsx")
	assert.NotContains(t, output, "Updated")
	assert.NoDirExists(t, filepath.Join(dir, "pages"))
	assert.NoFileExists(t, filepath.Join(dir, "routes", "ebay-listing-alpha-engine-demo.ts"))
	assert.Equal(t, testAggregator, readFile(t, filepath.Join(dir, "routes", "ebay-routes.ts")))
}

func TestGenerate_NoUIAndNoSplice(t *testing.T) {
	stubEnvironment(t)
	cfgPath := setupProject(t)
	dir := filepath.Dir(cfgPath)

	var err error
	output := captureOutput(func() {
		err = Generate(context.Background(), GenerateOptions{
			ConfigPath: cfgPath, Series: "solo", StartPhase: 3, HasStartPhase: true, NoUI: true, NoSplice: true,
		})
	})
	require.NoError(t, err)

	assert.Contains(t, output, "[solo] Generated 1 files. Phase 3-3")
	assert.FileExists(t, filepath.Join(dir, "routes", "ebay-gamma-solo.ts"))
	assert.NoDirExists(t, filepath.Join(dir, "pages"))
	assert.Equal(t, testAggregator, readFile(t, filepath.Join(dir, "routes", "ebay-routes.ts")))
}

func TestGenerate_MetricsFile(t *testing.T) {
	stubEnvironment(t)
	cfgPath := setupProject(t)
	metricsPath := filepath.Join(t.TempDir(), "seriesgen.prom")

	captureOutput(func() {
		require.NoError(t, Generate(context.Background(), GenerateOptions{
			ConfigPath: cfgPath, Series: "demo", StartPhase: 1, HasStartPhase: true, MetricsFile: metricsPath,
		}))
	})

	data := readFile(t, metricsPath)
	assert.Contains(t, data, "seriesgen_run_total")
	assert.Contains(t, data, `seriesgen_splice_total{mode="anchored",result="changed",series="demo"}`)
	assert.Contains(t, data, `seriesgen_series_identifiers{series="demo"} 4`)
}

func TestGenerate_MirrorsToObjectStorage(t *testing.T) {
	stubEnvironment(t)
	cfgPath := setupProject(t)

	store := &fakeStore{}
	orig := newObjectStore
	newObjectStore = func(_ context.Context, _ s3.Options) (artifact.ObjectStore, error) { return store, nil }
	defer func() { newObjectStore = orig }()

	captureOutput(func() {
		require.NoError(t, Generate(context.Background(), GenerateOptions{
			ConfigPath: cfgPath, Series: "demo", StartPhase: 1, HasStartPhase: true,
			NoSplice: true, S3Bucket: "artifacts", S3Prefix: "gen",
		}))
	})

	assert.Equal(t, []string{"artifacts"}, store.ensured)
	require.Len(t, store.puts, 11)
	assert.Equal(t, "gen/routes/ebay-listing-alpha-engine-demo.ts", store.puts[0].key)
	assert.Equal(t, "gen/output/demo-manifest.yaml", store.puts[10].key)
	assert.Equal(t, "application/yaml", store.puts[10].contentType)
}

func TestGenerate_ObjectStorageClientError(t *testing.T) {
	stubEnvironment(t)
	cfgPath := setupProject(t)

	orig := newObjectStore
	newObjectStore = func(_ context.Context, _ s3.Options) (artifact.ObjectStore, error) {
		return nil, errors.New("no credentials")
	}
	defer func() { newObjectStore = orig }()

	var err error
	captureOutput(func() {
		err = Generate(context.Background(), GenerateOptions{
			ConfigPath: cfgPath, Series: "demo", StartPhase: 1, HasStartPhase: true, S3Bucket: "artifacts",
		})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create object storage client")
}

func TestGenerate_InteractiveSelection(t *testing.T) {
	stubEnvironment(t)
	cfgPath := setupProject(t)

	isInteractive = func() bool { return true }
	orig := selectSeries
	selectSeries = func(_ context.Context, spec *config.Spec) (*wizard.Selection, error) {
		return &wizard.Selection{Series: "demo", StartPhase: 10}, nil
	}
	defer func() { selectSeries = orig }()

	var err error
	output := captureOutput(func() {
		err = Generate(context.Background(), GenerateOptions{ConfigPath: cfgPath, NoSplice: true})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "[demo] Generated 4 files. Phase 10-13")
}

func TestGenerate_NoSeriesNonInteractive(t *testing.T) {
	stubEnvironment(t)
	cfgPath := setupProject(t)

	err := Generate(context.Background(), GenerateOptions{ConfigPath: cfgPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no series given")
}

func TestGenerate_Watch(t *testing.T) {
	stubEnvironment(t)
	cfgPath := setupProject(t)

	var watched *watch.Watcher
	orig := runWatcher
	runWatcher = func(_ context.Context, w *watch.Watcher) error {
		watched = w
		return nil
	}
	defer func() { runWatcher = orig }()

	var err error
	output := captureOutput(func() {
		err = Generate(context.Background(), GenerateOptions{
			ConfigPath: cfgPath, Series: "demo", StartPhase: 1, HasStartPhase: true, NoSplice: true, Watch: true,
		})
	})
	require.NoError(t, err)
	assert.NotNil(t, watched)
	assert.Contains(t, output, "Watching for changes")
}

func TestResolveSelection(t *testing.T) {
	stubEnvironment(t)
	cfg := config.Default()

	name, start, err := resolveSelection(context.Background(), cfg, "blaze", 0, false)
	require.NoError(t, err)
	assert.Equal(t, "blaze", name)
	assert.Equal(t, 1, start)

	cfg.DefaultSeries = "blaze"
	cfg.DefaultStartPhase = 1521
	name, start, err = resolveSelection(context.Background(), cfg, "", 0, false)
	require.NoError(t, err)
	assert.Equal(t, "blaze", name)
	assert.Equal(t, 1521, start)

	_, start, err = resolveSelection(context.Background(), cfg, "", 0, true)
	require.NoError(t, err)
	assert.Equal(t, 0, start)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	stubEnvironment(t)
	cfgPath := setupProject(t)
	loadEnv = func() (config.Env, error) {
		return config.Env{ConfigPath: cfgPath, OutputDir: "fragments", S3Bucket: "from-env"}, nil
	}

	cfg, path, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, cfgPath, path)
	assert.Equal(t, "fragments", cfg.Paths.OutputDir)
	assert.Equal(t, "from-env", cfg.Storage.Bucket)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	stubEnvironment(t)

	_, _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
