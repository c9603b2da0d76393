package handlers

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-logr/logr"

	"github.com/rakuda/seriesgen/internal/artifact"
	"github.com/rakuda/seriesgen/internal/config"
	"github.com/rakuda/seriesgen/internal/metrics"
	"github.com/rakuda/seriesgen/internal/platform/s3"
	"github.com/rakuda/seriesgen/internal/series"
	"github.com/rakuda/seriesgen/internal/splice"
	"github.com/rakuda/seriesgen/internal/watch"
)

// GenerateOptions carries the generate command's arguments and flags.
type GenerateOptions struct {
	ConfigPath string

	Series        string
	StartPhase    int
	HasStartPhase bool

	DryRun   bool
	NoUI     bool
	NoSplice bool

	Mode           string
	Lenient        bool
	AllowDuplicate bool

	MetricsFile string
	Watch       bool

	S3Bucket string
	S3Prefix string
}

// Factory function variables for generate - can be replaced in tests.
var (
	// newObjectStore creates the S3 client behind S3Sink.
	newObjectStore = func(ctx context.Context, opts s3.Options) (artifact.ObjectStore, error) {
		return s3.NewClient(ctx, opts)
	}

	// runWatcher blocks until ctx is cancelled.
	runWatcher = func(ctx context.Context, w *watch.Watcher) error {
		return w.Run(ctx)
	}
)

// Generate writes the artifacts of one series and splices the aggregator.
func Generate(ctx context.Context, opts GenerateOptions) error {
	cfg, cfgPath, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	applyGenerateFlags(cfg, opts)

	name, startPhase, err := resolveSelection(ctx, cfg, opts.Series, opts.StartPhase, opts.HasStartPhase)
	if err != nil {
		return err
	}

	res, err := generateOnce(ctx, cfg, name, startPhase, opts)
	if err != nil {
		return err
	}

	if !opts.DryRun && !opts.NoSplice {
		routesFile := cfg.Resolve(cfg.Paths.RoutesFile)
		f := splice.Fragments{
			Series:        res.Series,
			StartPhase:    res.StartPhase,
			EndPhase:      res.EndPhase,
			Imports:       string(fragmentContent(res, artifact.KindImports)),
			Registrations: string(fragmentContent(res, artifact.KindRegistrations)),
		}
		if err := spliceAggregator(ctx, cfg, routesFile, f); err != nil {
			return err
		}
	}

	if opts.MetricsFile != "" {
		if err := metrics.WriteTextfile(opts.MetricsFile); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	fmt.Printf("Done! Phase %d-%d (%s)\n", res.StartPhase, res.EndPhase, seriesLabel(res.Series))

	if opts.Watch {
		return watchAndRegenerate(ctx, cfg, cfgPath, name, startPhase, opts)
	}
	return nil
}

func applyGenerateFlags(cfg *config.Spec, opts GenerateOptions) {
	if opts.Mode != "" {
		cfg.Splice.Mode = config.SpliceMode(opts.Mode)
	}
	if opts.Lenient {
		cfg.Splice.Lenient = true
	}
	if opts.AllowDuplicate {
		cfg.Splice.AllowDuplicate = true
	}
	if opts.S3Bucket != "" {
		cfg.Storage.Bucket = opts.S3Bucket
	}
	if opts.S3Prefix != "" {
		cfg.Storage.Prefix = opts.S3Prefix
	}
}

// generateOnce plans, renders and writes one series without splicing.
func generateOnce(ctx context.Context, cfg *config.Spec, name string, startPhase int, opts GenerateOptions) (*artifact.Result, error) {
	log := logFrom(ctx).WithValues("series", name)

	templates, err := cfg.LoadTemplates()
	if err != nil {
		return nil, err
	}

	plan, err := series.Build(cfg, name, startPhase)
	if err != nil {
		return nil, err
	}
	if dups := plan.Duplicates(); len(dups) > 0 {
		log.Info("warning: plan contains duplicate slugs, later files overwrite earlier ones", "slugs", dups)
	}
	metrics.RecordIdentifiers(name, plan.Len())

	sink, err := buildSink(ctx, cfg, opts.DryRun, log)
	if err != nil {
		return nil, err
	}

	writerOpts := []artifact.WriterOption{
		artifact.WithLogger(log),
		artifact.WithObserver(metrics.ArtifactObserver(name)),
	}
	if opts.NoUI {
		writerOpts = append(writerOpts, artifact.WithoutPages())
	}
	w := artifact.NewWriter(cfg, templates, sink, writerOpts...)

	started := time.Now()
	res, err := w.Write(ctx, plan)
	metrics.RecordRun(name, time.Since(started), err)
	if err != nil {
		return nil, err
	}

	fmt.Println(res.Summary())
	if opts.DryRun {
		fmt.Print(renderDryRun(res, isTerminal(stdoutFile())))
	} else if isTerminal(stdoutFile()) {
		fmt.Print(renderArtifactBreakdown(res))
	}
	return res, nil
}

// buildSink returns the sink of a run: memory for dry runs, the file tree
// otherwise, mirrored to object storage when a bucket is configured.
func buildSink(ctx context.Context, cfg *config.Spec, dryRun bool, log logr.Logger) (artifact.Sink, error) {
	if dryRun {
		return &artifact.MemorySink{}, nil
	}

	files := &artifact.FileSink{Roots: map[artifact.Root]string{
		artifact.RootRoutes: cfg.Resolve(cfg.Paths.RoutesDir),
		artifact.RootPages:  cfg.Resolve(cfg.Paths.PagesDir),
		artifact.RootOutput: cfg.Resolve(cfg.Paths.OutputDir),
	}}
	if !cfg.Storage.Enabled() {
		return files, nil
	}

	store, err := newObjectStore(ctx, s3.Options{
		Endpoint:  cfg.Storage.Endpoint,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}
	log.V(1).Info("mirroring artifacts to object storage", "bucket", cfg.Storage.Bucket, "prefix", cfg.Storage.Prefix)
	return artifact.MultiSink{files, artifact.NewS3Sink(store, cfg.Storage.Bucket, cfg.Storage.Prefix, log)}, nil
}

// spliceAggregator applies the configured splice to the aggregator file.
func spliceAggregator(ctx context.Context, cfg *config.Spec, routesFile string, f splice.Fragments) error {
	log := logFrom(ctx).WithValues("series", f.Series)

	fn, err := splice.ForMode(cfg.Splice.Mode)
	if err != nil {
		return err
	}
	mode := string(cfg.Splice.Mode)
	if mode == "" {
		mode = string(config.SpliceAnchored)
	}

	res, err := splice.File(routesFile, fn, f, splice.OptionsFromSpec(cfg.Splice))
	metrics.RecordSplice(f.Series, mode, res, err)
	if err != nil {
		if errors.Is(err, splice.ErrAlreadySpliced) {
			return fmt.Errorf("%s: %w (pass --allow-duplicate to append anyway)", filepath.Base(routesFile), err)
		}
		return fmt.Errorf("failed to update %s: %w", filepath.Base(routesFile), err)
	}

	if res.AnchorMissing {
		log.Info("warning: entry anchor not found, import block skipped", "anchor", cfg.Splice.EntryAnchor, "file", routesFile)
	}
	if len(res.SkippedSymbols) > 0 {
		log.Info("entries already registered were left out", "symbols", res.SkippedSymbols)
	}
	if !res.Changed() {
		fmt.Printf("[%s] %s already up to date\n", f.Series, filepath.Base(routesFile))
		return nil
	}
	fmt.Printf("[%s] Updated %s\n", f.Series, filepath.Base(routesFile))
	return nil
}

// watchAndRegenerate re-runs generation, never splicing, whenever the
// config or a template override changes.
func watchAndRegenerate(ctx context.Context, cfg *config.Spec, cfgPath, name string, startPhase int, opts GenerateOptions) error {
	files := cfg.TemplateFiles()
	if cfgPath != "" {
		files = append(files, cfgPath)
	}
	if len(files) == 0 {
		return errors.New("--watch needs a config file or template overrides to watch")
	}

	log := logFrom(ctx)
	w := watch.New(files, func(ctx context.Context) error {
		cfg, _, err := loadConfig(cfgPath)
		if err != nil {
			return err
		}
		applyGenerateFlags(cfg, opts)
		_, err = generateOnce(ctx, cfg, name, startPhase, opts)
		return err
	}, watch.WithLogger(log))

	fmt.Println("Watching for changes (Ctrl+C to stop)...")
	return runWatcher(ctx, w)
}

func fragmentContent(res *artifact.Result, kind artifact.Kind) []byte {
	for _, a := range res.Artifacts {
		if a.Kind == kind {
			return a.Content
		}
	}
	return nil
}
