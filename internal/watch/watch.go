package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"
	"k8s.io/apimachinery/pkg/util/sets"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 300 * time.Millisecond

var errWatcherClosed = errors.New("file watcher closed")

// RunFunc performs one generation. Its error is logged and watching
// continues.
type RunFunc func(ctx context.Context) error

// Watcher calls a RunFunc after the watched files settle.
type Watcher struct {
	paths    []string
	run      RunFunc
	debounce time.Duration
	log      logr.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before a run.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithLogger sets the logger. The default discards.
func WithLogger(log logr.Logger) Option {
	return func(w *Watcher) { w.log = log }
}

// New creates a Watcher for the given files.
func New(paths []string, run RunFunc, opts ...Option) *Watcher {
	w := &Watcher{paths: paths, run: run, debounce: DefaultDebounce, log: logr.Discard()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches until ctx is cancelled. The parent directories are watched
// rather than the files so that rename-on-save editors keep triggering.
// Runs never overlap; changes during a run queue at most one more.
func (w *Watcher) Run(ctx context.Context) error {
	if len(w.paths) == 0 {
		return errors.New("no files to watch")
	}

	targets := sets.New[string]()
	dirs := sets.New[string]()
	for _, p := range w.paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		targets.Insert(abs)
		dirs.Insert(filepath.Dir(abs))
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	for _, dir := range sets.List(dirs) {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	w.log.Info("watching for changes", "files", sets.List(targets))

	trigger := make(chan struct{}, 1)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return w.events(gctx, fw, targets, trigger)
	})
	g.Go(func() error {
		return w.runner(gctx, trigger)
	})

	err = g.Wait()
	if ctx.Err() != nil {
		return nil
	}
	return err
}

func (w *Watcher) events(ctx context.Context, fw *fsnotify.Watcher, targets sets.Set[string], trigger chan<- struct{}) error {
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return errWatcherClosed
			}
			if !targets.Has(filepath.Clean(ev.Name)) || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			w.log.V(1).Info("file changed", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return errWatcherClosed
			}
			w.log.Error(err, "file watcher error")

		case <-timer.C:
			select {
			case trigger <- struct{}{}:
			default:
			}
		}
	}
}

func (w *Watcher) runner(ctx context.Context, trigger <-chan struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-trigger:
			if err := w.run(ctx); err != nil {
				w.log.Error(err, "regeneration failed")
			}
		}
	}
}
