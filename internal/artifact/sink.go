package artifact

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sync"

	"github.com/go-logr/logr"

	"github.com/rakuda/seriesgen/internal/platform/s3"
	"github.com/rakuda/seriesgen/internal/util/retry"
)

// Sink stores artifacts.
type Sink interface {
	Put(ctx context.Context, a Artifact) error
}

// FileSink writes artifacts below one directory per root, creating parent
// directories as needed and overwriting existing files.
type FileSink struct {
	Roots map[Root]string
}

// Put implements Sink.
func (s *FileSink) Put(_ context.Context, a Artifact) error {
	dir, ok := s.Roots[a.Root]
	if !ok {
		return fmt.Errorf("no directory configured for root %q", a.Root)
	}
	target := filepath.Join(dir, filepath.FromSlash(a.Path))

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", target, err)
	}
	if err := os.WriteFile(target, a.Content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}

// ObjectStore is the subset of the S3 client used by S3Sink.
type ObjectStore interface {
	EnsureBucket(ctx context.Context, bucket string) error
	PutObject(ctx context.Context, bucket, key, contentType string, data []byte) error
}

// S3Sink uploads artifacts to <prefix>/<root>/<path> in a bucket. The bucket
// is created on the first Put if missing. Uploads are retried with backoff
// unless the failure is final.
type S3Sink struct {
	store     ObjectStore
	bucket    string
	prefix    string
	retryOpts []retry.Option
	log       logr.Logger

	ensureOnce sync.Once
	ensureErr  error
}

// NewS3Sink creates an S3Sink.
func NewS3Sink(store ObjectStore, bucket, prefix string, log logr.Logger, retryOpts ...retry.Option) *S3Sink {
	return &S3Sink{store: store, bucket: bucket, prefix: prefix, log: log, retryOpts: retryOpts}
}

// Key returns the object key of an artifact.
func (s *S3Sink) Key(a Artifact) string {
	return path.Join(s.prefix, string(a.Root), a.Path)
}

// Put implements Sink.
func (s *S3Sink) Put(ctx context.Context, a Artifact) error {
	s.ensureOnce.Do(func() {
		s.ensureErr = s.store.EnsureBucket(ctx, s.bucket)
	})
	if s.ensureErr != nil {
		return s.ensureErr
	}

	key := s.Key(a)
	attempt := 0
	return retry.Do(ctx, func(ctx context.Context) error {
		attempt++
		err := s.store.PutObject(ctx, s.bucket, key, a.contentType(), a.Content)
		if err == nil {
			return nil
		}
		if !s3.IsRetryable(err) {
			return retry.Permanent(err)
		}
		s.log.V(1).Info("upload failed, retrying", "key", key, "attempt", attempt, "error", err.Error())
		return err
	}, s.retryOpts...)
}

// MultiSink writes to every sink in order and stops at the first error.
type MultiSink []Sink

// Put implements Sink.
func (m MultiSink) Put(ctx context.Context, a Artifact) error {
	for _, s := range m {
		if err := s.Put(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

// MemorySink keeps artifacts in memory, in write order. Dry runs use it.
type MemorySink struct {
	mu        sync.Mutex
	artifacts []Artifact
}

// Put implements Sink.
func (m *MemorySink) Put(_ context.Context, a Artifact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.artifacts = append(m.artifacts, a)
	return nil
}

// Artifacts returns the recorded artifacts.
func (m *MemorySink) Artifacts() []Artifact {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Artifact(nil), m.artifacts...)
}
