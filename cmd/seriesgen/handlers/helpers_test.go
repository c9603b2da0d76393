package handlers

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rakuda/seriesgen/internal/config"
)

const testConfig = `prefix: ebay
paths:
  routes_dir: routes
  pages_dir: pages
  output_dir: out
  routes_file: routes/ebay-routes.ts
categories:
  - name: listing
    noun: engine
    tabs:
      - {key: dashboard, label: Dashboard, path: dashboard/summary}
      - {key: listings, label: Listings, path: resources}
  - name: order
    noun: routing
    tabs:
      - {key: dashboard, label: Dashboard, path: dashboard/summary}
      - {key: orders, label: Orders, path: resources}
series:
  - name: demo
    adjectives: [alpha, beta]
  - name: solo
    layout: role
    adjectives: [gamma]
`

const testAggregator = `import { Express } from 'express';

export function registerEbayRoutes(app: Express) {
  app.use('/api/existing', existingRouter);
}
`

// captureOutput captures stdout during function execution.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

// setupProject writes the test config and aggregator into a temp dir and
// returns the config path.
func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	cfgPath := filepath.Join(dir, config.DefaultConfigFilename)
	require.NoError(t, os.WriteFile(cfgPath, []byte(testConfig), 0o644))

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "routes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "routes", "ebay-routes.ts"), []byte(testAggregator), 0o644))

	return cfgPath
}

// stubEnvironment disables .env loading and prompts for the test.
func stubEnvironment(t *testing.T) {
	t.Helper()
	origEnv, origInteractive := loadEnv, isInteractive
	loadEnv = func() (config.Env, error) { return config.Env{}, nil }
	isInteractive = func() bool { return false }
	t.Cleanup(func() {
		loadEnv, isInteractive = origEnv, origInteractive
	})
}

type putRecord struct {
	bucket, key, contentType string
	size                     int
}

type fakeStore struct {
	mu      sync.Mutex
	ensured []string
	puts    []putRecord
}

func (f *fakeStore) EnsureBucket(_ context.Context, bucket string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ensured = append(f.ensured, bucket)
	return nil
}

func (f *fakeStore) PutObject(_ context.Context, bucket, key, contentType string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, putRecord{bucket: bucket, key: key, contentType: contentType, size: len(data)})
	return nil
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
