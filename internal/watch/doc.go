// Package watch re-runs generation when configuration or template files
// change on disk.
package watch
