// Package metrics holds the Prometheus collectors of a generation run.
//
// Collectors live on a private Registry rather than the default one. A CLI
// run has no scrape endpoint, so the registry is written once to a
// node_exporter textfile when --metrics-file is given.
package metrics
