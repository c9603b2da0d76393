package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rakuda/seriesgen/internal/artifact"
	"github.com/rakuda/seriesgen/internal/splice"
)

// Registry holds every seriesgen collector.
var Registry = prometheus.NewRegistry()

var (
	// Run metrics
	runsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seriesgen",
			Subsystem: "run",
			Name:      "total",
			Help:      "Total number of generation runs by result",
		},
		[]string{"series", "result"},
	)

	runDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "seriesgen",
			Subsystem: "run",
			Name:      "duration_seconds",
			Help:      "Duration of a generation run in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~2s
		},
		[]string{"series"},
	)

	identifiersGenerated = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "seriesgen",
			Subsystem: "series",
			Name:      "identifiers",
			Help:      "Number of identifiers in the last plan of a series",
		},
		[]string{"series"},
	)

	// Artifact metrics
	artifactsWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seriesgen",
			Subsystem: "artifact",
			Name:      "written_total",
			Help:      "Total number of artifacts written by kind",
		},
		[]string{"series", "kind"},
	)

	artifactBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seriesgen",
			Subsystem: "artifact",
			Name:      "bytes_total",
			Help:      "Total bytes of artifact content written by kind",
		},
		[]string{"series", "kind"},
	)

	// Splice metrics
	spliceTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seriesgen",
			Subsystem: "splice",
			Name:      "total",
			Help:      "Total number of aggregator splices by mode and result",
		},
		[]string{"series", "mode", "result"},
	)
)

func init() {
	Registry.MustRegister(
		runsTotal,
		runDuration,
		identifiersGenerated,
		artifactsWritten,
		artifactBytes,
		spliceTotal,
	)
}

// Run results.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Splice results.
const (
	SpliceChanged       = "changed"
	SpliceUnchanged     = "unchanged"
	SpliceAnchorMissing = "anchor_missing"
	SpliceError         = "error"
)

// RecordRun records the outcome and duration of a run.
func RecordRun(series string, duration time.Duration, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	runsTotal.WithLabelValues(series, result).Inc()
	runDuration.WithLabelValues(series).Observe(duration.Seconds())
}

// RecordIdentifiers records the plan size of a series.
func RecordIdentifiers(series string, n int) {
	identifiersGenerated.WithLabelValues(series).Set(float64(n))
}

// RecordArtifact counts one written artifact.
func RecordArtifact(series string, a artifact.Artifact) {
	kind := string(a.Kind)
	artifactsWritten.WithLabelValues(series, kind).Inc()
	artifactBytes.WithLabelValues(series, kind).Add(float64(len(a.Content)))
}

// ArtifactObserver returns a callback for artifact.WithObserver.
func ArtifactObserver(series string) func(artifact.Artifact) {
	return func(a artifact.Artifact) {
		RecordArtifact(series, a)
	}
}

// RecordSplice records the outcome of an aggregator splice.
func RecordSplice(series, mode string, res *splice.Result, err error) {
	spliceTotal.WithLabelValues(series, mode, spliceResult(res, err)).Inc()
}

func spliceResult(res *splice.Result, err error) string {
	switch {
	case err != nil:
		return SpliceError
	case res == nil:
		return SpliceUnchanged
	case res.AnchorMissing:
		return SpliceAnchorMissing
	case !res.Changed():
		return SpliceUnchanged
	default:
		return SpliceChanged
	}
}

// WriteTextfile writes the registry in the text exposition format. The file
// is replaced atomically.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
