// Package metrics holds the Prometheus collectors shared by the generator
// and the preview server. They register with the default registry and are
// exposed by the server's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters
var (
	FilesGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eartone_files_generated_total",
		Help: "Total recordings written by kind (note, harmonic, melodic_ascending, melodic_descending)",
	}, []string{"kind"})
	SkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eartone_skipped_total",
		Help: "Recordings skipped by reason (out_of_range, exists)",
	}, []string{"reason"})
	BytesWrittenTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eartone_bytes_written_total",
		Help: "Total WAV bytes written to the output store",
	})
	HTTPRendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eartone_http_renders_total",
		Help: "Recordings rendered by the preview server by route and status code",
	}, []string{"route", "code"})
)

// Histograms
var (
	RenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "eartone_render_duration_ms",
		Help:    "Time to synthesize and encode one recording in milliseconds by kind",
		Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000},
	}, []string{"kind"})
)

// Skip reasons.
const (
	ReasonOutOfRange = "out_of_range"
	ReasonExists     = "exists"
)
