// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics collects Prometheus counters for a normalization run and
// writes them in the node_exporter textfile format once the run ends.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pdiddy/imgnorm/pkg/types"
)

const (
	ResultProcessed = "processed"
	ResultSkipped   = "skipped"
	ResultFailed    = "failed"
)

// Metrics bundles the collectors for one run on a dedicated registry.
type Metrics struct {
	Registry          *prometheus.Registry
	FilesTotal        *prometheus.CounterVec
	ErrorsTotal       *prometheus.CounterVec
	NormalizeDuration prometheus.Histogram
	LastRun           prometheus.Gauge
}

// New constructs and registers all collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	files := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "imgnorm_files_total",
			Help: "Images seen during the run, by result.",
		},
		[]string{"result"},
	)
	errorsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "imgnorm_errors_total",
			Help: "Images that failed normalization, by error kind.",
		},
		[]string{"kind"},
	)
	duration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "imgnorm_normalize_duration_seconds",
			Help:    "Time spent normalizing a single image.",
			Buckets: prometheus.DefBuckets,
		},
	)
	lastRun := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "imgnorm_last_run_timestamp_seconds",
			Help: "Unix time at which the last run finished.",
		},
	)

	registry.MustRegister(files, errorsTotal, duration, lastRun)

	return &Metrics{
		Registry:          registry,
		FilesTotal:        files,
		ErrorsTotal:       errorsTotal,
		NormalizeDuration: duration,
		LastRun:           lastRun,
	}
}

// IncSkipped counts a file that already passed the gate.
func (m *Metrics) IncSkipped() {
	if m == nil {
		return
	}
	m.FilesTotal.WithLabelValues(ResultSkipped).Inc()
}

// IncProcessed counts a normalized file and records how long it took.
func (m *Metrics) IncProcessed(d time.Duration) {
	if m == nil {
		return
	}
	m.FilesTotal.WithLabelValues(ResultProcessed).Inc()
	m.NormalizeDuration.Observe(d.Seconds())
}

// IncFailed counts a failed file under its error kind.
func (m *Metrics) IncFailed(kind types.ErrorKind) {
	if m == nil {
		return
	}
	m.FilesTotal.WithLabelValues(ResultFailed).Inc()
	m.ErrorsTotal.WithLabelValues(string(kind)).Inc()
}

// MarkFinished stamps the completion time of the run.
func (m *Metrics) MarkFinished(t time.Time) {
	if m == nil {
		return
	}
	m.LastRun.Set(float64(t.Unix()))
}

// WriteTextfile writes every collector to path. The file is written
// atomically, so a collector reading the directory never sees a partial
// file.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
