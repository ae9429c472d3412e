// Package metrics defines and registers the custom Prometheus metrics for the
// genset monitoring API. It is the single source of truth for metric names,
// labels, and help strings.
//
// All metrics register themselves with the default registry at package init
// via promauto; importing the package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "genset"

// ReadingsIngestedTotal counts telemetry samples that were persisted.
// Labels:
//   - station: the reporting station code (e.g. "GS-01")
//   - status: the derived genset status ("Online", "Warning", "Offline")
var ReadingsIngestedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "readings_ingested_total",
		Help:      "Total number of telemetry readings successfully recorded.",
	},
	[]string{"station", "status"},
)

// IngestErrorsTotal counts samples that failed processing.
// Label:
//   - reason: short failure description (e.g. "unknown_station", "insert_failed")
var IngestErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingest_errors_total",
		Help:      "Total number of telemetry readings that failed processing.",
	},
	[]string{"reason"},
)

// IngestDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped), "miss" (new sample), or "error"
var IngestDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingest_dedup_total",
		Help:      "Total number of ingest deduplication checks, labelled by result.",
	},
	[]string{"result"},
)

// IngestQueueDepth tracks the number of samples waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var IngestQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ingest_queue_depth",
		Help:      "Current number of readings pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// IngestDuration measures how long a single sample takes from dequeue to
// persistence.
// Label:
//   - status: the derived genset status, or "error" on failure
var IngestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ingest_duration_seconds",
		Help:      "Duration of reading processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"status"},
)

// SessionsOpenedTotal counts login outcomes.
// Label:
//   - result: "ok", "rejected" (bad credentials or unverified), or "error"
var SessionsOpenedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_opened_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)
