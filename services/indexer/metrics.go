package indexer

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	prometheusIndexerBlocks            prometheus.Counter
	prometheusIndexerAnchors           prometheus.Counter
	prometheusIndexerMalformedPayloads prometheus.Counter
	prometheusIndexerCreateEvents      prometheus.Counter
	prometheusIndexerRecordsEvents     prometheus.Counter
	prometheusIndexerDeferredEvents    prometheus.Counter
	prometheusIndexerInvalidEvents     prometheus.Counter
	prometheusIndexerTickErrors        prometheus.Counter
)

var (
	prometheusMetricsInitOnce sync.Once
)

func initPrometheusMetrics() {
	prometheusMetricsInitOnce.Do(_initPrometheusMetrics)
}

func _initPrometheusMetrics() {
	prometheusIndexerBlocks = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "nomen",
			Subsystem: "indexer",
			Name:      "blocks",
			Help:      "Number of blocks scanned",
		},
	)

	prometheusIndexerAnchors = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "nomen",
			Subsystem: "indexer",
			Name:      "anchors",
			Help:      "Number of name anchors stored",
		},
	)

	prometheusIndexerMalformedPayloads = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "nomen",
			Subsystem: "indexer",
			Name:      "malformed_payloads",
			Help:      "Number of malformed anchor payloads skipped",
		},
	)

	prometheusIndexerCreateEvents = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "nomen",
			Subsystem: "indexer",
			Name:      "create_events",
			Help:      "Number of create events stored",
		},
	)

	prometheusIndexerRecordsEvents = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "nomen",
			Subsystem: "indexer",
			Name:      "records_events",
			Help:      "Number of records events stored",
		},
	)

	prometheusIndexerDeferredEvents = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "nomen",
			Subsystem: "indexer",
			Name:      "deferred_events",
			Help:      "Number of create events deferred for a missing anchor",
		},
	)

	prometheusIndexerInvalidEvents = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "nomen",
			Subsystem: "indexer",
			Name:      "invalid_events",
			Help:      "Number of events rejected by validation",
		},
	)

	prometheusIndexerTickErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "nomen",
			Subsystem: "indexer",
			Name:      "tick_errors",
			Help:      "Number of indexer ticks aborted by errors",
		},
	)
}
