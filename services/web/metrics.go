package web

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	prometheusWebExplorer prometheus.Counter
	prometheusWebAPIName  prometheus.Counter
	prometheusWebErrors   prometheus.Counter
)

var (
	prometheusMetricsInitOnce sync.Once
)

func initPrometheusMetrics() {
	prometheusMetricsInitOnce.Do(_initPrometheusMetrics)
}

func _initPrometheusMetrics() {
	prometheusWebExplorer = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "nomen",
			Subsystem: "web",
			Name:      "explorer",
			Help:      "Number of explorer requests",
		},
	)

	prometheusWebAPIName = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "nomen",
			Subsystem: "web",
			Name:      "api_name",
			Help:      "Number of name resolution requests",
		},
	)

	prometheusWebErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "nomen",
			Subsystem: "web",
			Name:      "errors",
			Help:      "Number of requests answered with an error",
		},
	)
}
