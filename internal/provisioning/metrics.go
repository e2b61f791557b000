package provisioning

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	provisionTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "firelift",
			Subsystem: "provisioner",
			Name:      "provision_total",
			Help:      "Total number of provisioning runs by outcome",
		},
		[]string{"outcome"},
	)

	provisionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "firelift",
			Subsystem: "provisioner",
			Name:      "provision_duration_seconds",
			Help:      "Duration of provisioning runs in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10), // 500ms to ~4m
		},
	)

	stageWarnings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "firelift",
			Subsystem: "provisioner",
			Name:      "stage_warnings_total",
			Help:      "Non-fatal best-effort stage failures by stage",
		},
		[]string{"stage"},
	)
)

func init() {
	prometheus.MustRegister(provisionTotal, provisionDuration, stageWarnings)
}

// observeRun records the metrics of one finished pipeline run.
func observeRun(start time.Time, warnings []Warning, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	provisionTotal.WithLabelValues(outcome).Inc()
	provisionDuration.Observe(time.Since(start).Seconds())
	for _, w := range warnings {
		stageWarnings.WithLabelValues(string(w.Stage)).Inc()
	}
}
