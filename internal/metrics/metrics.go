package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	FetchRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "nitterlens_fetch_runs_total",
		Help: "Total profile fetch attempts",
	})
	FetchFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "nitterlens_fetch_failures_total",
		Help: "Total profile fetches that failed to render a timeline",
	})
	FetchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "nitterlens_fetch_duration_seconds",
		Help:    "Profile fetch duration in seconds",
		Buckets: prometheus.DefBuckets,
	})
	ItemsScraped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "nitterlens_items_scraped_total",
		Help: "Total timeline items kept after extraction",
	})
	ItemsSkipped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nitterlens_items_skipped_total",
		Help: "Total timeline items skipped during extraction",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(FetchRuns, FetchFailures, FetchDuration, ItemsScraped, ItemsSkipped)
}

// ObserveFetchDuration records the duration of a fetch that started at start.
func ObserveFetchDuration(start time.Time) {
	FetchDuration.Observe(time.Since(start).Seconds())
}

// AddSkipped adds n to the skip counter for a reason.
func AddSkipped(reason string, n int) {
	ItemsSkipped.WithLabelValues(reason).Add(float64(n))
}
