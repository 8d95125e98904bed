package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// refreshTotal counts refresh attempts by outcome.
	// Labels: outcome (success, failure, skipped)
	refreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "monsterdex",
		Subsystem: "refresh",
		Name:      "total",
		Help:      "Total index refresh attempts by outcome",
	}, []string{"outcome"})

	// refreshDurationSeconds measures successful rebuild duration end to end,
	// including feed download and override fetch.
	refreshDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "monsterdex",
		Subsystem: "refresh",
		Name:      "duration_seconds",
		Help:      "Duration of successful index rebuilds",
		Buckets:   []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300},
	})

	// snapshotEntities tracks the entity count of the live snapshot.
	// Labels: region (all, na)
	snapshotEntities = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "monsterdex",
		Subsystem: "snapshot",
		Name:      "entities",
		Help:      "Entity count of the live snapshot by region",
	}, []string{"region"})

	// resolveTotal counts resolution attempts by region and outcome.
	// Labels: region (all, na), outcome (hit, miss)
	resolveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "monsterdex",
		Subsystem: "resolve",
		Name:      "total",
		Help:      "Total query resolutions by region and outcome",
	}, []string{"region", "outcome"})
)

// recordRefreshSuccess records a completed rebuild and the size of the
// snapshot it published.
func recordRefreshSuccess(duration time.Duration, allEntities, naEntities int) {
	refreshTotal.WithLabelValues("success").Inc()
	refreshDurationSeconds.Observe(duration.Seconds())
	snapshotEntities.WithLabelValues("all").Set(float64(allEntities))
	snapshotEntities.WithLabelValues("na").Set(float64(naEntities))
}

// recordRefreshFailure records an aborted rebuild
func recordRefreshFailure() {
	refreshTotal.WithLabelValues("failure").Inc()
}

// recordRefreshSkipped records a refresh dropped because one was running
func recordRefreshSkipped() {
	refreshTotal.WithLabelValues("skipped").Inc()
}

// recordResolve records one resolution attempt
func recordResolve(region string, hit bool) {
	outcome := "hit"
	if !hit {
		outcome = "miss"
	}
	resolveTotal.WithLabelValues(region, outcome).Inc()
}
