package astar

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const tracerName = "github.com/pdrpinto/gridastar"

var (
	// searchTotal counts searches by outcome
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridastar_search_total",
		Help: "Total grid searches by result",
	}, []string{"result"})

	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridastar_search_duration_seconds",
		Help:    "Grid search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16), // 10us to ~330ms
	})

	searchExpanded = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridastar_search_expanded_nodes",
		Help:    "Nodes closed per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 11),
	})

	searchFaults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridastar_search_faults_total",
		Help: "Total search faults by kind",
	}, []string{"kind"})
)

func observeSearch(result searchResult, err error, duration time.Duration, stats Stats) {
	searchTotal.WithLabelValues(string(result)).Inc()
	if err != nil {
		searchFaults.WithLabelValues(FaultKind(err)).Inc()
	}
	if result == resultRejected {
		return
	}
	searchDuration.Observe(duration.Seconds())
	searchExpanded.Observe(float64(stats.Expanded))
}
