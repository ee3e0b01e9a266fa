package routing

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records one observation per search run.
type Metrics struct {
	searches   *prometheus.CounterVec
	expansions *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
}

// NewMetrics registers the search metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		// Labels: algorithm, found (true, false)
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gridpath",
			Name:      "searches_total",
			Help:      "Total number of searches by algorithm and outcome",
		}, []string{"algorithm", "found"}),
		expansions: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gridpath",
			Name:      "search_expansions",
			Help:      "Expansions performed per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"algorithm"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gridpath",
			Name:      "search_duration_seconds",
			Help:      "Runtime of a single search in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 12),
		}, []string{"algorithm"}),
	}
}

func (m *Metrics) observe(route Route) {
	if m == nil {
		return
	}
	algorithm := route.Algorithm.String()
	m.searches.WithLabelValues(algorithm, strconv.FormatBool(route.Exists)).Inc()
	m.expansions.WithLabelValues(algorithm).Observe(float64(route.Expansions))
	m.duration.WithLabelValues(algorithm).Observe(route.Duration.Seconds())
}
