// Package metrics exposes Prometheus counters for analysis runs.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

var (
	fetchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tariffwatch",
		Name:      "fetch_requests_total",
		Help:      "News searches issued, by source, language and outcome",
	}, []string{"source", "language", "outcome"})

	articlesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tariffwatch",
		Name:      "articles_fetched_total",
		Help:      "Articles returned by news searches",
	}, []string{"language"})

	matchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tariffwatch",
		Name:      "matches_total",
		Help:      "Client matches produced, by impact category",
	}, []string{"impact"})

	runsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tariffwatch",
		Name:      "runs_total",
		Help:      "Completed analysis runs",
	})

	runDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "tariffwatch",
		Name:      "run_duration_seconds",
		Help:      "Wall time of a full analysis run",
		Buckets:   prometheus.ExponentialBuckets(0.5, 2, 8),
	})
)

func init() {
	prometheus.MustRegister(fetchTotal, articlesTotal, matchesTotal, runsTotal, runDuration)
}

func ObserveFetch(source, language string, articles int, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeFailed
	}
	fetchTotal.WithLabelValues(source, language, outcome).Inc()
	articlesTotal.WithLabelValues(language).Add(float64(articles))
}

func ObserveMatch(impact string) {
	matchesTotal.WithLabelValues(impact).Inc()
}

func ObserveRun(elapsed time.Duration) {
	runsTotal.Inc()
	runDuration.Observe(elapsed.Seconds())
}

func Handler() http.Handler {
	return promhttp.Handler()
}
