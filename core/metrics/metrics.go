package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CatalogQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "climastore_catalog_queries_total",
			Help: "Catalog queries served, by surface (rest, graphql, search).",
		},
		[]string{"surface"},
	)

	CatalogQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "climastore_catalog_query_duration_seconds",
			Help:    "Catalog query latency including the upstream fetch.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"surface"},
	)

	NormalizeRaw = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "climastore_normalize_raw_total",
			Help: "Attribute values that did not match their extraction rule.",
		},
		[]string{"field"},
	)

	RefDataCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "climastore_refdata_cache_total",
			Help: "Reference data lookups by result (local, redis, db).",
		},
		[]string{"result"},
	)

	CronRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "climastore_cron_runs_total",
			Help: "Scheduled job runs by job and result (ok, error).",
		},
		[]string{"job", "result"},
	)
)

func init() {
	prometheus.MustRegister(CatalogQueries, CatalogQueryDuration, NormalizeRaw, RefDataCache, CronRuns)
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveQuery records one catalog query served by surface.
func ObserveQuery(surface string, start time.Time) {
	CatalogQueries.WithLabelValues(surface).Inc()
	CatalogQueryDuration.WithLabelValues(surface).Observe(time.Since(start).Seconds())
}
