package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	QueriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tzlookup_queries_total",
		Help: "Total number of timezone lookup queries by procedure",
	}, []string{"procedure"})
	QueryDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tzlookup_query_duration_ms",
		Help:    "Query duration in milliseconds by procedure",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50},
	}, []string{"procedure"})
	MissesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tzlookup_misses_total",
		Help: "Total number of queries that resolved to no timezone",
	}, []string{"procedure"})
	ShortcutUniqueTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tzlookup_shortcut_unique_total",
		Help: "Total number of queries resolved directly from a Unique shortcut cell",
	})
	ShortcutCandidateTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tzlookup_shortcut_candidate_total",
		Help: "Total number of queries that fell through to a Candidate cell's polygon list",
	})
	CandidatesTestedTotal = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tzlookup_candidates_tested",
		Help:    "Number of candidate polygons walked before a Candidate-cell query resolved",
		Buckets: []float64{1, 2, 3, 5, 8, 13, 21, 34},
	})
	OutOfBoundsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tzlookup_out_of_bounds_total",
		Help: "Total number of queries rejected for out-of-range coordinates",
	})
	RedisHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tzlookup_redis_hits_total",
		Help: "Total redis response cache hits",
	})
	RedisMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tzlookup_redis_misses_total",
		Help: "Total redis response cache misses",
	})
	LoaderMode = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tzlookup_loader_mode",
		Help: "1 if the engine was constructed in the given loader mode, 0 otherwise",
	}, []string{"mode"})
)

func init() {
	prometheus.MustRegister(QueriesTotal)
	prometheus.MustRegister(QueryDurationMs)
	prometheus.MustRegister(MissesTotal)
	prometheus.MustRegister(ShortcutUniqueTotal)
	prometheus.MustRegister(ShortcutCandidateTotal)
	prometheus.MustRegister(CandidatesTestedTotal)
	prometheus.MustRegister(OutOfBoundsTotal)
	prometheus.MustRegister(RedisHitsTotal)
	prometheus.MustRegister(RedisMissesTotal)
	prometheus.MustRegister(LoaderMode)
}

// Handler 暴露已注册指标供 Prometheus 抓取，挂载在 HTTP 前端的 /metrics 路径。
func Handler() http.Handler { return promhttp.Handler() }
