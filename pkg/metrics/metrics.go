package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recommendation outcomes.
const (
	OutcomeMatched  = "matched"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	RecommendDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "moviematch",
			Name:      "recommend_duration_seconds",
			Help:      "Time to fetch the catalog and rank one content-based recommendation request",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	RecommendTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "moviematch",
			Name:      "recommend_total",
			Help:      "Content-based recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	CatalogEntries = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "moviematch",
			Name:      "catalog_entries",
			Help:      "Number of entries in the most recently ranked catalog snapshot",
		},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "moviematch",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

func init() {
	prometheus.MustRegister(RecommendDuration)
	prometheus.MustRegister(RecommendTotal)
	prometheus.MustRegister(CatalogEntries)
	prometheus.MustRegister(httpRequestDuration)
}

// Middleware records request duration by route pattern.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequestDuration.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
