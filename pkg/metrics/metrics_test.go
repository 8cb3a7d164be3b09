package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddlewareRecordsRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware())
	router.GET("/movies/id/:imdb_id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, target := range []string{"/movies/id/tt1", "/movies/id/tt2", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	// Two distinct path labels: the route pattern and "unmatched".
	if got := testutil.CollectAndCount(httpRequestDuration); got != 2 {
		t.Errorf("series = %d, want 2", got)
	}
}

func TestRecommendTotalByOutcome(t *testing.T) {
	before := testutil.ToFloat64(RecommendTotal.WithLabelValues(OutcomeNotFound))
	RecommendTotal.WithLabelValues(OutcomeNotFound).Inc()
	if got := testutil.ToFloat64(RecommendTotal.WithLabelValues(OutcomeNotFound)); got != before+1 {
		t.Errorf("not_found = %v, want %v", got, before+1)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	CatalogEntries.Set(3)
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if !strings.Contains(w.Body.String(), "moviematch_catalog_entries 3") {
		t.Error("exposition should include moviematch_catalog_entries")
	}
}
