package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveFetch(t *testing.T) {
	okBefore := testutil.ToFloat64(fetchTotal.WithLabelValues("NewsAPI", "ja", OutcomeOK))
	failedBefore := testutil.ToFloat64(fetchTotal.WithLabelValues("NewsAPI", "ja", OutcomeFailed))
	articlesBefore := testutil.ToFloat64(articlesTotal.WithLabelValues("ja"))

	ObserveFetch("NewsAPI", "ja", 7, nil)
	ObserveFetch("NewsAPI", "ja", 0, errors.New("status 500"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(fetchTotal.WithLabelValues("NewsAPI", "ja", OutcomeOK)))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(fetchTotal.WithLabelValues("NewsAPI", "ja", OutcomeFailed)))
	assert.Equal(t, articlesBefore+7, testutil.ToFloat64(articlesTotal.WithLabelValues("ja")))
}

func TestObserveMatchAndRun(t *testing.T) {
	matchesBefore := testutil.ToFloat64(matchesTotal.WithLabelValues("StockImpact"))
	runsBefore := testutil.ToFloat64(runsTotal)

	ObserveMatch("StockImpact")
	ObserveRun(2 * time.Second)

	assert.Equal(t, matchesBefore+1, testutil.ToFloat64(matchesTotal.WithLabelValues("StockImpact")))
	assert.Equal(t, runsBefore+1, testutil.ToFloat64(runsTotal))
}

func TestHandlerExposesMetrics(t *testing.T) {
	ObserveRun(time.Second)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, strings.Contains(w.Body.String(), "tariffwatch_runs_total"))
}
