package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptc-travel/backoffice/internal/infrastructure/metrics"
)

func scrape(t *testing.T, p *metrics.Prometheus) string {
	t.Helper()
	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestPrometheus_ExponeObservaciones(t *testing.T) {
	p := metrics.New("ptc")

	p.ObserveBackendCall("GET", "/users/paginados", 200, 30*time.Millisecond)
	p.ObserveBackendCall("GET", "/users/paginados", 0, time.Second)
	p.ObserveCacheLookup(true)
	p.ObserveCacheLookup(false)
	p.ObserveCacheLookup(false)
	p.ObserveInvalidation(3)
	p.ObserveInvalidation(0)
	p.ObserveMutation("create-customer", true)
	p.ObserveHTTP("GET", "/api/users", 200, 10*time.Millisecond)

	out := scrape(t, p)
	assert.Contains(t, out, `ptc_backend_calls_total{endpoint="/users/paginados",method="GET",status="200"} 1`)
	assert.Contains(t, out, `ptc_backend_calls_total{endpoint="/users/paginados",method="GET",status="0"} 1`)
	assert.Contains(t, out, `ptc_query_cache_lookups_total{result="hit"} 1`)
	assert.Contains(t, out, `ptc_query_cache_lookups_total{result="miss"} 2`)
	assert.Contains(t, out, `ptc_query_cache_invalidated_total 3`)
	assert.Contains(t, out, `ptc_mutations_total{mutation="create-customer",result="ok"} 1`)
	assert.Contains(t, out, `ptc_http_requests_total{method="GET",route="/api/users",status="200"} 1`)
	assert.Contains(t, out, "go_goroutines")
}

func TestPrometheus_RegistrosIndependientes(t *testing.T) {
	a := metrics.New("ptc")
	b := metrics.New("ptc")
	a.ObserveMutation("create-user", false)

	assert.Contains(t, scrape(t, a), `ptc_mutations_total{mutation="create-user",result="error"} 1`)
	assert.NotContains(t, scrape(t, b), `mutation="create-user"`)
}
