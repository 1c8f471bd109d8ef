package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ptc-travel/backoffice/internal/application/ports"
)

var _ ports.Metrics = (*Prometheus)(nil)

// Prometheus colectores del BFF: peticiones HTTP entrantes, llamadas al backend,
// aciertos del cache de consultas, invalidaciones y escrituras.
type Prometheus struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	backendCalls    *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec
	cacheLookups    *prometheus.CounterVec
	invalidatedKeys prometheus.Counter
	mutations       *prometheus.CounterVec
}

// New registra los colectores en un registro propio (más los del runtime de Go).
func New(namespace string) *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "http_requests_total", Help: "Peticiones HTTP atendidas por el BFF.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds", Help: "Duración de las peticiones HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		backendCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "backend_calls_total", Help: "Llamadas a la API de la agencia; status 0 = error de red.",
		}, []string{"method", "endpoint", "status"}),
		backendDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "backend_call_duration_seconds", Help: "Duración de las llamadas al backend.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "query_cache_lookups_total", Help: "Lecturas del cache de consultas.",
		}, []string{"result"}),
		invalidatedKeys: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "query_cache_invalidated_total", Help: "Entradas eliminadas por invalidación.",
		}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "mutations_total", Help: "Escrituras por operación y resultado.",
		}, []string{"mutation", "result"}),
	}
	p.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.httpRequests, p.httpDuration,
		p.backendCalls, p.backendDuration,
		p.cacheLookups, p.invalidatedKeys, p.mutations,
	)
	return p
}

func (p *Prometheus) ObserveBackendCall(method, endpoint string, status int, elapsed time.Duration) {
	p.backendCalls.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	p.backendDuration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

func (p *Prometheus) ObserveCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	p.cacheLookups.WithLabelValues(result).Inc()
}

func (p *Prometheus) ObserveInvalidation(removed int) {
	if removed > 0 {
		p.invalidatedKeys.Add(float64(removed))
	}
}

func (p *Prometheus) ObserveMutation(name string, ok bool) {
	result := "error"
	if ok {
		result = "ok"
	}
	p.mutations.WithLabelValues(name, result).Inc()
}

// ObserveHTTP registra una petición entrante. route es la plantilla de la ruta, no el path.
func (p *Prometheus) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	p.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler expone el registro en formato Prometheus.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Registry para tests y colectores adicionales.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}
