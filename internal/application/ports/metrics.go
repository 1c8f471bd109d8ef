package ports

import "time"

// Metrics puerto de observabilidad del cliente de consultas y del gateway al backend.
type Metrics interface {
	ObserveBackendCall(method, endpoint string, status int, elapsed time.Duration)
	ObserveCacheLookup(hit bool)
	ObserveInvalidation(removed int)
	ObserveMutation(name string, ok bool)
}

// NopMetrics descarta todas las observaciones.
type NopMetrics struct{}

func (NopMetrics) ObserveBackendCall(string, string, int, time.Duration) {}
func (NopMetrics) ObserveCacheLookup(bool)                               {}
func (NopMetrics) ObserveInvalidation(int)                               {}
func (NopMetrics) ObserveMutation(string, bool)                          {}
