package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound                = errors.New("recurso no encontrado")
	ErrInvalidInput            = errors.New("entrada inválida")
	ErrUnauthorized            = errors.New("no autorizado")
	ErrForbidden               = errors.New("acceso denegado")
	ErrNoTransition            = errors.New("la liquidación ya está en su estado final")
	ErrStatusChanged           = errors.New("el estado de la liquidación cambió, recargue el detalle")
	ErrStatusContractUndefined = errors.New("el backend no expone el cambio de estado de liquidaciones")
	ErrSubmissionInProgress    = errors.New("ya hay un envío en curso para esta operación")
	ErrInvalidCredentials      = errors.New("credenciales inválidas")
)

// FetchErrorKind clasifica los fallos al hablar con el backend.
type FetchErrorKind int

const (
	// FetchNetwork sin respuesta: conexión rechazada, timeout, DNS.
	FetchNetwork FetchErrorKind = iota + 1
	// FetchBackend el backend respondió con un estado de error.
	FetchBackend
	// FetchUnauthenticated el backend respondió 401.
	FetchUnauthenticated
)

func (k FetchErrorKind) String() string {
	switch k {
	case FetchNetwork:
		return "network"
	case FetchBackend:
		return "backend"
	case FetchUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// ErrorEnvelope cuerpo de error que devuelve el backend.
type ErrorEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
	ID         string `json:"id,omitempty"`
	Category   string `json:"category,omitempty"`
	Severity   string `json:"severity,omitempty"`
	Timestamp  string `json:"timestamp,omitempty"`
	Path       string `json:"path,omitempty"`
	Method     string `json:"method,omitempty"`
}

// FetchError error tipado de una llamada al backend.
type FetchError struct {
	Kind     FetchErrorKind
	Status   int
	Method   string
	Path     string
	Envelope *ErrorEnvelope
	Err      error
}

func (e *FetchError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(" error")
	if e.Method != "" {
		fmt.Fprintf(&b, " %s %s", e.Method, e.Path)
	}
	if e.Status != 0 {
		fmt.Fprintf(&b, ": status %d", e.Status)
	}
	if msg := e.BackendMessage(); msg != "" {
		b.WriteString(": ")
		b.WriteString(msg)
	} else if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *FetchError) Unwrap() error { return e.Err }

// BackendMessage mensaje legible del sobre de error, si lo hay.
func (e *FetchError) BackendMessage() string {
	if e.Envelope == nil {
		return ""
	}
	if e.Envelope.Message != "" {
		return e.Envelope.Message
	}
	return e.Envelope.Error
}

// IsNotFound indica si el backend respondió 404.
func (e *FetchError) IsNotFound() bool {
	return e.Kind == FetchBackend && e.Status == 404
}

// ValidationError errores de campo de un formulario. Nunca llega al backend.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Fields acumula errores de campo durante la validación de un formulario.
type Fields map[string]string

// Add registra el primer error de un campo.
func (f Fields) Add(field, msg string) {
	if _, ok := f[field]; !ok {
		f[field] = msg
	}
}

// Err devuelve *ValidationError si hay errores, nil en caso contrario.
func (f Fields) Err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: map[string]string(f)}
}
