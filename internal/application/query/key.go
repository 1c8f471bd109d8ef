package query

import (
	"net/url"
	"strconv"

	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

// Key identifica una lectura cacheada: (método, endpoint, parámetros).
// Una Key sin parámetros funciona como prefijo: al invalidarla se borran
// todas las lecturas del mismo endpoint. Con parámetros, la coincidencia es exacta.
type Key struct {
	Method   string
	Endpoint string
	params   string // url-encoded, claves ordenadas
}

// NewKey construye una clave. params puede ser nil.
func NewKey(method, endpoint string, params map[string]string) Key {
	v := url.Values{}
	for k, val := range params {
		v.Set(k, val)
	}
	return Key{Method: method, Endpoint: endpoint, params: v.Encode()}
}

// ListKey clave de una página de un listado.
func ListKey(endpoint string, p entity.Pagination) Key {
	return NewKey("GET", endpoint, map[string]string{
		"page": strconv.Itoa(p.Page),
		"size": strconv.Itoa(p.Size),
	})
}

// ListPrefix clave-prefijo que cubre todas las páginas de un listado.
func ListPrefix(endpoint string) Key {
	return NewKey("GET", endpoint, nil)
}

// ResourceKey clave de una lectura por identificador (path param).
func ResourceKey(endpoint, param, value string) Key {
	return NewKey("GET", endpoint, map[string]string{param: value})
}

// Prefix clave-prefijo del mismo método y endpoint.
func (k Key) Prefix() Key {
	return Key{Method: k.Method, Endpoint: k.Endpoint}
}

// IsPrefix indica si la clave no tiene parámetros.
func (k Key) IsPrefix() bool {
	return k.params == ""
}

// String forma canónica "METHOD endpoint|params". Para una clave-prefijo termina en "|".
func (k Key) String() string {
	return k.Method + " " + k.Endpoint + "|" + k.params
}
