package query

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ptc-travel/backoffice/internal/application/ports"
	"github.com/ptc-travel/backoffice/pkg/logger"
)

const (
	defaultNamespace = "bo:q:"
	defaultTTL       = 60 * time.Second
	versionMarker    = "~v:"
	versionTTLFactor = 10
)

// Client cache de lecturas compartido por todo el proceso (o entre instancias, con Redis).
// Las lecturas se guardan por Key y versión; las escrituras invalidan por prefijo o por
// clave exacta avanzando la versión. Los errores nunca se cachean.
type Client struct {
	store     ports.KVStore
	ttl       time.Duration
	namespace string
	metrics   ports.Metrics
	log       *logger.Logger
	inflight  *InFlight
}

// Option configura el Client.
type Option func(*Client)

// WithTTL fija la expiración de las entradas.
func WithTTL(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithNamespace prefijo de las claves en el store.
func WithNamespace(ns string) Option {
	return func(c *Client) { c.namespace = ns }
}

// WithMetrics registra aciertos, fallos e invalidaciones.
func WithMetrics(m ports.Metrics) Option {
	return func(c *Client) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithLogger fija el logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// NewClient crea el cliente de consultas sobre el store indicado.
func NewClient(store ports.KVStore, opts ...Option) *Client {
	c := &Client{
		store:     store,
		ttl:       defaultTTL,
		namespace: defaultNamespace,
		metrics:   ports.NopMetrics{},
		log:       logger.Nop(),
		inflight:  NewInFlight(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) storeKey(k Key) string {
	return c.namespace + k.String()
}

// versionKey contador de invalidaciones de k. El marcador no coincide con ningún
// método HTTP, así DeletePrefix sobre las lecturas nunca lo borra.
func (c *Client) versionKey(k Key) string {
	return c.namespace + versionMarker + k.String()
}

// versionTTL sobrevive a cualquier lectura guardada con la versión anterior.
func (c *Client) versionTTL() time.Duration {
	return versionTTLFactor * c.ttl
}

// version sello vigente de key: contador del endpoint y, si la clave tiene
// parámetros, el de la clave exacta. Forma parte de la clave en el store, así una
// lectura que empezó antes de una invalidación guarda su resultado bajo un sello
// que ya nadie consulta.
func (c *Client) version(ctx context.Context, key Key) (string, error) {
	endpoint, err := c.counter(ctx, key.Prefix())
	if err != nil || key.IsPrefix() {
		return endpoint, err
	}
	exact, err := c.counter(ctx, key)
	if err != nil {
		return "", err
	}
	return endpoint + "." + exact, nil
}

func (c *Client) counter(ctx context.Context, k Key) (string, error) {
	raw, ok, err := c.store.Get(ctx, c.versionKey(k))
	if err != nil {
		return "", err
	}
	if !ok {
		return "0", nil
	}
	return string(raw), nil
}

// Fetch devuelve la lectura cacheada bajo key o ejecuta fn y guarda su resultado.
// Un fallo del store no impide la lectura: se registra y se va al backend sin cachear.
func Fetch[T any](ctx context.Context, c *Client, key Key, fn func(ctx context.Context) (T, error)) (T, error) {
	ver, err := c.version(ctx, key)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key.String()).Msg("cache de consultas no disponible")
		c.metrics.ObserveCacheLookup(false)
		return fn(ctx)
	}
	sk := c.storeKey(key) + "#" + ver

	if raw, ok, err := c.store.Get(ctx, sk); err != nil {
		c.log.Warn().Err(err).Str("key", sk).Msg("cache de consultas no disponible")
	} else if ok {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			c.metrics.ObserveCacheLookup(true)
			return cached, nil
		}
		c.log.Warn().Str("key", sk).Msg("entrada de cache ilegible, se descarta")
	}
	c.metrics.ObserveCacheLookup(false)

	result, err := fn(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	raw, err := json.Marshal(result)
	if err != nil {
		c.log.Warn().Err(err).Str("key", sk).Msg("no se pudo serializar la lectura")
		return result, nil
	}
	if err := c.store.Set(ctx, sk, raw, c.ttl); err != nil {
		c.log.Warn().Err(err).Str("key", sk).Msg("no se pudo guardar en cache")
	}
	return result, nil
}

// Invalidate avanza la versión de cada clave (todas las lecturas del endpoint si la
// clave es un prefijo, solo la exacta si tiene parámetros) y borra las entradas que
// quedaron huérfanas. Devuelve cuántas entradas borró.
func (c *Client) Invalidate(ctx context.Context, keys ...Key) (int, error) {
	removed := 0
	for _, k := range keys {
		if _, err := c.store.Incr(ctx, c.versionKey(k), c.versionTTL()); err != nil {
			return removed, err
		}
		prefix := c.storeKey(k)
		if !k.IsPrefix() {
			prefix += "#"
		}
		n, err := c.store.DeletePrefix(ctx, prefix)
		removed += n
		if err != nil {
			return removed, err
		}
	}
	c.metrics.ObserveInvalidation(removed)
	return removed, nil
}

// InFlight conjunto de envíos en curso compartido por las mutaciones.
func (c *Client) InFlight() *InFlight {
	return c.inflight
}
