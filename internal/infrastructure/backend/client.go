package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ptc-travel/backoffice/internal/application/ports"
	"github.com/ptc-travel/backoffice/internal/domain"
	"github.com/ptc-travel/backoffice/internal/domain/entity"
	"github.com/ptc-travel/backoffice/pkg/logger"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 4 << 20
)

// Client cliente REST del backend de la agencia. No reintenta: cada llamada se hace una sola vez
// con el contexto de la petición y el timeout del cliente.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    ports.Metrics
	log        *logger.Logger
}

// Option configura el Client.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client (tests, transporte propio).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTimeout timeout por llamada.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func WithMetrics(m ports.Metrics) Option {
	return func(c *Client) {
		if m != nil {
			c.metrics = m
		}
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l.Component("backend")
		}
	}
}

// NewClient construye el cliente. baseURL ya incluye la versión (ver config.BackendConfig.BaseURL).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		metrics:    ports.NopMetrics{},
		log:        logger.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// call describe una petición. endpoint es la plantilla (etiqueta de métricas y logs);
// path es la ruta ya resuelta.
type call struct {
	method   string
	endpoint string
	path     string
	query    url.Values
	body     any
}

func get(endpoint string, params ...string) call {
	return call{method: http.MethodGet, endpoint: endpoint, path: expand(endpoint, params...)}
}

func post(endpoint string, body any, params ...string) call {
	return call{method: http.MethodPost, endpoint: endpoint, path: expand(endpoint, params...), body: body}
}

func paged(endpoint string, p entity.Pagination) call {
	c := get(endpoint)
	c.query = url.Values{}
	c.query.Set("page", strconv.Itoa(p.Page))
	c.query.Set("size", strconv.Itoa(p.Size))
	return c
}

// expand sustituye {name} por los valores en orden (pares name, value).
func expand(endpoint string, params ...string) string {
	path := endpoint
	for i := 0; i+1 < len(params); i += 2 {
		path = strings.Replace(path, "{"+params[i]+"}", url.PathEscape(params[i+1]), 1)
	}
	return path
}

// do ejecuta la llamada y decodifica la respuesta en out (si no es nil).
// Los fallos se devuelven como *domain.FetchError.
func (c *Client) do(ctx context.Context, cl call, out any) error {
	target := c.baseURL + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}

	var reader io.Reader
	if cl.body != nil {
		payload, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("backend: serializar %s %s: %w", cl.method, cl.endpoint, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, target, reader)
	if err != nil {
		return fmt.Errorf("backend: crear request %s %s: %w", cl.method, cl.endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveBackendCall(cl.method, cl.endpoint, 0, time.Since(start))
		c.log.Warn().Err(err).Str("method", cl.method).Str("endpoint", cl.endpoint).Msg("backend no disponible")
		return &domain.FetchError{Kind: domain.FetchNetwork, Method: cl.method, Path: cl.path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	elapsed := time.Since(start)
	c.metrics.ObserveBackendCall(cl.method, cl.endpoint, resp.StatusCode, elapsed)
	if err != nil {
		return &domain.FetchError{Kind: domain.FetchNetwork, Method: cl.method, Path: cl.path, Err: fmt.Errorf("leer respuesta: %w", err)}
	}

	c.log.Debug().
		Str("method", cl.method).
		Str("endpoint", cl.endpoint).
		Int("status", resp.StatusCode).
		Dur("elapsed", elapsed).
		Msg("backend")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(cl, resp.StatusCode, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.FetchError{
			Kind: domain.FetchBackend, Status: resp.StatusCode, Method: cl.method, Path: cl.path,
			Err: fmt.Errorf("respuesta inválida: %w", err),
		}
	}
	return nil
}

// statusError convierte una respuesta no-2xx en FetchError, decodificando el sobre de error
// cuando el cuerpo lo trae.
func statusError(cl call, status int, raw []byte) error {
	kind := domain.FetchBackend
	if status == http.StatusUnauthorized {
		kind = domain.FetchUnauthenticated
	}
	fe := &domain.FetchError{Kind: kind, Status: status, Method: cl.method, Path: cl.path}

	var env domain.ErrorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && (env.Message != "" || env.Error != "") {
		if env.StatusCode == 0 {
			env.StatusCode = status
		}
		fe.Envelope = &env
	} else {
		fe.Err = errors.New(http.StatusText(status))
	}
	if status == http.StatusNotFound {
		fe.Err = domain.ErrNotFound
	}
	return fe
}

// getPage pide una página y comprueba su coherencia.
func getPage[T any](ctx context.Context, c *Client, endpoint string, p entity.Pagination) (*entity.PagedResponse[T], error) {
	var page entity.PagedResponse[T]
	if err := c.do(ctx, paged(endpoint, p), &page); err != nil {
		return nil, err
	}
	if page.Content == nil {
		page.Content = []T{}
	}
	if err := page.Validate(); err != nil {
		return nil, &domain.FetchError{Kind: domain.FetchBackend, Status: http.StatusOK, Method: http.MethodGet, Path: endpoint, Err: err}
	}
	return &page, nil
}

func idParam(id int64) string {
	return strconv.FormatInt(id, 10)
}
