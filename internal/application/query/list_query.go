package query

import (
	"context"
	"sync"

	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

// PageFetcher lee una página del backend.
type PageFetcher[T any] func(ctx context.Context, p entity.Pagination) (*entity.PagedResponse[T], error)

// Snapshot estado observable de un listado.
type Snapshot[T any] struct {
	Data       *entity.PagedResponse[T] // última página recibida
	Loading    bool
	Err        error
	Pagination entity.Pagination
}

// ListQuery listado paginado con su propia paginación. Cada cambio de paginación relanza
// la lectura; la lectura anterior se cancela y, si aun así termina después, su resultado
// se descarta. Gana siempre la última paginación pedida. Los handlers HTTP crean uno por
// request; quien lo mantiene vivo entre cambios de página es quien ve el reemplazo.
type ListQuery[T any] struct {
	client   *Client
	endpoint string
	fetch    PageFetcher[T]

	mu         sync.Mutex
	pagination entity.Pagination
	generation uint64
	cancel     context.CancelFunc
	data       *entity.PagedResponse[T]
	loading    bool
	err        error
}

// NewListQuery crea el listado con la paginación por defecto {0, 10}. No lee nada hasta
// el primer SetPagination/Refetch.
func NewListQuery[T any](client *Client, endpoint string, fetch PageFetcher[T]) *ListQuery[T] {
	return &ListQuery[T]{
		client:     client,
		endpoint:   endpoint,
		fetch:      fetch,
		pagination: entity.DefaultPagination(),
	}
}

// SetPagination fija la página y el tamaño sin validarlos y relanza la lectura.
func (q *ListQuery[T]) SetPagination(ctx context.Context, page, size int) Snapshot[T] {
	return q.issue(ctx, &entity.Pagination{Page: page, Size: size})
}

// ResetPagination vuelve a {0, 10} y relanza la lectura.
func (q *ListQuery[T]) ResetPagination(ctx context.Context) Snapshot[T] {
	p := entity.DefaultPagination()
	return q.issue(ctx, &p)
}

// Refetch repite la lectura con la paginación actual.
func (q *ListQuery[T]) Refetch(ctx context.Context) Snapshot[T] {
	return q.issue(ctx, nil)
}

// Snapshot estado actual.
func (q *ListQuery[T]) Snapshot() Snapshot[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshotLocked()
}

func (q *ListQuery[T]) snapshotLocked() Snapshot[T] {
	return Snapshot[T]{Data: q.data, Loading: q.loading, Err: q.err, Pagination: q.pagination}
}

// issue lanza una lectura y espera su resultado. Si otra lectura la reemplaza mientras
// tanto, devuelve el estado vigente sin aplicar el propio resultado.
func (q *ListQuery[T]) issue(ctx context.Context, p *entity.Pagination) Snapshot[T] {
	q.mu.Lock()
	if p != nil {
		q.pagination = *p
	}
	if q.cancel != nil {
		q.cancel()
	}
	q.generation++
	gen := q.generation
	pagination := q.pagination
	readCtx, cancel := context.WithCancel(ctx)
	q.cancel = cancel
	q.loading = true
	q.mu.Unlock()

	data, err := Fetch(readCtx, q.client, ListKey(q.endpoint, pagination), func(ctx context.Context) (*entity.PagedResponse[T], error) {
		return q.fetch(ctx, pagination)
	})

	q.mu.Lock()
	defer q.mu.Unlock()
	cancel()
	if gen != q.generation {
		return q.snapshotLocked()
	}
	q.cancel = nil
	q.loading = false
	if err != nil {
		q.err = err
	} else {
		q.data = data
		q.err = nil
	}
	return q.snapshotLocked()
}
