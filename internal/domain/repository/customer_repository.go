package repository

import (
	"context"

	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

// CustomerRepository puerto hacia los clientes del backend de la agencia.
type CustomerRepository interface {
	List(ctx context.Context, p entity.Pagination) (*entity.PagedResponse[entity.Customer], error)
	Create(ctx context.Context, draft entity.CustomerDraft) (*entity.Customer, error)
}
