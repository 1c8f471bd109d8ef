package repository

import (
	"context"

	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

// UserRepository puerto hacia los usuarios del backend de la agencia.
type UserRepository interface {
	List(ctx context.Context, p entity.Pagination) (*entity.PagedResponse[entity.User], error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	Create(ctx context.Context, draft entity.UserDraft) (*entity.User, error)
}
