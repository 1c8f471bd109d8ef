package repository

import (
	"context"

	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

// StaffRepository puerto hacia el personal del backend de la agencia.
type StaffRepository interface {
	List(ctx context.Context, p entity.Pagination) (*entity.PagedResponse[entity.Staff], error)
	GetByID(ctx context.Context, id int64) (*entity.Staff, error)
	ListByRole(ctx context.Context, role entity.StaffRole) ([]entity.Staff, error)
	Create(ctx context.Context, draft entity.StaffDraft) (*entity.Staff, error)
	// CreateWithUser crea el usuario y su perfil de staff en una sola operación.
	CreateWithUser(ctx context.Context, draft entity.StaffWithUserDraft) (*entity.Staff, error)
}
