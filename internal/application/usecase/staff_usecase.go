package usecase

import (
	"context"
	"strconv"

	"github.com/ptc-travel/backoffice/internal/application/dto"
	"github.com/ptc-travel/backoffice/internal/application/ports"
	"github.com/ptc-travel/backoffice/internal/application/query"
	"github.com/ptc-travel/backoffice/internal/domain"
	"github.com/ptc-travel/backoffice/internal/domain/entity"
	"github.com/ptc-travel/backoffice/internal/domain/repository"
)

const (
	msgStaffCreated             = "Miembro del personal creado correctamente"
	msgStaffCreateError         = "Ocurrió un error al crear el staff"
	msgStaffWithUserCreated     = "Usuario y perfil de staff creados correctamente"
	msgStaffWithUserCreateError = "Ocurrió un error al crear el usuario con staff"
)

// StaffUseCase listado, consultas y altas del personal.
type StaffUseCase struct {
	repo   repository.StaffRepository
	client *query.Client
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(repo repository.StaffRepository, client *query.Client) *StaffUseCase {
	return &StaffUseCase{repo: repo, client: client}
}

func (uc *StaffUseCase) List(ctx context.Context, p entity.Pagination) query.Snapshot[entity.Staff] {
	return query.NewListQuery[entity.Staff](uc.client, ports.EndpointStaffPaged, uc.repo.List).SetPagination(ctx, p.Page, p.Size)
}

func (uc *StaffUseCase) GetByID(ctx context.Context, id int64) (*entity.Staff, error) {
	key := query.ResourceKey(ports.EndpointStaffByID, "id", strconv.FormatInt(id, 10))
	return query.Fetch(ctx, uc.client, key, func(ctx context.Context) (*entity.Staff, error) {
		return uc.repo.GetByID(ctx, id)
	})
}

// ListByRole personal de un rol; rechaza roles desconocidos sin llamar al backend.
func (uc *StaffUseCase) ListByRole(ctx context.Context, role entity.StaffRole) ([]entity.Staff, error) {
	if !role.Valid() {
		f := domain.Fields{}
		f.Add("role", "valor inválido")
		return nil, f.Err()
	}
	key := query.ResourceKey(ports.EndpointStaffByRole, "role", string(role))
	return query.Fetch(ctx, uc.client, key, func(ctx context.Context) ([]entity.Staff, error) {
		return uc.repo.ListByRole(ctx, role)
	})
}

// Create alta de staff sobre un usuario existente.
func (uc *StaffUseCase) Create(ctx context.Context, operatorID string, form dto.StaffForm) (*entity.Staff, query.Notification, error) {
	m := query.Mutation{
		Name:           "create-staff",
		Invalidates:    []query.Key{query.ListPrefix(ports.EndpointStaffPaged)},
		SuccessMessage: msgStaffCreated,
		FallbackError:  msgStaffCreateError,
		Guard:          guard(operatorID, 0),
	}
	return write(ctx, uc.client, m, form.Validate, uc.repo.Create)
}

// CreateWithUser crea usuario y staff juntos; invalida ambos listados.
func (uc *StaffUseCase) CreateWithUser(ctx context.Context, operatorID string, form dto.StaffWithUserForm) (*entity.Staff, query.Notification, error) {
	m := query.Mutation{
		Name: "create-staff-with-user",
		Invalidates: []query.Key{
			query.ListPrefix(ports.EndpointStaffPaged),
			query.ListPrefix(ports.EndpointUsersPaged),
		},
		SuccessMessage: msgStaffWithUserCreated,
		FallbackError:  msgStaffWithUserCreateError,
		Guard:          guard(operatorID, 0),
	}
	return write(ctx, uc.client, m, form.Validate, uc.repo.CreateWithUser)
}
