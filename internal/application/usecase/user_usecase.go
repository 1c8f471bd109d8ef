package usecase

import (
	"context"
	"strconv"

	"github.com/ptc-travel/backoffice/internal/application/dto"
	"github.com/ptc-travel/backoffice/internal/application/ports"
	"github.com/ptc-travel/backoffice/internal/application/query"
	"github.com/ptc-travel/backoffice/internal/domain/entity"
	"github.com/ptc-travel/backoffice/internal/domain/repository"
)

const (
	msgUserCreated     = "Usuario creado correctamente"
	msgUserCreateError = "Ocurrió un error al crear el usuario"
)

// UserUseCase listado, consulta y alta de usuarios del backend.
type UserUseCase struct {
	repo   repository.UserRepository
	client *query.Client
}

// NewUserUseCase construye el caso de uso con el gateway y el cliente de consultas.
func NewUserUseCase(repo repository.UserRepository, client *query.Client) *UserUseCase {
	return &UserUseCase{repo: repo, client: client}
}

// List devuelve la página pedida (cacheada por página y tamaño).
func (uc *UserUseCase) List(ctx context.Context, p entity.Pagination) query.Snapshot[entity.User] {
	return query.NewListQuery[entity.User](uc.client, ports.EndpointUsersPaged, uc.repo.List).SetPagination(ctx, p.Page, p.Size)
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	key := query.ResourceKey(ports.EndpointUserByID, "id", strconv.FormatInt(id, 10))
	return query.Fetch(ctx, uc.client, key, func(ctx context.Context) (*entity.User, error) {
		return uc.repo.GetByID(ctx, id)
	})
}

// Create valida el formulario, crea el usuario e invalida el listado.
func (uc *UserUseCase) Create(ctx context.Context, operatorID string, form dto.UserForm) (*entity.User, query.Notification, error) {
	m := query.Mutation{
		Name:           "create-user",
		Invalidates:    []query.Key{query.ListPrefix(ports.EndpointUsersPaged)},
		SuccessMessage: msgUserCreated,
		FallbackError:  msgUserCreateError,
		Guard:          guard(operatorID, 0),
	}
	return write(ctx, uc.client, m, form.Validate, uc.repo.Create)
}
