package usecase

import (
	"context"

	"github.com/ptc-travel/backoffice/internal/application/dto"
	"github.com/ptc-travel/backoffice/internal/application/ports"
	"github.com/ptc-travel/backoffice/internal/application/query"
	"github.com/ptc-travel/backoffice/internal/domain/entity"
	"github.com/ptc-travel/backoffice/internal/domain/repository"
)

// CustomerUseCase listado y alta de clientes.
type CustomerUseCase struct {
	repo   repository.CustomerRepository
	client *query.Client
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, client *query.Client) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, client: client}
}

func (uc *CustomerUseCase) List(ctx context.Context, p entity.Pagination) query.Snapshot[entity.Customer] {
	return query.NewListQuery[entity.Customer](uc.client, ports.EndpointCustomersPaged, uc.repo.List).SetPagination(ctx, p.Page, p.Size)
}

func (uc *CustomerUseCase) Create(ctx context.Context, operatorID string, form dto.CustomerForm) (*entity.Customer, query.Notification, error) {
	m := query.Mutation{
		Name:           "create-customer",
		Invalidates:    []query.Key{query.ListPrefix(ports.EndpointCustomersPaged)},
		SuccessMessage: "Cliente creado correctamente",
		FallbackError:  "Ocurrió un error al crear el cliente",
		Guard:          guard(operatorID, 0),
	}
	return write(ctx, uc.client, m, form.Validate, uc.repo.Create)
}
