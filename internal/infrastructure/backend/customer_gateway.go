package backend

import (
	"context"

	"github.com/ptc-travel/backoffice/internal/application/ports"
	"github.com/ptc-travel/backoffice/internal/domain/entity"
	"github.com/ptc-travel/backoffice/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerGateway)(nil)

// CustomerGateway implementa CustomerRepository contra la API REST.
type CustomerGateway struct {
	c *Client
}

func NewCustomerGateway(c *Client) *CustomerGateway {
	return &CustomerGateway{c: c}
}

func (g *CustomerGateway) List(ctx context.Context, p entity.Pagination) (*entity.PagedResponse[entity.Customer], error) {
	return getPage[entity.Customer](ctx, g.c, ports.EndpointCustomersPaged, p)
}

func (g *CustomerGateway) Create(ctx context.Context, draft entity.CustomerDraft) (*entity.Customer, error) {
	var cu entity.Customer
	if err := g.c.do(ctx, post(ports.EndpointCustomers, draft), &cu); err != nil {
		return nil, err
	}
	return &cu, nil
}
