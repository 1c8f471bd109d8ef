package backend

import (
	"context"

	"github.com/ptc-travel/backoffice/internal/application/ports"
	"github.com/ptc-travel/backoffice/internal/domain/entity"
	"github.com/ptc-travel/backoffice/internal/domain/repository"
)

var _ repository.UserRepository = (*UserGateway)(nil)

// UserGateway implementa UserRepository contra la API REST.
type UserGateway struct {
	c *Client
}

func NewUserGateway(c *Client) *UserGateway {
	return &UserGateway{c: c}
}

func (g *UserGateway) List(ctx context.Context, p entity.Pagination) (*entity.PagedResponse[entity.User], error) {
	return getPage[entity.User](ctx, g.c, ports.EndpointUsersPaged, p)
}

func (g *UserGateway) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	var u entity.User
	if err := g.c.do(ctx, get(ports.EndpointUserByID, "id", idParam(id)), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (g *UserGateway) Create(ctx context.Context, draft entity.UserDraft) (*entity.User, error) {
	var u entity.User
	if err := g.c.do(ctx, post(ports.EndpointUsers, draft), &u); err != nil {
		return nil, err
	}
	return &u, nil
}
