package backend

import (
	"context"

	"github.com/ptc-travel/backoffice/internal/application/ports"
	"github.com/ptc-travel/backoffice/internal/domain/entity"
	"github.com/ptc-travel/backoffice/internal/domain/repository"
)

var _ repository.StaffRepository = (*StaffGateway)(nil)

// StaffGateway implementa StaffRepository contra la API REST.
type StaffGateway struct {
	c *Client
}

func NewStaffGateway(c *Client) *StaffGateway {
	return &StaffGateway{c: c}
}

func (g *StaffGateway) List(ctx context.Context, p entity.Pagination) (*entity.PagedResponse[entity.Staff], error) {
	return getPage[entity.Staff](ctx, g.c, ports.EndpointStaffPaged, p)
}

func (g *StaffGateway) GetByID(ctx context.Context, id int64) (*entity.Staff, error) {
	var s entity.Staff
	if err := g.c.do(ctx, get(ports.EndpointStaffByID, "id", idParam(id)), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByRole devuelve el personal de un rol (sin paginar).
func (g *StaffGateway) ListByRole(ctx context.Context, role entity.StaffRole) ([]entity.Staff, error) {
	out := []entity.Staff{}
	if err := g.c.do(ctx, get(ports.EndpointStaffByRole, "role", string(role)), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *StaffGateway) Create(ctx context.Context, draft entity.StaffDraft) (*entity.Staff, error) {
	var s entity.Staff
	if err := g.c.do(ctx, post(ports.EndpointStaff, draft), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (g *StaffGateway) CreateWithUser(ctx context.Context, draft entity.StaffWithUserDraft) (*entity.Staff, error) {
	var s entity.Staff
	if err := g.c.do(ctx, post(ports.EndpointStaffWithUser, draft), &s); err != nil {
		return nil, err
	}
	return &s, nil
}
