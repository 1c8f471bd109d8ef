package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ptc-travel/backoffice/internal/application/ports"
	"github.com/ptc-travel/backoffice/internal/domain"
	"github.com/ptc-travel/backoffice/internal/domain/entity"
	"github.com/ptc-travel/backoffice/internal/domain/repository"
)

var _ repository.LiquidationRepository = (*LiquidationGateway)(nil)

// LiquidationGateway implementa LiquidationRepository contra la API REST.
type LiquidationGateway struct {
	c *Client
}

func NewLiquidationGateway(c *Client) *LiquidationGateway {
	return &LiquidationGateway{c: c}
}

func (g *LiquidationGateway) List(ctx context.Context, p entity.Pagination) (*entity.PagedResponse[entity.Liquidation], error) {
	return getPage[entity.Liquidation](ctx, g.c, ports.EndpointLiquidationsPaged, p)
}

func (g *LiquidationGateway) GetByID(ctx context.Context, id int64) (*entity.Liquidation, error) {
	var l entity.Liquidation
	if err := g.c.do(ctx, get(ports.EndpointLiquidationByID, "liquidationId", idParam(id)), &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (g *LiquidationGateway) Create(ctx context.Context, draft entity.LiquidationDraft) (*entity.Liquidation, error) {
	var l entity.Liquidation
	if err := g.c.do(ctx, post(ports.EndpointLiquidations, draft), &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (g *LiquidationGateway) AddTourService(ctx context.Context, id int64, draft entity.TourServiceDraft) error {
	return g.addTo(ctx, ports.EndpointTourServices, id, draft)
}

func (g *LiquidationGateway) AddHotelService(ctx context.Context, id int64, draft entity.HotelServiceDraft) error {
	return g.addTo(ctx, ports.EndpointHotelServices, id, draft)
}

func (g *LiquidationGateway) AddFlightService(ctx context.Context, id int64, draft entity.FlightServiceDraft) error {
	return g.addTo(ctx, ports.EndpointFlightServices, id, draft)
}

func (g *LiquidationGateway) AddAdditionalService(ctx context.Context, id int64, draft entity.AdditionalServiceDraft) error {
	return g.addTo(ctx, ports.EndpointAdditionalServices, id, draft)
}

func (g *LiquidationGateway) AddPayment(ctx context.Context, id int64, draft entity.PaymentDraft) error {
	return g.addTo(ctx, ports.EndpointPayments, id, draft)
}

func (g *LiquidationGateway) AddIncidency(ctx context.Context, id int64, draft entity.IncidencyDraft) error {
	return g.addTo(ctx, ports.EndpointIncidencies, id, draft)
}

// addTo publica un sub-recurso; el cuerpo de respuesta se descarta porque el detalle
// se vuelve a pedir tras invalidar la caché.
func (g *LiquidationGateway) addTo(ctx context.Context, endpoint string, id int64, body any) error {
	return g.c.do(ctx, post(endpoint, body, "liquidationId", idParam(id)), nil)
}

type statusPayload struct {
	Status entity.LiquidationStatus `json:"status"`
}

// UpdateStatus PATCH /liquidations/{id}/status. 404, 405 y 501 significan que el backend
// no expone el cambio de estado.
func (g *LiquidationGateway) UpdateStatus(ctx context.Context, id int64, status entity.LiquidationStatus) error {
	cl := call{
		method:   http.MethodPatch,
		endpoint: ports.EndpointLiquidationStatus,
		path:     expand(ports.EndpointLiquidationStatus, "liquidationId", idParam(id)),
		body:     statusPayload{Status: status},
	}
	err := g.c.do(ctx, cl, nil)
	var fe *domain.FetchError
	if errors.As(err, &fe) && fe.Kind == domain.FetchBackend {
		switch fe.Status {
		case http.StatusNotFound, http.StatusMethodNotAllowed, http.StatusNotImplemented:
			return fmt.Errorf("%w (%s)", domain.ErrStatusContractUndefined, fe.Error())
		}
	}
	return err
}
