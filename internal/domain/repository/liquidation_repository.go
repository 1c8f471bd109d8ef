package repository

import (
	"context"

	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

// LiquidationRepository puerto hacia las liquidaciones y sus sub-recursos.
type LiquidationRepository interface {
	List(ctx context.Context, p entity.Pagination) (*entity.PagedResponse[entity.Liquidation], error)
	// GetByID devuelve el registro completo, con servicios, pagos e incidencias.
	GetByID(ctx context.Context, id int64) (*entity.Liquidation, error)
	Create(ctx context.Context, draft entity.LiquidationDraft) (*entity.Liquidation, error)

	AddTourService(ctx context.Context, id int64, draft entity.TourServiceDraft) error
	AddHotelService(ctx context.Context, id int64, draft entity.HotelServiceDraft) error
	AddFlightService(ctx context.Context, id int64, draft entity.FlightServiceDraft) error
	AddAdditionalService(ctx context.Context, id int64, draft entity.AdditionalServiceDraft) error
	AddPayment(ctx context.Context, id int64, draft entity.PaymentDraft) error
	AddIncidency(ctx context.Context, id int64, draft entity.IncidencyDraft) error

	// UpdateStatus pide al backend el cambio de estado. Devuelve domain.ErrStatusContractUndefined
	// si el backend no expone la operación.
	UpdateStatus(ctx context.Context, id int64, status entity.LiquidationStatus) error
}
