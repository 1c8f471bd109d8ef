package usecase

import (
	"context"
	"errors"
	"strconv"

	"github.com/ptc-travel/backoffice/internal/application/dto"
	"github.com/ptc-travel/backoffice/internal/application/ports"
	"github.com/ptc-travel/backoffice/internal/application/query"
	"github.com/ptc-travel/backoffice/internal/application/view"
	"github.com/ptc-travel/backoffice/internal/domain"
	"github.com/ptc-travel/backoffice/internal/domain/entity"
	"github.com/ptc-travel/backoffice/internal/domain/repository"
	"github.com/ptc-travel/backoffice/pkg/logger"
)

// LiquidationUseCase listado, detalle, alta, sub-recursos y avance de estado de liquidaciones.
type LiquidationUseCase struct {
	repo        repository.LiquidationRepository
	transitions repository.TransitionRepository
	client      *query.Client
	log         *logger.Logger
}

// NewLiquidationUseCase construye el caso de uso. transitions guarda la bitácora de avances de estado.
func NewLiquidationUseCase(repo repository.LiquidationRepository, transitions repository.TransitionRepository, client *query.Client, log *logger.Logger) *LiquidationUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &LiquidationUseCase{repo: repo, transitions: transitions, client: client, log: log.Component("liquidations")}
}

func (uc *LiquidationUseCase) List(ctx context.Context, p entity.Pagination) query.Snapshot[entity.Liquidation] {
	return query.NewListQuery[entity.Liquidation](uc.client, ports.EndpointLiquidationsPaged, uc.repo.List).SetPagination(ctx, p.Page, p.Size)
}

func detailKey(id int64) query.Key {
	return query.ResourceKey(ports.EndpointLiquidationByID, "liquidationId", strconv.FormatInt(id, 10))
}

// detailInvalidations lo que cambia cuando se escribe sobre una liquidación existente.
func detailInvalidations(id int64) []query.Key {
	return []query.Key{detailKey(id), query.ListPrefix(ports.EndpointLiquidationsPaged)}
}

// Detail pide siempre el registro completo por id y arma la vista del detalle.
func (uc *LiquidationUseCase) Detail(ctx context.Context, id int64) (*view.LiquidationDetail, error) {
	l, err := query.Fetch(ctx, uc.client, detailKey(id), func(ctx context.Context) (*entity.Liquidation, error) {
		return uc.repo.GetByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return view.BuildLiquidationDetail(l), nil
}

func (uc *LiquidationUseCase) Create(ctx context.Context, operatorID string, form dto.LiquidationForm) (*entity.Liquidation, query.Notification, error) {
	m := query.Mutation{
		Name:           "create-liquidation",
		Invalidates:    []query.Key{query.ListPrefix(ports.EndpointLiquidationsPaged)},
		SuccessMessage: "Liquidación creada correctamente",
		FallbackError:  "Ocurrió un error al crear la liquidación",
		Guard:          guard(operatorID, 0),
	}
	return write(ctx, uc.client, m, form.Validate, uc.repo.Create)
}

// subResource mutación de un formulario del detalle sobre la liquidación id.
func subResource(name string, id int64, operatorID, success, fallback string) query.Mutation {
	return query.Mutation{
		Name:           name,
		Invalidates:    detailInvalidations(id),
		SuccessMessage: success,
		FallbackError:  fallback,
		Guard:          guard(operatorID, id),
	}
}

// discard adapta una escritura sin resultado a la forma que espera write.
func discard[D any](fn func(context.Context, int64, D) error, id int64) func(context.Context, D) (struct{}, error) {
	return func(ctx context.Context, d D) (struct{}, error) {
		return struct{}{}, fn(ctx, id, d)
	}
}

func (uc *LiquidationUseCase) AddTourService(ctx context.Context, operatorID string, id int64, form dto.TourServiceForm) (query.Notification, error) {
	m := subResource("add-tour-service", id, operatorID,
		"Servicio de tour agregado correctamente", "Ocurrió un error al agregar el servicio de tour")
	_, n, err := write(ctx, uc.client, m, form.Validate, discard(uc.repo.AddTourService, id))
	return n, err
}

func (uc *LiquidationUseCase) AddHotelService(ctx context.Context, operatorID string, id int64, form dto.HotelServiceForm) (query.Notification, error) {
	m := subResource("add-hotel-service", id, operatorID,
		"Servicio de hotel agregado correctamente", "Ocurrió un error al agregar el servicio de hotel")
	_, n, err := write(ctx, uc.client, m, form.Validate, discard(uc.repo.AddHotelService, id))
	return n, err
}

func (uc *LiquidationUseCase) AddFlightService(ctx context.Context, operatorID string, id int64, form dto.FlightServiceForm) (query.Notification, error) {
	m := subResource("add-flight-service", id, operatorID,
		"Servicio de vuelo agregado correctamente", "Ocurrió un error al agregar el servicio de vuelo")
	_, n, err := write(ctx, uc.client, m, form.Validate, discard(uc.repo.AddFlightService, id))
	return n, err
}

func (uc *LiquidationUseCase) AddAdditionalService(ctx context.Context, operatorID string, id int64, form dto.AdditionalServiceForm) (query.Notification, error) {
	m := subResource("add-additional-service", id, operatorID,
		"Servicio adicional agregado correctamente", "Ocurrió un error al agregar el servicio adicional")
	_, n, err := write(ctx, uc.client, m, form.Validate, discard(uc.repo.AddAdditionalService, id))
	return n, err
}

func (uc *LiquidationUseCase) AddPayment(ctx context.Context, operatorID string, id int64, form dto.PaymentForm) (query.Notification, error) {
	m := subResource("add-payment", id, operatorID,
		"Pago registrado correctamente", "Ocurrió un error al registrar el pago")
	_, n, err := write(ctx, uc.client, m, form.Validate, discard(uc.repo.AddPayment, id))
	return n, err
}

func (uc *LiquidationUseCase) AddIncidency(ctx context.Context, operatorID string, id int64, form dto.IncidencyForm) (query.Notification, error) {
	m := subResource("add-incidency", id, operatorID,
		"Incidencia reportada correctamente", "Ocurrió un error al reportar la incidencia")
	_, n, err := write(ctx, uc.client, m, form.Validate, discard(uc.repo.AddIncidency, id))
	return n, err
}

// AdvanceStatus lleva la liquidación al siguiente estado. expected es el estado que el
// operador tenía en pantalla: si el backend ya tiene otro, se rechaza con ErrStatusChanged.
// Desde COMPLETED no hay avance (ErrNoTransition). El intento queda en la bitácora con su
// resultado; si el backend no expone el cambio de estado el resultado es UNSUPPORTED y el
// error es ErrStatusContractUndefined.
func (uc *LiquidationUseCase) AdvanceStatus(ctx context.Context, operatorID string, id int64, form dto.AdvanceStatusRequest) (*entity.StatusTransition, query.Notification, error) {
	m := query.Mutation{
		Name:          "advance-status",
		Invalidates:   detailInvalidations(id),
		FallbackError: "Ocurrió un error al actualizar el estado",
		Guard:         guard(operatorID, id),
	}
	var next entity.LiquidationStatus
	tr, n, err := write(ctx, uc.client, m, form.Validate, func(ctx context.Context, expected entity.LiquidationStatus) (*entity.StatusTransition, error) {
		// lectura directa: el estado cacheado puede ser justo el desactualizado
		current, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		var ok bool
		next, ok = current.Status.Next()
		if !ok {
			return nil, domain.ErrNoTransition
		}
		if current.Status != expected {
			return nil, domain.ErrStatusChanged
		}
		return uc.applyTransition(ctx, operatorID, id, current.Status, next)
	})
	if err == nil {
		n.Message = "Estado actualizado a " + next.Label()
	}
	return tr, n, err
}

func (uc *LiquidationUseCase) applyTransition(ctx context.Context, operatorID string, id int64, from, next entity.LiquidationStatus) (*entity.StatusTransition, error) {
	tr := &entity.StatusTransition{
		LiquidationID: id,
		FromStatus:    from,
		ToStatus:      next,
		OperatorID:    operatorID,
		Outcome:       entity.OutcomePending,
	}
	if err := uc.transitions.Create(ctx, tr); err != nil {
		return nil, err
	}

	err := uc.repo.UpdateStatus(ctx, id, next)
	switch {
	case err == nil:
		tr.Outcome = entity.OutcomeApplied
	case errors.Is(err, domain.ErrStatusContractUndefined):
		tr.Outcome = entity.OutcomeUnsupported
		tr.Detail = err.Error()
	default:
		tr.Outcome = entity.OutcomeFailed
		tr.Detail = err.Error()
	}

	// el resultado en el backend ya es definitivo: un fallo de la bitácora solo se registra
	if cerr := uc.transitions.Complete(context.WithoutCancel(ctx), tr.ID, tr.Outcome, tr.Detail); cerr != nil {
		uc.log.Error().Err(cerr).Str("transition", tr.ID).Msg("no se pudo cerrar el registro de la transición")
	}
	uc.log.Info().
		Int64("liquidation", id).
		Str("from", string(tr.FromStatus)).
		Str("to", string(next)).
		Str("outcome", string(tr.Outcome)).
		Str("operator", operatorID).
		Msg("avance de estado")

	return tr, err
}

// Transitions bitácora de avances de estado de una liquidación.
func (uc *LiquidationUseCase) Transitions(ctx context.Context, id int64) ([]*entity.StatusTransition, error) {
	return uc.transitions.ListByLiquidation(ctx, id)
}
