package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/ptc-travel/backoffice/internal/application/dto"
	"github.com/ptc-travel/backoffice/internal/application/query"
	"github.com/ptc-travel/backoffice/internal/application/usecase"
	"github.com/ptc-travel/backoffice/internal/application/view"
)

// LiquidationHandler liquidaciones: listado, detalle, servicios, pagos, incidencias y estado.
type LiquidationHandler struct {
	uc  *usecase.LiquidationUseCase
	pdf *usecase.LiquidationPDFUseCase
}

// NewLiquidationHandler construye el handler. pdf puede ser nil (exportación deshabilitada).
func NewLiquidationHandler(uc *usecase.LiquidationUseCase, pdf *usecase.LiquidationPDFUseCase) *LiquidationHandler {
	return &LiquidationHandler{uc: uc, pdf: pdf}
}

// List godoc
// @Summary      Listar liquidaciones
// @Tags         liquidations
// @Security     BearerAuth
// @Produce      json
// @Param        page  query  int  false  "página (desde 0)"
// @Param        size  query  int  false  "tamaño de página"
// @Success      200   {object}  dto.ListResponse[entity.Liquidation]
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/liquidations [get]
func (h *LiquidationHandler) List(c *fiber.Ctx) error {
	p, ok := pagination(c)
	if !ok {
		return invalidPagination(c)
	}
	return respondList(c, h.uc.List(c.UserContext(), p), view.LiquidationColumns)
}

// Detail godoc
// @Summary      Detalle de una liquidación
// @Tags         liquidations
// @Security     BearerAuth
// @Produce      json
// @Param        id   path  int  true  "ID de la liquidación"
// @Success      200  {object}  view.LiquidationDetail
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/liquidations/{id} [get]
func (h *LiquidationHandler) Detail(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	d, err := h.uc.Detail(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(d)
}

// Create godoc
// @Summary      Crear liquidación
// @Tags         liquidations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LiquidationForm  true  "cliente, staff, tipo de cambio, vencimiento"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/liquidations [post]
func (h *LiquidationHandler) Create(c *fiber.Ctx) error {
	var in dto.LiquidationForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	l, n, err := h.uc.Create(c.UserContext(), GetOperatorID(c), in)
	return respondMutation(c, fiber.StatusCreated, n, l, err)
}

// addTo parsea el formulario y lo agrega a la liquidación :id.
func addTo[F any](c *fiber.Ctx, fn func(ctx context.Context, operatorID string, id int64, form F) (query.Notification, error)) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	var in F
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	n, err := fn(c.UserContext(), GetOperatorID(c), id, in)
	return respondMutation(c, fiber.StatusCreated, n, nil, err)
}

// AddTourService godoc
// @Summary      Agregar servicio de tours
// @Tags         liquidations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID de la liquidación"
// @Param        body  body  dto.TourServiceForm  true  "tours"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/liquidations/{id}/tour-services [post]
func (h *LiquidationHandler) AddTourService(c *fiber.Ctx) error {
	return addTo(c, h.uc.AddTourService)
}

// AddHotelService POST /api/liquidations/:id/hotel-services
func (h *LiquidationHandler) AddHotelService(c *fiber.Ctx) error {
	return addTo(c, h.uc.AddHotelService)
}

// AddFlightService POST /api/liquidations/:id/flight-services
func (h *LiquidationHandler) AddFlightService(c *fiber.Ctx) error {
	return addTo(c, h.uc.AddFlightService)
}

// AddAdditionalService POST /api/liquidations/:id/additional-services
func (h *LiquidationHandler) AddAdditionalService(c *fiber.Ctx) error {
	return addTo(c, h.uc.AddAdditionalService)
}

// AddPayment godoc
// @Summary      Registrar pago
// @Tags         liquidations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "ID de la liquidación"
// @Param        body  body  dto.PaymentForm  true  "método y monto"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/liquidations/{id}/payments [post]
func (h *LiquidationHandler) AddPayment(c *fiber.Ctx) error {
	return addTo(c, h.uc.AddPayment)
}

// AddIncidency POST /api/liquidations/:id/incidencies
func (h *LiquidationHandler) AddIncidency(c *fiber.Ctx) error {
	return addTo(c, h.uc.AddIncidency)
}

// AdvanceStatus godoc
// @Summary      Avanzar el estado de la liquidación
// @Description  IN_QUOTE → PENDING → ON_COURSE → COMPLETED. expectedStatus es el estado que el operador tenía en pantalla.
// @Tags         liquidations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID de la liquidación"
// @Param        body  body  dto.AdvanceStatusRequest  true  "estado esperado"
// @Success      200   {object}  dto.MutationResponse
// @Failure      409   {object}  dto.ErrorResponse  "STATUS_CHANGED"
// @Failure      422   {object}  dto.ErrorResponse  "NO_TRANSITION"
// @Failure      501   {object}  dto.ErrorResponse  "STATUS_CONTRACT_UNDEFINED"
// @Router       /api/liquidations/{id}/status/advance [post]
func (h *LiquidationHandler) AdvanceStatus(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	var in dto.AdvanceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	tr, n, err := h.uc.AdvanceStatus(c.UserContext(), GetOperatorID(c), id, in)
	return respondMutation(c, fiber.StatusOK, n, tr, err)
}

// Transitions GET /api/liquidations/:id/transitions
func (h *LiquidationHandler) Transitions(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	list, err := h.uc.Transitions(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// PDF godoc
// @Summary      Estado de cuenta en PDF
// @Tags         liquidations
// @Security     BearerAuth
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la liquidación"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/liquidations/{id}/pdf [get]
func (h *LiquidationHandler) PDF(c *fiber.Ctx) error {
	if h.pdf == nil {
		return fiber.ErrNotFound
	}
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	out, err := h.pdf.Export(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+out.Filename+`"`)
	if out.Location != "" {
		c.Set("X-Archive-Location", out.Location)
	}
	return c.Send(out.Content)
}
