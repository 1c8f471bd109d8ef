package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ptc-travel/backoffice/internal/application/dto"
	"github.com/ptc-travel/backoffice/internal/application/usecase"
	"github.com/ptc-travel/backoffice/internal/application/view"
)

// CustomerHandler clientes de la agencia.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List GET /api/customers?page=0&size=10
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	p, ok := pagination(c)
	if !ok {
		return invalidPagination(c)
	}
	return respondList(c, h.uc.List(c.UserContext(), p), view.CustomerColumns)
}

// Create godoc
// @Summary      Registrar cliente
// @Tags         customers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerForm  true  "datos del cliente"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	cu, n, err := h.uc.Create(c.UserContext(), GetOperatorID(c), in)
	return respondMutation(c, fiber.StatusCreated, n, cu, err)
}
