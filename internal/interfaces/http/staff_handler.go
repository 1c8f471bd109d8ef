package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ptc-travel/backoffice/internal/application/dto"
	"github.com/ptc-travel/backoffice/internal/application/usecase"
	"github.com/ptc-travel/backoffice/internal/application/view"
	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

// StaffHandler personal de la agencia.
type StaffHandler struct {
	uc *usecase.StaffUseCase
}

// NewStaffHandler construye el handler.
func NewStaffHandler(uc *usecase.StaffUseCase) *StaffHandler {
	return &StaffHandler{uc: uc}
}

// List godoc
// @Summary      Listar personal
// @Tags         staff
// @Security     BearerAuth
// @Produce      json
// @Param        page  query  int  false  "página (desde 0)"
// @Param        size  query  int  false  "tamaño de página"
// @Success      200   {object}  dto.ListResponse[entity.Staff]
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/staff [get]
func (h *StaffHandler) List(c *fiber.Ctx) error {
	p, ok := pagination(c)
	if !ok {
		return invalidPagination(c)
	}
	return respondList(c, h.uc.List(c.UserContext(), p), view.StaffColumns)
}

// GetByID GET /api/staff/:id
func (h *StaffHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	s, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(s)
}

// ListByRole godoc
// @Summary      Personal por rol
// @Tags         staff
// @Security     BearerAuth
// @Produce      json
// @Param        role  path  string  true  "SALES, COUNTER, ACCOUNTING, OPERATIONS, SUPERADMIN, SUPPORT"
// @Success      200   {array}   entity.Staff
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/staff/by-role/{role} [get]
func (h *StaffHandler) ListByRole(c *fiber.Ctx) error {
	role := entity.StaffRole(strings.ToUpper(c.Params("role")))
	list, err := h.uc.ListByRole(c.UserContext(), role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear staff sobre un usuario existente
// @Tags         staff
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StaffForm  true  "datos del staff"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/staff [post]
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var in dto.StaffForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	s, n, err := h.uc.Create(c.UserContext(), GetOperatorID(c), in)
	return respondMutation(c, fiber.StatusCreated, n, s, err)
}

// CreateWithUser godoc
// @Summary      Crear usuario y staff en una sola operación
// @Tags         staff
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StaffWithUserForm  true  "usuario y staff"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/staff/with-user [post]
func (h *StaffHandler) CreateWithUser(c *fiber.Ctx) error {
	var in dto.StaffWithUserForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	s, n, err := h.uc.CreateWithUser(c.UserContext(), GetOperatorID(c), in)
	return respondMutation(c, fiber.StatusCreated, n, s, err)
}
