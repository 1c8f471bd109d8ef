package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ptc-travel/backoffice/internal/application/dto"
	"github.com/ptc-travel/backoffice/internal/application/usecase"
	"github.com/ptc-travel/backoffice/internal/application/view"
)

// UserHandler usuarios del backend.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        page  query  int  false  "página (desde 0)"
// @Param        size  query  int  false  "tamaño de página"
// @Success      200   {object}  dto.ListResponse[entity.User]
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ListResponse[entity.User]
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	p, ok := pagination(c)
	if !ok {
		return invalidPagination(c)
	}
	return respondList(c, h.uc.List(c.UserContext(), p), view.UserColumns)
}

// GetByID GET /api/users/:id
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c)
	}
	u, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(u)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserForm  true  "email, password, userName"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.UserForm
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	u, n, err := h.uc.Create(c.UserContext(), GetOperatorID(c), in)
	return respondMutation(c, fiber.StatusCreated, n, u, err)
}
