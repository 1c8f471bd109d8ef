package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ptc-travel/backoffice/internal/application/dto"
	"github.com/ptc-travel/backoffice/internal/application/query"
	"github.com/ptc-travel/backoffice/internal/application/view"
	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

// pagination lee ?page=&size=. Un parámetro ausente toma el valor por defecto; ok=false si
// alguno no es un entero, page < 0 o size <= 0.
func pagination(c *fiber.Ctx) (entity.Pagination, bool) {
	p := entity.DefaultPagination()
	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return p, false
		}
		p.Page = n
	}
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return p, false
		}
		p.Size = n
	}
	return p, true
}

func invalidPagination(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "INVALID_PAGINATION",
		Message: "page debe ser >= 0 y size > 0",
	})
}

// respondList dibuja la tabla del listado. Si la lectura falló, el motivo reemplaza a las filas.
func respondList[T any](c *fiber.Ctx, snap query.Snapshot[T], cols []view.Column[T]) error {
	paging := view.Paging{
		PageIndex: snap.Pagination.Page,
		PageSize:  snap.Pagination.Size,
		Loading:   snap.Loading,
	}
	if snap.Err != nil {
		status, body := mapError(snap.Err)
		if status == fiber.StatusUnauthorized {
			return c.Status(status).JSON(body)
		}
		table := view.RenderTable(cols, nil, paging)
		table.State = view.TableEmpty
		table.Message = body.Message
		return c.Status(status).JSON(dto.ListResponse[T]{Table: table, Items: []T{}, Error: body.Message})
	}

	out := dto.ListResponse[T]{Items: []T{}}
	if snap.Data != nil {
		out.Items = snap.Data.Content
		out.Page = snap.Data.Page
		paging.TotalPages = snap.Data.Page.TotalPages
		paging.TotalElements = snap.Data.Page.TotalElements
	}
	out.Table = view.RenderTable(cols, out.Items, paging)
	return c.JSON(out)
}

func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	return id, err == nil && id > 0
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
