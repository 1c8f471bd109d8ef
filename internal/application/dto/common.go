package dto

import (
	"github.com/ptc-travel/backoffice/internal/application/query"
	"github.com/ptc-travel/backoffice/internal/application/view"
	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code         string              `json:"code"`
	Message      string              `json:"message"`
	Fields       map[string]string   `json:"fields,omitempty"`
	Redirect     string              `json:"redirect,omitempty"`
	Notification *query.Notification `json:"notification,omitempty"`
}

// ListResponse página de un listado: la tabla ya renderizada y las filas originales.
// Si la lectura falló, Error reemplaza a la tabla (sin filas).
type ListResponse[T any] struct {
	Table view.TableView      `json:"table"`
	Items []T                 `json:"items"`
	Page  entity.PageMetadata `json:"page"`
	Error string              `json:"error,omitempty"`
}

// MutationResponse resultado de una escritura con la notificación para el operador.
type MutationResponse struct {
	Notification query.Notification `json:"notification"`
	Data         any                `json:"data,omitempty"`
}
