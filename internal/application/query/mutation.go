package query

import (
	"context"
	"errors"

	"github.com/ptc-travel/backoffice/internal/domain"
)

// NotificationLevel nivel de la notificación mostrada al operador.
type NotificationLevel string

const (
	LevelSuccess NotificationLevel = "success"
	LevelError   NotificationLevel = "error"
)

// Notification aviso visible tras una escritura.
type Notification struct {
	Level   NotificationLevel `json:"level"`
	Message string            `json:"message"`
}

// Mutation describe una escritura: qué invalida y qué se le dice al operador.
type Mutation struct {
	Name           string
	Invalidates    []Key
	SuccessMessage string
	FallbackError  string
	// Guard identifica el envío (operador, operación, destino). Vacío = sin control de doble envío.
	Guard string
}

// MutationError fallo de una escritura junto con su notificación.
type MutationError struct {
	Notification Notification
	Err          error
}

func (e *MutationError) Error() string {
	return e.Notification.Message + ": " + e.Err.Error()
}

func (e *MutationError) Unwrap() error { return e.Err }

// Mutate ejecuta fn una sola vez, sin reintentos. Si fn tiene éxito invalida las claves
// de la mutación y devuelve la notificación de éxito; si falla el cache no se toca y el
// error se envuelve en *MutationError con el mensaje del backend o el de respaldo.
func (c *Client) Mutate(ctx context.Context, m Mutation, fn func(ctx context.Context) error) (Notification, error) {
	if m.Guard != "" {
		release, ok := c.inflight.Acquire(m.Name + ":" + m.Guard)
		if !ok {
			n := Notification{Level: LevelError, Message: domain.ErrSubmissionInProgress.Error()}
			return n, &MutationError{Notification: n, Err: domain.ErrSubmissionInProgress}
		}
		defer release()
	}

	if err := fn(ctx); err != nil {
		c.metrics.ObserveMutation(m.Name, false)
		n := Notification{Level: LevelError, Message: failureMessage(err, m.FallbackError)}
		c.log.Warn().Err(err).Str("mutation", m.Name).Msg("escritura fallida")
		return n, &MutationError{Notification: n, Err: err}
	}
	c.metrics.ObserveMutation(m.Name, true)

	// la escritura ya ocurrió: un fallo al invalidar solo se registra
	if _, err := c.Invalidate(context.WithoutCancel(ctx), m.Invalidates...); err != nil {
		c.log.Error().Err(err).Str("mutation", m.Name).Msg("invalidación del cache fallida")
	}
	return Notification{Level: LevelSuccess, Message: m.SuccessMessage}, nil
}

// errores cuyo texto ya es apto para el operador
var visibleErrors = []error{
	domain.ErrNoTransition,
	domain.ErrStatusChanged,
	domain.ErrStatusContractUndefined,
	domain.ErrNotFound,
}

func failureMessage(err error, fallback string) string {
	var fe *domain.FetchError
	if errors.As(err, &fe) {
		if msg := fe.BackendMessage(); msg != "" {
			return msg
		}
	}
	for _, known := range visibleErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return fallback
}
