package usecase

import (
	"context"
	"strconv"

	"github.com/ptc-travel/backoffice/internal/application/query"
)

// write valida el formulario y, solo si es válido, ejecuta la escritura como mutación.
// Un formulario inválido no llega al backend ni genera notificación: el error
// (*domain.ValidationError) vuelve con los campos a corregir.
func write[D, T any](
	ctx context.Context,
	c *query.Client,
	m query.Mutation,
	validate func() (D, error),
	do func(ctx context.Context, draft D) (T, error),
) (T, query.Notification, error) {
	var out T
	draft, err := validate()
	if err != nil {
		return out, query.Notification{}, err
	}
	n, err := c.Mutate(ctx, m, func(ctx context.Context) error {
		res, err := do(ctx, draft)
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	return out, n, err
}

// guard identifica un envío por operador y destino.
func guard(operatorID string, target int64) string {
	if target == 0 {
		return operatorID
	}
	return operatorID + ":" + strconv.FormatInt(target, 10)
}
