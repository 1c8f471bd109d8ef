package repository

import (
	"context"

	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

// TransitionRepository bitácora de intentos de avance de estado.
type TransitionRepository interface {
	Create(ctx context.Context, t *entity.StatusTransition) error
	Complete(ctx context.Context, id string, outcome entity.TransitionOutcome, detail string) error
	ListByLiquidation(ctx context.Context, liquidationID int64) ([]*entity.StatusTransition, error)
}
