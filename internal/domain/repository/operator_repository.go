package repository

import (
	"context"

	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

// OperatorRepository persistencia de cuentas del back-office.
type OperatorRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Operator, error)
	FindByID(ctx context.Context, id string) (*entity.Operator, error)
	// Upsert crea o actualiza la cuenta identificada por email.
	Upsert(ctx context.Context, op *entity.Operator) error
	TouchLastLogin(ctx context.Context, id string) error
}
