package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ptc-travel/backoffice/internal/domain/entity"
	"github.com/ptc-travel/backoffice/internal/domain/repository"
)

var _ repository.TransitionRepository = (*TransitionRepo)(nil)

// TransitionRepo bitácora de avances de estado de liquidaciones.
type TransitionRepo struct {
	q Querier
}

// NewTransitionRepository construye el adaptador. Acepta pool o tx (Querier).
func NewTransitionRepository(q Querier) *TransitionRepo {
	return &TransitionRepo{q: q}
}

// Create registra el intento antes de llamar al backend.
func (r *TransitionRepo) Create(ctx context.Context, t *entity.StatusTransition) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Outcome == "" {
		t.Outcome = entity.OutcomePending
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO liquidation_status_transitions (id, liquidation_id, from_status, to_status, operator_id, outcome, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.LiquidationID, string(t.FromStatus), string(t.ToStatus), t.OperatorID,
		string(t.Outcome), nullString(t.Detail), t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create status transition: %w", err)
	}
	return nil
}

// Complete fija el resultado del intento.
func (r *TransitionRepo) Complete(ctx context.Context, id string, outcome entity.TransitionOutcome, detail string) error {
	query := `
		UPDATE liquidation_status_transitions
		SET outcome = $2, detail = $3, completed_at = NOW()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, string(outcome), nullString(detail))
	if err != nil {
		return fmt.Errorf("complete status transition: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("complete status transition: %s no existe", id)
	}
	return nil
}

// ListByLiquidation devuelve los intentos de una liquidación, el más reciente primero.
func (r *TransitionRepo) ListByLiquidation(ctx context.Context, liquidationID int64) ([]*entity.StatusTransition, error) {
	query := `
		SELECT id, liquidation_id, from_status, to_status, operator_id, outcome, detail, created_at, completed_at
		FROM liquidation_status_transitions
		WHERE liquidation_id = $1
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, liquidationID)
	if err != nil {
		return nil, fmt.Errorf("list status transitions: %w", err)
	}
	defer rows.Close()

	var out []*entity.StatusTransition
	for rows.Next() {
		var t entity.StatusTransition
		var from, to, outcome string
		var detail *string
		if err := rows.Scan(&t.ID, &t.LiquidationID, &from, &to, &t.OperatorID, &outcome, &detail, &t.CreatedAt, &t.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan status transition: %w", err)
		}
		t.FromStatus = entity.LiquidationStatus(from)
		t.ToStatus = entity.LiquidationStatus(to)
		t.Outcome = entity.TransitionOutcome(outcome)
		t.Detail = derefString(detail)
		t.CompletedAt = utcPtr(t.CompletedAt)
		out = append(out, &t)
	}
	return out, rows.Err()
}
