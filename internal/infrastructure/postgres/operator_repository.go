package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ptc-travel/backoffice/internal/domain/entity"
	"github.com/ptc-travel/backoffice/internal/domain/repository"
)

var _ repository.OperatorRepository = (*OperatorRepo)(nil)

// OperatorRepo cuentas del back-office sobre PostgreSQL.
type OperatorRepo struct {
	q Querier
}

// NewOperatorRepository construye el adaptador. Acepta pool o tx (Querier).
func NewOperatorRepository(q Querier) *OperatorRepo {
	return &OperatorRepo{q: q}
}

const operatorColumns = `id, user_name, email, password_hash, role, is_active, last_login_at, created_at, updated_at`

// FindByEmail busca sin distinguir mayúsculas. Devuelve (nil, nil) si no existe.
func (r *OperatorRepo) FindByEmail(ctx context.Context, email string) (*entity.Operator, error) {
	query := `SELECT ` + operatorColumns + ` FROM operators WHERE LOWER(email) = LOWER($1)`
	return r.scanOne(ctx, "find operator by email", query, strings.TrimSpace(email))
}

// FindByID devuelve (nil, nil) si no existe.
func (r *OperatorRepo) FindByID(ctx context.Context, id string) (*entity.Operator, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	query := `SELECT ` + operatorColumns + ` FROM operators WHERE id = $1`
	return r.scanOne(ctx, "find operator by id", query, id)
}

func (r *OperatorRepo) scanOne(ctx context.Context, op, query string, arg any) (*entity.Operator, error) {
	var o entity.Operator
	var role string
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&o.ID, &o.UserName, &o.Email, &o.PasswordHash, &role, &o.IsActive,
		&o.LastLoginAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	o.Role = entity.StaffRole(role)
	o.LastLoginAt = utcPtr(o.LastLoginAt)
	return &o, nil
}

// Upsert crea la cuenta o actualiza nombre, hash, rol y estado si el email ya existe.
// op.ID queda con el id persistido.
func (r *OperatorRepo) Upsert(ctx context.Context, op *entity.Operator) error {
	if op.ID == "" {
		op.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if op.CreatedAt.IsZero() {
		op.CreatedAt = now
	}
	op.UpdatedAt = now

	query := `
		INSERT INTO operators (id, user_name, email, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT ((LOWER(email))) DO UPDATE SET
			user_name = EXCLUDED.user_name,
			password_hash = EXCLUDED.password_hash,
			role = EXCLUDED.role,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		op.ID, op.UserName, strings.TrimSpace(op.Email), op.PasswordHash, string(op.Role), op.IsActive,
		op.CreatedAt, op.UpdatedAt,
	).Scan(&op.ID, &op.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert operator: %w", err)
	}
	return nil
}

func (r *OperatorRepo) TouchLastLogin(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `UPDATE operators SET last_login_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("touch operator last login: %w", err)
	}
	return nil
}
