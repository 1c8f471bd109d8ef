package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptc-travel/backoffice/internal/domain/entity"
	"github.com/ptc-travel/backoffice/internal/infrastructure/postgres"
	"github.com/ptc-travel/backoffice/pkg/config"
	"github.com/ptc-travel/backoffice/pkg/logger"
)

// Requiere TEST_DATABASE_URL apuntando a una base desechable.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.NewMigrator(pool, logger.Nop()).Run(ctx))
	// idempotente
	require.NoError(t, postgres.NewMigrator(pool, logger.Nop()).Run(ctx))
	return pool
}

func TestOperatorRepo_UpsertYBusqueda(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := postgres.NewOperatorRepository(pool)

	email := "ops-" + uuid.NewString()[:8] + "@ptc.pe"
	op := &entity.Operator{UserName: "ops", Email: email, PasswordHash: "hash-1", Role: entity.RoleOperations, IsActive: true}
	require.NoError(t, repo.Upsert(ctx, op))
	firstID := op.ID

	again := &entity.Operator{UserName: "ops2", Email: email, PasswordHash: "hash-2", Role: entity.RoleSuperAdmin, IsActive: true}
	require.NoError(t, repo.Upsert(ctx, again))
	assert.Equal(t, firstID, again.ID, "el email identifica la cuenta")

	found, err := repo.FindByEmail(ctx, "  "+email)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "hash-2", found.PasswordHash)
	assert.Equal(t, entity.RoleSuperAdmin, found.Role)
	assert.Nil(t, found.LastLoginAt)

	require.NoError(t, repo.TouchLastLogin(ctx, found.ID))
	byID, err := repo.FindByID(ctx, found.ID)
	require.NoError(t, err)
	require.NotNil(t, byID.LastLoginAt)

	missing, err := repo.FindByID(ctx, "no-es-uuid")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTransitionRepo_Bitacora(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := postgres.NewTransitionRepository(pool)

	liquidationID := time.Now().UnixNano() % 1_000_000_000
	tr := &entity.StatusTransition{
		LiquidationID: liquidationID,
		FromStatus:    entity.StatusPending,
		ToStatus:      entity.StatusOnCourse,
		OperatorID:    uuid.NewString(),
	}
	require.NoError(t, repo.Create(ctx, tr))
	require.NoError(t, repo.Complete(ctx, tr.ID, entity.OutcomeUnsupported, "backend sin contrato"))

	list, err := repo.ListByLiquidation(ctx, liquidationID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.OutcomeUnsupported, list[0].Outcome)
	assert.Equal(t, "backend sin contrato", list[0].Detail)
	assert.NotNil(t, list[0].CompletedAt)

	assert.Error(t, repo.Complete(ctx, uuid.NewString(), entity.OutcomeApplied, ""))
}
