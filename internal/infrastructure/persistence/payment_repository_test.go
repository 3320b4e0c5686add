package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/quiniela/backend/internal/domain/ledger"
	"github.com/quiniela/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRepositoryFindByDate(t *testing.T) {
	d := setupTestDB(t)
	clientRepo := NewGormClientRepository(d.DB)
	paymentRepo := NewGormPaymentRepository(d.DB)
	ctx := context.Background()

	client := mustClient(t, clientRepo, "Juan Perez", "", "")
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	save := func(at time.Time, amount int64, method string) {
		p, err := ledger.NewPayment(client.ID, at, decimal.NewFromInt(amount), method, "")
		require.NoError(t, err)
		require.NoError(t, paymentRepo.Save(ctx, p))
	}

	save(day.Add(9*time.Hour), 4000, ledger.MethodCash)
	save(day.Add(18*time.Hour), 1000, "transfer")
	save(day.AddDate(0, 0, -1), 700, ledger.MethodCash)
	save(day.AddDate(0, 0, 1), 900, ledger.MethodCash)

	t.Run("returns only the chosen day including non-cash methods", func(t *testing.T) {
		payments, err := paymentRepo.FindByDate(ctx, day.Add(13*time.Hour))
		require.NoError(t, err)
		require.Len(t, payments, 2)

		assert.True(t, payments[0].IsCash())
		assert.False(t, payments[1].IsCash())
	})

	t.Run("attaches the owning client for display", func(t *testing.T) {
		payments, err := paymentRepo.FindByDate(ctx, day)
		require.NoError(t, err)
		require.NotEmpty(t, payments)
		require.NotNil(t, payments[0].Client)
		assert.Equal(t, "Juan Perez", payments[0].Client.Name)
	})

	t.Run("empty day yields no payments", func(t *testing.T) {
		payments, err := paymentRepo.FindByDate(ctx, day.AddDate(0, 1, 0))
		require.NoError(t, err)
		assert.Empty(t, payments)
	})
}

func TestCashMovementRepository(t *testing.T) {
	d := setupTestDB(t)
	repo := NewGormCashMovementRepository(d.DB)
	ctx := context.Background()
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("save and list by date", func(t *testing.T) {
		m, err := ledger.NewCashMovement(day.Add(10*time.Hour), decimal.NewFromInt(500), "Retiro")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, m))
		require.NotZero(t, m.ID)

		other, err := ledger.NewCashMovement(day.AddDate(0, 0, 2), decimal.NewFromInt(300), "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, other))

		movements, err := repo.FindByDate(ctx, day)
		require.NoError(t, err)
		require.Len(t, movements, 1)
		assert.Equal(t, "Retiro", movements[0].Description)
		assert.True(t, movements[0].Amount.Equal(decimal.NewFromInt(500)))
	})

	t.Run("delete removes the withdrawal", func(t *testing.T) {
		m, err := ledger.NewCashMovement(day, decimal.NewFromInt(100), "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, m))

		require.NoError(t, repo.Delete(ctx, m.ID))

		movements, err := repo.FindByDate(ctx, day)
		require.NoError(t, err)
		for _, got := range movements {
			assert.NotEqual(t, m.ID, got.ID)
		}
	})

	t.Run("delete of unknown id returns not found", func(t *testing.T) {
		err := repo.Delete(ctx, 9999)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
