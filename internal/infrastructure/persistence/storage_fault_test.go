package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/quiniela/backend/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Storage-level faults must surface as plain errors, never panic and never
// masquerade as not-found.
func TestClientRepositoryStorageFault(t *testing.T) {
	m := testutil.NewMockDB(t)
	defer func() {
		_ = m.Close()
	}()
	repo := NewGormClientRepository(m.DB)
	ctx := context.Background()

	t.Run("find all propagates the store error", func(t *testing.T) {
		m.Mock.ExpectQuery(`SELECT .* FROM "clients"`).
			WillReturnError(errors.New("disk I/O error"))

		_, err := repo.FindAll(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk I/O error")
	})

	t.Run("count propagates the store error", func(t *testing.T) {
		m.Mock.ExpectQuery(`SELECT count\(\*\) FROM "clients"`).
			WillReturnError(errors.New("disk I/O error"))

		_, err := repo.Count(ctx)
		require.Error(t, err)
	})

	require.NoError(t, m.Mock.ExpectationsWereMet())
}
