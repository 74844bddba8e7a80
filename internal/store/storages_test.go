package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
)

func TestNewStorages_EmptyDSNSelectsMemoryStore(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{}, logger.Nop())
	require.NoError(t, err)

	assert.IsType(t, &memoryUserRepository{}, s.UserRepository)
	assert.NoError(t, s.Close())
}

func TestNewStorages_RejectsPersistentDSN(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: "users.db"}}, logger.Nop())
	assert.ErrorIs(t, err, ErrNotInMemoryDSN)
}

func TestNewStorages_SQLite(t *testing.T) {
	ctx := context.Background()

	s, err := NewStorages(ctx, config.Storage{DB: config.DB{DSN: ":memory:"}}, logger.Nop())
	if err != nil {
		// go-sqlite3 needs cgo
		t.Skipf("sqlite is not available: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	repo := s.UserRepository
	assert.IsType(t, &userRepository{}, repo)

	al, err := repo.CreateUser(ctx, models.User{Name: "Al", Email: "al@x.com"})
	require.NoError(t, err)
	bo, err := repo.CreateUser(ctx, models.User{Name: "Bo", Email: "bo@x.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), al.ID)
	assert.Equal(t, int64(2), bo.ID)

	require.NoError(t, repo.DeleteUser(ctx, bo.ID))
	cy, err := repo.CreateUser(ctx, models.User{Name: "Cy", Email: "cy@x.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), cy.ID)

	updated, err := repo.UpdateUser(ctx, models.User{ID: al.ID, Name: "Alan", Email: "alan@x.com"})
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: 1, Name: "Alan", Email: "alan@x.com"}, updated)

	users, total, err := repo.ListUsers(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, []models.User{updated, cy}, users)

	_, err = repo.FindUserByID(ctx, bo.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
