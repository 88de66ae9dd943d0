package registrants

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryAssignsSequentialIDs(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first := &Registrant{FirstName: "Alice", LastName: "Johnson", Email: "alice@teste.com", Password: "Password@123"}
	second := &Registrant{FirstName: "Bruno", LastName: "Costa", Email: "bruno@teste.com", Password: "Password@123"}

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
}

func TestMemoryRepositoryEnforcesUniqueEmail(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &Registrant{FirstName: "Alice", LastName: "Johnson", Email: "alice@teste.com", Password: "Password@123"}))

	err := repo.Create(ctx, &Registrant{FirstName: "Alicia", LastName: "Jones", Email: "alice@teste.com", Password: "Outra#Senha9"})
	require.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, 1, repo.Count())
}

func TestMemoryRepositoryProjection(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &Registrant{
		FirstName: "Alice",
		LastName:  "Johnson",
		Email:     "alice@teste.com",
		Phone:     "1122334455",
		Password:  "Password@123",
	}))

	got, err := repo.GetByEmail(ctx, "alice@teste.com")
	require.NoError(t, err)
	assert.Empty(t, got.LastName)
	assert.Empty(t, got.Phone)
	assert.Empty(t, got.Password)

	exists, err := repo.EmailExists(ctx, "alice@teste.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.EmailExists(ctx, "ghost@teste.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
