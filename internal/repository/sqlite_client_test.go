package repository_test

import (
	"context"
	"testing"

	"github.com/alexanderramin/fieldops/internal/domain"
	"github.com/alexanderramin/fieldops/internal/repository"
	"github.com/alexanderramin/fieldops/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRepo_List_PreservesInsertionOrder(t *testing.T) {
	repo := repository.NewSQLiteClientRepo(testutil.NewSeededDB(t))

	clients, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 7)

	ids := make([]string, len(clients))
	for i, c := range clients {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7"}, ids)
}

func TestClientRepo_GetByID(t *testing.T) {
	repo := repository.NewSQLiteClientRepo(testutil.NewSeededDB(t))

	c, err := repo.GetByID(context.Background(), "c2")
	require.NoError(t, err)
	assert.Equal(t, "Condomínio Central", c.Name)
	assert.Equal(t, "Rua das Flores, 123", c.Address)
}

func TestClientRepo_GetByID_NotFound(t *testing.T) {
	repo := repository.NewSQLiteClientRepo(testutil.NewSeededDB(t))

	_, err := repo.GetByID(context.Background(), "c999")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestClientRepo_Create_RejectsDuplicateID(t *testing.T) {
	repo := repository.NewSQLiteClientRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Client{ID: "x", Name: "Primeiro"}))
	assert.Error(t, repo.Create(ctx, &domain.Client{ID: "x", Name: "Segundo"}))
}
