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

func TestUserRepo_Get_SeededUser(t *testing.T) {
	repo := repository.NewSQLiteUserRepo(testutil.NewSeededDB(t))

	u, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "123456", u.ID)
	assert.Equal(t, "João da Silva", u.Name)
	assert.Equal(t, "joao.silva@empresa.com", u.Email)
}

func TestUserRepo_Get_NotFoundOnEmptyStore(t *testing.T) {
	repo := repository.NewSQLiteUserRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepo_Upsert_UpdatesExisting(t *testing.T) {
	repo := repository.NewSQLiteUserRepo(testutil.NewSeededDB(t))
	ctx := context.Background()

	updated := &domain.User{ID: "123456", Name: "João S.", Email: "js@empresa.com", Phone: "(11) 1111-1111"}
	require.NoError(t, repo.Upsert(ctx, updated))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "João S.", got.Name)
	assert.Equal(t, "js@empresa.com", got.Email)
	assert.Empty(t, got.Avatar)
}
