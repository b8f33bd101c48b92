package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/fieldops/internal/repository"
	"github.com/alexanderramin/fieldops/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadServices(t *testing.T) {
	database := testutil.NewSeededDB(t)
	ctx := context.Background()

	orders := NewOrderService(repository.NewSQLiteServiceOrderRepo(database))
	all, err := orders.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 7)

	_, err = orders.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	equipment := NewEquipmentService(repository.NewSQLiteEquipmentRepo(database))
	e, err := equipment.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "XZ-12345", e.Serial)

	profile := NewProfileService(repository.NewSQLiteUserRepo(database))
	u, err := profile.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "João da Silva", u.Name)
}

func TestProfileService_WrapsNotFound(t *testing.T) {
	profile := NewProfileService(repository.NewSQLiteUserRepo(testutil.NewTestDB(t)))

	_, err := profile.Get(context.Background())
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Contains(t, err.Error(), "loading profile")
}
