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

func TestServiceOrderRepo_List_ResolvesRelations(t *testing.T) {
	repo := repository.NewSQLiteServiceOrderRepo(testutil.NewSeededDB(t))

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 7)

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	assert.Equal(t, []string{"so1", "so2", "so3", "so4", "so5", "so6", "so7"}, ids)

	so1 := orders[0]
	assert.Equal(t, "2024-1138", so1.OSNumber)
	assert.Equal(t, domain.StatusForStart, so1.Status)
	assert.Equal(t, "Condomínio Central", so1.Client.Name)
	require.Len(t, so1.Equipment, 1)
	assert.Equal(t, "e4", so1.Equipment[0].ID)

	assert.Empty(t, orders[1].Equipment)
	assert.Empty(t, orders[1].History)
}

func TestServiceOrderRepo_GetByID_FullOrder(t *testing.T) {
	repo := repository.NewSQLiteServiceOrderRepo(testutil.NewSeededDB(t))

	o, err := repo.GetByID(context.Background(), "so7")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, o.Status)
	assert.Equal(t, "Ana Silva", o.Client.Name)
	assert.Equal(t, "Período da manhã (09:00 - 12:00)", o.Scheduled)

	require.Len(t, o.Equipment, 2)
	assert.Equal(t, "e4", o.Equipment[0].ID)
	assert.Equal(t, "e5", o.Equipment[1].ID)

	require.Len(t, o.History, 2)
	assert.Equal(t, "Técnico atribuído", o.History[0].Action)
	assert.Equal(t, "Ordem de Serviço criada", o.History[1].Action)
}

func TestServiceOrderRepo_EquipmentCopiesCarryChildren(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	require.NoError(t, repository.NewSQLiteClientRepo(database).Create(ctx, &domain.Client{ID: "c1", Name: "Ana"}))
	e := &domain.Equipment{
		ID: "e1", Name: "Split", Type: "Ar Condicionado", Status: domain.EquipmentActive,
		Attachments: []domain.Attachment{{ID: "a1", Name: "manual.pdf", Kind: domain.AttachmentPDF}},
	}
	require.NoError(t, repository.NewSQLiteEquipmentRepo(database).Create(ctx, e))

	orders := repository.NewSQLiteServiceOrderRepo(database)
	o := &domain.ServiceOrder{
		ID: "so1", OSNumber: "1", Client: domain.Client{ID: "c1"}, Status: domain.StatusStarted,
		Equipment: []domain.Equipment{{ID: "e1"}},
	}
	require.NoError(t, orders.Create(ctx, o))

	got, err := orders.GetByID(ctx, "so1")
	require.NoError(t, err)
	require.Len(t, got.Equipment, 1)
	assert.Equal(t, "Split", got.Equipment[0].Name)
	require.Len(t, got.Equipment[0].Attachments, 1)
	assert.Equal(t, "manual.pdf", got.Equipment[0].Attachments[0].Name)
}

func TestServiceOrderRepo_GetByID_NotFound(t *testing.T) {
	repo := repository.NewSQLiteServiceOrderRepo(testutil.NewSeededDB(t))

	_, err := repo.GetByID(context.Background(), "so999")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestServiceOrderRepo_Create_RequiresExistingClient(t *testing.T) {
	repo := repository.NewSQLiteServiceOrderRepo(testutil.NewTestDB(t))

	o := testutil.NewTestOrder()
	assert.Error(t, repo.Create(context.Background(), o))
}

func TestServiceOrderRepo_List_EmptyStore(t *testing.T) {
	repo := repository.NewSQLiteServiceOrderRepo(testutil.NewTestDB(t))

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}
