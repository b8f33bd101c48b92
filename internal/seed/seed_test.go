package seed_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/fieldops/internal/db"
	"github.com/alexanderramin/fieldops/internal/domain"
	"github.com/alexanderramin/fieldops/internal/repository"
	"github.com/alexanderramin/fieldops/internal/seed"
	"github.com/alexanderramin/fieldops/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalFixture = `
user:
  id: u1
  name: Técnico
clients:
  - id: c1
    name: Ana
equipment:
  - id: e1
    name: Bomba P-1
    type: Bomba
    status: Ativo
service_orders:
  - id: so1
    os_number: "1"
    client: c1
    status: Iniciada
    equipment: [e1]
`

func TestDefault_ParsesEmbeddedFixture(t *testing.T) {
	ds, err := seed.Default()
	require.NoError(t, err)

	assert.Equal(t, "123456", ds.User.ID)
	assert.Len(t, ds.Clients, 7)
	assert.Len(t, ds.Equipment, 5)
	assert.Len(t, ds.ServiceOrders, 7)
}

func TestToServiceOrders_ResolvesReferences(t *testing.T) {
	ds, err := seed.Default()
	require.NoError(t, err)

	orders := ds.ToServiceOrders()
	require.Len(t, orders, 7)

	so7 := orders[6]
	assert.Equal(t, "so7", so7.ID)
	assert.Equal(t, "Ana Silva", so7.Client.Name)
	require.Len(t, so7.Equipment, 2)
	assert.Equal(t, "Ar Condicionado Split", so7.Equipment[0].Name)
	assert.Equal(t, "Geladeira Frost Free", so7.Equipment[1].Name)
	assert.Equal(t, domain.StatusPending, so7.Status)
}

func TestToEquipment_CarriesChildren(t *testing.T) {
	ds, err := seed.Default()
	require.NoError(t, err)

	items := ds.ToEquipment()
	require.Len(t, items[0].Attachments, 2)
	assert.Equal(t, domain.AttachmentPDF, items[0].Attachments[0].Kind)
	assert.Len(t, items[0].ServiceHistory, 3)
}

func TestParse_Minimal(t *testing.T) {
	ds, err := seed.Parse([]byte(minimalFixture))
	require.NoError(t, err)
	assert.Equal(t, []string{"e1"}, ds.ServiceOrders[0].Equipment)
}

func TestApply_MinimalFixture(t *testing.T) {
	ds, err := seed.Parse([]byte(minimalFixture))
	require.NoError(t, err)
	database := testutil.SeedDB(t, testutil.NewTestDB(t), ds)

	order, err := repository.NewSQLiteServiceOrderRepo(database).GetByID(context.Background(), "so1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", order.Client.Name)
	require.Len(t, order.Equipment, 1)
	assert.Equal(t, "Bomba P-1", order.Equipment[0].Name)
	assert.Equal(t, domain.StatusStarted, order.Status)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := seed.Parse([]byte("user:\n  id: u1\n  name: X\n  nickname: y\n"))
	assert.Error(t, err)
}

func TestParse_ReportsAllProblems(t *testing.T) {
	bad := `
user:
  id: ""
  name: X
clients:
  - id: c1
    name: Ana
  - id: c1
    name: Duplicada
equipment:
  - id: e1
    name: Bomba
    type: Bomba
    status: Quebrado
service_orders:
  - id: so1
    os_number: "1"
    client: c9
    status: Cancelada
    equipment: [e1, e1, e7]
`
	_, err := seed.Parse([]byte(bad))
	require.Error(t, err)

	msg := err.Error()
	for _, want := range []string{
		"user.id is required",
		`clients[1].id: duplicate id "c1"`,
		`equipment[0].status: invalid value "Quebrado"`,
		`service_orders[0].status: invalid value "Cancelada"`,
		`service_orders[0].client: ref "c9" not found`,
		`service_orders[0].equipment[1]: duplicate ref "e1"`,
		`service_orders[0].equipment[2]: ref "e7" not found`,
	} {
		assert.Contains(t, msg, want)
	}
}

func TestLoadFile(t *testing.T) {
	ds, err := seed.LoadFile("")
	require.NoError(t, err)
	assert.Len(t, ds.ServiceOrders, 7)

	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalFixture), 0o644))
	ds, err = seed.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, ds.ServiceOrders, 1)

	_, err = seed.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApply_LoadsStore(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	ds, err := seed.Default()
	require.NoError(t, err)
	require.NoError(t, seed.Apply(ctx, db.NewSQLiteUnitOfWork(database), ds))

	orders, err := repository.NewSQLiteServiceOrderRepo(database).List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 7)

	user, err := repository.NewSQLiteUserRepo(database).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "João da Silva", user.Name)
}

func TestApply_RollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	injected := errors.New("disk on fire")

	ds, err := seed.Default()
	require.NoError(t, err)

	uow := &testutil.FailingUoW{DB: database, FailAt: 5, Err: injected}
	err = seed.Apply(ctx, uow, ds)
	require.ErrorIs(t, err, injected)

	clients, err := repository.NewSQLiteClientRepo(database).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)

	_, err = repository.NewSQLiteUserRepo(database).Get(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
