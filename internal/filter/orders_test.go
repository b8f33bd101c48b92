package filter_test

import (
	"testing"

	"github.com/alexanderramin/fieldops/internal/domain"
	"github.com/alexanderramin/fieldops/internal/filter"
	"github.com/alexanderramin/fieldops/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrders_SearchMatchesClientName(t *testing.T) {
	orders, _ := fixture(t)

	got := filter.Orders(orders, filter.OrderQuery{Search: "central"})
	assert.Equal(t, []string{"so1", "so3"}, orderIDs(got))
}

func TestOrders_StatusFilter(t *testing.T) {
	orders, _ := fixture(t)

	got := filter.Orders(orders, filter.OrderQuery{Status: filter.Only(domain.StatusForStart)})
	assert.Equal(t, []string{"so1"}, orderIDs(got))
}

func TestOrders_BlankQueryMatchesAll(t *testing.T) {
	orders, _ := fixture(t)

	for _, q := range []string{"", "   ", "\t"} {
		got := filter.Orders(orders, filter.OrderQuery{Search: q})
		assert.Len(t, got, 7, "query %q", q)
	}
}

func TestOrders_SearchFields(t *testing.T) {
	orders := []*domain.ServiceOrder{
		testutil.NewTestOrder(testutil.WithClient("Ana", "Av. Paulista, 1578"), testutil.WithOSNumber("2024-152")),
		testutil.NewTestOrder(testutil.WithClient("Loja do Zé", "Av. Principal, 500"), testutil.WithOSNumber("2024-1139")),
	}

	cases := []struct {
		query string
		want  int
	}{
		{"PAULISTA", 1},
		{"zé", 1},
		{"zé ", 0},
		{"2024-1", 2},
		{"-152", 1},
		{"av.", 2},
		{"inexistente", 0},
	}
	for _, tc := range cases {
		got := filter.Orders(orders, filter.OrderQuery{Search: tc.query})
		assert.Len(t, got, tc.want, "query %q", tc.query)
	}
}

func TestOrders_SearchMatchesUntrimmedQuery(t *testing.T) {
	orders, _ := fixture(t)

	assert.Equal(t, []string{"so1", "so3"}, orderIDs(filter.Orders(orders, filter.OrderQuery{Search: "central"})))
	assert.Empty(t, filter.Orders(orders, filter.OrderQuery{Search: "central "}))
}

func TestOrders_StatusAndSearchCombine(t *testing.T) {
	orders, _ := fixture(t)

	q := filter.OrderQuery{Status: filter.Only(domain.StatusForQuote), Search: "central"}
	assert.Equal(t, []string{"so3"}, orderIDs(filter.Orders(orders, q)))

	q.Status = filter.Only(domain.StatusCompleted)
	assert.Empty(t, filter.Orders(orders, q))
}

func TestOrders_EmptyCollection(t *testing.T) {
	got := filter.Orders(nil, filter.OrderQuery{Search: "x"})
	assert.Empty(t, got)
}

func TestParseStatusFilter(t *testing.T) {
	f, err := filter.ParseStatusFilter("todos")
	require.NoError(t, err)
	assert.True(t, f.IsAny())
	assert.Equal(t, "Todos", f.Label())

	f, err = filter.ParseStatusFilter("")
	require.NoError(t, err)
	assert.True(t, f.IsAny())

	f, err = filter.ParseStatusFilter("aguardando peças")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAwaitingParts, f.Status())
	assert.Equal(t, "Aguardando Peças", f.Label())

	_, err = filter.ParseStatusFilter("Cancelada")
	assert.Error(t, err)
}

func TestStatusOptions(t *testing.T) {
	opts := filter.StatusFilterOptions()
	require.Len(t, opts, 8)
	assert.Equal(t, filter.StatusChips, opts[:len(filter.StatusChips)])
	for _, s := range domain.ServiceOrderStatuses {
		assert.Contains(t, opts, filter.Only(s))
	}

	labels := make([]string, len(filter.StatusChips))
	for i, c := range filter.StatusChips {
		labels[i] = c.Label()
	}
	assert.Equal(t, []string{"Todos", "Por Iniciar", "Iniciada", "Para Orçamento"}, labels)
}

func TestClientNames_DistinctInOrder(t *testing.T) {
	orders, _ := fixture(t)

	names := filter.ClientNames(orders)
	assert.Equal(t, []string{
		"Condomínio Central", "Loja do Zé", "Hospital Central", "Padaria Pão Quente",
		"Academia Corpo em Forma", "Escritório Advogados", "Ana Silva",
	}, names)

	dup := append(orders, testutil.NewTestOrder(testutil.WithClient("Ana Silva", "")))
	assert.Len(t, filter.ClientNames(dup), 7)
}

func TestOrders_EquipmentIsNotSearched(t *testing.T) {
	split := testutil.NewTestEquipment("Split Sala")
	open := testutil.NewTestOrder(testutil.WithStatus(domain.StatusForStart), testutil.WithEquipment(split))
	done := testutil.NewTestOrder(testutil.WithStatus(domain.StatusCompleted))
	orders := []*domain.ServiceOrder{open, done}

	got := filter.Orders(orders, filter.OrderQuery{Status: filter.Only(domain.StatusForStart)})
	assert.Equal(t, []*domain.ServiceOrder{open}, got)
	assert.Empty(t, filter.Orders(orders, filter.OrderQuery{Search: "split sala"}))
}
