package filter_test

import (
	"testing"

	"github.com/alexanderramin/fieldops/internal/domain"
	"github.com/alexanderramin/fieldops/internal/filter"
	"github.com/alexanderramin/fieldops/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestEquipment_TypeFilter(t *testing.T) {
	_, items := fixture(t)

	got := filter.Equipment(items, filter.EquipmentQuery{Types: []string{"Ar Condicionado"}})
	assert.Equal(t, []string{"e1", "e4"}, equipmentIDs(got))
}

func TestEquipment_OrWithinAndAcross(t *testing.T) {
	_, items := fixture(t)

	q := filter.EquipmentQuery{Types: []string{"Bomba", "Gerador"}}
	assert.Equal(t, []string{"e2", "e3"}, equipmentIDs(filter.Equipment(items, q)))

	q.Statuses = []domain.EquipmentStatus{domain.EquipmentActive}
	assert.Equal(t, []string{"e2"}, equipmentIDs(filter.Equipment(items, q)))

	q.Statuses = []domain.EquipmentStatus{domain.EquipmentActive, domain.EquipmentInactive}
	assert.Equal(t, []string{"e2", "e3"}, equipmentIDs(filter.Equipment(items, q)))
}

func TestEquipment_SearchFields(t *testing.T) {
	_, items := fixture(t)

	cases := map[string][]string{
		"split":     {"e4"},
		"windfree":  {"e4"},
		"bh-98765":  {"e2"},
		"ar ":       {"e1", "e4"},
		"  ":        {"e1", "e2", "e3", "e4", "e5"},
		"inverse":   {"e5"},
		"nenhum-eq": {},
	}
	for query, want := range cases {
		got := filter.Equipment(items, filter.EquipmentQuery{Search: query})
		assert.Equal(t, want, equipmentIDs(got), "query %q", query)
	}
}

func TestEquipment_SearchIgnoresLocationAndType(t *testing.T) {
	_, items := fixture(t)

	got := filter.Equipment(items, filter.EquipmentQuery{Search: "subsolo"})
	assert.Empty(t, got)

	got = filter.Equipment(items, filter.EquipmentQuery{Search: "refrigeração"})
	assert.Empty(t, got)
}

func TestEquipmentQuery_ToggleWithoutCleared(t *testing.T) {
	var q filter.EquipmentQuery
	assert.True(t, q.Empty())

	q = q.Toggle(filter.CategoryType, "Bomba")
	q = q.Toggle(filter.CategoryStatus, "Ativo")
	assert.True(t, q.Selected(filter.CategoryType, "Bomba"))
	assert.True(t, q.Selected(filter.CategoryStatus, "Ativo"))
	assert.False(t, q.Empty())

	toggledOff := q.Toggle(filter.CategoryType, "Bomba")
	assert.False(t, toggledOff.Selected(filter.CategoryType, "Bomba"))
	assert.True(t, q.Selected(filter.CategoryType, "Bomba"), "Toggle must not modify the receiver")

	removed := q.Without(filter.CategoryStatus, "Ativo")
	assert.Empty(t, removed.Statuses)
	assert.Equal(t, []string{"Bomba"}, removed.Types)

	q.Search = "p-50"
	cleared := q.Cleared()
	assert.True(t, cleared.Empty())
	assert.Equal(t, "p-50", cleared.Search)
}

func TestEquipmentOptions_DistinctInOrder(t *testing.T) {
	_, items := fixture(t)

	assert.Equal(t, []string{"Ar Condicionado", "Bomba", "Gerador", "Refrigeração"}, filter.Types(items))
	assert.Equal(t, []domain.EquipmentStatus{domain.EquipmentActive, domain.EquipmentInactive}, filter.Statuses(items))
	assert.Empty(t, filter.Types(nil))
}

func TestEquipment_BuiltItems(t *testing.T) {
	pump := testutil.NewTestEquipment("Bomba Poço", testutil.WithSerial("PX-1"), testutil.WithModel("Turbo 9"))
	chiller := testutil.NewTestEquipment("Chiller",
		testutil.WithType("Refrigeração"),
		testutil.WithEquipmentStatus(domain.EquipmentInactive))
	items := []*domain.Equipment{pump, chiller}

	assert.Equal(t, []*domain.Equipment{pump}, filter.Equipment(items, filter.EquipmentQuery{Search: "turbo"}))
	assert.Equal(t, []*domain.Equipment{pump}, filter.Equipment(items, filter.EquipmentQuery{Search: "px-1"}))

	q := filter.EquipmentQuery{
		Types:    []string{"Refrigeração"},
		Statuses: []domain.EquipmentStatus{domain.EquipmentInactive},
	}
	assert.Equal(t, []*domain.Equipment{chiller}, filter.Equipment(items, q))

	q.Statuses = []domain.EquipmentStatus{domain.EquipmentActive}
	assert.Empty(t, filter.Equipment(items, q))
}
