package filter

import (
	"slices"

	"github.com/alexanderramin/fieldops/internal/domain"
)

// Category names one of the equipment filter dimensions.
type Category int

const (
	CategoryType Category = iota
	CategoryStatus
)

// EquipmentQuery is the filter state of the equipment list. Within a category
// the selected values are alternatives; across categories they must all hold.
// An empty category imposes no constraint.
type EquipmentQuery struct {
	Search   string
	Types    []string
	Statuses []domain.EquipmentStatus
}

// Empty reports whether no categorical filter is selected.
func (q EquipmentQuery) Empty() bool {
	return len(q.Types) == 0 && len(q.Statuses) == 0
}

// Selected reports whether value is selected in category c.
func (q EquipmentQuery) Selected(c Category, value string) bool {
	switch c {
	case CategoryType:
		return slices.Contains(q.Types, value)
	case CategoryStatus:
		return slices.Contains(q.Statuses, domain.EquipmentStatus(value))
	}
	return false
}

// Toggle returns a copy of q with value added to or removed from category c.
func (q EquipmentQuery) Toggle(c Category, value string) EquipmentQuery {
	if q.Selected(c, value) {
		return q.Without(c, value)
	}
	out := q.clone()
	switch c {
	case CategoryType:
		out.Types = append(out.Types, value)
	case CategoryStatus:
		out.Statuses = append(out.Statuses, domain.EquipmentStatus(value))
	}
	return out
}

// Without returns a copy of q with value removed from category c.
func (q EquipmentQuery) Without(c Category, value string) EquipmentQuery {
	out := q.clone()
	switch c {
	case CategoryType:
		out.Types = slices.DeleteFunc(out.Types, func(v string) bool { return v == value })
	case CategoryStatus:
		out.Statuses = slices.DeleteFunc(out.Statuses, func(v domain.EquipmentStatus) bool {
			return string(v) == value
		})
	}
	return out
}

// Cleared returns a copy of q with the categorical filters removed and the
// search text kept.
func (q EquipmentQuery) Cleared() EquipmentQuery {
	return EquipmentQuery{Search: q.Search}
}

func (q EquipmentQuery) clone() EquipmentQuery {
	return EquipmentQuery{
		Search:   q.Search,
		Types:    slices.Clone(q.Types),
		Statuses: slices.Clone(q.Statuses),
	}
}

// Equipment returns the equipment matching the categorical filters and the
// search text. Search looks at name, model and serial.
func Equipment(items []*domain.Equipment, q EquipmentQuery) []*domain.Equipment {
	search := normalizeQuery(q.Search)
	return keep(items, func(e *domain.Equipment) bool {
		typeMatch := len(q.Types) == 0 || slices.Contains(q.Types, e.Type)
		statusMatch := len(q.Statuses) == 0 || slices.Contains(q.Statuses, e.Status)
		return typeMatch && statusMatch && matchesAny(search, e.Name, e.Model, e.Serial)
	})
}

// Types returns the distinct equipment types in order of first appearance.
func Types(items []*domain.Equipment) []string {
	return distinct(items, func(e *domain.Equipment) string { return e.Type })
}

// Statuses returns the distinct equipment statuses in order of first
// appearance.
func Statuses(items []*domain.Equipment) []domain.EquipmentStatus {
	return distinct(items, func(e *domain.Equipment) domain.EquipmentStatus { return e.Status })
}

// ClientNames returns the distinct client names of the orders in order of
// first appearance.
func ClientNames(orders []*domain.ServiceOrder) []string {
	return distinct(orders, func(o *domain.ServiceOrder) string { return o.Client.Name })
}

func distinct[T any, K comparable](items []T, key func(T) K) []K {
	seen := make(map[K]bool, len(items))
	var out []K
	for _, it := range items {
		k := key(it)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
