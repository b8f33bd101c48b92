package filter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/fieldops/internal/domain"
)

// AllStatuses is the status filter label that imposes no constraint.
const AllStatuses = "Todos"

// StatusFilter is a single-select filter over service order statuses. The
// zero value is AllStatuses.
type StatusFilter struct {
	status domain.ServiceOrderStatus
}

// Any returns the unconstrained filter.
func Any() StatusFilter { return StatusFilter{} }

// Only returns a filter that keeps orders with status s.
func Only(s domain.ServiceOrderStatus) StatusFilter { return StatusFilter{status: s} }

// ParseStatusFilter accepts AllStatuses or any service order status.
func ParseStatusFilter(label string) (StatusFilter, error) {
	if l := strings.TrimSpace(label); l == "" || strings.EqualFold(l, AllStatuses) {
		return Any(), nil
	}
	s, err := domain.ParseServiceOrderStatus(label)
	if err != nil {
		return Any(), fmt.Errorf("parsing status filter: %w", err)
	}
	return Only(s), nil
}

// IsAny reports whether the filter is unconstrained.
func (f StatusFilter) IsAny() bool { return f.status == "" }

// Status returns the selected status, or "" when unconstrained.
func (f StatusFilter) Status() domain.ServiceOrderStatus { return f.status }

// Label is the chip text for the filter.
func (f StatusFilter) Label() string {
	if f.IsAny() {
		return AllStatuses
	}
	return string(f.status)
}

func (f StatusFilter) matches(o *domain.ServiceOrder) bool {
	return f.IsAny() || o.Status == f.status
}

// StatusChips are the status filters offered on the order list, in display
// order.
var StatusChips = []StatusFilter{
	Any(),
	Only(domain.StatusForStart),
	Only(domain.StatusStarted),
	Only(domain.StatusForQuote),
}

// StatusFilterOptions returns the chips followed by the statuses that have
// no chip, in declaration order.
func StatusFilterOptions() []StatusFilter {
	opts := make([]StatusFilter, 0, len(domain.ServiceOrderStatuses)+1)
	opts = append(opts, StatusChips...)
	for _, s := range domain.ServiceOrderStatuses {
		if !slices.Contains(opts, Only(s)) {
			opts = append(opts, Only(s))
		}
	}
	return opts
}

// OrderQuery is the filter state of the service order list.
type OrderQuery struct {
	Status StatusFilter
	Search string
}

// Orders returns the orders matching both the status filter and the search
// text. Search looks at client name, client address and order number.
func Orders(orders []*domain.ServiceOrder, q OrderQuery) []*domain.ServiceOrder {
	search := normalizeQuery(q.Search)
	return keep(orders, func(o *domain.ServiceOrder) bool {
		return q.Status.matches(o) &&
			matchesAny(search, o.Client.Name, o.Client.Address, o.OSNumber)
	})
}
