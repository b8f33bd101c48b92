package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/fieldops/internal/cli/formatter"
	"github.com/alexanderramin/fieldops/internal/domain"
	"github.com/alexanderramin/fieldops/internal/filter"
	"github.com/alexanderramin/fieldops/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// equipmentRowHeight is the number of lines one equipment row takes.
const equipmentRowHeight = 3

// equipmentListLoadedMsg carries the equipment for the list screen.
type equipmentListLoadedMsg struct {
	items []*domain.Equipment
	err   error
}

// equipmentFilterAppliedMsg replaces the categorical filters of the list.
type equipmentFilterAppliedMsg struct {
	query filter.EquipmentQuery
}

// filterChip is one active categorical filter.
type filterChip struct {
	category filter.Category
	value    string
}

func (c filterChip) label() string {
	if c.category == filter.CategoryType {
		return "Tipo: " + c.value
	}
	return "Status: " + c.value
}

// equipmentListView shows the client's equipment with search, a filter
// modal and removable filter chips.
type equipmentListView struct {
	state     *SharedState
	items     []*domain.Equipment
	query     filter.EquipmentQuery
	search    textinput.Model
	searching bool
	cursor    int
	offset    int
	loading   bool
	err       error
}

func newEquipmentListView(state *SharedState) *equipmentListView {
	return &equipmentListView{
		state:   state,
		search:  newSearchInput("Buscar por nome, modelo ou série..."),
		loading: true,
	}
}

func (v *equipmentListView) ID() ViewID          { return ViewEquipmentList }
func (v *equipmentListView) Title() string       { return "Equipamentos do Cliente" }
func (v *equipmentListView) CapturesInput() bool { return v.searching }

func (v *equipmentListView) ShortHelp() []key.Binding {
	if v.searching {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "aplicar")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "limpar")),
		}
	}
	hints := []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detalhes")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "buscar")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filtros")),
	}
	if !v.query.Empty() {
		hints = append(hints,
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remover filtro")),
			key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "limpar filtros")),
		)
	}
	return hints
}

func (v *equipmentListView) Init() tea.Cmd {
	return v.loadEquipment()
}

func (v *equipmentListView) loadEquipment() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		items, err := app.Equipment.List(context.Background())
		return equipmentListLoadedMsg{items: items, err: err}
	}
}

func (v *equipmentListView) visible() []*domain.Equipment {
	return filter.Equipment(v.items, v.query)
}

// chips lists the active filters, types first, in selection order.
func (v *equipmentListView) chips() []filterChip {
	chips := make([]filterChip, 0, len(v.query.Types)+len(v.query.Statuses))
	for _, t := range v.query.Types {
		chips = append(chips, filterChip{category: filter.CategoryType, value: t})
	}
	for _, s := range v.query.Statuses {
		chips = append(chips, filterChip{category: filter.CategoryStatus, value: string(s)})
	}
	return chips
}

func (v *equipmentListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case equipmentListLoadedMsg:
		v.loading = false
		v.items, v.err = msg.items, msg.err
		v.clampCursor()
		return v, nil

	case equipmentFilterAppliedMsg:
		msg.query.Search = v.query.Search
		v.query = msg.query
		v.cursor, v.offset = 0, 0
		return v, nil

	case tea.KeyMsg:
		if v.searching {
			return v, v.updateSearch(msg)
		}
		return v, v.handleKey(msg)
	}

	if v.searching {
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *equipmentListView) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		v.searching = false
		v.search.Blur()
		return nil
	case tea.KeyEsc:
		v.searching = false
		v.search.Blur()
		v.search.SetValue("")
		v.query.Search = ""
		v.clampCursor()
		return nil
	}
	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	v.query.Search = v.search.Value()
	v.clampCursor()
	return cmd
}

func (v *equipmentListView) handleKey(msg tea.KeyMsg) tea.Cmd {
	visible := v.visible()

	switch msg.String() {
	case "/":
		v.searching = true
		return v.search.Focus()
	case "f":
		return v.openFilter()
	case "x":
		if chips := v.chips(); len(chips) > 0 {
			last := chips[len(chips)-1]
			v.query = v.query.Without(last.category, last.value)
			v.clampCursor()
		}
	case "c":
		v.query = v.query.Cleared()
		v.clampCursor()
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(visible)-1 {
			v.cursor++
		}
	case "enter":
		if v.cursor < len(visible) {
			return navigateTo(nav.ToEquipment(nav.EquipmentDetail, visible[v.cursor].ID))
		}
	}
	v.scrollToCursor()
	return nil
}

// openFilter shows the type/status checklists seeded with the current
// selection. The result replaces the filters only when confirmed.
func (v *equipmentListView) openFilter() tea.Cmd {
	types := filter.Types(v.items)
	statuses := make([]string, 0)
	for _, s := range filter.Statuses(v.items) {
		statuses = append(statuses, string(s))
	}

	selectedTypes := append([]string(nil), v.query.Types...)
	selectedStatuses := make([]string, 0, len(v.query.Statuses))
	for _, s := range v.query.Statuses {
		selectedStatuses = append(selectedStatuses, string(s))
	}

	form := equipmentFilterForm(types, statuses, &selectedTypes, &selectedStatuses)
	return openFormModal("Filtros", form, func() tea.Cmd {
		return func() tea.Msg {
			return equipmentFilterAppliedMsg{query: buildEquipmentQuery(selectedTypes, selectedStatuses)}
		}
	})
}

func buildEquipmentQuery(types, statuses []string) filter.EquipmentQuery {
	var q filter.EquipmentQuery
	for _, t := range types {
		q = q.Toggle(filter.CategoryType, t)
	}
	for _, s := range statuses {
		q = q.Toggle(filter.CategoryStatus, s)
	}
	return q
}

func (v *equipmentListView) clampCursor() {
	n := len(v.visible())
	if v.cursor >= n {
		v.cursor = max(n-1, 0)
	}
	v.scrollToCursor()
}

func (v *equipmentListView) pageSize() int {
	return max((v.state.ContentHeight()-5)/equipmentRowHeight, 1)
}

func (v *equipmentListView) scrollToCursor() {
	page := v.pageSize()
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+page {
		v.offset = v.cursor - page + 1
	}
}

func (v *equipmentListView) View() string {
	if v.loading {
		return formatter.Dim("  Carregando equipamentos...")
	}
	if v.err != nil {
		return formatter.StyleRed.Render(fmt.Sprintf("  Erro: %v", v.err))
	}

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("Equipamentos do Cliente") + "\n")
	b.WriteString(v.search.View() + "\n")
	if chips := v.chips(); len(chips) > 0 {
		labels := make([]string, 0, len(chips))
		for _, c := range chips {
			labels = append(labels, formatter.StyleBlue.Render("["+c.label()+" ×]"))
		}
		b.WriteString(strings.Join(labels, " ") + "  " + formatter.Dim("Limpar filtros (c)") + "\n")
	}
	b.WriteString("\n")

	visible := v.visible()
	if len(visible) == 0 {
		b.WriteString(formatter.Dim("  Nenhum equipamento encontrado."))
		return b.String()
	}

	end := min(v.offset+v.pageSize(), len(visible))
	for i := v.offset; i < end; i++ {
		b.WriteString(formatter.FormatEquipmentRow(visible[i], i == v.cursor))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if len(visible) > end-v.offset {
		b.WriteString(formatter.Dim(fmt.Sprintf("\n  %d-%d de %d", v.offset+1, end, len(visible))))
	}
	return b.String()
}
