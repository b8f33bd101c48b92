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

// orderCardHeight is the number of lines one card takes, spacing included.
const orderCardHeight = 5

// orderListLoadedMsg carries the service orders for the list screen.
type orderListLoadedMsg struct {
	orders []*domain.ServiceOrder
	err    error
}

// orderListView shows the technician's service orders with a search box and
// status chips.
type orderListView struct {
	state     *SharedState
	orders    []*domain.ServiceOrder
	query     filter.OrderQuery
	search    textinput.Model
	searching bool
	cursor    int
	offset    int
	loading   bool
	err       error
}

func newOrderListView(state *SharedState) *orderListView {
	return &orderListView{
		state:   state,
		search:  newSearchInput("Buscar por cliente, endereço ou nº da OS"),
		query:   filter.OrderQuery{Status: filter.Any()},
		loading: true,
	}
}

// newSearchInput returns the search box used by the list screens.
func newSearchInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "⌕ "
	ti.Placeholder = placeholder
	ti.CharLimit = 100
	return ti
}

func (v *orderListView) ID() ViewID          { return ViewOrderList }
func (v *orderListView) Title() string       { return "Minhas Ordens de Serviço" }
func (v *orderListView) CapturesInput() bool { return v.searching }

func (v *orderListView) ShortHelp() []key.Binding {
	if v.searching {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "aplicar")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "limpar")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ação")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "detalhes")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "buscar")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "status")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "nova OS")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "perfil")),
	}
}

func (v *orderListView) Init() tea.Cmd {
	return v.loadOrders()
}

func (v *orderListView) loadOrders() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		orders, err := app.Orders.List(context.Background())
		return orderListLoadedMsg{orders: orders, err: err}
	}
}

// visible returns the orders passing the current query.
func (v *orderListView) visible() []*domain.ServiceOrder {
	return filter.Orders(v.orders, v.query)
}

func (v *orderListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case orderListLoadedMsg:
		v.loading = false
		v.orders, v.err = msg.orders, msg.err
		v.clampCursor()
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

func (v *orderListView) updateSearch(msg tea.KeyMsg) tea.Cmd {
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

func (v *orderListView) handleKey(msg tea.KeyMsg) tea.Cmd {
	visible := v.visible()

	switch msg.String() {
	case "/":
		v.searching = true
		return v.search.Focus()
	case "tab", "right", "l":
		v.cycleStatus(1)
	case "shift+tab", "left", "h":
		v.cycleStatus(-1)
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
			return primaryActionCmd(visible[v.cursor])
		}
	case "d":
		if v.cursor < len(visible) {
			return navigateTo(nav.ToOrder(nav.ServiceOrderDetail, visible[v.cursor].ID))
		}
	case "n":
		return navigateTo(nav.To(nav.NewServiceOrder))
	case "p":
		return navigateTo(nav.To(nav.Profile))
	case "r":
		v.loading = true
		return v.loadOrders()
	}
	v.scrollToCursor()
	return nil
}

// primaryActionCmd follows the card action of o. Actions without a screen
// only report that they are unavailable.
func primaryActionCmd(o *domain.ServiceOrder) tea.Cmd {
	action := o.PrimaryAction()
	switch action.Target {
	case domain.TargetDetail:
		return navigateTo(nav.ToOrder(nav.ServiceOrderDetail, o.ID))
	case domain.TargetExecute:
		return navigateTo(nav.ToOrder(nav.ExecuteServiceOrder, o.ID))
	default:
		return notify(action.Label + ": indisponível nesta versão.")
	}
}

// cycleStatus moves the status filter by delta through every option.
func (v *orderListView) cycleStatus(delta int) {
	opts := filter.StatusFilterOptions()
	idx := 0
	for i, o := range opts {
		if o == v.query.Status {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(opts)) % len(opts)
	v.query.Status = opts[idx]
	v.cursor, v.offset = 0, 0
}

func (v *orderListView) clampCursor() {
	n := len(v.visible())
	if v.cursor >= n {
		v.cursor = max(n-1, 0)
	}
	v.scrollToCursor()
}

// pageSize is the number of cards that fit in the content area.
func (v *orderListView) pageSize() int {
	return max((v.state.ContentHeight()-4)/orderCardHeight, 1)
}

func (v *orderListView) scrollToCursor() {
	page := v.pageSize()
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+page {
		v.offset = v.cursor - page + 1
	}
}

func (v *orderListView) View() string {
	if v.loading {
		return formatter.Dim("  Carregando ordens de serviço...")
	}
	if v.err != nil {
		return formatter.StyleRed.Render(fmt.Sprintf("  Erro: %v", v.err))
	}

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("Minhas Ordens de Serviço") + "\n")
	b.WriteString(v.search.View() + "\n")
	b.WriteString(v.renderChips() + "\n\n")

	visible := v.visible()
	if len(visible) == 0 {
		b.WriteString(formatter.Dim("  Nenhuma ordem de serviço encontrada."))
		return b.String()
	}

	end := min(v.offset+v.pageSize(), len(visible))
	for i := v.offset; i < end; i++ {
		b.WriteString(formatter.FormatOrderCard(visible[i], i == v.cursor))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if len(visible) > end-v.offset {
		b.WriteString(formatter.Dim(fmt.Sprintf("\n  %d-%d de %d", v.offset+1, end, len(visible))))
	}
	return b.String()
}

// renderChips shows the standard status chips, plus the active filter when
// it was reached by cycling past them.
func (v *orderListView) renderChips() string {
	chips := filter.StatusChips
	current := v.query.Status
	found := false
	for _, c := range chips {
		if c == current {
			found = true
			break
		}
	}
	if !found {
		chips = append(chips[:len(chips):len(chips)], current)
	}

	parts := make([]string, 0, len(chips))
	for _, c := range chips {
		if c == current {
			parts = append(parts, formatter.StyleGreen.Render("["+c.Label()+"]"))
		} else {
			parts = append(parts, formatter.Dim(" "+c.Label()+" "))
		}
	}
	return strings.Join(parts, " ")
}
