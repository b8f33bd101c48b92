package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/fieldops/internal/cli/formatter"
	"github.com/alexanderramin/fieldops/internal/domain"
	"github.com/alexanderramin/fieldops/internal/nav"
	"github.com/alexanderramin/fieldops/internal/repository"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// orderLoadedMsg carries the service order requested as id, or nil when it
// does not exist.
type orderLoadedMsg struct {
	id    string
	order *domain.ServiceOrder
	err   error
}

// loadOrder returns a command that fetches one order. A missing order is
// not an error.
func loadOrder(app *App, id string) tea.Cmd {
	return func() tea.Msg {
		o, err := app.Orders.GetByID(context.Background(), id)
		if errors.Is(err, repository.ErrNotFound) {
			return orderLoadedMsg{id: id}
		}
		return orderLoadedMsg{id: id, order: o, err: err}
	}
}

// orderDetailView shows every section of one service order.
type orderDetailView struct {
	state   *SharedState
	orderID string
	order   *domain.ServiceOrder
	body    viewport.Model
	loading bool
	err     error
}

func newOrderDetailView(state *SharedState, orderID string) *orderDetailView {
	vp := viewport.New(0, 0)
	vp.KeyMap = outputViewportKeyMap()
	return &orderDetailView{
		state:   state,
		orderID: orderID,
		body:    vp,
		loading: true,
	}
}

func (v *orderDetailView) ID() ViewID { return ViewOrderDetail }
func (v *orderDetailView) Title() string {
	if v.order != nil {
		return "OS #" + v.order.OSNumber
	}
	return "Detalhes da OS"
}

func (v *orderDetailView) ShortHelp() []key.Binding {
	if v.order == nil {
		return nil
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("i", "enter"), key.WithHelp("i", "iniciar serviço")),
		key.NewBinding(key.WithKeys("1"), key.WithHelp("1-9", "equipamento")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "gerenciar equipamentos")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "navegar")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "rolar")),
	}
}

func (v *orderDetailView) Init() tea.Cmd {
	return loadOrder(v.state.App, v.orderID)
}

func (v *orderDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case orderLoadedMsg:
		if msg.id != v.orderID {
			return v, nil
		}
		v.loading = false
		v.order, v.err = msg.order, msg.err
		if v.order != nil {
			v.body.SetContent(formatter.FormatOrderDetail(v.order))
		}
		v.resize()
		return v, nil

	case tea.WindowSizeMsg:
		v.resize()
		return v, nil

	case tea.KeyMsg:
		if v.order == nil {
			return v, nil
		}
		switch k := msg.String(); k {
		case "i", "enter":
			return v, navigateTo(nav.ToOrder(nav.ExecuteServiceOrder, v.order.ID))
		case "m":
			return v, navigateTo(nav.To(nav.EquipmentList))
		case "n":
			return v, notify("Navegar: indisponível nesta versão.")
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			idx := int(k[0] - '1')
			if idx < len(v.order.Equipment) {
				return v, navigateTo(nav.ToEquipment(nav.EquipmentDetail, v.order.Equipment[idx].ID))
			}
			return v, nil
		}
		var cmd tea.Cmd
		v.body, cmd = v.body.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *orderDetailView) resize() {
	v.body.Width = v.state.Width
	v.body.Height = v.state.ContentHeight()
}

func (v *orderDetailView) View() string {
	switch {
	case v.loading:
		return formatter.Dim("  Carregando...")
	case v.err != nil:
		return formatter.StyleRed.Render(fmt.Sprintf("  Erro: %v", v.err))
	case v.order == nil:
		return formatter.StyleYellow.Render("  Ordem de Serviço não encontrada.") + "\n" +
			formatter.Dim("  esc: voltar")
	}
	if v.state.Height == 0 {
		return formatter.FormatOrderDetail(v.order)
	}
	return v.body.View()
}
