package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/fieldops/internal/cli/formatter"
	"github.com/alexanderramin/fieldops/internal/domain"
	"github.com/alexanderramin/fieldops/internal/filter"
	"github.com/alexanderramin/fieldops/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// newOrderOptionsMsg carries the select options of the new order form.
type newOrderOptionsMsg struct {
	clients   []string
	equipment []*domain.Equipment
	err       error
}

// newOrderView is the new service order form. Submitting runs the create
// action and returns to the previous screen.
type newOrderView struct {
	state     *SharedState
	fields    newOrderFields
	clients   []string
	equipment []*domain.Equipment
	form      *huh.Form
	err       error
}

func newNewOrderView(state *SharedState) *newOrderView {
	return &newOrderView{state: state}
}

func (v *newOrderView) ID() ViewID          { return ViewNewOrder }
func (v *newOrderView) Title() string       { return "Nova Ordem de Serviço" }
func (v *newOrderView) CapturesInput() bool { return v.form != nil }

func (v *newOrderView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "próximo")),
		key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "anterior")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancelar")),
	}
}

func (v *newOrderView) Init() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		orders, err := app.Orders.List(ctx)
		if err != nil {
			return newOrderOptionsMsg{err: err}
		}
		items, err := app.Equipment.List(ctx)
		if err != nil {
			return newOrderOptionsMsg{err: err}
		}
		return newOrderOptionsMsg{clients: filter.ClientNames(orders), equipment: items}
	}
}

func (v *newOrderView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(newOrderOptionsMsg); ok {
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.clients, v.equipment = msg.clients, msg.equipment
		v.form = newOrderForm(&v.fields, v.clients, v.equipment)
		return v, v.form.Init()
	}

	if v.form == nil {
		return v, nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, goBack()
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}
	if v.form.State == huh.StateCompleted {
		app := v.state.App
		req := v.request()
		// A fresh form keeps the values so a failed submit can be retried.
		v.form = newOrderForm(&v.fields, v.clients, v.equipment)
		return v, tea.Batch(cmd, v.form.Init(), func() tea.Msg { return applyNewOrder(app, req) })
	}
	return v, cmd
}

func (v *newOrderView) request() service.NewServiceOrderRequest {
	return service.NewServiceOrderRequest{
		ClientName:   strings.TrimSpace(v.fields.client),
		EquipmentID:  v.fields.equipmentID,
		ServiceType:  strings.TrimSpace(v.fields.serviceType),
		Description:  strings.TrimSpace(v.fields.description),
		ScheduleDate: strings.TrimSpace(v.fields.scheduleDate),
	}
}

// applyNewOrder runs the create action and returns the message that leaves
// the screen, or an error notice.
func applyNewOrder(app *App, req service.NewServiceOrderRequest) tea.Msg {
	if _, err := app.WorkOrders.Create(context.Background(), req); err != nil {
		return noticeMsg{text: "Erro: " + err.Error(), isErr: true}
	}
	return backMsg{notice: "Nova Ordem de Serviço criada com sucesso!"}
}

func (v *newOrderView) View() string {
	if v.err != nil {
		return formatter.StyleRed.Render(fmt.Sprintf("  Erro: %v", v.err))
	}
	if v.form == nil {
		return formatter.Dim("  Carregando...")
	}
	return formatter.StyleHeader.Render("Nova Ordem de Serviço") + "\n\n" + v.form.View()
}
