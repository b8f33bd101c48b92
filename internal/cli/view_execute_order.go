package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/fieldops/internal/cli/formatter"
	"github.com/alexanderramin/fieldops/internal/domain"
	"github.com/alexanderramin/fieldops/internal/nav"
	"github.com/alexanderramin/fieldops/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// samplePhotos are the evidence photos an execution report starts with.
var samplePhotos = []string{
	"https://picsum.photos/id/1062/200/200",
	"https://picsum.photos/id/1070/200/200",
}

// executeOrderView is the execution report of one service order: report
// text, evidence photos, status update and client signature.
type executeOrderView struct {
	state   *SharedState
	orderID string
	order   *domain.ServiceOrder
	loading bool
	err     error

	report      string
	photos      []string
	photoCursor int
	status      domain.ServiceOrderStatus
	signature   string
}

func newExecuteOrderView(state *SharedState, orderID string) *executeOrderView {
	photos := make([]string, len(samplePhotos))
	copy(photos, samplePhotos)
	return &executeOrderView{
		state:   state,
		orderID: orderID,
		loading: true,
		photos:  photos,
		status:  domain.StatusCompleted,
	}
}

func (v *executeOrderView) ID() ViewID    { return ViewExecuteOrder }
func (v *executeOrderView) Title() string { return "Execução da OS" }

func (v *executeOrderView) ShortHelp() []key.Binding {
	if v.order == nil {
		return nil
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "relatório")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "adicionar foto")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remover foto")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "assinatura")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "limpar assinatura")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "finalizar")),
	}
}

func (v *executeOrderView) Init() tea.Cmd {
	return loadOrder(v.state.App, v.orderID)
}

func (v *executeOrderView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case orderLoadedMsg:
		if msg.id != v.orderID {
			return v, nil
		}
		v.loading = false
		v.order, v.err = msg.order, msg.err
		return v, nil

	case tea.KeyMsg:
		if v.order == nil {
			return v, nil
		}
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *executeOrderView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "r":
		draft := v.report
		return openFormModal("Relatório do Serviço", reportForm(&draft), func() tea.Cmd {
			v.report = strings.TrimSpace(draft)
			return nil
		})
	case "a":
		v.addPhotos(v.state.App.imagePicker().PickImages())
	case "up", "k":
		if v.photoCursor > 0 {
			v.photoCursor--
		}
	case "down", "j":
		if v.photoCursor < len(v.photos)-1 {
			v.photoCursor++
		}
	case "x":
		v.removePhoto(v.photoCursor)
	case "s":
		draft := v.status
		return openFormModal("Atualizar Status", statusForm(&draft), func() tea.Cmd {
			v.status = draft
			return nil
		})
	case "g":
		draft := v.signature
		return openFormModal("Aprovação do Cliente", signatureForm(&draft), func() tea.Cmd {
			v.signature = strings.TrimSpace(draft)
			return nil
		})
	case "c":
		v.signature = ""
	case "f":
		app := v.state.App
		req := v.request()
		return func() tea.Msg { return applyFinalize(app, req) }
	}
	return nil
}

func (v *executeOrderView) addPhotos(uris []string) {
	for _, u := range uris {
		if strings.TrimSpace(u) != "" {
			v.photos = append(v.photos, u)
		}
	}
}

// removePhoto drops the photo at idx. Out-of-range indexes are ignored.
func (v *executeOrderView) removePhoto(idx int) {
	if idx < 0 || idx >= len(v.photos) {
		return
	}
	v.photos = append(v.photos[:idx], v.photos[idx+1:]...)
	if v.photoCursor >= len(v.photos) {
		v.photoCursor = max(len(v.photos)-1, 0)
	}
}

func (v *executeOrderView) request() service.FinalizeServiceOrderRequest {
	photos := make([]string, len(v.photos))
	copy(photos, v.photos)
	return service.FinalizeServiceOrderRequest{
		ServiceOrderID: v.orderID,
		Report:         v.report,
		Photos:         photos,
		Status:         v.status,
		Signature:      v.signature,
	}
}

// applyFinalize runs the finalize action and returns the message that
// leaves the screen, or an error notice.
func applyFinalize(app *App, req service.FinalizeServiceOrderRequest) tea.Msg {
	if _, err := app.WorkOrders.Finalize(context.Background(), req); err != nil {
		return noticeMsg{text: "Erro: " + err.Error(), isErr: true}
	}
	return navigateMsg{
		frame:  nav.To(nav.ServiceOrderList),
		notice: "Ordem de Serviço Finalizada!",
	}
}

func (v *executeOrderView) View() string {
	if v.loading {
		return formatter.Dim("  Carregando...")
	}
	if v.err != nil {
		return formatter.StyleRed.Render(fmt.Sprintf("  Erro: %v", v.err))
	}
	if v.order == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render(formatter.OrderTitle(v.order)) + "\n")
	b.WriteString(formatter.Dim(v.order.ServiceType) + "\n\n")

	b.WriteString(formatter.Header("Relatório do Serviço") + "\n")
	if v.report == "" {
		b.WriteString("  " + formatter.Dim("Descreva o trabalho realizado, peças utilizadas e observações...") + "\n\n")
	} else {
		b.WriteString(formatter.Indent(v.report, "  ") + "\n\n")
	}

	b.WriteString(formatter.Header(fmt.Sprintf("Fotos de Evidência (%d)", len(v.photos))) + "\n")
	if len(v.photos) == 0 {
		b.WriteString("  " + formatter.Dim("Nenhuma foto.") + "\n")
	}
	for i, p := range v.photos {
		cursor := "  "
		if i == v.photoCursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("%s%d. %s\n", cursor, i+1, formatter.Truncate(p, max(v.state.Width-8, 20))))
	}
	b.WriteString("\n")

	b.WriteString(formatter.Header("Atualizar Status") + "\n")
	b.WriteString("  " + formatter.OrderStatusStyle(v.status).Render(strings.ToUpper(string(v.status))) + "\n\n")

	b.WriteString(formatter.Header("Aprovação do Cliente") + "\n")
	if v.signature == "" {
		b.WriteString("  " + formatter.Dim("Área de assinatura do cliente") + "\n\n")
	} else {
		b.WriteString("  " + formatter.StyleBold.Render(v.signature) + "\n\n")
	}

	b.WriteString("  " + formatter.StyleGreen.Render("[ Finalizar Ordem de Serviço ]"))
	return b.String()
}
