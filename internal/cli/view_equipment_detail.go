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

// equipmentLoadedMsg answers a load of id. Views showing another id drop it.
type equipmentLoadedMsg struct {
	id   string
	item *domain.Equipment
	err  error
}

// equipmentDetailView shows one equipment. An unknown id renders nothing.
type equipmentDetailView struct {
	state       *SharedState
	equipmentID string
	item        *domain.Equipment
	body        viewport.Model
	loading     bool
	err         error
}

func newEquipmentDetailView(state *SharedState, equipmentID string) *equipmentDetailView {
	vp := viewport.New(0, 0)
	vp.KeyMap = outputViewportKeyMap()
	return &equipmentDetailView{
		state:       state,
		equipmentID: equipmentID,
		body:        vp,
		loading:     true,
	}
}

func (v *equipmentDetailView) ID() ViewID    { return ViewEquipmentDetail }
func (v *equipmentDetailView) Title() string { return "Detalhes do Equipamento" }

func (v *equipmentDetailView) ShortHelp() []key.Binding {
	if v.item == nil {
		return nil
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "nova OS")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "adicionar anexo")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "rolar")),
	}
}

func (v *equipmentDetailView) Init() tea.Cmd {
	app := v.state.App
	id := v.equipmentID
	return func() tea.Msg {
		e, err := app.Equipment.GetByID(context.Background(), id)
		if errors.Is(err, repository.ErrNotFound) {
			return equipmentLoadedMsg{id: id}
		}
		return equipmentLoadedMsg{id: id, item: e, err: err}
	}
}

func (v *equipmentDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case equipmentLoadedMsg:
		if msg.id != v.equipmentID {
			return v, nil
		}
		v.loading = false
		v.item, v.err = msg.item, msg.err
		if v.item != nil {
			v.body.SetContent(formatter.FormatEquipmentDetail(v.item))
		}
		v.resize()
		return v, nil

	case tea.WindowSizeMsg:
		v.resize()
		return v, nil

	case tea.KeyMsg:
		if v.item == nil {
			return v, nil
		}
		switch msg.String() {
		case "n":
			return v, navigateTo(nav.To(nav.NewServiceOrder))
		case "a":
			return v, notify("Adicionar anexo: indisponível nesta versão.")
		}
		var cmd tea.Cmd
		v.body, cmd = v.body.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *equipmentDetailView) resize() {
	v.body.Width = v.state.Width
	v.body.Height = v.state.ContentHeight()
}

func (v *equipmentDetailView) View() string {
	switch {
	case v.loading:
		return formatter.Dim("  Carregando...")
	case v.err != nil:
		return formatter.StyleRed.Render(fmt.Sprintf("  Erro: %v", v.err))
	case v.item == nil:
		return ""
	}
	if v.state.Height == 0 {
		return formatter.FormatEquipmentDetail(v.item)
	}
	return v.body.View()
}
