package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/fieldops/internal/cli/formatter"
	"github.com/alexanderramin/fieldops/internal/domain"
	"github.com/alexanderramin/fieldops/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type profileLoadedMsg struct {
	user *domain.User
	err  error
}

// profileEditedMsg carries the values confirmed in the edit modal.
type profileEditedMsg struct {
	fields profileFields
}

type profileAction int

const (
	profileEdit profileAction = iota
	profileChangePassword
	profileDevices
	profileNotifications
	profileDarkMode
	profileHelp
	profileSave
	profileLogout
)

type profileRow struct {
	section string
	label   string
	action  profileAction
}

var profileRows = []profileRow{
	{"Informações do Perfil", "Editar Perfil", profileEdit},
	{"Gerenciamento da Conta", "Alterar Senha", profileChangePassword},
	{"Gerenciamento da Conta", "Verificar Dispositivos Conectados", profileDevices},
	{"Configurações do Aplicativo", "Gerenciar Notificações", profileNotifications},
	{"Configurações do Aplicativo", "Modo Escuro", profileDarkMode},
	{"Configurações do Aplicativo", "Ajuda e Suporte", profileHelp},
	{"", "Salvar Alterações", profileSave},
	{"", "Sair", profileLogout},
}

// profileView shows the technician card and the account and app settings.
// Profile edits live only as long as the screen.
type profileView struct {
	state   *SharedState
	user    *domain.User
	cursor  int
	loading bool
	err     error
}

func newProfileView(state *SharedState) *profileView {
	return &profileView{state: state, loading: true}
}

func (v *profileView) ID() ViewID    { return ViewProfile }
func (v *profileView) Title() string { return "Perfil e Configurações" }

func (v *profileView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "selecionar")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editar")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "modo escuro")),
		key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "sair")),
	}
}

func (v *profileView) Init() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		u, err := app.Profile.Get(context.Background())
		return profileLoadedMsg{user: u, err: err}
	}
}

func (v *profileView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		v.loading = false
		v.user, v.err = msg.user, msg.err
		return v, nil

	case profileEditedMsg:
		if v.user != nil {
			edited := *v.user
			edited.Name = strings.TrimSpace(msg.fields.name)
			edited.Email = strings.TrimSpace(msg.fields.email)
			edited.Phone = strings.TrimSpace(msg.fields.phone)
			v.user = &edited
		}
		return v, nil

	case tea.KeyMsg:
		if v.user == nil {
			return v, nil
		}
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(profileRows)-1 {
				v.cursor++
			}
		case "enter", " ":
			return v, v.activate(profileRows[v.cursor])
		case "e":
			return v, v.activate(profileRows[0])
		case "d":
			return v, v.toggleDarkMode()
		case "l":
			return v, navigateTo(nav.To(nav.Login))
		}
	}
	return v, nil
}

func (v *profileView) activate(row profileRow) tea.Cmd {
	switch row.action {
	case profileEdit:
		return v.openEdit()
	case profileDarkMode:
		return v.toggleDarkMode()
	case profileLogout:
		return navigateTo(nav.To(nav.Login))
	default:
		return notify(row.label + ": indisponível nesta versão.")
	}
}

func (v *profileView) openEdit() tea.Cmd {
	fields := profileFields{name: v.user.Name, email: v.user.Email, phone: v.user.Phone}
	return openFormModal("Informações do Perfil", profileEditForm(&fields), func() tea.Cmd {
		return func() tea.Msg { return profileEditedMsg{fields: fields} }
	})
}

// toggleDarkMode flips the session-wide theme.
func (v *profileView) toggleDarkMode() tea.Cmd {
	v.state.DarkMode = !v.state.DarkMode
	formatter.ApplyTheme(v.state.DarkMode)
	return nil
}

func (v *profileView) View() string {
	if v.loading {
		return formatter.Dim("  Carregando...")
	}
	if v.err != nil {
		return formatter.StyleRed.Render(fmt.Sprintf("  Erro: %v", v.err))
	}

	var b strings.Builder
	b.WriteString(formatter.FormatProfileCard(v.user) + "\n")

	section := ""
	for i, row := range profileRows {
		if row.section != section {
			section = row.section
			if section != "" {
				b.WriteString("\n" + formatter.Header(strings.ToUpper(section)) + "\n")
			} else {
				b.WriteString("\n")
			}
		}
		cursor := "  "
		label := formatter.StyleFg.Render(row.label)
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			label = formatter.StyleBold.Render(row.label)
		}
		if row.action == profileLogout {
			label = formatter.StyleRed.Render(row.label)
		}
		line := cursor + label
		if row.action == profileDarkMode {
			line += "  " + formatter.Toggle(v.state.DarkMode)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
