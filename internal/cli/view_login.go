package cli

import (
	"strings"

	"github.com/alexanderramin/fieldops/internal/cli/formatter"
	"github.com/alexanderramin/fieldops/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

const appVersion = "1.0.2"

// loginView is the technician sign-in screen. Any non-blank identity and
// password are accepted.
type loginView struct {
	state  *SharedState
	fields loginFields
	form   *huh.Form
	done   bool
}

func newLoginView(state *SharedState) *loginView {
	v := &loginView{state: state}
	v.form = loginForm(&v.fields)
	return v
}

func (v *loginView) ID() ViewID          { return ViewLogin }
func (v *loginView) Title() string       { return "Acesso do Técnico" }
func (v *loginView) CapturesInput() bool { return !v.done }

func (v *loginView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "entrar")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "próximo campo")),
	}
}

func (v *loginView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *loginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.done {
		return v, nil
	}
	// The login screen has nowhere to go back to.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, nil
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}
	if v.form.State == huh.StateCompleted {
		v.done = true
		return v, tea.Batch(cmd, navigateTo(nav.To(nav.ServiceOrderList)))
	}
	return v, cmd
}

func (v *loginView) View() string {
	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("Acesso do Técnico") + "\n")
	b.WriteString(formatter.Dim("Bem-vindo. Faça o login para continuar.") + "\n\n")
	b.WriteString(v.form.View() + "\n\n")
	b.WriteString(formatter.Dim("Esqueceu sua senha?") + "\n")
	b.WriteString(formatter.Dim("Versão " + appVersion))
	return b.String()
}
