package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// modalForm shows a huh.Form in a box above the current screen. Forms bind
// to a draft owned by the caller; onSubmit commits the draft. Esc closes
// the modal and leaves the screen untouched.
type modalForm struct {
	title    string
	form     *huh.Form
	onSubmit func() tea.Cmd
}

// openFormModal returns a tea.Cmd that shows form as a modal.
func openFormModal(title string, form *huh.Form, onSubmit func() tea.Cmd) tea.Cmd {
	return openModal(&modalForm{title: title, form: form, onSubmit: onSubmit})
}

func (v *modalForm) ID() ViewID    { return ViewModalForm }
func (v *modalForm) Title() string { return v.title }

func (v *modalForm) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirmar")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancelar")),
	}
}

func (v *modalForm) Init() tea.Cmd {
	return v.form.Init()
}

func (v *modalForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		return v, closeModal(notify("Cancelado."))
	}

	updated, cmd := v.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		v.form = f
	}
	if v.form.State != huh.StateCompleted {
		return v, cmd
	}

	var then tea.Cmd
	if v.onSubmit != nil {
		then = v.onSubmit()
	}
	return v, closeModal(tea.Batch(cmd, then))
}

func (v *modalForm) View() string {
	return v.form.View()
}
