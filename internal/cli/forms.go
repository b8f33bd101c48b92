package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fieldops/internal/cli/formatter"
	"github.com/alexanderramin/fieldops/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// fieldopsHuhTheme returns a huh theme built from the active formatter palette.
func fieldopsHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: header accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed).SetString(" *")

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// newForm applies the fieldops theme to a form.
func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(fieldopsHuhTheme()).WithShowHelp(false)
}

// validateRequired returns a validator that rejects blank values.
func validateRequired(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s é obrigatório", label)
		}
		return nil
	}
}

// scheduleDateLayouts are the accepted schedule date formats.
var scheduleDateLayouts = []string{"2006-01-02", "02/01/2006"}

// validateScheduleDate accepts a required AAAA-MM-DD or DD/MM/AAAA date.
func validateScheduleDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("informe a data de agendamento")
	}
	for _, layout := range scheduleDateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return nil
		}
	}
	return errors.New("use o formato AAAA-MM-DD")
}

// ── forms ────────────────────────────────────────────────────────────────────

// loginFields holds the values of the login form.
type loginFields struct {
	identity string
	password string
}

func loginForm(f *loginFields) *huh.Form {
	return newForm(
		huh.NewGroup(
			requiredInput("Email / ID do Técnico", "Digite seu email ou ID", &f.identity),
			requiredInput("Senha", "Digite sua senha", &f.password).
				EchoMode(huh.EchoModePassword),
		),
	)
}

// newOrderFields holds the values of the new service order form.
type newOrderFields struct {
	client       string
	equipmentID  string
	serviceType  string
	description  string
	scheduleDate string
}

func newOrderForm(f *newOrderFields, clients []string, equipment []*domain.Equipment) *huh.Form {
	clientOpts := make([]huh.Option[string], 0, len(clients))
	for _, c := range clients {
		clientOpts = append(clientOpts, huh.NewOption(c, c))
	}
	equipmentOpts := make([]huh.Option[string], 0, len(equipment))
	for _, e := range equipment {
		equipmentOpts = append(equipmentOpts, huh.NewOption(e.Label(), e.ID))
	}

	return newForm(
		huh.NewGroup(
			requiredSelect("Cliente", "Selecione um cliente", clientOpts, &f.client),
			requiredSelect("Equipamento", "Selecione um equipamento", equipmentOpts, &f.equipmentID),
		),
		huh.NewGroup(
			requiredInput("Tipo de Serviço", "Ex: Manutenção Preventiva", &f.serviceType),
			huh.NewText().
				Title("Descrição do Problema").
				Placeholder("Descreva o problema ou o serviço a ser realizado...").
				Value(&f.description).
				Validate(validateRequired("Descrição do Problema")),
			dateInput("Data de Agendamento", &f.scheduleDate),
		),
	)
}

func reportForm(report *string) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewText().
				Title("Relatório do Serviço").
				Placeholder("Descreva o trabalho realizado, peças utilizadas e observações...").
				Value(report),
		),
	)
}

func statusForm(status *domain.ServiceOrderStatus) *huh.Form {
	opts := make([]huh.Option[domain.ServiceOrderStatus], 0, len(domain.ExecutionStatuses))
	for _, s := range domain.ExecutionStatuses {
		opts = append(opts, huh.NewOption(strings.ToUpper(string(s)), s))
	}
	return newForm(
		huh.NewGroup(
			huh.NewSelect[domain.ServiceOrderStatus]().
				Title("Atualizar Status").
				Options(opts...).
				Value(status),
		),
	)
}

func signatureForm(signature *string) *huh.Form {
	return newForm(
		huh.NewGroup(
			optionalInput("Aprovação do Cliente", "Nome de quem assina", signature).
				Description("Área de assinatura do cliente"),
		),
	)
}

func equipmentFilterForm(types, statuses []string, selectedTypes, selectedStatuses *[]string) *huh.Form {
	return newForm(
		huh.NewGroup(
			checklist("Tipo de Equipamento", types, selectedTypes),
			checklist("Status", statuses, selectedStatuses),
		),
	)
}

// profileFields holds the editable profile values of the session.
type profileFields struct {
	name  string
	email string
	phone string
}

func profileEditForm(f *profileFields) *huh.Form {
	return newForm(
		huh.NewGroup(
			requiredInput("Nome Completo", "", &f.name),
			optionalInput("Email", "", &f.email),
			optionalInput("Telefone", "", &f.phone),
		),
	)
}
