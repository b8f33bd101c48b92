package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fieldops/internal/cli/formatter"
	"github.com/alexanderramin/fieldops/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

// argKind names what the first argument of a command refers to, for
// suggestions.
type argKind int

const (
	argNone argKind = iota
	argOrder
	argEquipment
	argScreen
)

// barCommand describes one command bar command.
type barCommand struct {
	name  string
	usage string
	help  string
	arg   argKind
}

var barCommands = []barCommand{
	{"orders", "orders", "Minhas ordens de serviço", argNone},
	{"order", "order <id>", "Detalhes de uma ordem de serviço", argOrder},
	{"execute", "execute <id>", "Executar uma ordem de serviço", argOrder},
	{"equipment", "equipment [id]", "Equipamentos, ou detalhes de um equipamento", argEquipment},
	{"new", "new", "Nova ordem de serviço", argNone},
	{"profile", "profile", "Perfil e configurações", argNone},
	{"go", "go <tela> [id]", "Abrir uma tela pelo nome", argScreen},
	{"back", "back", "Voltar à tela anterior", argNone},
	{"home", "home", "Voltar à tela inicial", argNone},
	{"help", "help", "Lista de comandos", argNone},
	{"quit", "quit", "Sair", argNone},
}

func lookupCommand(name string) (barCommand, bool) {
	for _, c := range barCommands {
		if c.name == name {
			return c, true
		}
	}
	return barCommand{}, false
}

func commandNames() []string {
	names := make([]string, 0, len(barCommands))
	for _, c := range barCommands {
		names = append(names, c.name)
	}
	return names
}

// executeCommand dispatches a text command and returns a tea.Cmd.
// Navigation commands produce the same messages as keys; others return
// cmdOutputMsg for display or quitMsg for exit.
func (c *commandBar) executeCommand(input string) tea.Cmd {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "orders":
		return navigateTo(nav.To(nav.ServiceOrderList))
	case "order":
		if len(args) == 0 {
			return outputCmd(usageLine("order <id>"))
		}
		return navigateTo(nav.ToOrder(nav.ServiceOrderDetail, args[0]))
	case "execute":
		if len(args) == 0 {
			return outputCmd(usageLine("execute <id>"))
		}
		return navigateTo(nav.ToOrder(nav.ExecuteServiceOrder, args[0]))
	case "equipment":
		if len(args) == 0 {
			return navigateTo(nav.To(nav.EquipmentList))
		}
		return navigateTo(nav.ToEquipment(nav.EquipmentDetail, args[0]))
	case "new":
		return navigateTo(nav.To(nav.NewServiceOrder))
	case "profile":
		return navigateTo(nav.To(nav.Profile))
	case "go":
		if len(args) == 0 {
			return outputCmd(usageLine("go <tela> [id]"))
		}
		screen, err := nav.ParseScreen(args[0])
		if err != nil {
			return outputCmd(formatter.StyleRed.Render("Tela desconhecida: " + args[0]))
		}
		id := ""
		if len(args) > 1 {
			id = args[1]
		}
		return navigateTo(frameFor(screen, id))
	case "back":
		return goBack()
	case "home":
		return goHome()
	case "help":
		return outputCmd(formatCommandHelp())
	case "exit", "quit":
		return func() tea.Msg { return quitMsg{} }
	default:
		return outputCmd(formatter.StyleRed.Render(
			fmt.Sprintf("Comando desconhecido: %s. Digite 'help' para ver os comandos.", cmd)))
	}
}

// outputCmd returns a tea.Cmd that sends a cmdOutputMsg.
func outputCmd(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

func usageLine(usage string) string {
	return formatter.StyleYellow.Render("Uso: " + usage)
}

func formatCommandHelp() string {
	rows := make([][]string, 0, len(barCommands))
	for _, c := range barCommands {
		rows = append(rows, []string{formatter.StyleGreen.Render(c.usage), c.help})
	}
	return "\n" + formatter.Indent(formatter.RenderTable([]string{"COMANDO", "DESCRIÇÃO"}, rows), "  ")
}
