package cli

import (
	"github.com/alexanderramin/fieldops/internal/cli/formatter"
	"github.com/alexanderramin/fieldops/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// screenValue is a pflag.Value holding a screen name, checked when the flag
// is parsed.
type screenValue struct {
	screen nav.Screen
	set    bool
}

var _ pflag.Value = (*screenValue)(nil)

func (v *screenValue) String() string {
	if !v.set {
		return ""
	}
	return v.screen.String()
}

func (v *screenValue) Set(s string) error {
	screen, err := nav.ParseScreen(s)
	if err != nil {
		return err
	}
	v.screen, v.set = screen, true
	return nil
}

func (v *screenValue) Type() string { return "screen" }

func newTUICmd(app *App) *cobra.Command {
	var (
		start                screenValue
		orderID, equipmentID string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive terminal UI",
		Long: `Open the interactive terminal UI.

Without flags the TUI starts on the configured start screen
(FIELDOPS_START_SCREEN, Login by default). --start opens another screen
directly; --order and --equipment supply the id for screens that need one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app, startFrames(start, orderID, equipmentID)...)
		},
	}

	cmd.Flags().Var(&start, "start", "Entry screen (e.g. ServiceOrderList, EquipmentDetail)")
	cmd.Flags().StringVar(&orderID, "order", "", "Service order id for ServiceOrderDetail or ExecuteServiceOrder")
	cmd.Flags().StringVar(&equipmentID, "equipment", "", "Equipment id for EquipmentDetail")

	return cmd
}

// startFrames turns the tui flags into the initial navigation stack. No
// --start means the configured default.
func startFrames(start screenValue, orderID, equipmentID string) []nav.Frame {
	if !start.set {
		return nil
	}
	id := orderID
	if start.screen == nav.EquipmentDetail {
		id = equipmentID
	}
	return []nav.Frame{frameFor(start.screen, id)}
}

// runTUI opens the full-screen program and blocks until it exits.
func runTUI(app *App, frames ...nav.Frame) error {
	formatter.ApplyTheme(app.Config.DarkMode)
	m := newAppModel(app, frames...)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
