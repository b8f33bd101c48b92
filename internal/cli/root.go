package cli

import (
	"github.com/alexanderramin/fieldops/internal/config"
	"github.com/alexanderramin/fieldops/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Orders     service.OrderService
	Equipment  service.EquipmentService
	Profile    service.ProfileService
	WorkOrders service.WorkOrderService

	// Images supplies evidence photos; nil uses the local picker.
	Images ImagePicker

	Config config.Config

	// IsInteractive reports whether stdin is a terminal. Nil means false.
	IsInteractive func() bool
}

func (a *App) imagePicker() ImagePicker {
	if a.Images == nil {
		return NewLocalImagePicker()
	}
	return a.Images
}

// NewRootCmd creates the top-level "fieldops" command and registers all
// subcommands against the provided App. Without arguments it opens the TUI
// on a terminal and prints help otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "fieldops",
		Short:         "Field service orders and equipment for technicians",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newTUICmd(app),
		newOrdersCmd(app),
		newEquipmentCmd(app),
		newProfileCmd(app),
	)

	return root
}
