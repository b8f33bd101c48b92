package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/fieldops/internal/cli/formatter"
	"github.com/alexanderramin/fieldops/internal/domain"
	"github.com/alexanderramin/fieldops/internal/filter"
	"github.com/alexanderramin/fieldops/internal/repository"
	"github.com/spf13/cobra"
)

func newEquipmentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "equipment",
		Aliases: []string{"eq"},
		Short:   "List and inspect client equipment",
	}

	cmd.AddCommand(
		newEquipmentListCmd(app),
		newEquipmentShowCmd(app),
	)

	return cmd
}

func newEquipmentListCmd(app *App) *cobra.Command {
	var types, statuses []string
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List equipment",
		Long: `List equipment.

--type and --status may be repeated. Values of the same flag are
alternatives; the two flags must both match.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := filter.EquipmentQuery{Search: search}
			for _, t := range types {
				q = q.Toggle(filter.CategoryType, strings.TrimSpace(t))
			}
			for _, s := range statuses {
				status := domain.EquipmentStatus(strings.TrimSpace(s))
				if !status.Valid() {
					return fmt.Errorf("invalid --status %q (use %s or %s)", s, domain.EquipmentActive, domain.EquipmentInactive)
				}
				if !q.Selected(filter.CategoryStatus, string(status)) {
					q = q.Toggle(filter.CategoryStatus, string(status))
				}
			}

			items, err := app.Equipment.List(context.Background())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEquipmentTable(filter.Equipment(items, q)))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&types, "type", nil, "Equipment type (repeatable)")
	cmd.Flags().StringArrayVar(&statuses, "status", nil, "Equipment status: Ativo or Inativo (repeatable)")
	cmd.Flags().StringVar(&search, "search", "", "Match name, model or serial")

	return cmd
}

func newEquipmentShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show equipment details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.Equipment.GetByID(context.Background(), args[0])
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), "Equipamento não encontrado.")
				return err
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEquipmentDetail(e))
			return nil
		},
	}
}
