package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/fieldops/internal/cli/formatter"
	"github.com/alexanderramin/fieldops/internal/filter"
	"github.com/alexanderramin/fieldops/internal/repository"
	"github.com/spf13/cobra"
)

func newOrdersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"os"},
		Short:   "List and inspect service orders",
	}

	cmd.AddCommand(
		newOrdersListCmd(app),
		newOrdersShowCmd(app),
	)

	return cmd
}

func newOrdersListCmd(app *App) *cobra.Command {
	var status, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List service orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			statusFilter, err := filter.ParseStatusFilter(status)
			if err != nil {
				return err
			}
			orders, err := app.Orders.List(context.Background())
			if err != nil {
				return err
			}

			visible := filter.Orders(orders, filter.OrderQuery{Status: statusFilter, Search: search})
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOrderTable(visible))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", filter.AllStatuses, "Status filter (Todos or any service order status)")
	cmd.Flags().StringVar(&search, "search", "", "Match client name, address or order number")

	return cmd
}

func newOrdersShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show service order details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := app.Orders.GetByID(context.Background(), args[0])
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), "Ordem de Serviço não encontrada.")
				return err
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOrderDetail(o))
			return nil
		},
	}
}
