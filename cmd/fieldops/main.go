package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/fieldops/internal/cli"
	"github.com/alexanderramin/fieldops/internal/config"
	"github.com/alexanderramin/fieldops/internal/db"
	"github.com/alexanderramin/fieldops/internal/repository"
	"github.com/alexanderramin/fieldops/internal/seed"
	"github.com/alexanderramin/fieldops/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The data store lives for one session only.
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	dataset, err := seed.LoadFile(cfg.SeedFile)
	if err != nil {
		return err
	}
	uow := db.NewSQLiteUnitOfWork(database)
	if err := seed.Apply(context.Background(), uow, dataset); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}

	// Wire repositories
	orderRepo := repository.NewSQLiteServiceOrderRepo(database)
	equipmentRepo := repository.NewSQLiteEquipmentRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)

	// Action log: a file while the TUI owns the terminal, stderr on request.
	var observers []service.ActionObserver
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		observers = append(observers, service.NewActionLogger(f))
	case cfg.LogActions:
		observers = append(observers, service.NewActionLogger(os.Stderr))
	}

	app := &cli.App{
		Orders:     service.NewOrderService(orderRepo),
		Equipment:  service.NewEquipmentService(equipmentRepo),
		Profile:    service.NewProfileService(userRepo),
		WorkOrders: service.NewWorkOrderService(orderRepo, equipmentRepo, observers...),
		Config:     cfg,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
