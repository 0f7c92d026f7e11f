package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/spotter/internal/catalog"
	"github.com/alexanderramin/spotter/internal/cli"
	"github.com/alexanderramin/spotter/internal/config"
	"github.com/alexanderramin/spotter/internal/db"
	"github.com/alexanderramin/spotter/internal/engine"
	"github.com/alexanderramin/spotter/internal/repository"
	"github.com/alexanderramin/spotter/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config file, then SPOTTER_* environment overrides.
	cfgPath := config.Path()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	setRepo := repository.NewSQLiteSetRepo(database)
	recordRepo := repository.NewSQLiteRecordRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogCalls {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Workouts:   service.NewWorkoutService(sessionRepo, setRepo, uow, observers...),
		History:    service.NewHistoryService(setRepo, recordRepo, observers...),
		Plans:      catalog.New(cfg.PlansDir),
		Config:     cfg,
		ConfigPath: cfgPath,
		Notifier:   engine.NewTerminalNotifier(os.Stderr),
	}

	// The workout screen and settings form need a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
