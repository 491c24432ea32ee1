package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/tally/internal/cli"
	"github.com/alexanderramin/tally/internal/config"
	"github.com/alexanderramin/tally/internal/db"
	"github.com/alexanderramin/tally/internal/repository"
	"github.com/alexanderramin/tally/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env in the working directory fills in unset TALLY_* variables.
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load(os.Getenv)
	if err != nil {
		return err
	}

	// Wire the entry store
	var entries repository.EntryRepo
	switch cfg.Backend {
	case config.BackendSQLite:
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		entries = repository.NewSQLiteEntryRepo(database, db.NewSQLiteUnitOfWork(database))
	default:
		entries = repository.NewCSVEntryRepo(cfg.LogFile)
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Log:         service.NewLogService(entries, observer),
		Dashboard:   service.NewDashboardService(entries, observer),
		Policy:      cfg.StreakPolicy(),
		DailyTarget: cfg.DailyTarget,
	}

	// Forms and the manage screen need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
