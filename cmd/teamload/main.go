package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/teamload/internal/cli"
	"github.com/alexanderramin/teamload/internal/config"
	"github.com/alexanderramin/teamload/internal/db"
	"github.com/alexanderramin/teamload/internal/logger"
	"github.com/alexanderramin/teamload/internal/repository"
	"github.com/alexanderramin/teamload/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// TEAMLOAD_CONFIG points at an explicit YAML file; otherwise the default paths are tried.
	cfg, err := config.Load(os.Getenv("TEAMLOAD_CONFIG"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, closer := logger.Init(cfg.Log, os.Stderr)
	defer closer.Close()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	workLogRepo := repository.NewSQLiteWorkLogRepo(database)
	membershipRepo := repository.NewSQLiteMembershipRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)
	teamRepo := repository.NewSQLiteTeamRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	observer := service.NewLogUseCaseObserver(log)
	loader := service.NewDatasetLoader(workLogRepo, membershipRepo, userRepo, teamRepo, projectRepo)

	app := &cli.App{
		Utilization: service.NewUtilizationService(loader, observer),
		Projects:    service.NewProjectReportService(projectRepo, observer),
		Import:      service.NewImportService(uow, observer),
		WorkLogs:    service.NewWorkLogService(workLogRepo, observer),
		Logger:      log,
		Addr:        cfg.Server.Addr,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
