package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexanderramin/teamload/internal/app"
	"github.com/spf13/cobra"
)

// App holds the use cases and process hooks CLI commands run against.
type App struct {
	Utilization app.UtilizationUseCase
	Projects    app.ProjectReportUseCase
	Import      app.ImportSnapshotUseCase
	WorkLogs    app.WorkLogUseCase

	Logger *slog.Logger
	// Addr is the default listen address for serve.
	Addr string

	// IsInteractive reports whether stdin is a terminal; nil means no.
	IsInteractive func() bool
	// Confirm asks a yes/no question; defaults to a huh confirm form.
	Confirm func(ctx context.Context, title string) (bool, error)
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewRootCmd creates the top-level "teamload" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "teamload",
		Short:         "Team utilization and project progress reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newImportCmd(a),
		newUtilizationCmd(a),
		newWeeklyCmd(a),
		newRankingCmd(a),
		newHoursCmd(a),
		newProjectsCmd(a),
		newTasksCmd(a),
		newDeleteLogCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) confirm(ctx context.Context, title string) (bool, error) {
	if a.Confirm != nil {
		return a.Confirm(ctx, title)
	}
	return huhConfirm(ctx, title)
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}
