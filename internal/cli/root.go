package cli

import (
	"time"

	"github.com/alexanderramin/tally/internal/service"
	"github.com/alexanderramin/tally/internal/stats"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Log       service.LogService
	Dashboard service.DashboardService

	Policy      stats.StreakPolicy
	DailyTarget int

	// IsInteractive reports whether stdin is a terminal. Forms and
	// confirmations are skipped when it is nil or returns false.
	IsInteractive func() bool
	// Now overrides the wall clock; nil means time.Now.
	Now func() time.Time
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

// NewRootCmd creates the top-level "tally" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tally",
		Short:         "Daily task log and streak dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLogCmd(app),
		newListCmd(app),
		newDeleteCmd(app),
		newDashboardCmd(app),
		newManageCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}
