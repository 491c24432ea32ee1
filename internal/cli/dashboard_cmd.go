package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/contract"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	var year, month, target int
	var today dateFlag

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash", "stats"},
		Short:   "Show streaks, ratings and the monthly breakdown",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := today.or(app.now())
			req := contract.NewDashboardRequest(now)
			if app.Policy.Anchor != "" {
				req.Policy = app.Policy
			}
			if app.DailyTarget > 0 {
				req.DailyTarget = app.DailyTarget
			}
			if year != 0 {
				req.Year = year
			}
			if month != 0 {
				req.Month = time.Month(month)
			}
			if cmd.Flags().Changed("target") {
				req.DailyTarget = target
			}

			resp, err := app.Dashboard.Dashboard(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDashboard(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year of the monthly breakdown (default current)")
	cmd.Flags().IntVar(&month, "month", 0, "Month of the monthly breakdown, 1-12 (default current)")
	cmd.Flags().Var(&today, "today", "Reference date for streaks (YYYY-MM-DD)")
	cmd.Flags().IntVar(&target, "target", 0, "Tasks expected per day (default from config)")

	return cmd
}
