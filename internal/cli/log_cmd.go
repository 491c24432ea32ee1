package cli

import (
	"fmt"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/contract"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var task string
	var date dateFlag
	var done, backfill bool
	var rating int

	cmd := &cobra.Command{
		Use:     "log",
		Aliases: []string{"go-live"},
		Short:   "Log a task for today",
		Long: "Log a task for today. Logging any other date requires --backfill.\n" +
			"Without --task on an interactive terminal, a form collects the fields.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			now := app.now()

			var entry domain.TaskLogEntry
			if task == "" && app.interactive() {
				in := newLogFormInput(now, done, rating, backfill)
				if date.set {
					in.Date = date.String()
				}
				if err := newLogForm(&in).Run(); err != nil {
					return err
				}
				e, err := in.entry()
				if err != nil {
					return err
				}
				entry, backfill = e, in.Backfill
			} else {
				e, err := domain.NewEntry(date.or(now), task, done, rating)
				if err != nil {
					return err
				}
				entry = e
			}

			err := app.Log.Log(ctx, contract.LogRequest{
				Entry:         entry,
				Now:           &now,
				AllowBackfill: backfill,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s\n", formatter.FormatEntry(entry))
			return nil
		},
	}

	cmd.Flags().StringVar(&task, "task", "", "Task description")
	cmd.Flags().Var(&date, "date", "Date to log (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&done, "done", false, "Mark the task as completed")
	cmd.Flags().IntVar(&rating, "rating", 0, "Rating from 0 to 10")
	cmd.Flags().BoolVar(&backfill, "backfill", false, "Allow logging a date other than today")

	return cmd
}
