package cli

import (
	"fmt"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all logged entries with their index",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Log.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEntries(entries, app.now()))
			return nil
		},
	}
}

func newDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete INDEX",
		Aliases: []string{"rm"},
		Short:   "Delete the entry at INDEX (see \"tally list\")",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			index, err := parseIndexArg(args[0])
			if err != nil {
				return err
			}

			if !yes && app.interactive() {
				entries, err := app.Log.List(ctx)
				if err != nil {
					return err
				}
				desc := ""
				if index >= 0 && index < len(entries) {
					desc = formatter.FormatEntry(entries[index])
				}
				var confirmed bool
				if err := confirmForm(fmt.Sprintf("Delete entry %d?", index), desc, &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			deleted, err := app.Log.Delete(ctx, index)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", describeDeleted(index, deleted))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func describeDeleted(index int, e domain.TaskLogEntry) string {
	return fmt.Sprintf("entry %d: %s", index, formatter.FormatEntry(e))
}
