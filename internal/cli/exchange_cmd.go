package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/exchange"
	"github.com/alexanderramin/tally/internal/stats"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string
	format := formatFlag{format: exchange.FormatCSV}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full log as CSV or XLSX",
		Long: "Export the full log. Without --format the format follows the --out\n" +
			"extension, falling back to CSV.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out != "" && !cmd.Flags().Changed("format") {
				if f, err := exchange.FormatFromPath(out); err == nil {
					format.format = f
				}
			}
			if out == "" && format.format == exchange.FormatXLSX {
				return fmt.Errorf("xlsx export needs --out")
			}

			entries, err := app.Log.List(cmd.Context())
			if err != nil {
				return err
			}
			policy := app.Policy
			if policy.Anchor == "" {
				policy = stats.DefaultStreakPolicy()
			}
			summary := stats.Summarize(entries, app.now(), policy)

			if out == "" {
				return exchange.Export(cmd.OutOrStdout(), format.format, entries, summary)
			}
			err = writeFileAtomic(out, func(w io.Writer) error {
				return exchange.Export(w, format.format, entries, summary)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(entries), out)
			return nil
		},
	}

	cmd.Flags().Var(&format, "format", "Output format: csv or xlsx")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout, csv only)")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Append entries from a CSV or XLSX file",
		Long: "Append entries from a file written by \"tally export\". Every row is\n" +
			"validated first; nothing is appended if any row is invalid.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			format, err := exchange.FormatFromPath(path)
			if err != nil {
				return err
			}

			entries, err := readImportFile(path, format)
			if err != nil {
				return err
			}

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), fmt.Sprintf("Importing %d entries", len(entries)))
			}
			res, err := app.Log.Import(cmd.Context(), entries)
			stop()
			if err != nil {
				return fmt.Errorf("importing %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries (%d total)\n", res.Imported, res.Total)
			return nil
		},
	}
}

func readImportFile(path string, format exchange.Format) ([]domain.TaskLogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	entries, err := exchange.Import(f, format)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return entries, nil
}

// writeFileAtomic writes through a temp file in the target directory and
// renames it into place once write succeeds.
func writeFileAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tally-export-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
