package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/benchlab/sightline/internal/store"
)

// ReportOptions holds flags for the report command.
type ReportOptions struct {
	*RootOptions
	Database string
	Workload string
	Limit    int
}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show recorded runs",
		Long: `Read recorded runs from a results database, newest first.

Example:
  sightline report --db ./results.db
  sightline report --db ./results.db --workload sieve --limit 5`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite results database (required)")
	cmd.Flags().StringVar(&opts.Workload, "workload", "", "filter by workload name")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum runs to show (0 = all)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runReport(opts *ReportOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	// Opening would create an empty database; reporting on a path that
	// does not exist is a user error instead.
	if _, err := os.Stat(opts.Database); err != nil {
		return WrapExitError(ExitCommandError, "database not found", err)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	runs, err := st.ListRuns(cmd.Context(), opts.Workload, opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}

	if formatter.JSON() {
		return formatter.Success(runs)
	}

	writeRunTable(formatter.Writer, runs)
	return nil
}

// writeRunTable renders recorded runs as plain text, one line per run.
// Nanosecond counts go through the grouping printer; layout fields stay
// with plain fmt so column padding is predictable.
func writeRunTable(w io.Writer, runs []store.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "no recorded runs")
		return
	}
	p := newPrinter()
	for _, r := range runs {
		fmt.Fprintf(w, "%s  %-12s  param=%-8d  x%-6d  mean=%sns  total=%sns\n",
			r.ID, r.Workload, r.Param, r.Iterations,
			p.Sprintf("%d", r.MeanNS), p.Sprintf("%d", r.TotalNS))
	}
}
