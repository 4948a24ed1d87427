package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/benchlab/sightline/internal/runner"
	"github.com/benchlab/sightline/internal/store"
	"github.com/benchlab/sightline/internal/suite"
)

// SuiteOptions holds flags for the suite command.
type SuiteOptions struct {
	*RootOptions
	Database string
	Only     string
}

// EntryReport summarizes one executed suite entry.
type EntryReport struct {
	RunID    string `json:"run_id,omitempty"`
	Workload string `json:"workload"`
	Param    int32  `json:"param"`
	Checksum int32  `json:"checksum,omitempty"`
	MeanNS   int64  `json:"mean_ns,omitempty"`
	TotalNS  int64  `json:"total_ns,omitempty"`
	Failed   bool   `json:"failed,omitempty"`
	Error    string `json:"error,omitempty"`
}

// SuiteReport summarizes one executed suite.
type SuiteReport struct {
	Suite   string        `json:"suite"`
	Entries []EntryReport `json:"entries"`
	Failed  int           `json:"failed"`
}

// NewSuiteCommand creates the suite command.
func NewSuiteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SuiteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "suite <suites-dir>",
		Short: "Run suite definitions",
		Long: `Load CUE suite definitions and execute every entry in order.

Example:
  sightline suite ./suites
  sightline suite ./suites --only shootout --db ./results.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuites(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "record runs in this SQLite database")
	cmd.Flags().StringVar(&opts.Only, "only", "", "run only the named suite")

	return cmd
}

func runSuites(opts *SuiteOptions, dir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	loadResult, loadErrors := suite.LoadDir(dir, suite.LoadModeFailFast)
	if len(loadErrors) > 0 {
		var se *suite.Error
		if errors.As(loadErrors[0], &se) {
			formatter.Error(se.Code, se.Message, nil)
			return NewExitError(ExitCommandError, se.Message)
		}
		formatter.Error(suite.ErrCodeGeneric, loadErrors[0].Error(), nil)
		return NewExitError(ExitCommandError, loadErrors[0].Error())
	}

	// Refuse to run anything until the whole directory validates.
	for i := range loadResult.Suites {
		if verrs := suite.Validate(&loadResult.Suites[i]); len(verrs) > 0 {
			for _, e := range verrs {
				formatter.Error(e.Code, e.Message, nil)
			}
			return NewExitError(ExitFailure, "suite validation failed")
		}
	}

	if opts.Only != "" {
		found := false
		for i := range loadResult.Suites {
			if loadResult.Suites[i].Name == opts.Only {
				found = true
				break
			}
		}
		if !found {
			msg := fmt.Sprintf("suite %q not found in %s", opts.Only, dir)
			formatter.Error(suite.ErrCodeNotFound, msg, nil)
			return NewExitError(ExitCommandError, msg)
		}
	}

	var st *store.Store
	if opts.Database != "" {
		var err error
		st, err = store.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}()
	}

	r := runner.New(runner.Options{})
	failed := 0
	var reports []SuiteReport

	for _, s := range loadResult.Suites {
		if opts.Only != "" && s.Name != opts.Only {
			continue
		}
		slog.Info("running suite", "suite", s.Name, "entries", len(s.Entries))

		report := SuiteReport{Suite: s.Name}
		for i := range s.Entries {
			entry := &s.Entries[i]
			res, err := r.Run(cmd.Context(), entry.Request())
			if err != nil {
				if !runner.IsVerifyError(err) {
					return WrapExitError(ExitCommandError, "suite run failed", err)
				}
				report.Entries = append(report.Entries, EntryReport{
					Workload: entry.Workload,
					Param:    entry.Param,
					Failed:   true,
					Error:    err.Error(),
				})
				report.Failed++
				failed++
				continue
			}

			if st != nil {
				if err := st.WriteRun(cmd.Context(), res); err != nil {
					return WrapExitError(ExitCommandError, "failed to record run", err)
				}
			}

			report.Entries = append(report.Entries, EntryReport{
				RunID:    res.ID,
				Workload: res.Workload,
				Param:    res.Param,
				Checksum: res.Checksum,
				MeanNS:   res.Mean().Nanoseconds(),
				TotalNS:  res.Total().Nanoseconds(),
			})
		}
		reports = append(reports, report)
	}

	if formatter.JSON() {
		if err := formatter.Success(reports); err != nil {
			return err
		}
	} else {
		p := newPrinter()
		for _, report := range reports {
			p.Fprintf(formatter.Writer, "suite %s\n", report.Suite)
			for _, e := range report.Entries {
				if e.Failed {
					p.Fprintf(formatter.Writer, "  FAIL  %-12s  %s\n", e.Workload, e.Error)
					continue
				}
				p.Fprintf(formatter.Writer, "  ok    %-12s  param=%d  checksum=%d  mean=%dns\n",
					e.Workload, e.Param, e.Checksum, e.MeanNS)
			}
		}
	}

	if failed > 0 {
		return NewExitError(ExitFailure, "suite entries failed verification")
	}
	return nil
}
