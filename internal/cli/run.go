package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/benchlab/sightline/internal/runner"
	"github.com/benchlab/sightline/internal/store"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Param      int32
	Iterations int
	Database   string
	Verify     bool
}

// RunReport is the run command's output payload.
type RunReport struct {
	RunID      string `json:"run_id"`
	Workload   string `json:"workload"`
	Param      int32  `json:"param"`
	Iterations int    `json:"iterations"`
	Checksum   int32  `json:"checksum"`
	Samples    int    `json:"samples"`
	TotalNS    int64  `json:"total_ns"`
	MinNS      int64  `json:"min_ns"`
	MaxNS      int64  `json:"max_ns"`
	MeanNS     int64  `json:"mean_ns"`
	Recorded   bool   `json:"recorded"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <workload>",
		Short: "Run one workload and time its marked region",
		Long: `Run a registered workload with timestamp-recording hooks installed.

Example:
  sightline run fib_loop --iterations 100
  sightline run sieve --param 100000 --db ./results.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkload(opts, args[0], cmd)
		},
	}

	cmd.Flags().Int32Var(&opts.Param, "param", 0, "workload parameter (default: registered default)")
	cmd.Flags().IntVarP(&opts.Iterations, "iterations", "n", 1, "iteration count")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record the run in this SQLite database")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "enforce the registered checksum")

	return cmd
}

func runWorkload(opts *RunOptions, name string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	req := runner.Request{
		Workload:   name,
		Iterations: opts.Iterations,
		Verify:     opts.Verify,
	}
	if cmd.Flags().Changed("param") {
		param := opts.Param
		req.Param = &param
	}

	r := runner.New(runner.Options{})
	res, err := r.Run(cmd.Context(), req)
	if err != nil {
		var ue *runner.UnknownWorkloadError
		if errors.As(err, &ue) {
			return WrapExitError(ExitCommandError, "unknown workload", err)
		}
		if runner.IsVerifyError(err) {
			return WrapExitError(ExitFailure, "checksum verification failed", err)
		}
		return WrapExitError(ExitCommandError, "run failed", err)
	}

	recorded := false
	if opts.Database != "" {
		st, err := store.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}()
		if err := st.WriteRun(cmd.Context(), res); err != nil {
			return WrapExitError(ExitCommandError, "failed to record run", err)
		}
		recorded = true
	}

	report := RunReport{
		RunID:      res.ID,
		Workload:   res.Workload,
		Param:      res.Param,
		Iterations: res.Iterations,
		Checksum:   res.Checksum,
		Samples:    len(res.Samples),
		TotalNS:    res.Total().Nanoseconds(),
		MinNS:      res.Min().Nanoseconds(),
		MaxNS:      res.Max().Nanoseconds(),
		MeanNS:     res.Mean().Nanoseconds(),
		Recorded:   recorded,
	}

	if formatter.JSON() {
		return formatter.Success(report)
	}

	p := newPrinter()
	p.Fprintf(formatter.Writer, "run %s  %s(param=%d) x%d\n",
		report.RunID, report.Workload, report.Param, report.Iterations)
	p.Fprintf(formatter.Writer, "checksum  %d\n", report.Checksum)
	p.Fprintf(formatter.Writer, "region    mean %dns  min %dns  max %dns  total %dns (%d samples)\n",
		report.MeanNS, report.MinNS, report.MaxNS, report.TotalNS, report.Samples)
	if recorded {
		p.Fprintf(formatter.Writer, "recorded  %s\n", opts.Database)
	}
	return nil
}
