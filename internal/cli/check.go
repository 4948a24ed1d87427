package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/benchlab/sightline/internal/runner"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Self-check the escape barrier",
		Long: `Verify by differential timing that escaped computations still cost time.

If the toolchain that built this binary optimized through the escape
barrier, scaled work stops scaling in time and the check fails with a
nonzero exit code. This is the runtime counterpart of inspecting the
generated code.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, cmd)
		},
	}
}

func runCheck(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	check, err := runner.CheckBarrier(cmd.Context())
	if err != nil {
		var ee *runner.ElisionError
		if errors.As(err, &ee) {
			if formatter.JSON() {
				formatter.Success(check)
			} else {
				formatter.Error("ELIDED", err.Error(), nil)
			}
			return NewExitError(ExitFailure, "escape barrier check failed")
		}
		return WrapExitError(ExitCommandError, "barrier check aborted", err)
	}

	if formatter.JSON() {
		return formatter.Success(check)
	}

	p := newPrinter()
	p.Fprintf(formatter.Writer, "escape barrier ok: 64x work cost %.1fx time (small=%v large=%v)\n",
		check.Ratio, check.Small, check.Large)
	return nil
}
