package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/benchlab/sightline/internal/suite"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid     bool                    `json:"valid"`
	FileCount int                     `json:"file_count"`
	Suites    int                     `json:"suites"`
	Errors    []suite.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <suites-dir>",
		Short: "Validate suite definitions without running them",
		Long: `Validate CUE suite definitions against the workload registry.

Checks that every entry names a registered workload and stays within the
runner's parameter and iteration limits, without executing anything.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
}

func runValidate(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	loadResult, loadErrors := suite.LoadDir(dir, suite.LoadModeCollectAll)
	if loadResult == nil && len(loadErrors) > 0 {
		var se *suite.Error
		if errors.As(loadErrors[0], &se) {
			formatter.Error(se.Code, se.Message, nil)
			return NewExitError(ExitCommandError, se.Message)
		}
		formatter.Error(suite.ErrCodeGeneric, loadErrors[0].Error(), nil)
		return NewExitError(ExitCommandError, loadErrors[0].Error())
	}

	result := ValidationResult{
		Valid:     len(loadErrors) == 0,
		FileCount: loadResult.FileCount,
		Suites:    len(loadResult.Suites),
	}

	// Parse-level errors become entry-less validation errors so the output
	// shape stays uniform.
	for _, err := range loadErrors {
		var se *suite.Error
		if errors.As(err, &se) {
			result.Errors = append(result.Errors, suite.ValidationError{
				Entry:   -1,
				Code:    se.Code,
				Message: se.Error(),
			})
			continue
		}
		result.Errors = append(result.Errors, suite.ValidationError{
			Entry:   -1,
			Code:    suite.ErrCodeGeneric,
			Message: err.Error(),
		})
	}

	for i := range loadResult.Suites {
		if verrs := suite.Validate(&loadResult.Suites[i]); len(verrs) > 0 {
			result.Valid = false
			result.Errors = append(result.Errors, verrs...)
		}
	}

	if formatter.JSON() {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		if result.Valid {
			formatter.VerboseLog("validated %d suites from %d files", result.Suites, result.FileCount)
			formatter.Success("valid")
		} else {
			for _, e := range result.Errors {
				formatter.Error(e.Code, e.Message, nil)
			}
		}
	}

	if !result.Valid {
		return NewExitError(ExitFailure, "suite validation failed")
	}
	return nil
}
