package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/benchlab/sightline/internal/workload"
)

// WorkloadItem is the list command's view of a registered workload.
type WorkloadItem struct {
	Name         string `json:"name"`
	DefaultParam int32  `json:"default_param"`
	Checksum     *int32 `json:"checksum,omitempty"`
	Description  string `json:"description"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered workloads",
		Long: `List every registered benchmark workload with its default parameter
and the checksum expected at that parameter.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	items := listItems()
	if formatter.JSON() {
		return formatter.Success(items)
	}

	writeWorkloadTable(formatter.Writer, items)
	return nil
}

func listItems() []WorkloadItem {
	specs := workload.All()
	items := make([]WorkloadItem, len(specs))
	for i, s := range specs {
		items[i] = WorkloadItem{
			Name:         s.Name,
			DefaultParam: s.DefaultParam,
			Description:  s.Description,
		}
		if s.HasChecksum {
			sum := s.Checksum
			items[i].Checksum = &sum
		}
	}
	return items
}

// writeWorkloadTable renders the plain-text listing.
func writeWorkloadTable(w io.Writer, items []WorkloadItem) {
	for _, it := range items {
		fmt.Fprintf(w, "%-12s  %10d  %s\n", it.Name, it.DefaultParam, it.Description)
	}
}
