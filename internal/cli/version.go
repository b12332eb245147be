package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCmd creates the version command.
func newVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the countrylist version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "countrylist version %s\n", ver)
		},
	}
}
