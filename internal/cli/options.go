package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/countrylist/internal/country"
)

const tabwriterPadding = 2

// newOptionsCmd creates the command listing the accepted --sort and --region values.
func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Show the available sort options and regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderOptions(cmd.OutOrStdout())
		},
	}
}

func renderOptions(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	_, _ = fmt.Fprintln(tw, "SORT\tLABEL")
	for _, opt := range country.SortOptions() {
		key := string(opt)
		if opt == country.SortNone {
			key = "none"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", key, opt.Label())
	}

	_, _ = fmt.Fprintln(tw, "\t")
	_, _ = fmt.Fprintln(tw, "REGION\tLABEL")
	for _, region := range country.Regions() {
		key := string(region)
		if region == country.RegionAll {
			key = "all"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", key, region.Label())
	}

	return tw.Flush()
}
