package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/countrylist/internal/country"
	"github.com/rshade/countrylist/internal/engine"
	"github.com/rshade/countrylist/internal/pagination"
	"github.com/rshade/countrylist/internal/source"
)

// listOptions holds the list command flags.
type listOptions struct {
	region string
	sort   string
	page   int
	output string
}

func newListOptions() listOptions {
	return listOptions{page: pagination.DefaultPage, output: string(engine.OutputTable)}
}

// listRequest is the validated form of listOptions.
type listRequest struct {
	region country.Region
	sort   country.SortOption
	page   int
	format engine.OutputFormat
}

// parse validates every flag so that bad input fails before any fetch.
func (o listOptions) parse(pageSize int) (listRequest, error) {
	region, err := country.ParseRegion(o.region)
	if err != nil {
		return listRequest{}, fmt.Errorf("invalid --region: %w", err)
	}
	sortOpt, err := country.ParseSortOption(o.sort)
	if err != nil {
		return listRequest{}, fmt.Errorf("invalid --sort: %w", err)
	}
	if err = (pagination.Params{Page: o.page, PageSize: pageSize}).Validate(); err != nil {
		return listRequest{}, fmt.Errorf("invalid --page: %w", err)
	}
	format, err := engine.ParseOutputFormat(o.output)
	if err != nil {
		return listRequest{}, fmt.Errorf("invalid --output: %w", err)
	}
	return listRequest{region: region, sort: sortOpt, page: o.page, format: format}, nil
}

// newListCmd creates the non-interactive list command.
func newListCmd(st *cliState) *cobra.Command {
	opts := newListOptions()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of countries",
		Long: `Print one page of countries as a table, JSON or YAML.

Sort options: none, name_asc, name_desc, region_asc, region_desc, area_asc,
area_desc and smaller_than_reference (countries smaller than Lithuania, by
ascending area). "column:order" forms such as "area:desc" are accepted too.

Regions: all, Africa, Americas, Asia, Europe, Oceania.`,
		Example: `  # First page, unsorted
  countrylist list

  # Third page of Asian countries, largest first
  countrylist list --region asia --sort area:desc --page 3

  # YAML output
  countrylist list --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderList(cmd, st, opts)
		},
	}

	cmd.Flags().StringVar(&opts.region, "region", "", "region filter: all, Africa, Americas, Asia, Europe, Oceania")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "sort option (see 'countrylist options')")
	cmd.Flags().IntVar(&opts.page, "page", pagination.DefaultPage, "1-based page number")
	cmd.Flags().StringVarP(&opts.output, "output", "o", string(engine.OutputTable), "output format: table, json, yaml")

	return cmd
}

// renderList fetches the dataset once and writes the requested page.
func renderList(cmd *cobra.Command, st *cliState, opts listOptions) error {
	req, err := opts.parse(st.cfg.View.PageSize)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	result := source.Load(ctx, newFetcher(st.cfg))
	if !result.OK() {
		cmd.PrintErrln("Warning: country data could not be loaded; showing an empty list")
	}

	ctrl := newController(st.cfg, result.Dataset())
	ctrl.SetRegionFilter(req.region)
	ctrl.SetSortOption(req.sort)
	ctrl.SetPage(req.page)

	view := ctrl.View()
	logger.Debug().Ctx(ctx).
		Str("region", string(req.region)).
		Str("sort", string(req.sort)).
		Int("page", req.page).
		Int("rows", len(view.Rows)).
		Int("total", view.Meta.TotalItems).
		Msg("rendering list")

	return engine.RenderView(cmd.OutOrStdout(), req.format, view)
}
