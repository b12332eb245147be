package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/countrylist/internal/config"
	"github.com/rshade/countrylist/internal/country"
	"github.com/rshade/countrylist/internal/engine"
	"github.com/rshade/countrylist/internal/source"
	"github.com/rshade/countrylist/internal/tui"
	"github.com/rshade/countrylist/internal/version"
)

// newFetcher returns the file source when one is configured, else the HTTP source.
func newFetcher(cfg *config.Config) source.Fetcher {
	if cfg.Source.File != "" {
		return source.NewFileSource(cfg.Source.File)
	}
	return source.NewHTTPSource(cfg.Source.Endpoint, cfg.Source.Timeout, version.UserAgent())
}

// newController creates a list controller over records using the view settings.
func newController(cfg *config.Config, records []country.Record) *engine.ListController {
	return engine.NewListController(
		records,
		engine.WithPageSize(cfg.View.PageSize),
		engine.WithMaxButtons(cfg.View.MaxButtons),
		engine.WithPageReset(cfg.View.ResetPageOnChange),
	)
}

// runInteractive starts the list view and fetches the dataset in the background.
func runInteractive(ctx context.Context, st *cliState) error {
	ctrl := newController(st.cfg, nil)
	model := tui.NewCountryListModelWithLoading(ctx, ctrl, newFetcher(st.cfg))

	logger.Info().Ctx(ctx).Msg("starting interactive list")
	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}
