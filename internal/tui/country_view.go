package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/countrylist/internal/country"
	"github.com/rshade/countrylist/internal/engine"
	"github.com/rshade/countrylist/internal/pagination"
)

// Table column widths.
const (
	colWidthName   = 36
	colWidthRegion = 12
	colWidthArea   = 14

	maxNameDisplayLen = colWidthName
	truncateSuffix    = "..."
)

// Pagination bar glyphs.
const (
	prevLabel = "<"
	nextLabel = ">"
	gapLabel  = "…"
)

// newCountryTable creates the table model for the Name/Region/Area columns.
func newCountryTable(height int) table.Model {
	columns := []table.Column{
		{Title: "Name", Width: colWidthName},
		{Title: "Region", Width: colWidthRegion},
		{Title: "Area (km²)", Width: colWidthArea},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

// countryRows converts records into table rows, right-aligning the area.
func countryRows(records []country.Record) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			truncateName(r.Name),
			r.Region,
			fmt.Sprintf("%*s", colWidthArea, engine.FormatArea(r.Area, r.HasArea)),
		}
	}
	return rows
}

func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxNameDisplayLen {
		return name
	}
	return string(runes[:maxNameDisplayLen-len(truncateSuffix)]) + truncateSuffix
}

// labeled is satisfied by the picker option types.
type labeled interface {
	Label() string
}

// renderOption renders one dropdown entry.
func renderOption[T labeled](item T, highlighted, active bool) string {
	marker := "  "
	if active {
		marker = "• "
	}
	line := marker + item.Label()
	if highlighted {
		return TableSelectedStyle.Render(line)
	}
	return line
}

// RenderPagination renders the previous button, the page window and the next
// button. The current page is highlighted, disabled arrows are dimmed and
// skipped page ranges are marked with an ellipsis.
func RenderPagination(view engine.ListView) string {
	meta := view.Meta
	if meta.TotalPages == 0 {
		return ""
	}

	parts := make([]string, 0, len(view.Window)*2+2)
	parts = append(parts, arrowButton(prevLabel, meta.HasPrevious))

	for i, page := range view.Window {
		if pagination.HasGapBefore(view.Window, i) {
			parts = append(parts, SubtleStyle.Render(gapLabel))
		}
		label := strconv.Itoa(page)
		if page == meta.CurrentPage {
			parts = append(parts, ActivePageButtonStyle.Render(label))
		} else {
			parts = append(parts, PageButtonStyle.Render(label))
		}
	}

	parts = append(parts, arrowButton(nextLabel, meta.HasNext))
	return strings.Join(parts, " ")
}

func arrowButton(label string, enabled bool) string {
	if enabled {
		return PageButtonStyle.Render(label)
	}
	return DisabledStyle.Render(label)
}

// renderToolbar renders the two closed dropdowns.
func renderToolbar(view engine.ListView) string {
	sortBox := SelectorStyle.Render(LabelStyle.Render("Sort: ") + ValueStyle.Render(view.Sort.Label()) + " ▾")
	regionBox := SelectorStyle.Render(LabelStyle.Render("Region: ") + ValueStyle.Render(view.Region.Label()) + " ▾")
	return lipgloss.JoinHorizontal(lipgloss.Top, sortBox, " ", regionBox)
}

// View renders the current view.
func (m *CountryListModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateLoading:
		return HeaderStyle.Render("COUNTRY LIST") + "\n\n" + RenderLoading(m.loading) + "\n"
	case ViewStateList, ViewStatePicker:
		return m.renderListView()
	default:
		return ""
	}
}

func (m *CountryListModel) renderListView() string {
	view := m.ctrl.View()

	sections := []string{HeaderStyle.Render("COUNTRY LIST"), renderToolbar(view)}

	if m.state == ViewStatePicker {
		sections = append(sections, m.renderPicker(), SubtleStyle.Render(pickerHelpText))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	sections = append(sections, m.table.View())
	if bar := RenderPagination(view); bar != "" {
		sections = append(sections, bar)
	}
	sections = append(sections, m.renderStatus(view), SubtleStyle.Render(helpText))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *CountryListModel) renderPicker() string {
	var title, body string
	switch m.openPicker {
	case pickerSort:
		title, body = "Sort by", m.sortPicker.View()
	case pickerRegion:
		title, body = "Region", m.regionPicker.View()
	case pickerNone:
		return ""
	}
	return PickerBoxStyle.Render(HeaderStyle.Render(title) + "\n" + body)
}

func (m *CountryListModel) renderStatus(view engine.ListView) string {
	status := SubtleStyle.Render(engine.Footer(view))
	if m.fetchErr != nil {
		status += "\n" + WarningStyle.Render("Country data could not be loaded; see the log for details.")
	}
	return status
}
