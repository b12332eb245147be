package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/countrylist/internal/country"
	"github.com/rshade/countrylist/internal/engine"
	"github.com/rshade/countrylist/internal/source"
	listview "github.com/rshade/countrylist/internal/tui/list"
)

// ViewState is the screen the country list is showing.
type ViewState int

const (
	// ViewStateLoading shows the spinner while the dataset is fetched.
	ViewStateLoading ViewState = iota
	// ViewStateList shows the table and pagination bar.
	ViewStateList
	// ViewStatePicker shows the list with a dropdown open.
	ViewStatePicker
	// ViewStateQuitting is the terminal state after q/ctrl+c.
	ViewStateQuitting
)

// pickerKind identifies which dropdown is open.
type pickerKind int

const (
	pickerNone pickerKind = iota
	pickerSort
	pickerRegion
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// tableChromeHeight is the header row plus its bottom border.
	tableChromeHeight = 2
)

// countriesLoadedMsg carries the resolved initial fetch.
type countriesLoadedMsg struct {
	result source.Result
}

// CountryListModel is the Bubble Tea model for the interactive country table.
// It renders whatever the ListController derives and turns key presses into
// controller state changes.
type CountryListModel struct {
	state ViewState
	ctrl  *engine.ListController
	table table.Model

	sortPicker   *listview.PickerModel[country.SortOption]
	regionPicker *listview.PickerModel[country.Region]
	openPicker   pickerKind

	loading  *LoadingState
	fetchCmd tea.Cmd
	fetchErr error

	width  int
	height int
}

// NewCountryListModel creates a model over a controller whose dataset is already loaded.
func NewCountryListModel(ctrl *engine.ListController) *CountryListModel {
	m := &CountryListModel{
		state:  ViewStateList,
		ctrl:   ctrl,
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.table = newCountryTable(ctrl.PageSize() + tableChromeHeight)
	m.refresh()
	return m
}

// NewCountryListModelWithLoading creates a model that starts in the loading state
// and fills ctrl from fetcher. A failed fetch leaves the dataset empty.
func NewCountryListModelWithLoading(
	ctx context.Context,
	ctrl *engine.ListController,
	fetcher source.Fetcher,
) *CountryListModel {
	m := NewCountryListModel(ctrl)
	m.state = ViewStateLoading
	m.loading = NewLoadingState()
	m.fetchCmd = func() tea.Msg {
		return countriesLoadedMsg{result: source.Load(ctx, fetcher)}
	}
	return m
}

// Init starts the fetch when the model is loading.
func (m *CountryListModel) Init() tea.Cmd {
	if m.state == ViewStateLoading {
		return tea.Batch(m.loading.Init(), m.fetchCmd)
	}
	return nil
}

// State returns the current view state.
func (m *CountryListModel) State() ViewState {
	return m.state
}

// Controller returns the underlying list controller.
func (m *CountryListModel) Controller() *engine.ListController {
	return m.ctrl
}

// FetchErr returns the error of the initial fetch, if it failed.
func (m *CountryListModel) FetchErr() error {
	return m.fetchErr
}

// Update handles messages and updates the model state.
func (m *CountryListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		return m, nil
	}

	if loadMsg, ok := msg.(countriesLoadedMsg); ok {
		return m.handleLoadingComplete(loadMsg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == keyCtrlC {
		m.state = ViewStateQuitting
		return m, tea.Quit
	}

	switch m.state {
	case ViewStateLoading:
		return m.handleLoadingUpdate(msg)
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStatePicker:
		return m.handlePickerUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m *CountryListModel) handleLoadingComplete(msg countriesLoadedMsg) (tea.Model, tea.Cmd) {
	m.fetchErr = msg.result.Err
	m.ctrl.SetRecords(msg.result.Dataset())
	m.state = ViewStateList
	m.refresh()
	return m, nil
}

func (m *CountryListModel) handleLoadingUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == keyQuit {
		m.state = ViewStateQuitting
		return m, tea.Quit
	}
	return m, m.loading.Update(msg)
}

func (m *CountryListModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := keyMsg.String(); key {
	case keyQuit:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyS:
		m.openSortPicker()
	case keyR:
		m.openRegionPicker()
	case keyLeft, keyH, keyPgUp:
		m.ctrl.PreviousPage()
		m.refresh()
	case keyRight, keyL, keyPgDown:
		m.ctrl.NextPage()
		m.refresh()
	case keyHome:
		m.ctrl.SetPage(1)
		m.refresh()
	case keyEnd:
		m.ctrl.LastPage()
		m.refresh()
	case keyUp, keyDown, keyJ, keyK:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	default:
		if page, found := m.windowPageForKey(key); found {
			m.ctrl.SetPage(page)
			m.refresh()
		}
	}
	return m, nil
}

// windowPageForKey maps the digit keys 1-9 to the n-th button of the page window.
func (m *CountryListModel) windowPageForKey(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	idx := int(key[0] - '1')
	window := m.ctrl.View().Window
	if idx >= len(window) {
		return 0, false
	}
	return window[idx], true
}

func (m *CountryListModel) handlePickerUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case keyEnter:
		m.applyPickerChoice()
		m.closePicker()
		return m, nil
	case keyEsc, keyQuit:
		m.closePicker()
		return m, nil
	case keyS:
		if m.openPicker == pickerRegion {
			m.openSortPicker()
			return m, nil
		}
		m.closePicker()
		return m, nil
	case keyR:
		if m.openPicker == pickerSort {
			m.openRegionPicker()
			return m, nil
		}
		m.closePicker()
		return m, nil
	}

	switch m.openPicker {
	case pickerSort:
		m.sortPicker.Update(msg)
	case pickerRegion:
		m.regionPicker.Update(msg)
	case pickerNone:
	}
	return m, nil
}

func (m *CountryListModel) openSortPicker() {
	m.sortPicker = listview.NewPickerModel(country.SortOptions(), m.ctrl.SortOption(), m.pickerHeight(), renderOption[country.SortOption])
	m.openPicker = pickerSort
	m.state = ViewStatePicker
}

func (m *CountryListModel) openRegionPicker() {
	m.regionPicker = listview.NewPickerModel(country.Regions(), m.ctrl.Region(), m.pickerHeight(), renderOption[country.Region])
	m.openPicker = pickerRegion
	m.state = ViewStatePicker
}

func (m *CountryListModel) closePicker() {
	m.openPicker = pickerNone
	m.state = ViewStateList
}

func (m *CountryListModel) applyPickerChoice() {
	switch m.openPicker {
	case pickerSort:
		if opt, ok := m.sortPicker.Choice(); ok {
			m.ctrl.SetSortOption(opt)
		}
	case pickerRegion:
		if region, ok := m.regionPicker.Choice(); ok {
			m.ctrl.SetRegionFilter(region)
		}
	case pickerNone:
	}
	m.refresh()
}

// pickerHeight leaves room for the toolbar, the box border and the help line.
func (m *CountryListModel) pickerHeight() int {
	const reserved = 6
	return max(1, m.height-reserved)
}

// refresh copies the controller's visible rows into the table.
func (m *CountryListModel) refresh() {
	m.table.SetRows(countryRows(m.ctrl.View().Rows))
	m.table.SetCursor(0)
}
