package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette.
const (
	colorAccent   = lipgloss.Color("57")
	colorActiveFg = lipgloss.Color("229")
	colorBorder   = lipgloss.Color("240")
	colorSubtle   = lipgloss.Color("245")
	colorDisabled = lipgloss.Color("238")
	colorWarning  = lipgloss.Color("214")
	colorHeader   = lipgloss.Color("63")
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	// HeaderStyle renders section titles.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)

	// LabelStyle renders field labels.
	LabelStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// ValueStyle renders field values.
	ValueStyle = lipgloss.NewStyle().Bold(true)

	// SubtleStyle renders hints and status lines.
	SubtleStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// WarningStyle renders non-fatal problems such as a failed fetch.
	WarningStyle = lipgloss.NewStyle().Foreground(colorWarning)

	// TableHeaderStyle renders the table header row.
	TableHeaderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorBorder).
				BorderBottom(true).
				Bold(true)

	// TableSelectedStyle renders the row under the table cursor.
	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(colorActiveFg).
				Background(colorAccent)

	// PageButtonStyle renders an inactive page button.
	PageButtonStyle = lipgloss.NewStyle().Padding(0, 1)

	// ActivePageButtonStyle renders the current page button.
	ActivePageButtonStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true).
				Foreground(colorActiveFg).
				Background(colorAccent)

	// DisabledStyle renders disabled previous/next arrows.
	DisabledStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(colorDisabled)

	// PickerBoxStyle frames an open dropdown.
	PickerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	// SelectorStyle renders a closed dropdown in the toolbar.
	SelectorStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
)
