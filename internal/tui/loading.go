package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// LoadingState drives the spinner shown while the dataset is being fetched.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState creates a loading indicator with the default message.
func NewLoadingState() *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SubtleStyle
	return &LoadingState{spinner: s, message: "Fetching countries..."}
}

// Init starts the spinner.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner on tick messages.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// RenderLoading renders the spinner line.
func RenderLoading(l *LoadingState) string {
	if l == nil {
		return ""
	}
	return l.spinner.View() + " " + l.message
}
