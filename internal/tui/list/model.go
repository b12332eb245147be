package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders an option. highlighted marks the option under the cursor;
// active marks the option currently in effect.
type RenderFunc[T any] func(item T, highlighted, active bool) string

// PickerModel is a dropdown-style option list.
type PickerModel[T comparable] struct {
	// items contains all options in display order
	items []T

	// renderFunc renders a single option
	renderFunc RenderFunc[T]

	// active is the option currently in effect
	active T

	// highlighted is the index under the cursor
	highlighted int

	// visibleFrom is the first visible option index
	visibleFrom int

	// height is the maximum number of option rows shown
	height int
}

// NewPickerModel creates a picker over items with the cursor on active (or on
// the first item when active is not among them). height limits the rows shown;
// values below 1 show every item.
func NewPickerModel[T comparable](items []T, active T, height int, renderFunc RenderFunc[T]) *PickerModel[T] {
	m := &PickerModel[T]{
		items:      items,
		renderFunc: renderFunc,
		active:     active,
		height:     height,
	}
	for i, item := range items {
		if item == active {
			m.highlighted = i
			break
		}
	}
	m.updateVisibleRange()
	return m
}

// Init initializes the model (required for tea.Model interface).
func (m *PickerModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys.
func (m *PickerModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyMsg(keyMsg), nil
	}
	return m, nil
}

//nolint:exhaustive // Only navigation keys are handled here.
func (m *PickerModel[T]) handleKeyMsg(msg tea.KeyMsg) tea.Model {
	if len(m.items) == 0 {
		return m
	}

	switch msg.Type {
	case tea.KeyUp:
		m.move(-1)
	case tea.KeyDown:
		m.move(1)
	case tea.KeyHome:
		m.SetHighlighted(0)
	case tea.KeyEnd:
		m.SetHighlighted(len(m.items) - 1)
	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			switch msg.Runes[0] {
			case 'j':
				m.move(1)
			case 'k':
				m.move(-1)
			}
		}
	default:
		// Ignore other key types (Ctrl combinations, function keys, etc.)
	}

	return m
}

func (m *PickerModel[T]) move(delta int) {
	m.SetHighlighted(m.highlighted + delta)
}

// updateVisibleRange scrolls just enough to keep the highlighted option visible.
func (m *PickerModel[T]) updateVisibleRange() {
	if m.height < 1 || len(m.items) <= m.height {
		m.visibleFrom = 0
		return
	}
	if m.highlighted < m.visibleFrom {
		m.visibleFrom = m.highlighted
	}
	if m.highlighted >= m.visibleFrom+m.height {
		m.visibleFrom = m.highlighted - m.height + 1
	}
}

// View renders the visible options, one per line.
func (m *PickerModel[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	from, to := m.VisibleRange()
	lines := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		item := m.items[i]
		lines = append(lines, m.renderFunc(item, i == m.highlighted, item == m.active))
	}
	return strings.Join(lines, "\n")
}

// VisibleRange returns the [from, to) indices of the rendered options.
func (m *PickerModel[T]) VisibleRange() (int, int) {
	if m.height < 1 {
		return 0, len(m.items)
	}
	return m.visibleFrom, min(len(m.items), m.visibleFrom+m.height)
}

// ItemCount returns the number of options.
func (m *PickerModel[T]) ItemCount() int {
	return len(m.items)
}

// Highlighted returns the index under the cursor.
func (m *PickerModel[T]) Highlighted() int {
	return m.highlighted
}

// SetHighlighted moves the cursor, capping to valid bounds.
func (m *PickerModel[T]) SetHighlighted(index int) {
	switch {
	case len(m.items) == 0, index < 0:
		m.highlighted = 0
	case index >= len(m.items):
		m.highlighted = len(m.items) - 1
	default:
		m.highlighted = index
	}
	m.updateVisibleRange()
}

// Choice returns the option under the cursor and false when there are no options.
func (m *PickerModel[T]) Choice() (T, bool) {
	var zero T
	if len(m.items) == 0 {
		return zero, false
	}
	return m.items[m.highlighted], true
}

// Active returns the option currently in effect.
func (m *PickerModel[T]) Active() T {
	return m.active
}
