package tui

// Key bindings, as reported by tea.KeyMsg.String().
const (
	keyQuit   = "q"
	keyCtrlC  = "ctrl+c"
	keyEnter  = "enter"
	keyEsc    = "esc"
	keyUp     = "up"
	keyDown   = "down"
	keyLeft   = "left"
	keyRight  = "right"
	keyH      = "h"
	keyL      = "l"
	keyJ      = "j"
	keyK      = "k"
	keyS      = "s"
	keyR      = "r"
	keyHome   = "home"
	keyEnd    = "end"
	keyPgUp   = "pgup"
	keyPgDown = "pgdown"
)

// helpText lists the list view key bindings.
const helpText = "[s] Sort  [r] Region  [←/→] Page  [1-9] Jump  [Home/End] First/Last  [q] Quit"

// pickerHelpText lists the key bindings while a dropdown is open.
const pickerHelpText = "[↑/↓] Move  [Enter] Select  [Esc] Close"
