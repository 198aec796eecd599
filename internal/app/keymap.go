package app

// Key binding constants used in handleKey.
const (
	KeyQuit      = "q"
	KeyQuitUpper = "Q"
	KeyCtrlC     = "ctrl+c"
	KeyTab       = "tab"
	KeyShiftTab  = "shift+tab"
	KeyRight     = "right"
	KeyLeft      = "left"
	KeyL         = "l"
	KeyH         = "h"
	KeyUp        = "up"
	KeyDown      = "down"
	KeyJ         = "j"
	KeyK         = "k"
	KeyReload    = "r"
)
