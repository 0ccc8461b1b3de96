// Package parameter holds sandbox tuning constants
package parameter

import "time"

// Layout & Margins
const (
	// TopMargin holds the title line
	TopMargin = 1

	// BottomMargin holds the key help line
	BottomMargin = 1

	// HUDWidth is the right-hand column for counters and messages
	HUDWidth = 34

	// MessageLines is how many hook messages the HUD keeps
	MessageLines = 6

	// MessageTimeout is how long a hook message stays visible
	MessageTimeout = 4 * time.Second
)

// UI Symbols
const (
	PlayerChar   = '@'
	SourceChar   = '◆'
	SelectedChar = '▶'
	EllipsisStr  = "…"

	KeyHelp = "spc drop  tab next  c clear  r reset  d destroy  [] cone  arrows move  q quit"
)
