package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconFolder = "📁"
	IconPlay   = "▶"
	IconStop   = "■"
)

// Layout sizing
const (
	DialogMinWidth  float32 = 420
	DialogMinHeight float32 = 160
)

// Status refresh while the tracker runs
const (
	StatusRefreshInterval = time.Second
)
