package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPrevious = "◀"
	IconNext     = "▶"
	IconLatest   = "⏭"
	IconInfo     = "ℹ"
)

// Layout sizing
const (
	ImageMinWidth  float32 = 320
	ImageMinHeight float32 = 240
	LogoSize       float32 = 32

	// Touch targets (iOS/Android guidelines)
	MobileButtonHeight float32 = 48
	MobileButtonWidth  float32 = 60
)

// Notification behavior
const (
	NotificationAutoHide = 4 * time.Second
)

// Date format for the comic info dialog
const (
	PublishedDateFormat = "2006-01-02"
)
