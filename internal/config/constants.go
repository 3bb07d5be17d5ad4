package config

import "time"

// Timer settings.
const (
	// TickInterval is the countdown granularity.
	TickInterval = time.Second
)

// Default themes. Identifiers are opaque to the controller.
const (
	ThemeRedYellow   = "red-yellow"
	ThemeBlueGreen   = "blue-green"
	ThemePurplePink  = "purple-pink"
	DefaultThemeID   = ThemeRedYellow
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Application settings.
const (
	AppName        = "countdown"
	ConfigFileName = "config.yaml"
)

// Input constraints.
const (
	// MaxDurationDigits limits the duration input field.
	MaxDurationDigits = 7
)
