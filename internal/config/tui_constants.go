package config

// Layout constants.
const (
	// FrameWidth is the preferred inner width of the timer frame.
	FrameWidth = 46

	// MinFrameWidth is the narrowest frame before content is truncated.
	MinFrameWidth = 24

	// ProgressWidth is the width of the elapsed-time bar.
	ProgressWidth = 36

	// InputWidth is the visible width of the duration field.
	InputWidth = 26
)

// Display strings.
const (
	Title            = "COUNTDOWN TIMER"
	InputPlaceholder = "Enter duration in seconds"

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
