package config

// Layout constants.
const (
	// CompactModeThreshold hides the technique chips below this width.
	CompactModeThreshold = 60

	// MaxCircleRows is the circle radius in rows on a tall terminal.
	MaxCircleRows = 6

	// MinCircleRows keeps the circle visible on short terminals.
	MinCircleRows = 2

	// HomeChromeRows is the home tab height taken by everything but the circle.
	HomeChromeRows = 20

	// MaxProgressWidth caps the session progress bar.
	MaxProgressWidth = 40
)

// TruncationSuffix appended to truncated strings.
const TruncationSuffix = "…"
