package config

// Layout constants.
const (
	// MinRenderWidth is the narrowest width lines are truncated to.
	MinRenderWidth = 10

	// TruncationSuffix appended to truncated lines.
	TruncationSuffix = "…"
)
