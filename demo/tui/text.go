package tui

// UI Text Constants
const (
	TextFooterIdle = "Press 'p' to preview posts | Press 'r' to fetch and publish | Press 'q' to quit"
	TextFooterBusy = "Request in flight... | Press 'q' to quit"

	// maxContentPreview bounds the post text shown per preview card
	maxContentPreview = 240
)
