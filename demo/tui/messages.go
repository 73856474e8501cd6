package tui

import (
	"time"

	"sneakerblog/pipeline"
	"sneakerblog/state"
	"sneakerblog/types"
)

// Messages for the tea program (polling-based)

// StatusUpdateMsg is sent when we receive status from the server
type StatusUpdateMsg struct {
	Status *state.StatusResponse
	Err    error
}

// TickMsg is sent periodically to trigger polling
type TickMsg struct {
	Time time.Time
}

// PreviewMsg carries the posts of a finished preview request
type PreviewMsg struct {
	Posts []types.GeneratedPost
	Err   error
}

// RunMsg carries the result of a fetch-and-publish request
type RunMsg struct {
	Run *pipeline.RunResult
	Err error
}
