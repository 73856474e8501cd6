package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// pollStatus creates a command to poll server status
func pollStatus(client *APIClient) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		status, err := client.GetStatus(ctx)
		return StatusUpdateMsg{Status: status, Err: err}
	}
}

// requestPreview creates a command that fetches preview posts
func requestPreview(client *APIClient) tea.Cmd {
	return func() tea.Msg {
		posts, err := client.Preview(context.Background())
		return PreviewMsg{Posts: posts, Err: err}
	}
}

// triggerRun creates a command that runs the publish flow once
func triggerRun(client *APIClient) tea.Cmd {
	return func() tea.Msg {
		run, err := client.FetchAndPublish(context.Background())
		return RunMsg{Run: run, Err: err}
	}
}

// tickCmd creates a command that ticks every interval for polling
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}
