package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case TickMsg:
		return m, tea.Batch(pollStatus(m.Client), tickCmd(m.PollInterval))
	case StatusUpdateMsg:
		return m.handleStatusUpdate(msg)
	case PreviewMsg:
		return m.handlePreview(msg)
	case RunMsg:
		return m.handleRun(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "p", "P":
		if m.Busy == "" {
			m.Busy = "Generating preview posts..."
			m.Err = nil
			return m, requestPreview(m.Client)
		}
	case "r", "R":
		if m.Busy == "" {
			m.Busy = "Fetching and publishing..."
			m.Err = nil
			return m, triggerRun(m.Client)
		}
	}
	return m, nil
}

// handleStatusUpdate syncs server state
func (m Model) handleStatusUpdate(msg StatusUpdateMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Connected = false
		return m, nil
	}
	m.Connected = true
	m.Status = msg.Status
	return m, nil
}

// handlePreview stores preview posts
func (m Model) handlePreview(msg PreviewMsg) (tea.Model, tea.Cmd) {
	m.Busy = ""
	if msg.Err != nil {
		m.Err = fmt.Errorf("preview failed: %w", msg.Err)
		return m, nil
	}
	m.Posts = msg.Posts
	m.LastRun = nil
	return m, nil
}

// handleRun stores the publish run result
func (m Model) handleRun(msg RunMsg) (tea.Model, tea.Cmd) {
	m.Busy = ""
	if msg.Err != nil {
		m.Err = msg.Err
		return m, nil
	}
	m.LastRun = msg.Run
	m.Posts = nil
	return m, nil
}
