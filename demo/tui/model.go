package tui

import (
	"fmt"
	"strings"
	"time"

	"sneakerblog/pipeline"
	"sneakerblog/state"
	"sneakerblog/types"

	tea "github.com/charmbracelet/bubbletea"
)

// Model represents the TUI client state (thin client)
type Model struct {
	Client *APIClient

	// Synced from the server
	Status *state.StatusResponse

	// Results of user-triggered requests
	Posts   []types.GeneratedPost
	LastRun *pipeline.RunResult
	Busy    string
	Err     error

	// Connection status
	Connected bool

	// PollInterval is the delay between status polls
	PollInterval time.Duration
}

// NewModel creates a new TUI model; a non-positive interval polls every second
func NewModel(baseURL string, pollInterval time.Duration) Model {
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return Model{
		Client:       NewAPIClient(baseURL),
		Connected:    false,
		PollInterval: pollInterval,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	// Start polling immediately
	return tea.Batch(
		pollStatus(m.Client),
		tickCmd(m.PollInterval),
	)
}

// getStateText returns the appropriate state message
func (m Model) getStateText() string {
	if !m.Connected {
		return ErrorStyle.Render("❌ Not connected to sneaker blog API")
	}
	if m.Busy != "" {
		return StatusStyle.Render("⏳ " + m.Busy)
	}
	if m.Status == nil {
		return ""
	}

	switch m.Status.State {
	case state.StateIdle:
		return HighlightStyle.Render("👋 Ready!")
	case state.StateRunning:
		return StatusStyle.Render(fmt.Sprintf("⏳ Run in progress (stage: %s)", m.Status.Stage))
	case state.StateComplete:
		return HighlightStyle.Render("✅ Last run complete")
	case state.StateError:
		return ErrorStyle.Render(fmt.Sprintf("❌ Last run failed: %s", m.Status.Error))
	default:
		return ""
	}
}

// formatPosts formats preview posts for display
func (m Model) formatPosts() string {
	var b strings.Builder
	b.WriteString(HighlightStyle.Render(fmt.Sprintf("Preview (%d posts)", len(m.Posts))))
	b.WriteString("\n")

	for i, p := range m.Posts {
		b.WriteString(fmt.Sprintf("\n%d. %s\n", i+1, PostTitleStyle.Render(p.Title)))
		b.WriteString(InfoStyle.Render("   🖼  " + p.Image))
		b.WriteString("\n")
		if p.Link != "" {
			b.WriteString("   🔗 " + LinkStyle.Render(p.Link))
			b.WriteString("\n")
		}
		b.WriteString("   " + truncate(p.Content, maxContentPreview))
		b.WriteString("\n")
	}
	return b.String()
}

// formatRun formats the last publish run for display
func (m Model) formatRun() string {
	run := m.LastRun
	var b strings.Builder

	b.WriteString(HighlightStyle.Render("Publish Run"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Run: %s (%s)\n", run.RunID, run.Trigger))

	stages := make([]string, len(run.Stages))
	for i, s := range run.Stages {
		stages[i] = string(s)
	}
	b.WriteString(fmt.Sprintf("Stages: %s\n", strings.Join(stages, " → ")))

	if run.Item != nil {
		b.WriteString(fmt.Sprintf("Item: %s\n", run.Item.Title))
	}
	if run.Post != nil {
		b.WriteString(fmt.Sprintf("Image: %s (%s)\n", run.Post.Image, run.ImageSource))
	}
	if run.Article != nil {
		b.WriteString(StatusStyle.Render(fmt.Sprintf("Published article %d", run.Article.ID)))
		b.WriteString("\n")
	} else if run.Error == "" {
		b.WriteString(InfoStyle.Render("No matching items; nothing published"))
		b.WriteString("\n")
	}
	if run.Error != "" {
		b.WriteString(ErrorStyle.Render("Error: " + run.Error))
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
