package tui

import (
	"fmt"
	"strings"
)

// maxLogLines bounds the activity log shown on screen
const maxLogLines = 8

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("👟 Sneaker Blog Control Panel"))
	b.WriteString("\n\n")

	// Current state
	b.WriteString(m.getStateText())
	b.WriteString("\n\n")

	if m.Err != nil {
		b.WriteString(ErrorStyle.Render("❌ " + m.Err.Error()))
		b.WriteString("\n\n")
	}

	// Statistics
	if m.Connected && m.Status != nil {
		stats := fmt.Sprintf("📊 Runs tracked: %d | Articles published: %d | Active: %d",
			len(m.Status.Runs), m.Status.Published, m.Status.Active)
		b.WriteString(InfoStyle.Render(stats))
		b.WriteString("\n\n")

		// Logs
		if logs := m.Status.Logs; len(logs) > 0 {
			if len(logs) > maxLogLines {
				logs = logs[len(logs)-maxLogLines:]
			}
			b.WriteString(InfoStyle.Render("📝 Recent Activity:"))
			b.WriteString("\n")
			for _, entry := range logs {
				line := fmt.Sprintf("   %s %s", entry.Timestamp.Format("15:04:05"), entry.Message)
				b.WriteString(InfoStyle.Render(line))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	// Results
	if len(m.Posts) > 0 {
		b.WriteString(BoxStyle.Render(m.formatPosts()))
		b.WriteString("\n\n")
	}
	if m.LastRun != nil {
		b.WriteString(BoxStyle.Render(m.formatRun()))
		b.WriteString("\n\n")
	}

	// Help text
	if m.Busy != "" {
		b.WriteString(InfoStyle.Render(TextFooterBusy))
	} else {
		b.WriteString(InfoStyle.Render(TextFooterIdle))
	}

	return b.String()
}
