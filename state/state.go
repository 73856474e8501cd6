package state

import (
	"fmt"
	"sync"
	"time"

	"sneakerblog/pipeline"
)

// State is the coarse status of the most recent run
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StateComplete State = "complete"
	StateError    State = "error"
)

// LogEntry represents a single log line with timestamp
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// StatusResponse is the JSON response for GET /api/status
type StatusResponse struct {
	State      State                 `json:"state"`
	CurrentRun string                `json:"current_run,omitempty"`
	Stage      pipeline.Stage        `json:"stage,omitempty"`
	Active     int                   `json:"active"`
	Logs       []LogEntry            `json:"logs"`
	Runs       []*pipeline.RunResult `json:"runs"`
	Published  int                   `json:"published"`
	Error      string                `json:"error,omitempty"`
}

// Manager records run progress with thread-safe access. It implements pipeline.Recorder.
type Manager struct {
	mu sync.RWMutex

	currentState State
	currentRun   string
	stage        pipeline.Stage
	active       map[string]pipeline.Stage

	// Ring buffers
	logs    []LogEntry
	maxLogs int
	runs    []*pipeline.RunResult
	maxRuns int

	published int
	lastErr   string
}

// NewManager creates a new state manager
func NewManager() *Manager {
	return &Manager{
		currentState: StateIdle,
		active:       make(map[string]pipeline.Stage),
		logs:         make([]LogEntry, 0),
		maxLogs:      50, // Keep last 50 log entries
		maxRuns:      20,
	}
}

// AddLog adds a log entry (thread-safe)
func (m *Manager) AddLog(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addLogLocked(message)
}

// RunStarted marks a run as in flight
func (m *Manager) RunStarted(runID string, trigger pipeline.Trigger) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.active[runID] = ""
	m.currentRun = runID
	m.stage = ""
	m.currentState = StateRunning
	m.addLogLocked(fmt.Sprintf("Run %s started (%s)", shortID(runID), trigger))
}

// StageEntered records a stage transition of an in-flight run
func (m *Manager) StageEntered(runID string, stage pipeline.Stage) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.active[runID]; ok {
		m.active[runID] = stage
	}
	if runID == m.currentRun {
		m.stage = stage
	}
	m.addLogLocked(fmt.Sprintf("Run %s: %s", shortID(runID), stage))
}

// RunFinished stores the result and updates the overall state
func (m *Manager) RunFinished(result *pipeline.RunResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.active, result.RunID)
	m.runs = append(m.runs, result)
	if len(m.runs) > m.maxRuns {
		m.runs = m.runs[len(m.runs)-m.maxRuns:]
	}

	if result.Published() {
		m.published++
	}

	if result.Error != "" {
		m.lastErr = result.Error
		m.addLogLocked(fmt.Sprintf("Error: %s", result.Error))
	} else {
		m.lastErr = ""
		m.addLogLocked(fmt.Sprintf("Run %s finished at %s", shortID(result.RunID), result.Final()))
	}

	if len(m.active) > 0 {
		return
	}
	if result.Error != "" {
		m.currentState = StateError
	} else {
		m.currentState = StateComplete
	}
}

// GetState gets the current state (thread-safe)
func (m *Manager) GetState() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentState
}

// Runs returns the recent run results, oldest first
func (m *Manager) Runs() []*pipeline.RunResult {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*pipeline.RunResult{}, m.runs...)
}

// GetStatus returns a snapshot of the current state (thread-safe)
func (m *Manager) GetStatus() StatusResponse {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return StatusResponse{
		State:      m.currentState,
		CurrentRun: m.currentRun,
		Stage:      m.stage,
		Active:     len(m.active),
		Logs:       append([]LogEntry{}, m.logs...), // Copy slice
		Runs:       append([]*pipeline.RunResult{}, m.runs...),
		Published:  m.published,
		Error:      m.lastErr,
	}
}

// addLogLocked appends to the log ring buffer (must hold lock)
func (m *Manager) addLogLocked(message string) {
	m.logs = append(m.logs, LogEntry{Timestamp: time.Now(), Message: message})
	if len(m.logs) > m.maxLogs {
		m.logs = m.logs[len(m.logs)-m.maxLogs:]
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
