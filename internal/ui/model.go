// Package ui provides the Bubbletea terminal user interface for mixbot
package ui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bginigeme/mixbot-ai-mixing-assistant/internal/analyzer"
)

var debugLog *os.File

func init() {
	if os.Getenv("MIXBOT_UI_DEBUG") != "" {
		debugLog, _ = os.OpenFile("mixbot-ui-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	}
}

func log(format string, args ...interface{}) {
	if debugLog != nil {
		fmt.Fprintf(debugLog, format+"\n", args...)
	}
}

// Spinner frames for the active file indicator
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// tickMsg drives the spinner and elapsed-time display
type tickMsg time.Time

// FileStatus represents the analysis state of a single file
type FileStatus int

const (
	StatusQueued FileStatus = iota
	StatusAnalyzing
	StatusComplete
	StatusError
)

// FileProgress tracks analysis progress for a single audio file
type FileProgress struct {
	InputPath string
	Status    FileStatus

	// Stage tracking
	Stage    string  // current analysis stage name
	Progress float64 // 0.0 to 1.0 within the stage

	StartTime   time.Time
	ElapsedTime time.Duration

	// Results
	Metrics *analyzer.Metrics
	Error   error
}

// Model is the Bubbletea model for the analysis UI
type Model struct {
	// File queue
	Files          []FileProgress
	CurrentIndex   int
	TotalFiles     int
	CompletedFiles int
	FailedFiles    int

	// Global state
	StartTime time.Time
	Done      bool

	// Spinner state
	spinnerIndex int

	// Terminal dimensions
	Width  int
	Height int
}

// NewModel creates a new UI model with the given input files
func NewModel(inputFiles []string) Model {
	files := make([]FileProgress, len(inputFiles))
	for i, path := range inputFiles {
		files[i] = FileProgress{
			InputPath: path,
			Status:    StatusQueued,
		}
	}

	return Model{
		Files:        files,
		CurrentIndex: -1, // No file analysing yet
		TotalFiles:   len(inputFiles),
		StartTime:    time.Now(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		log("[DEBUG] Window size: %dx%d", m.Width, m.Height)

	case tickMsg:
		m.spinnerIndex = (m.spinnerIndex + 1) % len(spinnerFrames)
		if m.CurrentIndex >= 0 && m.CurrentIndex < len(m.Files) {
			fp := &m.Files[m.CurrentIndex]
			if fp.Status == StatusAnalyzing {
				fp.ElapsedTime = time.Since(fp.StartTime)
			}
		}
		if m.Done {
			return m, nil
		}
		return m, tickCmd()

	case ProgressMsg:
		log("[DEBUG] ProgressMsg received: %s %.1f%%", msg.Stage, msg.Progress*100)
		if m.CurrentIndex >= 0 && m.CurrentIndex < len(m.Files) {
			fp := &m.Files[m.CurrentIndex]
			fp.Stage = msg.Stage
			fp.Progress = msg.Progress
			fp.ElapsedTime = time.Since(fp.StartTime)
		}
		return m, nil

	case FileStartMsg:
		log("[DEBUG] FileStartMsg received: index=%d, file=%s", msg.FileIndex, msg.FileName)
		m.CurrentIndex = msg.FileIndex
		m.Files[m.CurrentIndex].Status = StatusAnalyzing
		m.Files[m.CurrentIndex].StartTime = time.Now()
		return m, nil

	case FileCompleteMsg:
		log("[DEBUG] FileCompleteMsg received: index=%d", msg.FileIndex)
		if msg.FileIndex >= 0 && msg.FileIndex < len(m.Files) {
			fp := &m.Files[msg.FileIndex]
			fp.Metrics = msg.Metrics
			fp.Error = msg.Error
			fp.ElapsedTime = time.Since(fp.StartTime)

			if msg.Error != nil {
				fp.Status = StatusError
				m.FailedFiles++
			} else {
				fp.Status = StatusComplete
				m.CompletedFiles++
			}
		}
		return m, nil

	case AllCompleteMsg:
		log("[DEBUG] AllCompleteMsg received")
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.Width == 0 {
		return fmt.Sprintf("Initializing...\nFiles: %d\nCurrent: %d\n", len(m.Files), m.CurrentIndex)
	}

	if m.Done {
		return renderCompletionSummary(m)
	}

	return renderAnalysisView(m)
}

// tickCmd returns a command that sends a tick message every 100ms
func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
