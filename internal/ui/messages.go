package ui

import (
	"github.com/bginigeme/mixbot-ai-mixing-assistant/internal/analyzer"
)

// ProgressMsg reports analysis progress for the current file
type ProgressMsg struct {
	Stage    string  // "Measuring levels", "Detecting silence", "Estimating tempo"
	Progress float64 // 0.0 to 1.0 within the stage
}

// FileStartMsg indicates analysis has started on a new file
type FileStartMsg struct {
	FileIndex int
	FileName  string
}

// FileCompleteMsg indicates a file has finished analysis
type FileCompleteMsg struct {
	FileIndex int
	Metrics   *analyzer.Metrics
	Error     error
}

// AllCompleteMsg indicates all files have been analysed
type AllCompleteMsg struct{}
