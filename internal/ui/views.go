package ui

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderAnalysisView renders the main analysis view
func renderAnalysisView(m Model) string {
	var b strings.Builder

	// Header
	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")

	// File queue
	b.WriteString(renderFileQueue(m))
	b.WriteString("\n\n")

	// Overall progress
	b.WriteString(renderOverallProgress(m))

	return b.String()
}

// renderHeader renders the application header
func renderHeader(m Model) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#8A2BE2")).
		Render("Mixbot 🎛 - AI Mixing Assistant")

	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Italic(true).
		Render(fmt.Sprintf("Analyzing %d file(s)", m.TotalFiles))

	return title + "\n" + subtitle
}

// renderFileQueue renders the list of files with their status
func renderFileQueue(m Model) string {
	var b strings.Builder

	for i, file := range m.Files {
		b.WriteString(renderFileEntry(m, file, i))
		b.WriteString("\n")
	}

	return b.String()
}

// renderFileEntry renders a single file entry in the queue
func renderFileEntry(m Model, file FileProgress, index int) string {
	fileName := filepath.Base(file.InputPath)

	switch file.Status {
	case StatusComplete:
		// ✓ completed file with headline metrics
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Render("✓")
		return fmt.Sprintf(" %s %s\n   %s", icon, fileName, renderMetricSummary(file))

	case StatusAnalyzing:
		// spinner + active file with stage progress
		spinner := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Render(spinnerFrames[m.spinnerIndex])
		return fmt.Sprintf(" %s %s\n%s", spinner, fileName, renderFileDetails(file))

	case StatusError:
		// ✗ failed file
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).Render("✗")
		return fmt.Sprintf(" %s %s\n   Error: %v", icon, fileName, file.Error)

	default:
		// ○ queued file
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("○")
		return fmt.Sprintf(" %s %s\n   Queued...", icon, fileName)
	}
}

// renderFileDetails renders detailed progress for the active file
func renderFileDetails(file FileProgress) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#8A2BE2")).
		Padding(0, 1).
		Width(60)

	var content strings.Builder

	stage := file.Stage
	if stage == "" {
		stage = "Loading audio"
	}
	content.WriteString(stage + "\n")

	content.WriteString(renderProgressBar(file.Progress, 40))
	content.WriteString("\n")
	content.WriteString(fmt.Sprintf("⏱  Elapsed: %.1fs", file.ElapsedTime.Seconds()))

	return box.Render(content.String())
}

// renderProgressBar renders a progress bar
func renderProgressBar(progress float64, width int) string {
	filled := int(progress * float64(width))
	if filled > width {
		filled = width
	}
	empty := width - filled

	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	percentage := int(progress * 100)

	return fmt.Sprintf("%s %d%%", bar, percentage)
}

// renderMetricSummary renders the headline numbers for a completed file
func renderMetricSummary(file FileProgress) string {
	m := file.Metrics
	if m == nil {
		return "analysed"
	}

	tempo := "tempo n/a"
	if m.TempoEstimated {
		tempo = fmt.Sprintf("%.0f BPM", m.TempoBPM)
	}

	rms := "RMS < -120 dB"
	if !math.IsInf(m.RMSDB, -1) {
		rms = fmt.Sprintf("RMS %.1f dB", m.RMSDB)
	}

	clip := "no clipping"
	if m.Clipped {
		clip = lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).Render("CLIPPED")
	}

	return fmt.Sprintf("%s | %s | %s | %.1f%% silence", rms, tempo, clip, m.SilencePercentage)
}

// renderOverallProgress renders the overall progress footer
func renderOverallProgress(m Model) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#888888")).
		Padding(0, 1).
		Width(60)

	var content string
	if m.CurrentIndex >= 0 && m.CurrentIndex < len(m.Files) {
		currentFile := m.CurrentIndex + 1 // 1-indexed for display
		content = fmt.Sprintf("Analyzing file %d of %d (%d complete)",
			currentFile, m.TotalFiles, m.CompletedFiles)
	} else {
		content = fmt.Sprintf("Overall Progress: %d/%d complete", m.CompletedFiles, m.TotalFiles)
	}

	return box.Render(content)
}

// renderCompletionSummary renders the final completion summary
func renderCompletionSummary(m Model) string {
	var b strings.Builder

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00AA00")).
		Render("✨ Analysis Complete!")
	b.WriteString(header)
	b.WriteString("\n\n")

	for _, file := range m.Files {
		switch file.Status {
		case StatusComplete:
			icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Render("✓")
			fmt.Fprintf(&b, " %s %s\n   %s\n", icon, filepath.Base(file.InputPath), renderMetricSummary(file))
		case StatusError:
			icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).Render("✗")
			fmt.Fprintf(&b, " %s %s\n   Error: %v\n", icon, filepath.Base(file.InputPath), file.Error)
		}
	}

	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", 60))
	b.WriteString("\n")
	if m.FailedFiles > 0 {
		fmt.Fprintf(&b, "%d of %d file(s) analysed, %d failed\n", m.CompletedFiles, m.TotalFiles, m.FailedFiles)
	} else {
		fmt.Fprintf(&b, "All %d file(s) analysed ✓\n", m.TotalFiles)
	}
	b.WriteString("Full analysis and mixing feedback follow below.\n")

	return b.String()
}
