package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bginigeme/mixbot-ai-mixing-assistant/internal/analyzer"
	"github.com/bginigeme/mixbot-ai-mixing-assistant/internal/feedback"
)

// Feedback section styling
var (
	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#8A2BE2"))

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// maxListedSilences caps how many silence periods the analysis block prints
// before collapsing the rest into a count.
const maxListedSilences = 5

// FileResult pairs one input file with its measurements and feedback.
// It is the unit of JSON output and of log generation.
type FileResult struct {
	File     string             `json:"file"`
	Metrics  *analyzer.Metrics  `json:"metrics"`
	Feedback []feedback.Section `json:"feedback,omitempty"`
}

// WriteAnalysis prints the raw measurement block for one file: duration,
// silence detection, loudness, tempo, clipping and supporting metrics, in
// a fixed order so output is diffable between runs.
func WriteAnalysis(w io.Writer, inputPath string, m *analyzer.Metrics) {
	if m == nil {
		return
	}

	fmt.Fprintf(w, "Analyzing audio file: %s\n", inputPath)
	fmt.Fprintln(w, strings.Repeat("=", 50))

	fmt.Fprintf(w, "Duration: %.2f seconds (%.2f minutes)\n", m.DurationSeconds, m.DurationSeconds/60)

	fmt.Fprintln(w, "Silence Detection:")
	fmt.Fprintf(w, "  - Total silence time: %.2f seconds (%.1f%%)\n", m.SilenceTotal, m.SilencePercentage)
	fmt.Fprintf(w, "  - Number of silence periods: %d\n", len(m.SilencePeriods))
	if len(m.SilencePeriods) > 0 {
		fmt.Fprintf(w, "  - Silence periods: %s\n", formatPeriods(m.SilencePeriods, maxListedSilences))
		if extra := len(m.SilencePeriods) - maxListedSilences; extra > 0 {
			fmt.Fprintf(w, "    ... and %d more\n", extra)
		}
	}

	fmt.Fprintln(w, "RMS (Loudness):")
	fmt.Fprintf(w, "  - Linear: %.6f\n", m.RMSLinear)
	fmt.Fprintf(w, "  - dB: %s dB\n", formatDB(m.RMSDB, 2))

	if m.TempoEstimated {
		fmt.Fprintf(w, "Tempo: %.1f BPM (confidence: %.2f)\n", m.TempoBPM, m.TempoConfidence)
	} else {
		fmt.Fprintln(w, "Tempo: Could not be estimated")
	}

	fmt.Fprintln(w, "Clipping Detection:")
	fmt.Fprintf(w, "  - Peak level: %s dB\n", formatDB(m.PeakDB, 2))
	fmt.Fprintf(w, "  - Clipping threshold: %.2f dB\n", m.ClipThresholdDB)
	fmt.Fprintf(w, "  - Likely clipped: %s\n", yesNo(m.Clipped))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Additional Metrics:")
	fmt.Fprintf(w, "  - Sample rate: %d Hz\n", m.SampleRate)
	fmt.Fprintf(w, "  - Number of samples: %s\n", groupDigits(m.SampleCount))
	fmt.Fprintf(w, "  - Dynamic range: %s dB\n", formatDB(m.DynamicRangeDB, 2))
}

// WriteFeedback prints the mixing feedback sections. When styled is true,
// section titles are rendered through lipgloss; plain output keeps the same
// layout with bare text for piping and logs.
func WriteFeedback(w io.Writer, sections []feedback.Section, styled bool) {
	if len(sections) == 0 {
		return
	}

	rule := strings.Repeat("=", 50)
	header := "MIXING & MASTERING FEEDBACK"
	if styled {
		rule = ruleStyle.Render(rule)
		header = sectionTitleStyle.Render(header)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, rule)

	for _, s := range sections {
		title := s.Title
		if styled {
			title = sectionTitleStyle.Render(title)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, title)
		fmt.Fprintln(w, s.Body)
	}
}

// WriteJSON emits all results as a single indented JSON document.
func WriteJSON(w io.Writer, results []FileResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// SaveLog writes a detailed plain-text report alongside the input file.
// The log filename is <input>-analysis.log. Returns the path written.
func SaveLog(result FileResult) (string, error) {
	base := strings.TrimSuffix(result.File, filepath.Ext(result.File))
	logPath := base + "-analysis.log"

	f, err := os.Create(logPath)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}
	defer f.Close()

	writeLogHeader(f, result.File)
	WriteAnalysis(f, result.File, result.Metrics)
	writeMetricTable(f, result.Metrics)
	WriteFeedback(f, result.Feedback, false)

	return logPath, nil
}

func writeLogHeader(f *os.File, inputPath string) {
	writeSection(f, "Mix Analysis Report")
	fmt.Fprintf(f, "File:      %s\n", filepath.Base(inputPath))
	fmt.Fprintf(f, "Generated: %s\n", time.Now().Format(time.RFC1123))
	fmt.Fprintln(f)
}

// writeMetricTable appends an aligned summary table to the log, repeating
// the headline numbers with one-line interpretations.
func writeMetricTable(f *os.File, m *analyzer.Metrics) {
	if m == nil {
		return
	}

	fmt.Fprintln(f)
	writeSection(f, "Metric Summary")

	var t MetricTable
	t.AddMetricRow("Duration", m.DurationSeconds, 2, "s", "")
	t.AddRow("RMS level", formatDB(m.RMSDB, 2), "dB", interpretRMS(m.RMSDB))
	t.AddRow("Peak level", formatDB(m.PeakDB, 2), "dB", interpretPeak(m.PeakDB))
	t.AddRow("Dynamic range", formatDB(m.DynamicRangeDB, 2), "dB", interpretDynamicRange(m.DynamicRangeDB))
	if m.TempoEstimated {
		t.AddMetricRow("Tempo", m.TempoBPM, 1, "BPM", fmt.Sprintf("confidence %.2f", m.TempoConfidence))
	} else {
		t.AddRow("Tempo", MissingValue, "BPM", "could not be estimated")
	}
	t.AddMetricRow("Silence", m.SilencePercentage, 1, "%", interpretSilence(m.SilencePercentage))
	t.AddRow("Clipped", yesNo(m.Clipped), "", "")
	fmt.Fprint(f, t.String())
}

func writeSection(f *os.File, title string) {
	fmt.Fprintln(f, title)
	fmt.Fprintln(f, strings.Repeat("-", len(title)))
}

// interpretRMS describes overall loudness relative to common mastering targets.
// Reference levels follow typical pre-master practice: around -14 to -10 dB RMS
// leaves room for a mastering chain.
func interpretRMS(db float64) string {
	switch {
	case math.IsInf(db, -1):
		return "digital silence"
	case db > -6:
		return "very hot, little mastering headroom"
	case db > -10:
		return "loud, limited headroom"
	case db > -16:
		return "healthy pre-master level"
	default:
		return "quiet, plenty of headroom"
	}
}

// interpretPeak describes ceiling proximity.
func interpretPeak(db float64) string {
	switch {
	case math.IsInf(db, -1):
		return "digital silence"
	case db > -0.1:
		return "at the digital ceiling"
	case db > -1:
		return "very close to clipping"
	case db > -6:
		return "normal peak headroom"
	default:
		return "generous headroom"
	}
}

// interpretDynamicRange describes peak-to-RMS crest.
// Under ~6 dB indicates heavy limiting; over ~20 dB suggests an uncontrolled mix.
func interpretDynamicRange(db float64) string {
	switch {
	case math.IsNaN(db) || math.IsInf(db, 0):
		return ""
	case db < 6:
		return "heavily compressed or limited"
	case db < 12:
		return "controlled, modern density"
	case db < 20:
		return "open, dynamic"
	default:
		return "very wide, may need compression"
	}
}

func interpretSilence(pct float64) string {
	switch {
	case pct > 50:
		return "mostly silence"
	case pct > 15:
		return "significant gaps"
	case pct < 1:
		return "wall-to-wall sound"
	default:
		return ""
	}
}

// formatPeriods renders up to limit silence periods as (start, end) pairs.
func formatPeriods(periods []analyzer.SilencePeriod, limit int) string {
	if len(periods) > limit {
		periods = periods[:limit]
	}
	parts := make([]string, len(periods))
	for i, p := range periods {
		parts[i] = fmt.Sprintf("(%.2f, %.2f)", p.Start, p.End)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// groupDigits formats an integer with comma thousands separators.
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var sb strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteRune(',')
		}
		sb.WriteRune(r)
	}
	if neg {
		return "-" + sb.String()
	}
	return sb.String()
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
