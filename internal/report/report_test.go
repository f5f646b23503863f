package report

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bginigeme/mixbot-ai-mixing-assistant/internal/analyzer"
	"github.com/bginigeme/mixbot-ai-mixing-assistant/internal/feedback"
)

func sampleMetrics() *analyzer.Metrics {
	return &analyzer.Metrics{
		DurationSeconds: 185.5,
		SampleRate:      44100,
		SampleCount:     8180550,
		RMSLinear:       0.177828,
		RMSDB:           -15.0,
		PeakDB:          -2.5,
		Clipped:         false,
		ClipThresholdDB: analyzer.ClipThresholdDB,
		TempoBPM:        120.0,
		TempoConfidence: 0.74,
		TempoEstimated:  true,
		SilencePeriods: []analyzer.SilencePeriod{
			{Start: 0, End: 0.5},
			{Start: 92.1, End: 92.4},
		},
		SilenceTotal:      0.8,
		SilencePercentage: 0.43,
		DynamicRangeDB:    12.5,
	}
}

func TestWriteAnalysisFormat(t *testing.T) {
	var buf bytes.Buffer
	WriteAnalysis(&buf, "mix.wav", sampleMetrics())
	out := buf.String()

	for _, want := range []string{
		"Analyzing audio file: mix.wav",
		"Duration: 185.50 seconds (3.09 minutes)",
		"Total silence time: 0.80 seconds (0.4%)",
		"Number of silence periods: 2",
		"Silence periods: [(0.00, 0.50), (92.10, 92.40)]",
		"Linear: 0.177828",
		"dB: -15.00 dB",
		"Tempo: 120.0 BPM (confidence: 0.74)",
		"Peak level: -2.50 dB",
		"Clipping threshold: -0.10 dB",
		"Likely clipped: NO",
		"Sample rate: 44100 Hz",
		"Number of samples: 8,180,550",
		"Dynamic range: 12.50 dB",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("analysis output missing %q\n%s", want, out)
		}
	}
}

func TestWriteAnalysisDegradedTempo(t *testing.T) {
	m := sampleMetrics()
	m.TempoEstimated = false
	m.TempoBPM = 0
	m.TempoConfidence = 0

	var buf bytes.Buffer
	WriteAnalysis(&buf, "mix.wav", m)

	if !strings.Contains(buf.String(), "Tempo: Could not be estimated") {
		t.Errorf("expected degraded tempo message, got:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "confidence") {
		t.Error("degraded tempo should not print a confidence")
	}
}

func TestWriteAnalysisSilenceTruncation(t *testing.T) {
	m := sampleMetrics()
	m.SilencePeriods = nil
	for i := 0; i < 7; i++ {
		start := float64(i) * 10
		m.SilencePeriods = append(m.SilencePeriods, analyzer.SilencePeriod{Start: start, End: start + 0.5})
	}

	var buf bytes.Buffer
	WriteAnalysis(&buf, "mix.wav", m)
	out := buf.String()

	if !strings.Contains(out, "... and 2 more") {
		t.Errorf("expected truncation note for 7 periods, got:\n%s", out)
	}
	if strings.Contains(out, "(50.00, 50.50)") {
		t.Error("sixth period should not be listed")
	}
}

func TestWriteAnalysisSilentBuffer(t *testing.T) {
	m := sampleMetrics()
	m.RMSDB = math.Inf(-1)
	m.PeakDB = math.Inf(-1)
	m.DynamicRangeDB = math.NaN()

	var buf bytes.Buffer
	WriteAnalysis(&buf, "quiet.wav", m)
	out := buf.String()

	if !strings.Contains(out, "dB: < -120 dB") {
		t.Errorf("silent RMS should print the digital silence floor, got:\n%s", out)
	}
	if !strings.Contains(out, "Peak level: < -120 dB") {
		t.Errorf("silent peak should print the digital silence floor, got:\n%s", out)
	}
	if !strings.Contains(out, "Dynamic range: - dB") {
		t.Errorf("undefined dynamic range should print a placeholder, got:\n%s", out)
	}
}

func TestWriteFeedback(t *testing.T) {
	sections := []feedback.Section{
		{ID: "overall", Title: "ANALYSIS SUMMARY", Body: "- RMS Level: -15.0 dB"},
		{ID: "loudness", Title: "LOUDNESS & DYNAMICS", Body: "RMS level is in a good range."},
	}

	var buf bytes.Buffer
	WriteFeedback(&buf, sections, false)
	out := buf.String()

	if !strings.Contains(out, "MIXING & MASTERING FEEDBACK") {
		t.Error("missing feedback header")
	}
	for _, s := range sections {
		if !strings.Contains(out, s.Title) || !strings.Contains(out, s.Body) {
			t.Errorf("missing section %s in output:\n%s", s.ID, out)
		}
	}

	summaryIdx := strings.Index(out, "ANALYSIS SUMMARY")
	loudnessIdx := strings.Index(out, "LOUDNESS & DYNAMICS")
	if summaryIdx > loudnessIdx {
		t.Error("sections rendered out of order")
	}
}

func TestWriteFeedbackEmpty(t *testing.T) {
	var buf bytes.Buffer
	WriteFeedback(&buf, nil, false)
	if buf.Len() != 0 {
		t.Errorf("expected no output for empty sections, got %q", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	results := []FileResult{
		{
			File:    "mix.wav",
			Metrics: sampleMetrics(),
			Feedback: []feedback.Section{
				{ID: "overall", Title: "ANALYSIS SUMMARY", Body: "body"},
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, results); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 result, got %d", len(decoded))
	}
	if decoded[0]["file"] != "mix.wav" {
		t.Errorf("file = %v, want mix.wav", decoded[0]["file"])
	}
	metrics, ok := decoded[0]["metrics"].(map[string]any)
	if !ok {
		t.Fatal("missing metrics object")
	}
	if bpm := metrics["tempo_bpm"]; bpm != 120.0 {
		t.Errorf("tempo_bpm = %v, want 120", bpm)
	}
}

func TestSaveLog(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "mix.wav")

	logPath, err := SaveLog(FileResult{
		File:    input,
		Metrics: sampleMetrics(),
		Feedback: []feedback.Section{
			{ID: "overall", Title: "ANALYSIS SUMMARY", Body: "body"},
		},
	})
	if err != nil {
		t.Fatalf("SaveLog: %v", err)
	}
	if want := filepath.Join(dir, "mix-analysis.log"); logPath != want {
		t.Errorf("log path = %s, want %s", logPath, want)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	for _, want := range []string{"Mix Analysis Report", "Metric Summary", "Duration: 185.50 seconds", "ANALYSIS SUMMARY"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("log missing %q", want)
		}
	}
}

func TestFormatDB(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"normal", -3.5, "-3.50"},
		{"negative infinity", math.Inf(-1), "< -120"},
		{"below floor", -130.2, "< -120"},
		{"at floor", -120.0, "< -120"},
		{"just above floor", -119.9, "-119.90"},
		{"nan", math.NaN(), MissingValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDB(tt.value, 2); got != tt.want {
				t.Errorf("formatDB(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{8180550, "8,180,550"},
		{-44100, "-44,100"},
	}
	for _, tt := range tests {
		if got := groupDigits(tt.in); got != tt.want {
			t.Errorf("groupDigits(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMetricTableAlignment(t *testing.T) {
	var tbl MetricTable
	tbl.AddRow("RMS level", "-15.00", "dB", "healthy pre-master level")
	tbl.AddRow("Tempo", "120.0", "BPM", "")

	out := tbl.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "RMS level") {
		t.Errorf("unexpected first line %q", lines[0])
	}
	// Values are right-aligned, so both should end in the same column.
	end0 := strings.Index(lines[0], "-15.00") + len("-15.00")
	end1 := strings.Index(lines[1], "120.0") + len("120.0")
	if end0 != end1 {
		t.Errorf("values not aligned: %q vs %q", lines[0], lines[1])
	}
}
