// Package analyzer extracts numeric features from decoded waveforms:
// duration, RMS loudness, peak level, a clipping heuristic, silence
// periods, and a tempo estimate. Extractors are pure functions over the
// sample buffer and are independent of one another.
package analyzer

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/bginigeme/mixbot-ai-mixing-assistant/internal/audio"
)

// Config holds the analysis tunables.
type Config struct {
	// Silence detection
	SilenceThresholdDB float64 // windows below this RMS level are silent
	MinSilenceDuration float64 // seconds; shorter silences are absorbed
	SilenceWindow      float64 // analysis window length in seconds

	// Tempo estimation
	TempoFrameSize int // FFT frame length in samples
	TempoHopSize   int // hop between frames in samples
}

// DefaultConfig returns the standard analysis configuration.
func DefaultConfig() Config {
	return Config{
		SilenceThresholdDB: -40.0,
		MinSilenceDuration: 0.1,
		SilenceWindow:      0.010, // 10ms windows, 50% overlap
		TempoFrameSize:     1024,
		TempoHopSize:       512,
	}
}

// SilencePeriod is a contiguous interval of silence in seconds.
// Start < End, and End-Start meets the configured minimum duration.
type SilencePeriod struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Duration returns the period length in seconds.
func (p SilencePeriod) Duration() float64 {
	return p.End - p.Start
}

// Metrics is the flat result of one analysis run. Constructed once per
// run and never mutated afterwards.
type Metrics struct {
	DurationSeconds float64 `json:"duration_seconds"`
	SampleRate      int     `json:"sample_rate"`
	SampleCount     int     `json:"sample_count"`

	RMSLinear float64 `json:"rms_linear"`
	RMSDB     float64 `json:"rms_db"`  // -Inf for a fully silent buffer
	PeakDB    float64 `json:"peak_db"` // -Inf for a fully silent buffer

	Clipped         bool    `json:"is_clipped"`
	ClipThresholdDB float64 `json:"clip_threshold_db"`
	FlatSampleRatio float64 `json:"flat_sample_ratio"`

	TempoBPM        float64 `json:"tempo_bpm"` // 0 when not estimated
	TempoConfidence float64 `json:"tempo_confidence"`
	TempoEstimated  bool    `json:"tempo_estimated"`

	SilencePeriods    []SilencePeriod `json:"silence_periods"`
	SilenceTotal      float64         `json:"silence_total_seconds"`
	SilencePercentage float64         `json:"silence_percentage"`

	DynamicRangeDB float64 `json:"dynamic_range_db"` // peak - rms, when both finite
}

// MarshalJSON serializes the metrics with non-finite level values as
// null: a silent buffer carries -Inf dB levels and an undefined dynamic
// range, neither of which encoding/json can represent.
func (m *Metrics) MarshalJSON() ([]byte, error) {
	type plain Metrics
	return json.Marshal(struct {
		*plain
		RMSDB          *float64 `json:"rms_db"`
		PeakDB         *float64 `json:"peak_db"`
		DynamicRangeDB *float64 `json:"dynamic_range_db"`
	}{
		plain:          (*plain)(m),
		RMSDB:          finiteOrNil(m.RMSDB),
		PeakDB:         finiteOrNil(m.PeakDB),
		DynamicRangeDB: finiteOrNil(m.DynamicRangeDB),
	})
}

func finiteOrNil(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// ProgressFunc reports extraction progress for UI display.
// stage names the extractor currently running; frac is 0.0-1.0.
type ProgressFunc func(stage string, frac float64)

// Analyze runs all feature extractors over the waveform in a fixed order
// and returns the assembled metrics. Only a degenerate waveform aborts the
// run; a tempo estimation failure degrades to TempoEstimated=false so the
// remaining metrics still produce a best-effort report.
func Analyze(w *audio.Waveform, cfg Config, progress ProgressFunc) (*Metrics, error) {
	if w == nil || len(w.Samples) == 0 {
		return nil, fmt.Errorf("cannot analyze an empty waveform")
	}
	if w.SampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", w.SampleRate)
	}
	report := func(stage string, frac float64) {
		if progress != nil {
			progress(stage, frac)
		}
	}

	m := &Metrics{
		DurationSeconds: w.Duration(),
		SampleRate:      w.SampleRate,
		SampleCount:     len(w.Samples),
		ClipThresholdDB: ClipThresholdDB,
	}

	report("Measuring levels", 0.0)
	m.RMSLinear, m.RMSDB = RMS(w.Samples)
	m.Clipped, m.PeakDB, m.FlatSampleRatio = DetectClipping(w.Samples)
	if !math.IsInf(m.RMSDB, -1) && !math.IsInf(m.PeakDB, -1) {
		m.DynamicRangeDB = m.PeakDB - m.RMSDB
	} else {
		// Undefined for a silent buffer; zero would read as a real
		// measurement downstream
		m.DynamicRangeDB = math.NaN()
	}
	report("Measuring levels", 1.0)

	report("Detecting silence", 0.0)
	m.SilencePeriods = DetectSilence(w, cfg)
	for _, p := range m.SilencePeriods {
		m.SilenceTotal += p.Duration()
	}
	m.SilencePercentage = m.SilenceTotal / m.DurationSeconds * 100.0
	report("Detecting silence", 1.0)

	report("Estimating tempo", 0.0)
	bpm, confidence, err := EstimateTempo(w, cfg)
	if err == nil {
		m.TempoBPM = bpm
		m.TempoConfidence = confidence
		m.TempoEstimated = true
	}
	report("Estimating tempo", 1.0)

	return m, nil
}
