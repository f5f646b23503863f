package analyzer

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/bginigeme/mixbot-ai-mixing-assistant/internal/audio"
)

func TestAnalyzeRoundTrip(t *testing.T) {
	// 5-second 440Hz sine at amplitude 0.5 with 0.3s of leading and
	// trailing silence: known duration, RMS, peak, and silence layout
	w := generateTone(toneOptions{
		DurationSecs: 5.0,
		SampleRate:   44100,
		Freq:         440.0,
		Amplitude:    0.5,
		LeadSilence:  0.3,
		TrailSilence: 0.3,
	})

	var stages []string
	progress := func(stage string, frac float64) {
		if frac == 0.0 {
			stages = append(stages, stage)
		}
	}

	m, err := Analyze(w, DefaultConfig(), progress)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	t.Logf("Duration: %.2fs", m.DurationSeconds)
	t.Logf("RMS: %.2f dB, Peak: %.2f dB", m.RMSDB, m.PeakDB)
	t.Logf("Silence: %.1f%% across %d periods", m.SilencePercentage, len(m.SilencePeriods))
	t.Logf("Tempo: %.1f BPM (confidence %.2f, estimated %v)", m.TempoBPM, m.TempoConfidence, m.TempoEstimated)

	if !approxEqual(m.DurationSeconds, 5.0, 0.01) {
		t.Errorf("expected ~5.0s duration, got %v", m.DurationSeconds)
	}
	if m.SampleRate != 44100 || m.SampleCount != 220500 {
		t.Errorf("unexpected sample metadata: rate=%d count=%d", m.SampleRate, m.SampleCount)
	}

	// Full-length sine at 0.5 would be -9.03 dB RMS; 0.6s of silence
	// drags the global figure down slightly
	if m.RMSDB > -8.5 || m.RMSDB < -10.5 {
		t.Errorf("RMS %.2f dB outside expected range for 0.5-amplitude sine", m.RMSDB)
	}
	if !approxEqual(m.PeakDB, 20.0*math.Log10(0.5), 0.1) {
		t.Errorf("peak %.2f dB, expected ~-6.02 dB", m.PeakDB)
	}
	if m.RMSDB > m.PeakDB {
		t.Errorf("RMS %.2f dB exceeds peak %.2f dB", m.RMSDB, m.PeakDB)
	}
	if m.Clipped {
		t.Error("0.5-amplitude sine must not be flagged as clipped")
	}

	if m.SilencePercentage <= 0 || m.SilencePercentage > 100 {
		t.Errorf("silence percentage %v outside (0, 100]", m.SilencePercentage)
	}
	if len(m.SilencePeriods) != 2 {
		t.Errorf("expected 2 silence periods (edges), got %d", len(m.SilencePeriods))
	}
	for _, p := range m.SilencePeriods {
		if p.Start < 0 || p.End > m.DurationSeconds || p.Start >= p.End {
			t.Errorf("silence period %v outside [0, %v]", p, m.DurationSeconds)
		}
	}

	if m.DynamicRangeDB <= 0 {
		t.Errorf("expected positive dynamic range, got %v", m.DynamicRangeDB)
	}

	if len(stages) != 3 {
		t.Errorf("expected 3 progress stages, got %v", stages)
	}
}

func TestAnalyzeSilentWaveform(t *testing.T) {
	// A fully silent buffer degrades level metrics to -Inf and tempo to
	// unestimated; the run itself still succeeds
	m, err := Analyze(generateZeros(5.0, 44100), DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if !math.IsInf(m.RMSDB, -1) || !math.IsInf(m.PeakDB, -1) {
		t.Errorf("expected -Inf levels for silence, got rms=%v peak=%v", m.RMSDB, m.PeakDB)
	}
	if m.Clipped {
		t.Error("silent buffer must not be clipped")
	}
	if m.TempoEstimated || m.TempoBPM != 0 {
		t.Errorf("expected degraded tempo for silence, got %v (estimated=%v)", m.TempoBPM, m.TempoEstimated)
	}
	if !approxEqual(m.SilencePercentage, 100.0, 1.0) {
		t.Errorf("expected ~100%% silence, got %v", m.SilencePercentage)
	}
	if !math.IsNaN(m.DynamicRangeDB) {
		t.Errorf("dynamic range is undefined for silence, got %v", m.DynamicRangeDB)
	}
}

func TestMetricsJSONSilentBuffer(t *testing.T) {
	// -Inf levels and an undefined dynamic range must serialize as null
	// rather than failing the whole encode
	m, err := Analyze(generateZeros(5.0, 44100), DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshaling silent metrics: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"rms_db", "peak_db", "dynamic_range_db"} {
		if v, ok := decoded[key]; !ok || v != nil {
			t.Errorf("%s = %v, want null", key, v)
		}
	}
	if v := decoded["silence_percentage"]; v != 100.0 {
		t.Errorf("silence_percentage = %v, want 100", v)
	}
}

func TestMetricsJSONFiniteLevels(t *testing.T) {
	m, err := Analyze(generateTone(toneOptions{DurationSecs: 2.0, Freq: 440, Amplitude: 0.5}), DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshaling metrics: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	rms, ok := decoded["rms_db"].(float64)
	if !ok {
		t.Fatalf("rms_db = %v, want a number", decoded["rms_db"])
	}
	if !approxEqual(rms, -9.03, 0.1) {
		t.Errorf("rms_db = %v, want ~-9.03", rms)
	}
}

func TestAnalyzeDegenerateInput(t *testing.T) {
	if _, err := Analyze(nil, DefaultConfig(), nil); err == nil {
		t.Error("expected error for nil waveform")
	}
	if _, err := Analyze(&audio.Waveform{}, DefaultConfig(), nil); err == nil {
		t.Error("expected error for empty waveform")
	}
	w := &audio.Waveform{Samples: []float64{0.1, 0.2}, SampleRate: 0}
	if _, err := Analyze(w, DefaultConfig(), nil); err == nil {
		t.Error("expected error for zero sample rate")
	}
}

func TestAnalyzeGenreTempoTrack(t *testing.T) {
	// A click track round-trips through the full pipeline with a usable
	// tempo estimate
	m, err := Analyze(generateClickTrack(10.0, 44100, 128.0), DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if !m.TempoEstimated {
		t.Fatal("expected tempo estimate for click track")
	}
	if !approxEqual(m.TempoBPM, 128.0, 5.0) {
		t.Errorf("expected ~128 BPM, got %.1f", m.TempoBPM)
	}
}
