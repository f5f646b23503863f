package analyzer

import (
	"math"

	"github.com/bginigeme/mixbot-ai-mixing-assistant/internal/audio"
)

// scanState is the silence detector's two-state machine.
type scanState int

const (
	stateSound scanState = iota
	stateSilence
)

// DetectSilence partitions the waveform into fixed-size windows with 50%
// overlap and classifies each by RMS against the configured threshold.
// Windows are evaluated left-to-right with no look-ahead. A candidate
// period opens on the Sound->Silence transition and is emitted on
// Silence->Sound (or at end of stream) only if it meets the minimum
// duration; shorter silences are absorbed into the surrounding sound and
// never merged with adjacent periods. The result is chronological and
// non-overlapping.
func DetectSilence(w *audio.Waveform, cfg Config) []SilencePeriod {
	window := int(cfg.SilenceWindow * float64(w.SampleRate))
	if window < 2 || len(w.Samples) <= window {
		return nil
	}
	hop := window / 2
	threshold := dbToLinear(cfg.SilenceThresholdDB)

	var periods []SilencePeriod
	state := stateSound
	silenceStart := 0.0

	for start := 0; start < len(w.Samples)-window; start += hop {
		rms := windowRMS(w.Samples[start : start+window])
		t := float64(start) / float64(w.SampleRate)

		switch state {
		case stateSound:
			if rms < threshold {
				silenceStart = t
				state = stateSilence
			}
		case stateSilence:
			if rms >= threshold {
				if t-silenceStart >= cfg.MinSilenceDuration {
					periods = append(periods, SilencePeriod{Start: silenceStart, End: t})
				}
				state = stateSound
			}
		}
	}

	// Stream ended while silent: close the final candidate at the full
	// waveform duration, under the same minimum-duration rule.
	if state == stateSilence {
		end := w.Duration()
		if end-silenceStart >= cfg.MinSilenceDuration {
			periods = append(periods, SilencePeriod{Start: silenceStart, End: end})
		}
	}

	return periods
}

// windowRMS computes the RMS amplitude of one analysis window.
func windowRMS(window []float64) float64 {
	sum := 0.0
	for _, s := range window {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(window)))
}
