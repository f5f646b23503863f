package analyzer

import (
	"math"

	"github.com/bginigeme/mixbot-ai-mixing-assistant/internal/audio"
)

// toneOptions configures the synthetic waveform to generate
type toneOptions struct {
	DurationSecs float64 // Total duration in seconds
	SampleRate   int     // Sample rate (default: 44100)
	Freq         float64 // Sine wave frequency in Hz (0 = no tone)
	Amplitude    float64 // Linear tone amplitude (e.g. 0.5)
	LeadSilence  float64 // Seconds of silence at the start
	TrailSilence float64 // Seconds of silence at the end
	Gap          struct {
		Start    float64 // Start time of a mid-track silence gap in seconds
		Duration float64 // Gap duration in seconds (0 = no gap)
	}
}

// generateTone builds an in-memory sine waveform with optional leading,
// trailing, and mid-track silence.
func generateTone(opts toneOptions) *audio.Waveform {
	if opts.SampleRate == 0 {
		opts.SampleRate = 44100
	}
	if opts.DurationSecs == 0 {
		opts.DurationSecs = 5.0
	}

	total := int(opts.DurationSecs * float64(opts.SampleRate))
	samples := make([]float64, total)

	leadEnd := int(opts.LeadSilence * float64(opts.SampleRate))
	trailStart := total - int(opts.TrailSilence*float64(opts.SampleRate))
	gapStart := int(opts.Gap.Start * float64(opts.SampleRate))
	gapEnd := gapStart + int(opts.Gap.Duration*float64(opts.SampleRate))

	for i := 0; i < total; i++ {
		if i < leadEnd || i >= trailStart {
			continue
		}
		if opts.Gap.Duration > 0 && i >= gapStart && i < gapEnd {
			continue
		}
		t := float64(i) / float64(opts.SampleRate)
		samples[i] = opts.Amplitude * math.Sin(2.0*math.Pi*opts.Freq*t)
	}

	return &audio.Waveform{Samples: samples, SampleRate: opts.SampleRate}
}

// generateClickTrack builds a waveform of short decaying 1kHz bursts at
// the given tempo, for exercising the tempo estimator against a known BPM.
func generateClickTrack(durationSecs float64, sampleRate int, bpm float64) *audio.Waveform {
	total := int(durationSecs * float64(sampleRate))
	samples := make([]float64, total)

	beatPeriod := 60.0 / bpm
	clickLen := int(0.02 * float64(sampleRate)) // 20ms burst

	for beat := 0.0; beat < durationSecs; beat += beatPeriod {
		start := int(beat * float64(sampleRate))
		for k := 0; k < clickLen && start+k < total; k++ {
			t := float64(k) / float64(sampleRate)
			decay := math.Exp(-float64(k) / (0.005 * float64(sampleRate)))
			samples[start+k] = 0.8 * decay * math.Sin(2.0*math.Pi*1000.0*t)
		}
	}

	return &audio.Waveform{Samples: samples, SampleRate: sampleRate}
}

// generateZeros builds a fully silent waveform.
func generateZeros(durationSecs float64, sampleRate int) *audio.Waveform {
	return &audio.Waveform{
		Samples:    make([]float64, int(durationSecs*float64(sampleRate))),
		SampleRate: sampleRate,
	}
}

// approxEqual reports whether two floats are within tolerance.
func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
