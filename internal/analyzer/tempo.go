package analyzer

import (
	"errors"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/bginigeme/mixbot-ai-mixing-assistant/internal/audio"
)

// Tempo search range in beats per minute. Estimates outside the range are
// folded back in by octave doubling/halving.
const (
	minTempoBPM = 60.0
	maxTempoBPM = 200.0
)

// ErrTempoEstimation indicates the waveform carries no usable rhythmic
// information (too short, silent, or a degenerate onset envelope).
// Callers degrade to "tempo unknown" rather than aborting the analysis.
var ErrTempoEstimation = errors.New("tempo could not be estimated")

// EstimateTempo estimates the tempo in BPM from a spectral-flux onset
// envelope autocorrelated over the 60-200 BPM lag range. The confidence
// is the normalized autocorrelation at the chosen lag, in [0, 1]: a clean
// periodic beat approaches 1, an arrhythmic signal falls toward 0.
func EstimateTempo(w *audio.Waveform, cfg Config) (bpm, confidence float64, err error) {
	onset := onsetEnvelope(w.Samples, cfg.TempoFrameSize, cfg.TempoHopSize)

	// Lag bounds for the BPM search range, in envelope frames
	framesPerSecond := float64(w.SampleRate) / float64(cfg.TempoHopSize)
	minLag := int(framesPerSecond * 60.0 / maxTempoBPM)
	maxLag := int(framesPerSecond * 60.0 / minTempoBPM)
	if minLag < 1 {
		minLag = 1
	}

	// Need at least two full beat periods at the slowest tempo for the
	// autocorrelation to see a repeat
	if len(onset) < 2*maxLag {
		return 0, 0, ErrTempoEstimation
	}

	// Remove the envelope mean so the autocorrelation measures periodic
	// structure rather than overall energy
	mean := 0.0
	for _, v := range onset {
		mean += v
	}
	mean /= float64(len(onset))
	variance := 0.0
	for i := range onset {
		onset[i] -= mean
		variance += onset[i] * onset[i]
	}
	variance /= float64(len(onset))
	if variance <= 0 {
		return 0, 0, ErrTempoEstimation
	}

	bestLag := 0
	bestCorr := 0.0
	for lag := minLag; lag <= maxLag && lag < len(onset); lag++ {
		corr := 0.0
		n := len(onset) - lag
		for i := 0; i < n; i++ {
			corr += onset[i] * onset[i+lag]
		}
		corr /= float64(n)
		if corr > bestCorr {
			bestCorr = corr
			bestLag = lag
		}
	}
	if bestLag == 0 {
		return 0, 0, ErrTempoEstimation
	}

	beatPeriod := float64(bestLag) / framesPerSecond
	bpm = 60.0 / beatPeriod
	for bpm > maxTempoBPM {
		bpm /= 2
	}
	for bpm < minTempoBPM {
		bpm *= 2
	}

	confidence = bestCorr / variance
	if confidence > 1 {
		confidence = 1
	}

	return bpm, confidence, nil
}

// onsetEnvelope computes a spectral-flux onset strength envelope: one
// value per hop, the sum of positive magnitude increases between
// consecutive Hann-windowed FFT frames.
func onsetEnvelope(samples []float64, frameSize, hopSize int) []float64 {
	numFrames := (len(samples) - frameSize) / hopSize
	if numFrames <= 0 {
		return nil
	}

	fft := fourier.NewFFT(frameSize)
	window := hannWindow(frameSize)
	frame := make([]float64, frameSize)
	coeffs := make([]complex128, frameSize/2+1)
	mag := make([]float64, frameSize/2+1)
	prevMag := make([]float64, frameSize/2+1)

	onset := make([]float64, numFrames)
	for i := 0; i < numFrames; i++ {
		start := i * hopSize
		for j := 0; j < frameSize; j++ {
			frame[j] = samples[start+j] * window[j]
		}
		fft.Coefficients(coeffs, frame)

		flux := 0.0
		for j := range coeffs {
			mag[j] = cmplx.Abs(coeffs[j])
			if d := mag[j] - prevMag[j]; d > 0 {
				flux += d
			}
		}
		onset[i] = flux
		mag, prevMag = prevMag, mag
	}
	return onset
}

// hannWindow returns an n-point Hann window.
func hannWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}
