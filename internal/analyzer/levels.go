package analyzer

import "math"

// Clipping heuristic thresholds. A peak above ClipThresholdDB flags
// clipping on its own, as does a sustained plateau of near-full-scale
// samples: a single hot transient is normal, but when more than
// FlatSampleRatioLimit of all samples sit above FlatSampleLevel the
// waveform has almost certainly been flattened.
const (
	ClipThresholdDB      = -0.1
	FlatSampleLevel      = 0.99
	FlatSampleRatioLimit = 0.001
)

// RMS computes the root-mean-square amplitude over the full waveform,
// returning both linear and dB values. A fully silent buffer yields
// linear 0 and dB -Inf.
func RMS(samples []float64) (linear, db float64) {
	if len(samples) == 0 {
		return 0, math.Inf(-1)
	}
	sum := 0.0
	for _, s := range samples {
		sum += s * s
	}
	linear = math.Sqrt(sum / float64(len(samples)))
	return linear, linearToDB(linear)
}

// Peak returns the maximum absolute amplitude, linear and in dB.
func Peak(samples []float64) (linear, db float64) {
	for _, s := range samples {
		if a := math.Abs(s); a > linear {
			linear = a
		}
	}
	return linear, linearToDB(linear)
}

// DetectClipping applies the two-condition clipping heuristic. Either
// condition on its own flags the waveform as clipped.
func DetectClipping(samples []float64) (clipped bool, peakDB, flatRatio float64) {
	_, peakDB = Peak(samples)
	if len(samples) == 0 {
		return false, peakDB, 0
	}

	flat := 0
	for _, s := range samples {
		if math.Abs(s) > FlatSampleLevel {
			flat++
		}
	}
	flatRatio = float64(flat) / float64(len(samples))

	clipped = peakDB > ClipThresholdDB || flatRatio > FlatSampleRatioLimit
	return clipped, peakDB, flatRatio
}

// linearToDB converts a linear amplitude to dB referenced to full scale.
// Zero amplitude maps to -Inf by definition rather than erroring.
func linearToDB(linear float64) float64 {
	if linear <= 0 {
		return math.Inf(-1)
	}
	return 20.0 * math.Log10(linear)
}

// dbToLinear converts a dB level to linear amplitude.
func dbToLinear(db float64) float64 {
	return math.Pow(10.0, db/20.0)
}
