// Package audio provides audio file decoding into in-memory waveforms.
package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Waveform holds a decoded audio signal: mono float64 samples in [-1, 1]
// plus the sample rate they were decoded at. Immutable once loaded.
type Waveform struct {
	Samples    []float64
	SampleRate int
}

// Duration returns the waveform length in seconds.
func (w *Waveform) Duration() float64 {
	if w.SampleRate <= 0 {
		return 0
	}
	return float64(len(w.Samples)) / float64(w.SampleRate)
}

// DecodeError reports a file that could not be decoded: missing,
// unreadable, or not a supported audio container.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Load decodes an audio file into a mono waveform.
// WAV (PCM, 8/16/24/32-bit) and MP3 are supported. Files with an unknown
// extension are sniffed as WAV first, then MP3.
func Load(path string) (*Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	w, err := decode(f, filepath.Ext(path))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return w, nil
}

// LoadReader decodes audio from a stream (typically stdin). The stream is
// spooled to a temporary file, which is removed unconditionally before
// returning, whether or not decoding succeeded.
func LoadReader(r io.Reader, name string) (*Waveform, error) {
	tmp, err := os.CreateTemp("", "mixbot-*"+filepath.Ext(name))
	if err != nil {
		return nil, &DecodeError{Path: name, Err: err}
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, &DecodeError{Path: name, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return nil, &DecodeError{Path: name, Err: err}
	}

	return Load(tmpPath)
}

// decode dispatches on the file extension, falling back to format sniffing
// when the extension is missing or unrecognised.
func decode(f *os.File, ext string) (*Waveform, error) {
	switch strings.ToLower(ext) {
	case ".wav", ".wave":
		return decodeWAV(f)
	case ".mp3":
		return decodeMP3(f)
	}

	// Unknown extension: try WAV, rewind, try MP3
	if w, err := decodeWAV(f); err == nil {
		return w, nil
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	if w, err := decodeMP3(f); err == nil {
		return w, nil
	}
	return nil, fmt.Errorf("unsupported audio format %q", ext)
}

// downmix folds interleaved multi-channel samples to mono by channel mean.
func downmix(samples []float64, channels int) []float64 {
	if channels <= 1 {
		return samples
	}
	frames := len(samples) / channels
	mono := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for c := 0; c < channels; c++ {
			sum += samples[i*channels+c]
		}
		mono[i] = sum / float64(channels)
	}
	return mono
}
