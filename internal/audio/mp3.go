package audio

import (
	"encoding/binary"
	"fmt"
	"io"

	mp3 "github.com/hajimehoshi/go-mp3"
)

// decodeMP3 decodes an MP3 stream into a mono waveform.
// go-mp3 always emits 16-bit little-endian stereo frames.
func decodeMP3(r io.Reader) (*Waveform, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("not a valid MP3 file: %w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to decode MP3 data: %w", err)
	}
	if len(raw) < 4 {
		return nil, fmt.Errorf("MP3 file contains no audio data")
	}

	// 4 bytes per stereo frame: two int16 channels
	frames := len(raw) / 4
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		left := int16(binary.LittleEndian.Uint16(raw[i*4:]))
		right := int16(binary.LittleEndian.Uint16(raw[i*4+2:]))
		samples[i] = (float64(left) + float64(right)) / 2.0 / 32768.0
	}

	return &Waveform{
		Samples:    samples,
		SampleRate: dec.SampleRate(),
	}, nil
}
