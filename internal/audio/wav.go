package audio

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
)

// decodeWAV decodes a PCM WAV stream into a mono waveform.
func decodeWAV(rs io.ReadSeeker) (*Waveform, error) {
	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("not a valid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM data: %w", err)
	}
	if buf == nil || len(buf.Data) == 0 {
		return nil, fmt.Errorf("WAV file contains no audio data")
	}

	bitDepth := int(dec.BitDepth)
	if buf.SourceBitDepth > 0 {
		bitDepth = buf.SourceBitDepth
	}
	scale, err := pcmScale(bitDepth)
	if err != nil {
		return nil, err
	}

	samples := make([]float64, len(buf.Data))
	if bitDepth == 8 {
		// 8-bit WAV is unsigned, centred on 128
		for i, s := range buf.Data {
			samples[i] = (float64(s) - 128.0) / 128.0
		}
	} else {
		for i, s := range buf.Data {
			samples[i] = float64(s) / scale
		}
	}

	channels := buf.Format.NumChannels
	return &Waveform{
		Samples:    downmix(samples, channels),
		SampleRate: buf.Format.SampleRate,
	}, nil
}

// pcmScale returns the normalization divisor for a signed PCM bit depth.
func pcmScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 8:
		return 128.0, nil
	case 16:
		return 32768.0, nil
	case 24:
		return 8388608.0, nil
	case 32:
		return 2147483648.0, nil
	default:
		return 0, fmt.Errorf("unsupported WAV bit depth: %d", bitDepth)
	}
}
