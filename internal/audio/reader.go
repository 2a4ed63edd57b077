package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"
)

// Decode reads a WAV stream into a PCM buffer. Only mono 16-bit input
// is accepted; anything else is a decode error so callers can degrade
// to VAD-only pause filtering.
func Decode(r io.ReadSeeker) (*PCM, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("read pcm: %w", err)
	}
	if buf.Format == nil {
		return nil, fmt.Errorf("missing pcm format")
	}
	if buf.Format.NumChannels != 1 {
		return nil, fmt.Errorf("expected mono audio, got %d channels", buf.Format.NumChannels)
	}
	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("expected 16-bit samples, got %d-bit", dec.BitDepth)
	}

	return &PCM{
		Samples:    buf.Data,
		SampleRate: buf.Format.SampleRate,
	}, nil
}

// DecodeFile reads a WAV file from disk.
func DecodeFile(path string) (*PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}
