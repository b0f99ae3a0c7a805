// Package wav reads and writes 16-bit PCM RIFF/WAVE files.
package wav

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/haivivi/eartone/pkg/audio/pcm"
)

// ContentType is the MIME type of encoded files.
const ContentType = "audio/wav"

// formatPCM is the WAVE format tag for uncompressed PCM.
const formatPCM = 1

// ErrUnsupported is returned when decoding a file that is not 16-bit mono PCM.
var ErrUnsupported = errors.New("wav: unsupported format")

// Encode writes samples as a WAVE file to w. The encoder seeks back to patch
// the RIFF and data chunk sizes, so w must be seekable.
func Encode(w io.WriteSeeker, samples []int16, f pcm.Format) error {
	enc := wav.NewEncoder(w, f.SampleRate(), f.Depth(), f.Channels(), formatPCM)
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: f.Channels(),
			SampleRate:  f.SampleRate(),
		},
		Data:           data,
		SourceBitDepth: f.Depth(),
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav: finalize: %w", err)
	}
	return nil
}

// Marshal encodes samples into an in-memory WAVE file.
func Marshal(samples []int16, f pcm.Format) ([]byte, error) {
	ws := &seekBuffer{buf: make([]byte, 0, 44+2*len(samples))}
	if err := Encode(ws, samples, f); err != nil {
		return nil, err
	}
	return ws.buf, nil
}

// Audio is a decoded 16-bit mono recording.
type Audio struct {
	SampleRate int
	Samples    []int16
}

// Decode reads a 16-bit mono PCM WAVE file.
func Decode(r io.ReadSeeker) (*Audio, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("wav: decode: %w", err)
		}
		return nil, errors.New("wav: not a valid WAVE file")
	}
	if dec.WavAudioFormat != formatPCM || dec.BitDepth != 16 || dec.NumChans != 1 {
		return nil, fmt.Errorf("%w: format %d, %d-bit, %d channels",
			ErrUnsupported, dec.WavAudioFormat, dec.BitDepth, dec.NumChans)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wav: decode: %w", err)
	}
	out := &Audio{
		SampleRate: int(dec.SampleRate),
		Samples:    make([]int16, len(buf.Data)),
	}
	for i, v := range buf.Data {
		out.Samples[i] = int16(v)
	}
	return out, nil
}
