// Package audio groups the audio sub-packages used by eartone:
//
//   - pcm: the L16Mono44K format and float buffer helpers (peak, normalize, quantize)
//   - wav: RIFF/WAVE encoding and decoding of 16-bit mono files
//   - spectrum: level statistics and dominant-frequency estimation
//
// Example usage:
//
//	import (
//	    "github.com/haivivi/eartone/pkg/audio/pcm"
//	    "github.com/haivivi/eartone/pkg/audio/wav"
//	)
//
//	samples := pcm.Quantize(buf)
//	data, err := wav.Marshal(samples, pcm.L16Mono44K)
package audio
