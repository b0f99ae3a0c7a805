// Package pcm provides types and utilities for working with PCM (Pulse Code Modulation) audio data.
//
// Every tone and interval eartone renders uses one format, L16Mono44K: 16-bit
// signed little-endian samples, one channel, 44100 Hz.
//
// Key types and helpers:
//   - Format: sample rate, channels, bit depth and duration arithmetic
//   - Peak, Normalize, Quantize: float buffer operations shared by the synthesizers
//
// Example usage:
//
//	format := pcm.L16Mono44K
//
//	// Number of samples in half a second
//	n := format.SamplesInDuration(500 * time.Millisecond)
//
//	// Peak-normalize a float buffer to 0.5 and convert it to 16-bit PCM
//	samples := pcm.Quantize(pcm.Normalize(buf, 0.5))
package pcm
