package pcm

import (
	"encoding/binary"
	"math"
)

// MaxInt16 is the largest magnitude a quantized sample may take.
const MaxInt16 = math.MaxInt16

// Peak returns the largest absolute sample value in buf.
func Peak(buf []float64) float64 {
	var peak float64
	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

// Normalize scales buf in place so that its peak equals amplitude.
// A silent buffer (peak 0) is left as all zeros.
func Normalize(buf []float64, amplitude float64) []float64 {
	peak := Peak(buf)
	if peak == 0 {
		for i := range buf {
			buf[i] = 0
		}
		return buf
	}
	scale := amplitude / peak
	for i := range buf {
		buf[i] *= scale
	}
	return buf
}

// Quantize converts float samples in [-1, 1] to 16-bit PCM.
// Values are scaled by MaxInt16, rounded to the nearest integer and clamped.
func Quantize(buf []float64) []int16 {
	out := make([]int16, len(buf))
	for i, v := range buf {
		s := math.Round(v * MaxInt16)
		switch {
		case s > MaxInt16:
			s = MaxInt16
		case s < -MaxInt16-1:
			s = -MaxInt16 - 1
		}
		out[i] = int16(s)
	}
	return out
}

// Float converts 16-bit PCM back to float samples in [-1, 1].
func Float(samples []int16) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s) / MaxInt16
	}
	return out
}

// Int16ToBytes converts []int16 samples to raw PCM bytes (little-endian).
func Int16ToBytes(samples []int16) []byte {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}
	return data
}

// Concat joins float buffers into a newly allocated buffer.
func Concat(parts ...[]float64) []float64 {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]float64, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
