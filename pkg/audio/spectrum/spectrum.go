// Package spectrum measures rendered audio: level statistics, short-term
// energy and a Hann-windowed magnitude spectrum.
package spectrum

import (
	"math"
	"time"

	"github.com/haivivi/eartone/pkg/audio/pcm"
)

// Spectrum is a one-sided magnitude spectrum.
type Spectrum struct {
	Magnitudes []float64 // bins 0..N/2
	BinHz      float64   // frequency resolution
}

// Compute returns the magnitude spectrum of samples. The signal is Hann
// windowed and zero-padded to a power of two.
func Compute(samples []float64, sampleRate int) Spectrum {
	n := nextPow2(max(len(samples), 2))
	re := make([]float64, n)
	im := make([]float64, n)
	last := float64(len(samples) - 1)
	for i, v := range samples {
		w := 1.0
		if last > 0 {
			w = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/last)
		}
		re[i] = v * w
	}
	fft(re, im)

	mags := make([]float64, n/2+1)
	for k := range mags {
		mags[k] = math.Hypot(re[k], im[k])
	}
	return Spectrum{
		Magnitudes: mags,
		BinHz:      float64(sampleRate) / float64(n),
	}
}

// BandEnergy returns the summed squared magnitude of bins in [lo, hi] Hz.
func (s Spectrum) BandEnergy(lo, hi float64) float64 {
	if s.BinHz == 0 {
		return 0
	}
	from := max(int(math.Ceil(lo/s.BinHz)), 0)
	to := min(int(math.Floor(hi/s.BinHz)), len(s.Magnitudes)-1)
	var e float64
	for k := from; k <= to; k++ {
		e += s.Magnitudes[k] * s.Magnitudes[k]
	}
	return e
}

// Dominant returns the frequency of the strongest non-DC bin.
func (s Spectrum) Dominant() float64 {
	best, bestK := 0.0, 0
	for k := 1; k < len(s.Magnitudes); k++ {
		if s.Magnitudes[k] > best {
			best, bestK = s.Magnitudes[k], k
		}
	}
	return float64(bestK) * s.BinHz
}

// SegmentEnergy returns the mean squared sample value of samples[from:to].
func SegmentEnergy(samples []float64, from, to int) float64 {
	from = max(from, 0)
	to = min(to, len(samples))
	if to <= from {
		return 0
	}
	var e float64
	for _, v := range samples[from:to] {
		e += v * v
	}
	return e / float64(to-from)
}

// FloorDBFS is reported as the peak level of a silent recording.
const FloorDBFS = -96.0

// Report summarises a 16-bit recording.
type Report struct {
	SampleRate int           `json:"sample_rate" yaml:"sample_rate"`
	Samples    int           `json:"samples" yaml:"samples"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
	Peak       int           `json:"peak" yaml:"peak"`
	PeakDBFS   float64       `json:"peak_dbfs" yaml:"peak_dbfs"`
	RMS        float64       `json:"rms" yaml:"rms"`
	DominantHz float64       `json:"dominant_hz" yaml:"dominant_hz"`
}

// Analyze computes level statistics and the dominant frequency of samples.
func Analyze(samples []int16, sampleRate int) Report {
	r := Report{
		SampleRate: sampleRate,
		Samples:    len(samples),
	}
	if sampleRate > 0 {
		r.Duration = time.Duration(len(samples)) * time.Second / time.Duration(sampleRate)
	}
	r.PeakDBFS = FloorDBFS
	if len(samples) == 0 {
		return r
	}
	peak := 0
	for _, s := range samples {
		a := int(s)
		if a < 0 {
			a = -a
		}
		peak = max(peak, a)
	}
	fs := pcm.Float(samples)
	r.Peak = peak
	if peak > 0 {
		r.PeakDBFS = 20 * math.Log10(float64(peak)/pcm.MaxInt16)
	}
	r.RMS = math.Sqrt(SegmentEnergy(fs, 0, len(fs)))
	r.DominantHz = Compute(fs, sampleRate).Dominant()
	return r
}
