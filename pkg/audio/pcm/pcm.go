package pcm

import "time"

const (
	// L16Mono44K represents audio/L16; rate=44100; channels=1
	L16Mono44K Format = iota
)

// Format represents an audio format configuration.
type Format int

// SampleRate returns the sample rate in Hz for this format.
func (f Format) SampleRate() int {
	switch f {
	case L16Mono44K:
		return 44100
	}
	panic("pcm: invalid audio type")
}

// Channels returns the number of audio channels for this format.
func (f Format) Channels() int {
	switch f {
	case L16Mono44K:
		return 1
	}
	panic("pcm: invalid audio type")
}

// Depth returns the bit depth for this format.
func (f Format) Depth() int {
	switch f {
	case L16Mono44K:
		return 16
	}
	panic("pcm: invalid audio type")
}

// Nyquist returns half the sample rate in Hz.
func (f Format) Nyquist() float64 {
	return float64(f.SampleRate()) / 2
}

// Samples returns the number of samples in the given number of bytes.
func (f Format) Samples(bytes int64) int64 {
	return bytes * 8 / int64(f.Channels()) / int64(f.Depth())
}

// SamplesInDuration returns the number of samples in the given duration,
// rounded to the nearest sample.
func (f Format) SamplesInDuration(d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	return (int64(f.SampleRate())*int64(d) + int64(time.Second)/2) / int64(time.Second)
}

// BytesInDuration returns the number of bytes in the given duration.
func (f Format) BytesInDuration(d time.Duration) int64 {
	return f.SamplesInDuration(d) * int64(f.Channels()) * int64(f.Depth()) / 8
}

// Duration returns the duration of the given number of bytes.
func (f Format) Duration(bytes int64) time.Duration {
	return time.Duration(f.Samples(bytes)) * time.Second / time.Duration(f.SampleRate())
}

// SamplesDuration returns the duration of n samples.
func (f Format) SamplesDuration(n int) time.Duration {
	return time.Duration(n) * time.Second / time.Duration(f.SampleRate())
}

// String returns a human-readable string representation of the format.
func (f Format) String() string {
	switch f {
	case L16Mono44K:
		return "audio/L16; rate=44100; channels=1"
	}
	panic("pcm: invalid audio type")
}
