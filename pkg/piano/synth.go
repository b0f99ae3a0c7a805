// Package piano synthesizes piano-like tones by additive synthesis.
//
// A tone is a stack of harmonic partials, each slightly detuned and started at
// a random phase, plus a short burst of decaying noise for the hammer strike,
// shaped by a linear ADSR envelope and peak-normalized to the requested
// amplitude. Partials at or above the Nyquist frequency are dropped.
//
// Synthesis is stochastic by default; use WithSeed for reproducible output.
package piano

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/haivivi/eartone/pkg/audio/pcm"
)

// ErrInvalidParameter is returned for non-positive durations, amplitudes
// outside (0, 1], and frequencies the format cannot represent.
var ErrInvalidParameter = errors.New("piano: invalid parameter")

// Synth renders tones for a fixed Config. It is safe for concurrent use.
type Synth struct {
	cfg Config

	mu  sync.Mutex
	rng *rand.Rand // nil uses the goroutine-safe global source
}

// Option configures a Synth.
type Option func(*Synth)

// WithSeed makes the Synth draw detune, phase and noise from a seeded source,
// so the same sequence of calls yields the same audio.
func WithSeed(seed uint64) Option {
	return func(s *Synth) {
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// New creates a Synth. The configuration is validated; an invalid Config
// returns ErrInvalidParameter.
func New(cfg Config, opts ...Option) (*Synth, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Partials = append([]Partial(nil), cfg.Partials...)
	s := &Synth{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Config returns a copy of the synth configuration.
func (s *Synth) Config() Config {
	cfg := s.cfg
	cfg.Partials = append([]Partial(nil), s.cfg.Partials...)
	return cfg
}

// Format returns the output sample format.
func (s *Synth) Format() pcm.Format {
	return s.cfg.Format
}

// Tone is one synthesized note. Its samples never change after synthesis.
type Tone struct {
	frequency float64
	amplitude float64
	format    pcm.Format
	samples   []float64
}

// Frequency returns the fundamental frequency in Hz.
func (t *Tone) Frequency() float64 { return t.frequency }

// Amplitude returns the peak amplitude the tone was normalized to.
func (t *Tone) Amplitude() float64 { return t.amplitude }

// Len returns the number of samples.
func (t *Tone) Len() int { return len(t.samples) }

// Duration returns the tone length.
func (t *Tone) Duration() time.Duration { return t.format.SamplesDuration(len(t.samples)) }

// Samples returns a copy of the float waveform, in [-Amplitude, Amplitude].
func (t *Tone) Samples() []float64 {
	return append([]float64(nil), t.samples...)
}

// PCM returns the tone quantized to 16-bit samples.
func (t *Tone) PCM() []int16 {
	return pcm.Quantize(t.samples)
}

// voice holds the random draws for one tone.
type voice struct {
	detune []float64
	phase  []float64
	noise  []float64
}

// Tone synthesizes a note at frequency Hz lasting duration, peak-normalized to
// amplitude.
func (s *Synth) Tone(frequency float64, duration time.Duration, amplitude float64) (*Tone, error) {
	f := s.cfg.Format
	switch {
	case math.IsNaN(frequency) || math.IsInf(frequency, 0) || frequency <= 0:
		return nil, fmt.Errorf("%w: frequency %v", ErrInvalidParameter, frequency)
	case frequency >= f.Nyquist():
		return nil, fmt.Errorf("%w: frequency %v at or above Nyquist %v", ErrInvalidParameter, frequency, f.Nyquist())
	case duration <= 0:
		return nil, fmt.Errorf("%w: duration %v", ErrInvalidParameter, duration)
	case math.IsNaN(amplitude) || amplitude <= 0 || amplitude > 1:
		return nil, fmt.Errorf("%w: amplitude %v not in (0, 1]", ErrInvalidParameter, amplitude)
	}

	n := int(f.SamplesInDuration(duration))
	if n == 0 {
		return nil, fmt.Errorf("%w: duration %v is shorter than one sample", ErrInvalidParameter, duration)
	}
	hN := min(int(f.SamplesInDuration(s.cfg.Hammer.Duration)), n)
	v := s.draw(len(s.cfg.Partials), hN)

	wave := make([]float64, n)
	s.addPartials(wave, frequency, v)
	s.addHammer(wave, v.noise)
	s.cfg.Envelope.Apply(wave, f)
	pcm.Normalize(wave, amplitude)

	return &Tone{
		frequency: frequency,
		amplitude: amplitude,
		format:    f,
		samples:   wave,
	}, nil
}

// draw takes every random value a tone needs in one critical section.
func (s *Synth) draw(partials, noise int) voice {
	v := voice{
		detune: make([]float64, partials),
		phase:  make([]float64, partials),
		noise:  make([]float64, noise),
	}
	uniform, normal := rand.Float64, rand.NormFloat64
	if s.rng != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		uniform, normal = s.rng.Float64, s.rng.NormFloat64
	}
	for i := range partials {
		v.detune[i] = 1 + (2*uniform()-1)*s.cfg.Detune
		v.phase[i] = uniform() * 2 * math.Pi
	}
	for i := range v.noise {
		v.noise[i] = normal()
	}
	return v
}

func (s *Synth) addPartials(wave []float64, frequency float64, v voice) {
	nyquist := s.cfg.Format.Nyquist()
	rate := float64(s.cfg.Format.SampleRate())
	for k, p := range s.cfg.Partials {
		fh := frequency * p.Multiplier
		if fh >= nyquist {
			continue
		}
		step := 2 * math.Pi * fh * v.detune[k] / rate
		for i := range wave {
			wave[i] += p.Amplitude * math.Sin(step*float64(i)+v.phase[k])
		}
	}
}

func (s *Synth) addHammer(wave []float64, noise []float64) {
	h := s.cfg.Hammer
	last := float64(len(noise) - 1)
	for i, r := range noise {
		x := 0.0
		if last > 0 {
			x = float64(i) / last
		}
		wave[i] += r * math.Exp(-h.Decay*x) * h.Gain
	}
}
