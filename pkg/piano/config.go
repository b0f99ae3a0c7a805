package piano

import (
	"fmt"
	"math"
	"time"

	"github.com/haivivi/eartone/pkg/audio/pcm"
)

// Partial is one component of the additive harmonic stack.
type Partial struct {
	Amplitude  float64 `yaml:"amplitude" json:"amplitude"`   // relative amplitude
	Multiplier float64 `yaml:"multiplier" json:"multiplier"` // frequency ratio to the fundamental
}

// Hammer describes the noise burst added at the start of a tone.
type Hammer struct {
	Duration time.Duration `yaml:"duration" json:"duration"`
	Gain     float64       `yaml:"gain" json:"gain"`
	Decay    float64       `yaml:"decay" json:"decay"` // exponential decay rate across the burst
}

// Config holds every constant the synthesizer needs. It is passed by value
// and never modified after a Synth is created.
type Config struct {
	Format   pcm.Format `yaml:"-" json:"-"`
	Partials []Partial  `yaml:"partials" json:"partials"`
	// Detune is the half-width of the uniform band each partial's frequency
	// factor is drawn from: [1-Detune, 1+Detune].
	Detune   float64  `yaml:"detune" json:"detune"`
	Hammer   Hammer   `yaml:"hammer" json:"hammer"`
	Envelope Envelope `yaml:"envelope" json:"envelope"`
}

// DefaultPartials is the harmonic stack of the default piano voice.
var DefaultPartials = []Partial{
	{1.00, 1},
	{0.50, 2},
	{0.30, 3},
	{0.20, 4},
	{0.10, 5},
	{0.05, 6},
}

// DefaultConfig returns the standard piano voice at 44.1 kHz.
func DefaultConfig() Config {
	return Config{
		Format:   pcm.L16Mono44K,
		Partials: append([]Partial(nil), DefaultPartials...),
		Detune:   1e-4,
		Hammer: Hammer{
			Duration: 10 * time.Millisecond,
			Gain:     0.3,
			Decay:    5,
		},
		Envelope: Envelope{
			Attack:  5 * time.Millisecond,
			Decay:   100 * time.Millisecond,
			Sustain: 0.6,
			Release: 300 * time.Millisecond,
		},
	}
}

// Validate reports whether the configuration can produce audio.
func (c Config) Validate() error {
	if len(c.Partials) == 0 {
		return fmt.Errorf("%w: no partials", ErrInvalidParameter)
	}
	for i, p := range c.Partials {
		if !nonNegative(p.Amplitude) || !nonNegative(p.Multiplier) || p.Multiplier == 0 {
			return fmt.Errorf("%w: partial %d has amplitude %v multiplier %v", ErrInvalidParameter, i, p.Amplitude, p.Multiplier)
		}
	}
	if !nonNegative(c.Detune) || c.Detune >= 1 {
		return fmt.Errorf("%w: detune %v", ErrInvalidParameter, c.Detune)
	}
	if c.Hammer.Duration < 0 || !nonNegative(c.Hammer.Gain) || !nonNegative(c.Hammer.Decay) {
		return fmt.Errorf("%w: hammer %+v", ErrInvalidParameter, c.Hammer)
	}
	return c.Envelope.Validate()
}

// nonNegative reports whether x is finite and >= 0. NaN fails.
func nonNegative(x float64) bool {
	return x >= 0 && !math.IsInf(x, 1)
}
