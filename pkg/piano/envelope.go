package piano

import (
	"fmt"
	"math"
	"time"

	"github.com/haivivi/eartone/pkg/audio/pcm"
)

// Envelope is a linear ADSR amplitude envelope.
type Envelope struct {
	Attack  time.Duration `yaml:"attack" json:"attack"`
	Decay   time.Duration `yaml:"decay" json:"decay"`
	Sustain float64       `yaml:"sustain" json:"sustain"` // level in [0, 1]
	Release time.Duration `yaml:"release" json:"release"`
}

// Validate checks segment lengths and the sustain level.
func (e Envelope) Validate() error {
	if e.Attack < 0 || e.Decay < 0 || e.Release < 0 {
		return fmt.Errorf("%w: negative envelope segment", ErrInvalidParameter)
	}
	if !(e.Sustain >= 0 && e.Sustain <= 1) {
		return fmt.Errorf("%w: sustain level %v", ErrInvalidParameter, e.Sustain)
	}
	return nil
}

// MinDuration is the length below which the sustain segment vanishes.
func (e Envelope) MinDuration() time.Duration {
	return e.Attack + e.Decay + e.Release
}

// Apply multiplies buf by the envelope in place.
//
// The attack rises 0→1, the decay falls 1→Sustain, the sustain holds, and the
// release falls Sustain→0 on the last sample. For buffers shorter than
// MinDuration the sustain length is zero and the release ramp, measured back
// from the end, overlaps the attack/decay ramp; the lower of the two wins.
func (e Envelope) Apply(buf []float64, f pcm.Format) {
	n := len(buf)
	aN := int(f.SamplesInDuration(e.Attack))
	dN := int(f.SamplesInDuration(e.Decay))
	rN := int(f.SamplesInDuration(e.Release))
	for i := range buf {
		buf[i] *= math.Min(e.rise(i, aN, dN), e.fall(n-1-i, rN))
	}
}

// rise is the attack/decay/sustain curve at sample i from the start.
func (e Envelope) rise(i, aN, dN int) float64 {
	switch {
	case i < aN:
		return float64(i) / float64(aN)
	case i < aN+dN:
		return 1 + (e.Sustain-1)*float64(i-aN)/float64(dN)
	}
	return e.Sustain
}

// fall is the release ramp at j samples before the end, extended linearly
// past its start so it never undercuts the sustain level there.
func (e Envelope) fall(j, rN int) float64 {
	switch {
	case rN <= 0:
		return math.Inf(1)
	case rN == 1:
		if j == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return e.Sustain * float64(j) / float64(rN-1)
}
