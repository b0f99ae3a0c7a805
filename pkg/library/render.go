package library

import (
	"fmt"

	"github.com/haivivi/eartone/pkg/audio/pcm"
	"github.com/haivivi/eartone/pkg/interval"
	"github.com/haivivi/eartone/pkg/music"
)

// Recording is a rendered job.
type Recording struct {
	Job Job

	// Target is the second note of an interval; zero for notes.
	Target  music.Pitch
	Samples []int16

	// Peak is the largest absolute sample relative to full scale.
	Peak float64
}

// Render synthesizes j with c. Notes use the composer's note duration and
// amplitude. Errors wrap music.ErrOutOfRange when an interval leaves the
// catalog and piano.ErrInvalidParameter for unusable synthesis settings.
func Render(c *interval.Composer, j Job) (*Recording, error) {
	var samples []int16
	var target music.Pitch
	switch j.Kind {
	case KindNote:
		l := c.Layout()
		tone, err := c.Synth().Tone(j.Base.Frequency, l.NoteDuration, l.Amplitude)
		if err != nil {
			return nil, fmt.Errorf("library: render %s: %w", j, err)
		}
		samples = tone.PCM()
	case KindHarmonic, KindMelodic:
		buf, err := c.Compose(j.Base, j.Interval, j.Mode)
		if err != nil {
			return nil, fmt.Errorf("library: render %s: %w", j, err)
		}
		samples = buf.PCM()
		target = buf.Target
	default:
		return nil, fmt.Errorf("library: unknown job kind %q", j.Kind)
	}
	return &Recording{Job: j, Target: target, Samples: samples, Peak: peak(samples)}, nil
}

func peak(samples []int16) float64 {
	var m int
	for _, s := range samples {
		v := int(s)
		if v < 0 {
			v = -v
		}
		m = max(m, v)
	}
	return float64(m) / pcm.MaxInt16
}
