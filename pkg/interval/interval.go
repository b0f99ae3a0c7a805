// Package interval composes two piano tones into an interval recording.
//
// Harmonic intervals sound both notes together; melodic intervals play the
// base note, a short gap, then the second note. Every recording is played
// twice with a gap between the repetitions.
package interval

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/haivivi/eartone/pkg/audio/pcm"
	"github.com/haivivi/eartone/pkg/music"
	"github.com/haivivi/eartone/pkg/piano"
)

// Mode selects how the two notes are played.
type Mode struct {
	Harmonic  bool
	Direction music.Direction
}

// Common modes.
var (
	Harmonic          = Mode{Harmonic: true, Direction: music.Ascending}
	MelodicAscending  = Mode{Direction: music.Ascending}
	MelodicDescending = Mode{Direction: music.Descending}
)

// Modes lists the three distinct recordings made for each interval.
func Modes() []Mode {
	return []Mode{Harmonic, MelodicAscending, MelodicDescending}
}

// String returns "harmonic", "melodic_ascending" or "melodic_descending".
func (m Mode) String() string {
	if m.Harmonic {
		return "harmonic"
	}
	return "melodic_" + m.Direction.String()
}

// ParseMode parses a mode string. A bare direction ("ascending", "down")
// is accepted as a shorthand for the melodic mode.
func ParseMode(s string) (Mode, error) {
	if s == "harmonic" {
		return Harmonic, nil
	}
	d, err := music.ParseDirection(strings.TrimPrefix(s, "melodic_"))
	if err != nil {
		return Mode{}, fmt.Errorf("interval: unknown mode %q", s)
	}
	return Mode{Direction: d}, nil
}

// Layout holds the timing of an interval recording.
type Layout struct {
	NoteDuration time.Duration `yaml:"note_duration" json:"note_duration"`
	Gap          time.Duration `yaml:"gap" json:"gap"`               // between notes, and between harmonic repeats
	RepeatGap    time.Duration `yaml:"repeat_gap" json:"repeat_gap"` // between melodic repeats
	Amplitude    float64       `yaml:"amplitude" json:"amplitude"`
}

// DefaultLayout returns 1 s notes, a 0.5 s gap and a 1.5 s repeat gap at
// half amplitude.
func DefaultLayout() Layout {
	return Layout{
		NoteDuration: time.Second,
		Gap:          500 * time.Millisecond,
		RepeatGap:    1500 * time.Millisecond,
		Amplitude:    0.5,
	}
}

// Validate checks durations and amplitude.
func (l Layout) Validate() error {
	switch {
	case l.NoteDuration <= 0:
		return fmt.Errorf("%w: note duration %v", piano.ErrInvalidParameter, l.NoteDuration)
	case l.Gap < 0 || l.RepeatGap < 0:
		return fmt.Errorf("%w: negative gap", piano.ErrInvalidParameter)
	case !(l.Amplitude > 0 && l.Amplitude <= 1):
		return fmt.Errorf("%w: amplitude %v not in (0, 1]", piano.ErrInvalidParameter, l.Amplitude)
	}
	return nil
}

// Samples returns the length in samples of a recording in mode m.
func (l Layout) Samples(f pcm.Format, m Mode) int {
	note := int(f.SamplesInDuration(l.NoteDuration))
	gap := int(f.SamplesInDuration(l.Gap))
	if m.Harmonic {
		return 2*note + gap
	}
	return 2*(2*note+gap) + int(f.SamplesInDuration(l.RepeatGap))
}

// Buffer is a composed, normalized interval recording.
type Buffer struct {
	Base     music.Pitch
	Target   music.Pitch
	Interval music.Interval
	Mode     Mode

	format  pcm.Format
	samples []float64
}

// Len returns the number of samples.
func (b *Buffer) Len() int { return len(b.samples) }

// Duration returns the recording length.
func (b *Buffer) Duration() time.Duration { return b.format.SamplesDuration(len(b.samples)) }

// Samples returns a copy of the float waveform.
func (b *Buffer) Samples() []float64 {
	return append([]float64(nil), b.samples...)
}

// PCM returns the recording quantized to 16-bit samples.
func (b *Buffer) PCM() []int16 {
	return pcm.Quantize(b.samples)
}

// Composer renders interval recordings with a piano Synth.
type Composer struct {
	synth  *piano.Synth
	layout Layout
}

// NewComposer returns a Composer using synth for both notes.
func NewComposer(synth *piano.Synth, layout Layout) (*Composer, error) {
	if synth == nil {
		return nil, errors.New("interval: nil synth")
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &Composer{synth: synth, layout: layout}, nil
}

// Layout returns the composer's timing.
func (c *Composer) Layout() Layout { return c.layout }

// Synth returns the underlying tone synthesizer.
func (c *Composer) Synth() *piano.Synth { return c.synth }

// Compose renders the interval kind from base in mode. The second note is
// kind.Semitones catalog steps above base, or below it for a descending mode;
// if that leaves the catalog the error wraps music.ErrOutOfRange.
func (c *Composer) Compose(base music.Pitch, kind music.Interval, mode Mode) (*Buffer, error) {
	target, err := music.Transpose(base, kind, mode.Direction)
	if err != nil {
		return nil, err
	}

	l := c.layout
	first, err := c.synth.Tone(base.Frequency, l.NoteDuration, l.Amplitude)
	if err != nil {
		return nil, fmt.Errorf("interval: synthesize %s: %w", base.Name, err)
	}
	second, err := c.synth.Tone(target.Frequency, l.NoteDuration, l.Amplitude)
	if err != nil {
		return nil, fmt.Errorf("interval: synthesize %s: %w", target.Name, err)
	}

	f := c.synth.Format()
	return &Buffer{
		Base:     base,
		Target:   target,
		Interval: kind,
		Mode:     mode,
		format:   f,
		samples:  compose(first.Samples(), second.Samples(), mode, l, f),
	}, nil
}

// ComposeByName resolves base and kind from the catalog and composes them.
// ascending is ignored for composition when harmonic is set; it still picks
// whether the second note lies above or below base.
func (c *Composer) ComposeByName(base, kind string, harmonic, ascending bool) (*Buffer, error) {
	p, err := music.PitchByName(base)
	if err != nil {
		return nil, err
	}
	iv, err := music.IntervalByName(kind)
	if err != nil {
		return nil, err
	}
	mode := Mode{Harmonic: harmonic, Direction: music.Ascending}
	if !ascending {
		mode.Direction = music.Descending
	}
	return c.Compose(p, iv, mode)
}

// compose lays out the two tones. first is always the base note, so a
// descending phrase plays high then low.
func compose(first, second []float64, mode Mode, l Layout, f pcm.Format) []float64 {
	gap := make([]float64, f.SamplesInDuration(l.Gap))

	if mode.Harmonic {
		combined := make([]float64, max(len(first), len(second)))
		for i := range combined {
			if i < len(first) {
				combined[i] += first[i]
			}
			if i < len(second) {
				combined[i] += second[i]
			}
		}
		pcm.Normalize(combined, 1)
		return pcm.Concat(combined, gap, combined)
	}

	phrase := pcm.Concat(first, gap, second)
	repeatGap := make([]float64, f.SamplesInDuration(l.RepeatGap))
	return pcm.Normalize(pcm.Concat(phrase, repeatGap, phrase), 1)
}
