// Package music holds the fixed pitch and interval catalogs used for ear
// training. Pitches are stored in ascending order so that an interval of n
// semitones is exactly n steps through the catalog.
package music

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors.
var (
	// ErrOutOfRange is returned when an interval resolves outside the catalog.
	ErrOutOfRange = errors.New("music: interval out of range")

	// ErrUnknownPitch is returned for a pitch name that is not in the catalog.
	ErrUnknownPitch = errors.New("music: unknown pitch")

	// ErrUnknownInterval is returned for an interval name that is not in the catalog.
	ErrUnknownInterval = errors.New("music: unknown interval")
)

// Pitch is a named note with its frequency and its position in the catalog.
type Pitch struct {
	Name      string  `json:"name" yaml:"name"`
	Frequency float64 `json:"frequency" yaml:"frequency"`
	Index     int     `json:"index" yaml:"index"`
}

func (p Pitch) String() string {
	return p.Name
}

// Interval is a named distance in semitones.
type Interval struct {
	Name      string `json:"name" yaml:"name"`
	Semitones int    `json:"semitones" yaml:"semitones"`
}

func (iv Interval) String() string {
	return iv.Name
}

// Slug returns the interval name with spaces replaced by underscores, as used
// in file names ("Perfect 5th" -> "Perfect_5th").
func (iv Interval) Slug() string {
	return strings.ReplaceAll(iv.Name, " ", "_")
}

// Direction is the direction an interval is taken from its base pitch.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection parses "ascending"/"up" or "descending"/"down".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "ascending", "asc", "up":
		return Ascending, nil
	case "descending", "desc", "down":
		return Descending, nil
	}
	return 0, fmt.Errorf("music: unknown direction %q", s)
}

// Pitches returns the pitch catalog in ascending order.
// The returned slice is a copy.
func Pitches() []Pitch {
	return append([]Pitch(nil), pitches[:]...)
}

// Intervals returns the interval catalog ordered by size.
// The returned slice is a copy.
func Intervals() []Interval {
	return append([]Interval(nil), intervals[:]...)
}

// PitchAt returns the pitch at catalog position i.
func PitchAt(i int) (Pitch, bool) {
	if i < 0 || i >= len(pitches) {
		return Pitch{}, false
	}
	return pitches[i], true
}

// PitchByName looks up a pitch by name (e.g. "C#4"). Lookup is case-insensitive.
func PitchByName(name string) (Pitch, error) {
	i, ok := pitchIndex[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return Pitch{}, fmt.Errorf("%w: %q", ErrUnknownPitch, name)
	}
	return pitches[i], nil
}

// Nearest returns the catalog pitch closest to freq on a logarithmic scale.
// It reports false for non-positive or non-finite frequencies.
func Nearest(freq float64) (Pitch, bool) {
	if !(freq > 0) || math.IsInf(freq, 1) {
		return Pitch{}, false
	}
	best, bestDist := 0, math.Inf(1)
	for i, p := range pitches {
		if d := math.Abs(math.Log2(freq / p.Frequency)); d < bestDist {
			best, bestDist = i, d
		}
	}
	return pitches[best], true
}

// IntervalByName looks up an interval by name. Both "Perfect 5th" and
// "Perfect_5th" are accepted, case-insensitively, as is a semitone count
// such as "7".
func IntervalByName(name string) (Interval, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(name)); err == nil {
		return IntervalBySemitones(n)
	}
	key := normalizeIntervalName(name)
	for _, iv := range intervals {
		if normalizeIntervalName(iv.Name) == key {
			return iv, nil
		}
	}
	return Interval{}, fmt.Errorf("%w: %q", ErrUnknownInterval, name)
}

// IntervalBySemitones returns the catalog interval spanning n semitones.
func IntervalBySemitones(n int) (Interval, error) {
	if n < 1 || n > len(intervals) {
		return Interval{}, fmt.Errorf("%w: %d semitones", ErrUnknownInterval, n)
	}
	return intervals[n-1], nil
}

// Transpose returns the pitch iv.Semitones catalog steps above (Ascending) or
// below (Descending) base. A target outside the catalog yields ErrOutOfRange;
// it is never wrapped or clamped.
func Transpose(base Pitch, iv Interval, dir Direction) (Pitch, error) {
	i, ok := pitchIndex[base.Name]
	if !ok {
		return Pitch{}, fmt.Errorf("%w: %q", ErrUnknownPitch, base.Name)
	}
	switch dir {
	case Ascending:
		i += iv.Semitones
	case Descending:
		i -= iv.Semitones
	default:
		return Pitch{}, fmt.Errorf("music: invalid direction %d", dir)
	}
	target, ok := PitchAt(i)
	if !ok {
		return Pitch{}, fmt.Errorf("%w: %s from %s %s", ErrOutOfRange, iv.Name, base.Name, dir)
	}
	return target, nil
}

func normalizeIntervalName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), " ")
}
