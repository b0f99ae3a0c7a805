package library

import (
	"github.com/haivivi/eartone/pkg/interval"
	"github.com/haivivi/eartone/pkg/music"
)

// Output directories, relative to the library root.
const (
	NotesDir     = "notes"
	IntervalsDir = "intervals"
)

// NoteFileName returns "<Pitch>.wav", e.g. "C4.wav".
func NoteFileName(p music.Pitch) string {
	return p.Name + ".wav"
}

// IntervalFileName returns "<Base>_<Interval_words>_harmonic.wav" or
// "<Base>_<Interval_words>_melodic_<ascending|descending>.wav".
func IntervalFileName(base music.Pitch, kind music.Interval, mode interval.Mode) string {
	return base.Name + "_" + kind.Slug() + "_" + mode.String() + ".wav"
}

// NotePath returns the storage path of a note recording.
func NotePath(p music.Pitch) string {
	return NotesDir + "/" + NoteFileName(p)
}

// IntervalPath returns the storage path of an interval recording.
func IntervalPath(base music.Pitch, kind music.Interval, mode interval.Mode) string {
	return IntervalsDir + "/" + IntervalFileName(base, kind, mode)
}
