package library

import (
	"fmt"
	"slices"
	"strings"

	"github.com/haivivi/eartone/pkg/interval"
	"github.com/haivivi/eartone/pkg/music"
)

// Kind is the family of a recording.
type Kind string

const (
	KindNote     Kind = "note"
	KindHarmonic Kind = "harmonic"
	KindMelodic  Kind = "melodic"
)

// Kinds lists every Kind in generation order.
func Kinds() []Kind {
	return []Kind{KindNote, KindHarmonic, KindMelodic}
}

// ParseKind parses "note", "harmonic" or "melodic" (case-insensitive).
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Kinds(), k) {
		return k, nil
	}
	return "", fmt.Errorf("library: unknown kind %q", s)
}

// Job is one recording to render.
type Job struct {
	Kind Kind
	Base music.Pitch

	// Interval and Mode are zero for notes.
	Interval music.Interval
	Mode     interval.Mode
}

// NoteJob returns the job rendering p as a single note.
func NoteJob(p music.Pitch) Job {
	return Job{Kind: KindNote, Base: p}
}

// IntervalJob returns the job rendering kind from base in mode.
func IntervalJob(base music.Pitch, kind music.Interval, mode interval.Mode) Job {
	k := KindMelodic
	if mode.Harmonic {
		k = KindHarmonic
	}
	return Job{Kind: k, Base: base, Interval: kind, Mode: mode}
}

// Path returns the storage path of the job's output.
func (j Job) Path() string {
	if j.Kind == KindNote {
		return NotePath(j.Base)
	}
	return IntervalPath(j.Base, j.Interval, j.Mode)
}

// Label names the job for metrics: "note" or the interval mode.
func (j Job) Label() string {
	if j.Kind == KindNote {
		return string(KindNote)
	}
	return j.Mode.String()
}

func (j Job) String() string {
	if j.Kind == KindNote {
		return j.Base.Name
	}
	return fmt.Sprintf("%s %s %s", j.Base.Name, j.Interval.Name, j.Mode)
}

// Filter restricts the catalog enumerated by Jobs. Empty fields select
// everything.
type Filter struct {
	Pitches   []music.Pitch
	Intervals []music.Interval
	Kinds     []Kind
}

func (f Filter) pitches() []music.Pitch {
	if len(f.Pitches) == 0 {
		return music.Pitches()
	}
	return f.Pitches
}

func (f Filter) intervals() []music.Interval {
	if len(f.Intervals) == 0 {
		return music.Intervals()
	}
	return f.Intervals
}

func (f Filter) wants(k Kind) bool {
	return len(f.Kinds) == 0 || slices.Contains(f.Kinds, k)
}

// Jobs enumerates the catalog: every note first, then for each base and
// interval the harmonic, melodic ascending and melodic descending
// recordings. Combinations whose second note falls outside the catalog are
// included; rendering them fails with music.ErrOutOfRange and the generator
// skips them.
func Jobs(f Filter) []Job {
	var jobs []Job
	if f.wants(KindNote) {
		for _, p := range f.pitches() {
			jobs = append(jobs, NoteJob(p))
		}
	}
	harmonic, melodic := f.wants(KindHarmonic), f.wants(KindMelodic)
	if !harmonic && !melodic {
		return jobs
	}
	for _, base := range f.pitches() {
		for _, kind := range f.intervals() {
			if harmonic {
				jobs = append(jobs, IntervalJob(base, kind, interval.Harmonic))
			}
			if melodic {
				jobs = append(jobs,
					IntervalJob(base, kind, interval.MelodicAscending),
					IntervalJob(base, kind, interval.MelodicDescending),
				)
			}
		}
	}
	return jobs
}
