package music

import (
	"errors"
	"testing"
)

func TestCatalog(t *testing.T) {
	ps := Pitches()
	if len(ps) != 37 {
		t.Fatalf("len(Pitches()) = %d, want 37", len(ps))
	}
	if ps[0].Name != "C3" || ps[36].Name != "C6" {
		t.Fatalf("catalog spans %s..%s, want C3..C6", ps[0].Name, ps[36].Name)
	}
	for i := 1; i < len(ps); i++ {
		if ps[i].Frequency <= ps[i-1].Frequency {
			t.Errorf("%s (%v Hz) is not above %s (%v Hz)", ps[i].Name, ps[i].Frequency, ps[i-1].Name, ps[i-1].Frequency)
		}
		if ps[i].Index != i {
			t.Errorf("%s.Index = %d, want %d", ps[i].Name, ps[i].Index, i)
		}
	}

	ivs := Intervals()
	if len(ivs) != 12 {
		t.Fatalf("len(Intervals()) = %d, want 12", len(ivs))
	}
	for i, iv := range ivs {
		if iv.Semitones != i+1 {
			t.Errorf("%s.Semitones = %d, want %d", iv.Name, iv.Semitones, i+1)
		}
	}
}

func TestPitchesIsCopy(t *testing.T) {
	ps := Pitches()
	ps[0].Name = "X"
	if p, _ := PitchAt(0); p.Name != "C3" {
		t.Fatalf("catalog mutated through Pitches(): %s", p.Name)
	}
}

func TestPitchByName(t *testing.T) {
	tests := []struct {
		name string
		want float64
		err  error
	}{
		{"A4", 440, nil},
		{"c#4", 277.18, nil},
		{" C6 ", 1046.5, nil},
		{"H2", 0, ErrUnknownPitch},
		{"", 0, ErrUnknownPitch},
	}
	for _, tt := range tests {
		p, err := PitchByName(tt.name)
		if !errors.Is(err, tt.err) {
			t.Errorf("PitchByName(%q) error = %v, want %v", tt.name, err, tt.err)
			continue
		}
		if err == nil && p.Frequency != tt.want {
			t.Errorf("PitchByName(%q).Frequency = %v, want %v", tt.name, p.Frequency, tt.want)
		}
	}
}

func TestIntervalByName(t *testing.T) {
	tests := []struct {
		name string
		want int
		err  error
	}{
		{"Perfect 5th", 7, nil},
		{"Perfect_5th", 7, nil},
		{"major 3rd", 4, nil},
		{"Octave", 12, nil},
		{"Tritone", 6, nil},
		{"Ninth", 0, ErrUnknownInterval},
		{"7", 7, nil},
		{"1", 1, nil},
		{"12", 12, nil},
		{"0", 0, ErrUnknownInterval},
		{"13", 0, ErrUnknownInterval},
	}
	for _, tt := range tests {
		iv, err := IntervalByName(tt.name)
		if !errors.Is(err, tt.err) {
			t.Errorf("IntervalByName(%q) error = %v, want %v", tt.name, err, tt.err)
			continue
		}
		if err == nil && iv.Semitones != tt.want {
			t.Errorf("IntervalByName(%q).Semitones = %d, want %d", tt.name, iv.Semitones, tt.want)
		}
	}
}

func TestIntervalSlug(t *testing.T) {
	iv, _ := IntervalByName("Minor 2nd")
	if got := iv.Slug(); got != "Minor_2nd" {
		t.Fatalf("Slug() = %q, want Minor_2nd", got)
	}
}

func TestTranspose(t *testing.T) {
	tests := []struct {
		base     string
		interval string
		dir      Direction
		want     string
		err      error
	}{
		{"C4", "Perfect 5th", Ascending, "G4", nil},
		{"C4", "Octave", Ascending, "C5", nil},
		{"C4", "Octave", Descending, "C3", nil},
		{"A4", "Minor 2nd", Descending, "G#4", nil},
		{"C6", "Minor 2nd", Ascending, "", ErrOutOfRange},
		{"C3", "Octave", Descending, "", ErrOutOfRange},
		{"B5", "Major 2nd", Ascending, "", ErrOutOfRange},
		{"B5", "Minor 2nd", Ascending, "C6", nil},
	}
	for _, tt := range tests {
		base, err := PitchByName(tt.base)
		if err != nil {
			t.Fatal(err)
		}
		iv, err := IntervalByName(tt.interval)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Transpose(base, iv, tt.dir)
		if !errors.Is(err, tt.err) {
			t.Errorf("Transpose(%s, %s, %s) error = %v, want %v", tt.base, tt.interval, tt.dir, err, tt.err)
			continue
		}
		if err == nil && got.Name != tt.want {
			t.Errorf("Transpose(%s, %s, %s) = %s, want %s", tt.base, tt.interval, tt.dir, got.Name, tt.want)
		}
	}
}

func TestTransposeEveryInterval(t *testing.T) {
	ps := Pitches()
	for _, iv := range Intervals() {
		for _, p := range ps {
			_, err := Transpose(p, iv, Ascending)
			inRange := p.Index+iv.Semitones < len(ps)
			if inRange && err != nil {
				t.Errorf("Transpose(%s, %s, up) unexpected error %v", p, iv, err)
			}
			if !inRange && !errors.Is(err, ErrOutOfRange) {
				t.Errorf("Transpose(%s, %s, up) error = %v, want ErrOutOfRange", p, iv, err)
			}
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, s := range []string{"ascending", "UP", "asc"} {
		if d, err := ParseDirection(s); err != nil || d != Ascending {
			t.Errorf("ParseDirection(%q) = %v, %v", s, d, err)
		}
	}
	for _, s := range []string{"descending", "down"} {
		if d, err := ParseDirection(s); err != nil || d != Descending {
			t.Errorf("ParseDirection(%q) = %v, %v", s, d, err)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection(sideways) expected error")
	}
}

func TestNearest(t *testing.T) {
	tests := []struct {
		freq float64
		want string
		ok   bool
	}{
		{440, "A4", true},
		{445, "A4", true},
		{261.0, "C4", true},
		{50, "C3", true},
		{5000, "C6", true},
		{0, "", false},
		{-3, "", false},
	}
	for _, tt := range tests {
		p, ok := Nearest(tt.freq)
		if ok != tt.ok || p.Name != tt.want {
			t.Errorf("Nearest(%v) = %s, %v; want %s, %v", tt.freq, p.Name, ok, tt.want, tt.ok)
		}
	}
}
