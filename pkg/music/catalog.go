package music

// Equal-tempered pitches from C3 to C6 (A4 = 440 Hz), ascending.
var pitches = [...]Pitch{
	{"C3", 130.81, 0},
	{"C#3", 138.59, 1},
	{"D3", 146.83, 2},
	{"D#3", 155.56, 3},
	{"E3", 164.81, 4},
	{"F3", 174.61, 5},
	{"F#3", 185.00, 6},
	{"G3", 196.00, 7},
	{"G#3", 207.65, 8},
	{"A3", 220.00, 9},
	{"A#3", 233.08, 10},
	{"B3", 246.94, 11},
	{"C4", 261.63, 12},
	{"C#4", 277.18, 13},
	{"D4", 293.66, 14},
	{"D#4", 311.13, 15},
	{"E4", 329.63, 16},
	{"F4", 349.23, 17},
	{"F#4", 369.99, 18},
	{"G4", 392.00, 19},
	{"G#4", 415.30, 20},
	{"A4", 440.00, 21},
	{"A#4", 466.16, 22},
	{"B4", 493.88, 23},
	{"C5", 523.25, 24},
	{"C#5", 554.37, 25},
	{"D5", 587.33, 26},
	{"D#5", 622.25, 27},
	{"E5", 659.26, 28},
	{"F5", 698.46, 29},
	{"F#5", 739.99, 30},
	{"G5", 783.99, 31},
	{"G#5", 830.61, 32},
	{"A5", 880.00, 33},
	{"A#5", 932.33, 34},
	{"B5", 987.77, 35},
	{"C6", 1046.50, 36},
}

var intervals = [...]Interval{
	{"Minor 2nd", 1},
	{"Major 2nd", 2},
	{"Minor 3rd", 3},
	{"Major 3rd", 4},
	{"Perfect 4th", 5},
	{"Tritone", 6},
	{"Perfect 5th", 7},
	{"Minor 6th", 8},
	{"Major 6th", 9},
	{"Minor 7th", 10},
	{"Major 7th", 11},
	{"Octave", 12},
}

// pitchIndex maps upper-cased pitch names to catalog positions.
var pitchIndex = func() map[string]int {
	m := make(map[string]int, len(pitches))
	for i, p := range pitches {
		if p.Index != i {
			panic("music: pitch catalog index mismatch at " + p.Name)
		}
		m[p.Name] = i
	}
	return m
}()
