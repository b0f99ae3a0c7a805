package piano

import (
	"math"
	"testing"
	"time"

	"github.com/haivivi/eartone/pkg/audio/pcm"
)

func ones(n int) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = 1
	}
	return buf
}

func TestEnvelopeShape(t *testing.T) {
	env := DefaultConfig().Envelope
	f := pcm.L16Mono44K
	buf := ones(44100)
	env.Apply(buf, f)

	aN, dN := 221, 4410 // 5ms and 100ms at 44.1kHz
	checks := []struct {
		i    int
		want float64
	}{
		{0, 0},
		{aN, 1},
		{aN + dN/2, 0.8},
		{aN + dN, 0.6},
		{20000, 0.6},
		{44100 - 13230, 0.6}, // release starts
		{44099, 0},
	}
	for _, c := range checks {
		if math.Abs(buf[c.i]-c.want) > 1e-3 {
			t.Errorf("env[%d] = %v, want %v", c.i, buf[c.i], c.want)
		}
	}

	for i := 1; i < aN; i++ {
		if buf[i] <= buf[i-1] {
			t.Fatalf("attack not rising at %d", i)
		}
	}
	for i := 44100 - 13229; i < 44100; i++ {
		if buf[i] >= buf[i-1] {
			t.Fatalf("release not falling at %d", i)
		}
	}
}

func TestEnvelopeShortBuffer(t *testing.T) {
	env := DefaultConfig().Envelope
	if got := env.MinDuration(); got != 405*time.Millisecond {
		t.Fatalf("MinDuration() = %v, want 405ms", got)
	}
	buf := ones(4410) // 100 ms
	env.Apply(buf, pcm.L16Mono44K)
	if buf[len(buf)-1] != 0 {
		t.Fatalf("last = %v, want 0", buf[len(buf)-1])
	}
	for i := 1; i < len(buf); i++ {
		if math.Abs(buf[i]-buf[i-1]) > 0.01 {
			t.Fatalf("discontinuity at %d: %v -> %v", i, buf[i-1], buf[i])
		}
	}
}

func TestEnvelopeNoSegments(t *testing.T) {
	env := Envelope{Sustain: 0.5}
	buf := ones(10)
	env.Apply(buf, pcm.L16Mono44K)
	for i, v := range buf {
		if v != 0.5 {
			t.Fatalf("env[%d] = %v, want 0.5", i, v)
		}
	}
}
