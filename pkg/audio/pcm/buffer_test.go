package pcm

import (
	"bytes"
	"math"
	"testing"
	"time"
)

func TestPeak(t *testing.T) {
	tests := []struct {
		buf  []float64
		want float64
	}{
		{nil, 0},
		{[]float64{0, 0, 0}, 0},
		{[]float64{0.1, -0.7, 0.3}, 0.7},
		{[]float64{2, -1}, 2},
	}
	for _, tt := range tests {
		if got := Peak(tt.buf); got != tt.want {
			t.Errorf("Peak(%v) = %v, want %v", tt.buf, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	buf := []float64{0.2, -0.4, 0.1}
	Normalize(buf, 0.5)
	if got := Peak(buf); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("peak after Normalize = %v, want 0.5", got)
	}
	if math.Abs(buf[0]-0.25) > 1e-12 {
		t.Errorf("buf[0] = %v, want 0.25", buf[0])
	}
}

func TestNormalizeSilence(t *testing.T) {
	buf := make([]float64, 8)
	Normalize(buf, 1)
	for i, v := range buf {
		if v != 0 || math.IsNaN(v) {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	buf := []float64{0.9, -0.3, 0.45, -0.8}
	Normalize(buf, 0.7)
	again := append([]float64(nil), buf...)
	Normalize(again, 0.7)
	for i := range buf {
		if math.Abs(buf[i]-again[i]) > 1e-12 {
			t.Fatalf("sample %d changed: %v -> %v", i, buf[i], again[i])
		}
	}
	a, b := Quantize(buf), Quantize(again)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("quantized sample %d changed: %d -> %d", i, a[i], b[i])
		}
	}
}

func TestQuantize(t *testing.T) {
	got := Quantize([]float64{0, 1, -1, 0.5, 1.5, -1.5})
	want := []int16{0, 32767, -32767, 16384, 32767, -32768}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Quantize[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestInt16ToBytes(t *testing.T) {
	got := Int16ToBytes([]int16{1, -1, 0x1234})
	want := []byte{0x01, 0x00, 0xff, 0xff, 0x34, 0x12}
	if !bytes.Equal(got, want) {
		t.Fatalf("Int16ToBytes = %x, want %x", got, want)
	}
}

func TestConcat(t *testing.T) {
	got := Concat([]float64{1}, nil, []float64{2, 3})
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Concat = %v", got)
	}
}

func TestFormat(t *testing.T) {
	f := L16Mono44K
	if f.SampleRate() != 44100 || f.Channels() != 1 || f.Depth() != 16 {
		t.Fatalf("unexpected format %s", f)
	}
	if f.Nyquist() != 22050 {
		t.Errorf("Nyquist = %v, want 22050", f.Nyquist())
	}
	tests := []struct {
		d    time.Duration
		want int64
	}{
		{time.Second, 44100},
		{500 * time.Millisecond, 22050},
		{1500 * time.Millisecond, 66150},
		{5 * time.Millisecond, 221},
		{10 * time.Millisecond, 441},
		{0, 0},
		{-time.Second, 0},
	}
	for _, tt := range tests {
		if got := f.SamplesInDuration(tt.d); got != tt.want {
			t.Errorf("SamplesInDuration(%v) = %d, want %d", tt.d, got, tt.want)
		}
	}
	if got := f.BytesInDuration(time.Second); got != 88200 {
		t.Errorf("BytesInDuration(1s) = %d, want 88200", got)
	}
	if got := f.Duration(88200); got != time.Second {
		t.Errorf("Duration(88200) = %v, want 1s", got)
	}
}
