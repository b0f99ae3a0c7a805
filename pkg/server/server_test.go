package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/haivivi/eartone/pkg/audio/wav"
	"github.com/haivivi/eartone/pkg/interval"
	"github.com/haivivi/eartone/pkg/piano"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	synth, err := piano.New(piano.DefaultConfig(), piano.WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	c, err := interval.NewComposer(synth, interval.Layout{
		NoteDuration: 100 * time.Millisecond,
		Gap:          20 * time.Millisecond,
		RepeatGap:    40 * time.Millisecond,
		Amplitude:    0.5,
	})
	if err != nil {
		t.Fatal(err)
	}
	s, err := New(Config{Composer: c})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHealth(t *testing.T) {
	w := get(t, newTestServer(t), "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Body.String(); got != `{"status":"ok"}` {
		t.Fatalf("body = %s", got)
	}
}

func TestCatalog(t *testing.T) {
	w := get(t, newTestServer(t), "/v1/catalog")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var c Catalog
	if err := json.Unmarshal(w.Body.Bytes(), &c); err != nil {
		t.Fatal(err)
	}
	if len(c.Pitches) != 37 || len(c.Intervals) != 12 {
		t.Fatalf("catalog has %d pitches, %d intervals", len(c.Pitches), len(c.Intervals))
	}
	if c.Pitches[0].Name != "C3" || c.Intervals[11].Name != "Octave" {
		t.Fatalf("catalog = %+v", c)
	}
}

func TestNote(t *testing.T) {
	w := get(t, newTestServer(t), "/v1/notes/A4.wav")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	if ct := w.Header().Get("Content-Type"); ct != wav.ContentType {
		t.Fatalf("Content-Type = %q", ct)
	}
	a, err := wav.Decode(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Samples) != 4410 {
		t.Fatalf("samples = %d, want 4410", len(a.Samples))
	}
}

func TestInterval(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		target string
		code   int
	}{
		{"/v1/intervals/C4/Perfect_5th/harmonic.wav", http.StatusOK},
		{"/v1/intervals/C4/perfect-5th/ascending.wav", http.StatusOK},
		{"/v1/intervals/C4/Octave/descending.wav", http.StatusOK},
		{"/v1/intervals/C3/Octave/descending.wav", http.StatusUnprocessableEntity},
		{"/v1/intervals/C6/Minor_2nd/harmonic.wav", http.StatusUnprocessableEntity},
		{"/v1/intervals/H4/Octave/harmonic.wav", http.StatusNotFound},
		{"/v1/intervals/C4/Ninth/harmonic.wav", http.StatusNotFound},
		{"/v1/intervals/C4/Octave/sideways.wav", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := get(t, s, tt.target)
			if w.Code != tt.code {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.code, w.Body)
			}
			if tt.code != http.StatusOK {
				var body map[string]string
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
					t.Fatal(err)
				}
				if body["error"] == "" {
					t.Fatal("missing error message")
				}
			}
		})
	}
}

func TestUnknownNote(t *testing.T) {
	w := get(t, newTestServer(t), "/v1/notes/X9.wav")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	get(t, s, "/v1/notes/C4.wav")
	w := get(t, s, "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("eartone_http_renders_total")) {
		t.Fatal("render counter not exported")
	}
}

func TestServeShutdown(t *testing.T) {
	s := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestNewRequiresComposer(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error")
	}
}
