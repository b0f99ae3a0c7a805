package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/haivivi/eartone/pkg/audio/wav"
	"github.com/haivivi/eartone/pkg/interval"
	"github.com/haivivi/eartone/pkg/library"
	"github.com/haivivi/eartone/pkg/metrics"
	"github.com/haivivi/eartone/pkg/music"
	"github.com/haivivi/eartone/pkg/piano"
)

// Catalog is the body of GET /v1/catalog.
type Catalog struct {
	Pitches   []music.Pitch    `json:"pitches"`
	Intervals []music.Interval `json:"intervals"`
	Modes     []string         `json:"modes"`
}

// health handles GET /healthz.
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// catalog handles GET /v1/catalog.
func (s *Server) catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Catalog{
		Pitches:   music.Pitches(),
		Intervals: music.Intervals(),
		Modes:     []string{"harmonic", "ascending", "descending"},
	})
}

// note handles GET /v1/notes/{pitch}.wav.
func (s *Server) note(w http.ResponseWriter, r *http.Request) {
	p, err := music.PitchByName(urlParam(r, "pitch"))
	if err != nil {
		s.fail(w, "note", err)
		return
	}
	s.render(w, "note", library.NoteJob(p))
}

// interval handles GET /v1/intervals/{base}/{interval}/{mode}.wav.
func (s *Server) interval(w http.ResponseWriter, r *http.Request) {
	base, err := music.PitchByName(urlParam(r, "base"))
	if err != nil {
		s.fail(w, "interval", err)
		return
	}
	kind, err := music.IntervalByName(urlParam(r, "interval"))
	if err != nil {
		s.fail(w, "interval", err)
		return
	}
	mode, err := interval.ParseMode(urlParam(r, "mode"))
	if err != nil {
		s.fail(w, "interval", errUnknownMode{err})
		return
	}
	s.render(w, "interval", library.IntervalJob(base, kind, mode))
}

func (s *Server) render(w http.ResponseWriter, route string, j library.Job) {
	rec, err := library.Render(s.composer, j)
	if err != nil {
		s.fail(w, route, err)
		return
	}
	data, err := wav.Marshal(rec.Samples, s.composer.Synth().Format())
	if err != nil {
		s.fail(w, route, err)
		return
	}
	metrics.HTTPRendersTotal.WithLabelValues(route, strconv.Itoa(http.StatusOK)).Inc()
	w.Header().Set("Content-Type", wav.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", `inline; filename="`+path.Base(j.Path())+`"`)
	w.Write(data)
}

// errUnknownMode marks an unparseable mode path segment.
type errUnknownMode struct{ err error }

func (e errUnknownMode) Error() string { return e.err.Error() }
func (e errUnknownMode) Unwrap() error { return e.err }

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var mode errUnknownMode
	switch {
	case errors.Is(err, music.ErrUnknownPitch),
		errors.Is(err, music.ErrUnknownInterval),
		errors.As(err, &mode):
		return http.StatusNotFound
	case errors.Is(err, music.ErrOutOfRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, piano.ErrInvalidParameter):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(w http.ResponseWriter, route string, err error) {
	code := statusFor(err)
	metrics.HTTPRendersTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
	if code == http.StatusInternalServerError {
		s.log.Error("render failed", "route", route, "error", err)
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// urlParam returns the unescaped route parameter.
func urlParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}
