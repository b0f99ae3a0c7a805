package library

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/haivivi/eartone/pkg/kv"
)

// ErrNotRecorded is returned by Manifest.Get for a path with no entry.
var ErrNotRecorded = errors.New("library: not in manifest")

// Entry records one generated file.
type Entry struct {
	Path      string    `msgpack:"path" json:"path" yaml:"path"`
	Kind      string    `msgpack:"kind" json:"kind" yaml:"kind"` // note or interval
	Base      string    `msgpack:"base" json:"base" yaml:"base"`
	Target    string    `msgpack:"target,omitempty" json:"target,omitempty" yaml:"target,omitempty"`
	Interval  string    `msgpack:"interval,omitempty" json:"interval,omitempty" yaml:"interval,omitempty"`
	Mode      string    `msgpack:"mode,omitempty" json:"mode,omitempty" yaml:"mode,omitempty"`
	Samples   int       `msgpack:"samples" json:"samples" yaml:"samples"`
	Bytes     int       `msgpack:"bytes" json:"bytes" yaml:"bytes"`
	Peak      float64   `msgpack:"peak" json:"peak" yaml:"peak"`
	RunID     string    `msgpack:"run_id" json:"run_id" yaml:"run_id"`
	CreatedAt time.Time `msgpack:"created_at" json:"created_at" yaml:"created_at"`
}

// NewEntry describes a recording written as size bytes during run.
func NewEntry(rec *Recording, size int, runID string, at time.Time) Entry {
	e := Entry{
		Path:      rec.Job.Path(),
		Kind:      "note",
		Base:      rec.Job.Base.Name,
		Samples:   len(rec.Samples),
		Bytes:     size,
		Peak:      rec.Peak,
		RunID:     runID,
		CreatedAt: at.UTC(),
	}
	if rec.Job.Kind != KindNote {
		e.Kind = "interval"
		e.Target = rec.Target.Name
		e.Interval = rec.Job.Interval.Name
		e.Mode = rec.Job.Mode.String()
	}
	return e
}

const manifestPrefix = "file"

func manifestKey(path string) kv.Key {
	return append(kv.Key{manifestPrefix}, strings.Split(path, "/")...)
}

// Manifest is the record of generated files, kept in a kv.Store.
type Manifest struct {
	store kv.Store
}

// NewManifest returns a Manifest backed by store. The caller owns store.
func NewManifest(store kv.Store) *Manifest {
	return &Manifest{store: store}
}

// Put records e, replacing any previous entry for the same path.
func (m *Manifest) Put(ctx context.Context, e Entry) error {
	data, err := msgpack.Marshal(&e)
	if err != nil {
		return fmt.Errorf("library: encode manifest entry: %w", err)
	}
	if err := m.store.Set(ctx, manifestKey(e.Path), data); err != nil {
		return fmt.Errorf("library: record %s: %w", e.Path, err)
	}
	return nil
}

// Get returns the entry for path, or an error wrapping ErrNotRecorded.
func (m *Manifest) Get(ctx context.Context, path string) (Entry, error) {
	data, err := m.store.Get(ctx, manifestKey(path))
	if errors.Is(err, kv.ErrNotFound) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotRecorded, path)
	}
	if err != nil {
		return Entry{}, err
	}
	var e Entry
	if err := msgpack.Unmarshal(data, &e); err != nil {
		return Entry{}, fmt.Errorf("library: decode manifest entry %s: %w", path, err)
	}
	return e, nil
}

// List iterates over all entries in path order.
func (m *Manifest) List(ctx context.Context) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		for kve, err := range m.store.List(ctx, kv.Key{manifestPrefix}) {
			if err != nil {
				yield(Entry{}, err)
				return
			}
			var e Entry
			if err := msgpack.Unmarshal(kve.Value, &e); err != nil {
				if !yield(Entry{}, fmt.Errorf("library: decode manifest entry %s: %w", kve.Key, err)) {
					return
				}
				continue
			}
			if !yield(e, nil) {
				return
			}
		}
	}
}

// Delete removes the entry for path.
func (m *Manifest) Delete(ctx context.Context, path string) error {
	return m.store.Delete(ctx, manifestKey(path))
}
