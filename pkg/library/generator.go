package library

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/haivivi/eartone/pkg/audio/wav"
	"github.com/haivivi/eartone/pkg/interval"
	"github.com/haivivi/eartone/pkg/metrics"
	"github.com/haivivi/eartone/pkg/music"
	"github.com/haivivi/eartone/pkg/storage"
)

// DefaultWorkers is the pool size used when Generator.Workers is not set.
const DefaultWorkers = 4

// Generator renders jobs and writes them to a FileStore.
type Generator struct {
	Composer *interval.Composer
	Store    storage.FileStore

	// Manifest, if set, receives an entry for every file written.
	Manifest *Manifest

	// Workers bounds the number of jobs rendered concurrently.
	Workers int

	// SkipExisting leaves files that already exist in Store untouched.
	SkipExisting bool

	Logger *slog.Logger
}

// Summary reports the outcome of a Run.
type Summary struct {
	RunID     string        `json:"run_id" yaml:"run_id"`
	Notes     int           `json:"notes" yaml:"notes"`
	Intervals int           `json:"intervals" yaml:"intervals"`
	Skipped   int           `json:"skipped" yaml:"skipped"`
	Bytes     int64         `json:"bytes" yaml:"bytes"`
	Elapsed   time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Files returns the number of files written.
func (s Summary) Files() int {
	return s.Notes + s.Intervals
}

type counters struct {
	notes, intervals, skipped, bytes atomic.Int64
}

// Run renders jobs on a bounded worker pool. Jobs whose second note falls
// outside the catalog are logged and skipped. Any other error cancels the
// remaining jobs and is returned together with the partial summary.
func (g *Generator) Run(ctx context.Context, jobs []Job) (Summary, error) {
	if g.Composer == nil || g.Store == nil {
		return Summary{}, errors.New("library: generator needs a composer and a store")
	}
	log := g.logger()
	workers := g.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	runID := uuid.NewString()
	start := time.Now()
	log.Info("generation started", "run_id", runID, "jobs", len(jobs), "workers", workers)

	var c counters
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for _, j := range jobs {
		if ctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			return g.runJob(ctx, j, runID, &c)
		})
	}
	err := eg.Wait()

	sum := Summary{
		RunID:     runID,
		Notes:     int(c.notes.Load()),
		Intervals: int(c.intervals.Load()),
		Skipped:   int(c.skipped.Load()),
		Bytes:     c.bytes.Load(),
		Elapsed:   time.Since(start),
	}
	if err != nil {
		log.Error("generation failed", "run_id", runID, "error", err)
		return sum, err
	}
	log.Info("generation finished", "run_id", runID,
		"notes", sum.Notes, "intervals", sum.Intervals, "skipped", sum.Skipped,
		"bytes", sum.Bytes, "elapsed", sum.Elapsed)
	return sum, nil
}

func (g *Generator) runJob(ctx context.Context, j Job, runID string, c *counters) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := g.logger()
	path := j.Path()

	if g.SkipExisting {
		ok, err := g.Store.Exists(ctx, path)
		if err != nil {
			return fmt.Errorf("library: stat %s: %w", path, err)
		}
		if ok {
			c.skipped.Add(1)
			metrics.SkippedTotal.WithLabelValues(metrics.ReasonExists).Inc()
			log.Debug("skipping existing file", "path", path)
			return nil
		}
	}

	start := time.Now()
	rec, err := Render(g.Composer, j)
	if errors.Is(err, music.ErrOutOfRange) {
		c.skipped.Add(1)
		metrics.SkippedTotal.WithLabelValues(metrics.ReasonOutOfRange).Inc()
		log.Warn("skipping combination outside the catalog", "job", j.String(), "error", err)
		return nil
	}
	if err != nil {
		return err
	}
	data, err := wav.Marshal(rec.Samples, g.Composer.Synth().Format())
	if err != nil {
		return fmt.Errorf("library: encode %s: %w", path, err)
	}
	metrics.RenderDuration.WithLabelValues(j.Label()).Observe(float64(time.Since(start).Milliseconds()))

	if err := g.Store.Put(ctx, path, data); err != nil {
		return fmt.Errorf("library: write %s: %w", path, err)
	}
	if g.Manifest != nil {
		if err := g.Manifest.Put(ctx, NewEntry(rec, len(data), runID, time.Now())); err != nil {
			return err
		}
	}

	if j.Kind == KindNote {
		c.notes.Add(1)
	} else {
		c.intervals.Add(1)
	}
	c.bytes.Add(int64(len(data)))
	metrics.FilesGeneratedTotal.WithLabelValues(j.Label()).Inc()
	metrics.BytesWrittenTotal.Add(float64(len(data)))
	log.Debug("wrote recording", "path", g.Store.Location(path), "samples", len(rec.Samples), "bytes", len(data))
	return nil
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}
