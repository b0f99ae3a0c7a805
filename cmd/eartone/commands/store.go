package commands

import (
	"fmt"
	"log/slog"

	"github.com/haivivi/eartone/cmd/eartone/internal/config"
	"github.com/haivivi/eartone/pkg/audio/wav"
	"github.com/haivivi/eartone/pkg/kv"
	"github.com/haivivi/eartone/pkg/library"
	"github.com/haivivi/eartone/pkg/storage"
)

// openStore returns an S3 store when a bucket is configured, otherwise a
// local directory store rooted at dir.
func openStore(dir string, s3cfg storage.S3Config) (storage.FileStore, error) {
	if s3cfg.Bucket != "" {
		return storage.NewS3FromConfig(s3cfg, storage.WithContentType(wav.ContentType))
	}
	if dir == "" {
		dir = "."
	}
	return storage.NewLocal(dir)
}

// openManifest opens the manifest backend. The returned close function is
// never nil. A nil Manifest means the backend is "none".
func openManifest(cfg *config.Config, backend string) (*library.Manifest, func() error, error) {
	noop := func() error { return nil }
	if backend == "" && cfg != nil {
		backend = cfg.Manifest.Backend
	}
	switch backend {
	case config.BackendNone:
		return nil, noop, nil
	case config.BackendMemory:
		s := kv.NewMemory()
		return library.NewManifest(s), s.Close, nil
	case config.BackendBadger, "":
		if cfg == nil {
			return nil, noop, fmt.Errorf("badger manifest needs a config directory")
		}
		s, err := kv.NewBadger(kv.BadgerOptions{Dir: cfg.ManifestDir(), Logger: slog.Default()})
		if err != nil {
			return nil, noop, err
		}
		return library.NewManifest(s), s.Close, nil
	}
	return nil, noop, fmt.Errorf("unknown manifest backend %q (want badger, memory or none)", backend)
}
