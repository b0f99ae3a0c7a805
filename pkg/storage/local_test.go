package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func newTestLocal(t *testing.T) *Local {
	t.Helper()
	s, err := NewLocal(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func readAll(t *testing.T, fs FileStore, path string) string {
	t.Helper()
	r, err := fs.Read(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(got)
}

func TestLocalPutAndRead(t *testing.T) {
	s := newTestLocal(t)
	ctx := context.Background()

	if err := s.Put(ctx, "intervals/C4_Perfect_Fifth_harmonic.wav", []byte("RIFF....")); err != nil {
		t.Fatal(err)
	}
	if got := readAll(t, s, "intervals/C4_Perfect_Fifth_harmonic.wav"); got != "RIFF...." {
		t.Fatalf("got %q", got)
	}

	// No temporary files left behind.
	entries, err := os.ReadDir(filepath.Join(s.Root(), "intervals"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("intervals/ has %d entries, want 1", len(entries))
	}
}

func TestLocalPutReplaces(t *testing.T) {
	s := newTestLocal(t)
	ctx := context.Background()

	if err := s.Put(ctx, "notes/C4.wav", []byte("a long first version")); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(ctx, "notes/C4.wav", []byte("short")); err != nil {
		t.Fatal(err)
	}
	if got := readAll(t, s, "notes/C4.wav"); got != "short" {
		t.Fatalf("got %q, want %q", got, "short")
	}
}

func TestLocalReadNotExist(t *testing.T) {
	s := newTestLocal(t)
	_, err := s.Read(context.Background(), "no-such-file")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !os.IsNotExist(err) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLocalExists(t *testing.T) {
	s := newTestLocal(t)
	ctx := context.Background()

	ok, err := s.Exists(ctx, "notes/A4.wav")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected false for missing file")
	}
	if err := s.Put(ctx, "notes/A4.wav", nil); err != nil {
		t.Fatal(err)
	}
	ok, err = s.Exists(ctx, "notes/A4.wav")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected true after Put")
	}
}

func TestLocalDeleteIdempotent(t *testing.T) {
	s := newTestLocal(t)
	ctx := context.Background()

	if err := s.Delete(ctx, "never-existed"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	if err := s.Put(ctx, "x.wav", []byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, "x.wav"); err != nil {
		t.Fatal(err)
	}
	if ok, _ := s.Exists(ctx, "x.wav"); ok {
		t.Fatal("file still exists after delete")
	}
	if err := s.Delete(ctx, "x.wav"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestLocalEscapeRejected(t *testing.T) {
	s := newTestLocal(t)
	if err := s.Put(context.Background(), "../outside.wav", []byte("x")); err == nil {
		t.Fatal("expected error for path escaping root")
	}
}

func TestLocalLocation(t *testing.T) {
	s := newTestLocal(t)
	want := filepath.Join(s.Root(), "notes", "C3.wav")
	if got := s.Location("notes/C3.wav"); got != want {
		t.Fatalf("Location = %q, want %q", got, want)
	}
}

func TestNewLocalCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "nested", "out")
	if _, err := NewLocal(dir); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Fatal("expected directory")
	}
}
