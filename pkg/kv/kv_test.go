package kv_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/haivivi/eartone/pkg/kv"
)

// runStoreTests exercises the Store contract against any implementation.
func runStoreTests(t *testing.T, newStore func(t *testing.T) kv.Store) {
	t.Run("GetSetDelete", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		key := kv.Key{"file", "notes", "C4.wav"}

		if _, err := s.Get(ctx, key); !errors.Is(err, kv.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if err := s.Set(ctx, key, []byte("v1")); err != nil {
			t.Fatal(err)
		}
		if err := s.Set(ctx, key, []byte("v2")); err != nil {
			t.Fatal(err)
		}
		got, err := s.Get(ctx, key)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "v2" {
			t.Fatalf("Get = %q, want v2", got)
		}
		if err := s.Delete(ctx, key); err != nil {
			t.Fatal(err)
		}
		if _, err := s.Get(ctx, key); !errors.Is(err, kv.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
		if err := s.Delete(ctx, kv.Key{"no", "such"}); err != nil {
			t.Fatalf("Delete missing: %v", err)
		}
	})

	t.Run("List", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		for _, k := range []kv.Key{
			{"file", "notes", "D4.wav"},
			{"file", "notes", "C4.wav"},
			{"file", "intervals", "C4_Octave_harmonic.wav"},
			{"run", "last"},
		} {
			if err := s.Set(ctx, k, []byte(k.String())); err != nil {
				t.Fatal(err)
			}
		}

		var got []string
		for e, err := range s.List(ctx, kv.Key{"file", "notes"}) {
			if err != nil {
				t.Fatal(err)
			}
			if string(e.Value) != e.Key.String() {
				t.Fatalf("value %q for key %v", e.Value, e.Key)
			}
			got = append(got, e.Key.String())
		}
		want := []string{"file/notes/C4.wav", "file/notes/D4.wav"}
		if !slices.Equal(got, want) {
			t.Fatalf("List = %v, want %v", got, want)
		}

		n := 0
		for _, err := range s.List(ctx, nil) {
			if err != nil {
				t.Fatal(err)
			}
			n++
		}
		if n != 4 {
			t.Fatalf("List(nil) returned %d entries, want 4", n)
		}
	})

	t.Run("ListPrefixBoundary", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		s.Set(ctx, kv.Key{"file", "a"}, []byte("1"))
		s.Set(ctx, kv.Key{"file", "ab"}, []byte("2"))
		s.Set(ctx, kv.Key{"file", "a", "x"}, []byte("3"))

		var got []string
		for e, err := range s.List(ctx, kv.Key{"file", "a"}) {
			if err != nil {
				t.Fatal(err)
			}
			got = append(got, e.Key.String())
		}
		if !slices.Equal(got, []string{"file/a/x"}) {
			t.Fatalf("List = %v", got)
		}
	})

	t.Run("ListEarlyStop", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		for _, name := range []string{"a", "b", "c"} {
			s.Set(ctx, kv.Key{"k", name}, []byte(name))
		}
		n := 0
		for range s.List(ctx, kv.Key{"k"}) {
			n++
			break
		}
		if n != 1 {
			t.Fatalf("iterated %d times", n)
		}
	})

	t.Run("InvalidKey", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		for _, k := range []kv.Key{nil, {"a", ""}, {"a/b"}} {
			if err := s.Set(ctx, k, []byte("x")); !errors.Is(err, kv.ErrInvalidKey) {
				t.Errorf("Set(%q) error = %v, want ErrInvalidKey", []string(k), err)
			}
		}
	})

	t.Run("ValueIsolation", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		val := []byte("original")
		s.Set(ctx, kv.Key{"iso"}, val)
		val[0] = 'X'
		got, err := s.Get(ctx, kv.Key{"iso"})
		if err != nil {
			t.Fatal(err)
		}
		got[1] = 'Y'
		again, _ := s.Get(ctx, kv.Key{"iso"})
		if string(again) != "original" {
			t.Fatalf("stored value mutated: %q", again)
		}
	})
}

func TestMemory(t *testing.T) {
	runStoreTests(t, func(t *testing.T) kv.Store {
		s := kv.NewMemory()
		t.Cleanup(func() { s.Close() })
		return s
	})
}

func TestKeyHasPrefix(t *testing.T) {
	tests := []struct {
		key, prefix kv.Key
		want        bool
	}{
		{kv.Key{"file", "notes", "C4.wav"}, kv.Key{"file"}, true},
		{kv.Key{"file", "notes", "C4.wav"}, kv.Key{"file", "notes", "C4.wav"}, true},
		{kv.Key{"file", "notes"}, kv.Key{"file", "notes", "C4.wav"}, false},
		{kv.Key{"file", "ab"}, kv.Key{"file", "a"}, false},
		{kv.Key{"file"}, nil, true},
	}
	for _, tt := range tests {
		if got := tt.key.HasPrefix(tt.prefix); got != tt.want {
			t.Errorf("%v.HasPrefix(%v) = %v, want %v", tt.key, tt.prefix, got, tt.want)
		}
	}
}
