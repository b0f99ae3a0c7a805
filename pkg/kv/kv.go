// Package kv provides the small key-value store the generation manifest is
// kept in. Keys are hierarchical paths represented as string slices
// (e.g. ["file", "notes", "C4.wav"]) and encoded as a '/'-joined string.
//
// Two implementations exist: Badger, persisted on disk next to the output
// library, and Memory, used for tests and dry runs.
package kv

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Sentinel errors.
var (
	// ErrNotFound is returned when a key does not exist in the store.
	ErrNotFound = errors.New("kv: not found")

	// ErrInvalidKey is returned for empty keys or segments containing the
	// separator.
	ErrInvalidKey = errors.New("kv: invalid key")
)

// Separator joins key segments in the encoded form.
const Separator = '/'

// Key is a hierarchical path represented as a slice of string segments.
type Key []string

// String returns the encoded form of the key.
func (k Key) String() string {
	return strings.Join(k, string(Separator))
}

// HasPrefix reports whether every segment of prefix matches the leading
// segments of k.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i, seg := range prefix {
		if k[i] != seg {
			return false
		}
	}
	return true
}

// Entry is a key-value pair returned by List.
type Entry struct {
	Key   Key
	Value []byte
}

// Store is the interface for a key-value store with path-based keys.
// Implementations are safe for concurrent use.
type Store interface {
	// Get retrieves the value for a key. Returns ErrNotFound if not present.
	Get(ctx context.Context, key Key) ([]byte, error)

	// Set stores a key-value pair. Overwrites any existing value.
	Set(ctx context.Context, key Key, value []byte) error

	// Delete removes a key. No error if the key does not exist.
	Delete(ctx context.Context, key Key) error

	// List iterates over all entries whose key starts with prefix, in
	// lexicographic order of the encoded key. An empty prefix lists
	// everything.
	List(ctx context.Context, prefix Key) iter.Seq2[Entry, error]

	// Close releases any resources held by the store.
	Close() error
}

func encode(k Key) ([]byte, error) {
	if len(k) == 0 {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	for _, seg := range k {
		if seg == "" || strings.IndexByte(seg, Separator) >= 0 {
			return nil, fmt.Errorf("%w: segment %q in %v", ErrInvalidKey, seg, []string(k))
		}
	}
	return []byte(k.String()), nil
}

// encodePrefix returns the byte prefix matching every key under prefix.
// The trailing separator keeps "file/a" from matching "file/ab".
func encodePrefix(prefix Key) ([]byte, error) {
	if len(prefix) == 0 {
		return nil, nil
	}
	p, err := encode(prefix)
	if err != nil {
		return nil, err
	}
	return append(p, Separator), nil
}

func decode(b []byte) Key {
	return Key(strings.Split(string(b), string(Separator)))
}
