// Package cas stores rendered frames content-addressed by their PNG encoding.
package cas

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/trafficlens/internal/core/ports"
	"go.trai.ch/zerr"
)

const manifestName = "manifest.json"

var _ ports.FrameStore = (*Store)(nil)

// Object describes one stored frame.
type Object struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Bytes  int64 `json:"bytes"`
}

type manifest struct {
	// Sequence lists the keys of all frames put, in order, repeats included.
	Sequence []string          `json:"sequence"`
	Objects  map[string]Object `json:"objects"`
}

// Store implements ports.FrameStore on a directory. Identical frames are
// written once; the manifest records the order frames were put in.
type Store struct {
	dir      string
	mu       sync.RWMutex
	manifest manifest
}

// NewStore opens or creates a frame store in dir.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create frame store"), "path", dir)
	}
	s := &Store{
		dir:      filepath.Clean(dir),
		manifest: manifest{Objects: make(map[string]Object)},
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Dir returns the store directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(filepath.Join(s.dir, manifestName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read frame manifest")
	}
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.manifest); err != nil {
		return zerr.Wrap(err, "failed to unmarshal frame manifest")
	}
	if s.manifest.Objects == nil {
		s.manifest.Objects = make(map[string]Object)
	}
	return nil
}

// saveLocked must be called with mu held for writing.
func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.manifest, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal frame manifest")
	}
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(filepath.Join(s.dir, manifestName), data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write frame manifest")
	}
	return nil
}

func (s *Store) objectPath(key string) string {
	return filepath.Join(s.dir, "objects", key[:2], key+".png")
}

// Put encodes frame as PNG and stores it under the xxhash of the encoding.
func (s *Store) Put(frame image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, frame); err != nil {
		return "", zerr.Wrap(err, "failed to encode frame")
	}
	key := fmt.Sprintf("%016x", xxhash.Sum64(buf.Bytes()))

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.manifest.Objects[key]; !exists {
		path := s.objectPath(key)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to create object directory"), "path", path)
		}
		//nolint:gosec // Path is derived from the content hash
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to write frame"), "path", path)
		}
		b := frame.Bounds()
		s.manifest.Objects[key] = Object{Width: b.Dx(), Height: b.Dy(), Bytes: int64(buf.Len())}
	}
	s.manifest.Sequence = append(s.manifest.Sequence, key)

	if err := s.saveLocked(); err != nil {
		return "", err
	}
	return key, nil
}

// Get decodes the frame stored under key. It returns nil, nil if not found.
func (s *Store) Get(key string) (image.Image, error) {
	s.mu.RLock()
	_, ok := s.manifest.Objects[key]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	path := s.objectPath(key)
	f, err := os.Open(path) //nolint:gosec // Path is derived from the content hash
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to open frame"), "path", path)
	}
	defer f.Close() //nolint:errcheck // read-only file

	img, err := png.Decode(f)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to decode frame"), "path", path)
	}
	return img, nil
}

// Sequence returns the keys of all frames in the order they were put.
func (s *Store) Sequence() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.manifest.Sequence)
}

// Object returns the metadata of a stored frame.
func (s *Store) Object(key string) (Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.manifest.Objects[key]
	return o, ok
}
