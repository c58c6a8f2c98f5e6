package ports

import "image"

// FrameStore persists rendered frames.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type FrameStore interface {
	// Put stores a frame and returns its content key. Identical frames share a key.
	Put(frame image.Image) (string, error)

	// Get retrieves the frame stored under key.
	// Returns nil, nil if not found.
	Get(key string) (image.Image, error)
}
