package ports

import (
	"context"
	"image"
)

// IconResolver maps a relative asset path to a location the ImageLoader can fetch.
//
//go:generate mockgen -source=assets.go -destination=mocks/mock_assets.go -package=mocks
type IconResolver interface {
	// Locate returns the location of the asset, e.g. "service_icons/java.png".
	Locate(asset string) string
}

// ImageLoader fetches and decodes images.
type ImageLoader interface {
	// Load retrieves the image at location. It may block; callers run it off
	// the render path.
	Load(ctx context.Context, location string) (image.Image, error)
}
