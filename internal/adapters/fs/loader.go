package fs

import (
	"bufio"
	"context"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"os"

	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/webp" // register decoder

	"go.trai.ch/trafficlens/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ImageLoader = (*ImageLoader)(nil)

// ImageLoader decodes images from the local file system.
type ImageLoader struct{}

// NewImageLoader creates a new ImageLoader.
func NewImageLoader() *ImageLoader {
	return &ImageLoader{}
}

// Load opens and decodes the image at location.
func (l *ImageLoader) Load(ctx context.Context, location string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(location) //nolint:gosec // location comes from the icon resolver
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open image"), "path", location)
	}
	defer f.Close() //nolint:errcheck // read-only file

	img, _, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to decode image"), "path", location)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return img, nil
}
