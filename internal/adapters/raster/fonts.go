package raster

import (
	"math"
	"sync"

	"go.trai.ch/zerr"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fonts caches one face per pixel size. Faces are not safe for concurrent
// use, which holds since a surface is only drawn from the render loop.
type fonts struct {
	mu    sync.Mutex
	font  *opentype.Font
	faces map[int]font.Face
}

func newFonts() (*fonts, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to parse font")
	}
	return &fonts{font: f, faces: make(map[int]font.Face)}, nil
}

// face returns the face for size pixels, rounded to a tenth of a pixel.
func (f *fonts) face(size float64) (font.Face, error) {
	key := int(math.Round(size * 10))
	if key < 1 {
		key = 1
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if face, ok := f.faces[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    float64(key) / 10,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create font face")
	}
	f.faces[key] = face
	return face, nil
}
