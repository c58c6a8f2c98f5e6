package cas

import (
	"image"
	"image/color/palette"
	"image/gif"
	"io"
	"time"

	"go.trai.ch/zerr"
	"golang.org/x/image/draw"
)

// WriteGIF encodes the stored sequence as an animated GIF with the given
// frame delay. Frames are dithered onto the Plan 9 palette.
func (s *Store) WriteGIF(w io.Writer, delay time.Duration) error {
	keys := s.Sequence()
	if len(keys) == 0 {
		return zerr.New("no frames stored")
	}

	cs := max(1, int(delay/(10*time.Millisecond)))
	anim := &gif.GIF{}
	paletted := make(map[string]*image.Paletted)
	for _, key := range keys {
		p, ok := paletted[key]
		if !ok {
			img, err := s.Get(key)
			if err != nil {
				return err
			}
			if img == nil {
				return zerr.With(zerr.New("frame missing from store"), "key", key)
			}
			p = image.NewPaletted(img.Bounds(), palette.Plan9)
			draw.FloydSteinberg.Draw(p, img.Bounds(), img, img.Bounds().Min)
			paletted[key] = p
		}
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, cs)
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return zerr.Wrap(err, "failed to encode gif")
	}
	return nil
}
