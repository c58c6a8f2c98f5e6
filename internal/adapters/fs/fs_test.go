package fs_test

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/trafficlens/internal/adapters/fs"
)

func writePNG(t *testing.T, path string, c color.Color) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := range 3 {
		for x := range 4 {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path) //nolint:gosec // test file
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestImageLoader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "java.png")
	writePNG(t, path, color.RGBA{R: 255, A: 255})

	img, err := fs.NewImageLoader().Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())

	r, _, _, a := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)
}

func TestImageLoader_Errors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "broken.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o600))

	loader := fs.NewImageLoader()

	_, err := loader.Load(context.Background(), filepath.Join(dir, "missing.png"))
	assert.ErrorContains(t, err, "failed to open image")

	_, err = loader.Load(context.Background(), garbage)
	assert.ErrorContains(t, err, "failed to decode image")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = loader.Load(ctx, garbage)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolver(t *testing.T) {
	base := t.TempDir()
	writePNG(t, filepath.Join(base, "service_icons", "java.png"), color.White)
	writePNG(t, filepath.Join(base, "web.png"), color.White)
	writePNG(t, filepath.Join(base, ".cache", "stale.png"), color.White)
	require.NoError(t, os.WriteFile(filepath.Join(base, "README.md"), []byte("icons"), 0o600))

	r := fs.NewResolver(base)
	assert.Equal(t, filepath.Join(base, "service_icons", "java.png"), r.Locate("service_icons/java.png"))

	assert.Equal(t, []string{"service_icons/java.png", "web.png"}, r.Available())

	missing, err := r.Missing([]string{"web.png", "database.png", "service_icons/java.png", "service_icons/star_trek.png"})
	require.NoError(t, err)
	assert.Equal(t, []string{"database.png", "service_icons/star_trek.png"}, missing)
}

func TestWalkImages_StopsEarly(t *testing.T) {
	base := t.TempDir()
	for _, name := range []string{"a.png", "b.gif", "c.jpg"} {
		writePNG(t, filepath.Join(base, name), color.Black)
	}

	var seen []string
	for p := range fs.WalkImages(base) {
		seen = append(seen, p)
		if len(seen) == 2 {
			break
		}
	}
	assert.Len(t, seen, 2)
	assert.True(t, slices.IsSorted(seen))
}
