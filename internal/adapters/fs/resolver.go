package fs

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/trafficlens/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.IconResolver = (*Resolver)(nil)

// Resolver locates icon assets below a base directory.
type Resolver struct {
	base string
}

// NewResolver creates a Resolver rooted at base.
func NewResolver(base string) *Resolver {
	return &Resolver{base: base}
}

// Base returns the asset directory.
func (r *Resolver) Base() string {
	return r.base
}

// Locate joins the slash-separated asset path onto the base directory.
func (r *Resolver) Locate(asset string) string {
	return filepath.Join(r.base, filepath.FromSlash(asset))
}

// Missing returns the assets that do not exist below the base directory.
func (r *Resolver) Missing(assets []string) ([]string, error) {
	var missing []string
	for _, asset := range assets {
		path := r.Locate(asset)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				missing = append(missing, asset)
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to stat asset"), "path", path)
		}
	}
	return missing, nil
}

// Available lists the image assets present below the base directory, sorted.
func (r *Resolver) Available() []string {
	return slices.Sorted(WalkImages(r.base))
}
