// Package fs provides file system adapters for locating and decoding icon images.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// imageExtensions lists the formats the loader can decode.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

// WalkImages yields the image files below root as slash-separated paths
// relative to root, skipping hidden directories.
func WalkImages(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if !imageExtensions[strings.ToLower(filepath.Ext(path))] {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return nil //nolint:nilerr // unreachable for paths produced by WalkDir
			}
			if !yield(filepath.ToSlash(rel)) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}
