package asset

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
)

// Store resolves asset paths relative to a root directory and converts
// images to terminal cells. Missing or undecodable assets degrade to
// placeholders; loading happens once per call, with no re-resolution.
type Store struct {
	root string
}

// NewStore creates a store rooted at dir; empty dir means paths are used as-is
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// Resolve joins a content-relative path onto the store root
func (s *Store) Resolve(path string) string {
	if path == "" || s.root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.root, path)
}

// Image loads and converts an image to cols x rows cells. A blank or
// unresolvable path falls back to a transparent placeholder of the same
// size with a diagnostic; it never fails.
func (s *Store) Image(path string, cols, rows int) *Image {
	im, err := s.TryImage(path, cols, rows)
	if err != nil {
		log.Printf("asset: %v, using blank placeholder", err)
		return Blank(cols, rows)
	}
	return im
}

// TryImage loads and converts an image, reporting failure to the caller
// instead of substituting a placeholder
func (s *Store) TryImage(path string, cols, rows int) (*Image, error) {
	if path == "" {
		return nil, fmt.Errorf("empty image path")
	}

	full := s.Resolve(path)
	f, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("missing image asset %s: %w", full, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", full, err)
	}

	return Convert(src, cols, rows), nil
}
