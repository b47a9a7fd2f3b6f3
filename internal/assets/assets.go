// Package assets holds the textures games draw, embedded into the binary.
// A directory on disk may override any embedded file by name.
package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/draw"
)

// ErrMissing is returned when a texture exists neither in the override
// directory nor in the embedded set.
var ErrMissing = errors.New("assets: missing texture")

//go:embed data/*.png
var embedded embed.FS

// LoadTexture decodes the named texture. The override directory, when set,
// is checked first; a file found there that fails to decode is an error,
// not a fallback.
func LoadTexture(dir, name string) (image.Image, error) {
	clean := cleanAssetPath(name)
	if clean == "" {
		return nil, fmt.Errorf("%w: empty name", ErrMissing)
	}

	if dir != "" {
		b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(clean)))
		switch {
		case err == nil:
			return decode(clean, b)
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("assets: read %s: %w", clean, err)
		}
	}

	b, err := embedded.ReadFile(path.Join("data", clean))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissing, clean)
	}
	return decode(clean, b)
}

func decode(name string, b []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return img, nil
}

// Scale resamples img to w×h pixels with nearest-neighbour filtering,
// which keeps hard pixel edges. Non-positive sizes keep the source size.
func Scale(img image.Image, w, h int) *image.NRGBA {
	b := img.Bounds()
	if w <= 0 || h <= 0 {
		w, h = b.Dx(), b.Dy()
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// Names lists the embedded textures.
func Names() []string {
	entries, err := embedded.ReadDir("data")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func cleanAssetPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if filepath.IsAbs(p) {
		return path.Base(s)
	}
	s = strings.TrimPrefix(s, "assets/")
	return path.Clean(s)
}
