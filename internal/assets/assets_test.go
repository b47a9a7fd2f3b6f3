package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedTexture(t *testing.T) {
	img, err := LoadTexture("", "player-square.png")
	if err != nil {
		t.Fatalf("LoadTexture failed: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 50 || b.Dy() != 50 {
		t.Errorf("texture is %dx%d, expected 50x50", b.Dx(), b.Dy())
	}
}

func TestLoadMissingTexture(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		file string
	}{
		{"unknown name", "", "nope.png"},
		{"unknown with override dir", t.TempDir(), "nope.png"},
		{"empty name", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadTexture(tc.dir, tc.file)
			if !errors.Is(err, ErrMissing) {
				t.Errorf("expected ErrMissing, got %v", err)
			}
		})
	}
}

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestOverrideDirWins(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "player-square.png"), 4, 3, color.NRGBA{R: 255, A: 255})

	img, err := LoadTexture(dir, "assets/player-square.png")
	if err != nil {
		t.Fatalf("LoadTexture failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("override not used, got %dx%d", b.Dx(), b.Dy())
	}

	// Files absent from the override dir fall back to the embedded set
	if _, err := LoadTexture(t.TempDir(), "player-square.png"); err != nil {
		t.Errorf("embedded fallback failed: %v", err)
	}
}

func TestOverrideUndecodable(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "player-square.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadTexture(dir, "player-square.png")
	if err == nil {
		t.Fatal("expected decode error")
	}
	if errors.Is(err, ErrMissing) {
		t.Error("a broken file is not a missing file")
	}
}

func TestScale(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.NRGBA{R: 255, A: 255})
	src.Set(1, 1, color.NRGBA{B: 255, A: 255})

	dst := Scale(src, 8, 8)
	if b := dst.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Fatalf("scaled to %dx%d, expected 8x8", b.Dx(), b.Dy())
	}
	if got := dst.NRGBAAt(1, 1); got.R != 255 || got.A != 255 {
		t.Errorf("top-left block should stay red, got %+v", got)
	}
	if got := dst.NRGBAAt(6, 6); got.B != 255 {
		t.Errorf("bottom-right block should stay blue, got %+v", got)
	}

	same := Scale(src, 0, 0)
	if b := same.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("zero size should keep source size, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) == 0 || names[0] != "player-square.png" {
		t.Errorf("Names() = %v, expected player-square.png", names)
	}
}
