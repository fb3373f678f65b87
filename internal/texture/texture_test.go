package texture

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func writeTestBMP(t *testing.T, path string, w, h int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 16), B: 128, A: 255})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := bmp.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "earth.bmp")
	writeTestBMP(t, path, 8, 4)

	img, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if img.Width != 8 || img.Height != 4 {
		t.Errorf("got %dx%d, want 8x4", img.Width, img.Height)
	}

	r, g, b, _ := img.Pixels.At(2, 1).RGBA()
	if r>>8 != 32 || g>>8 != 16 || b>>8 != 128 {
		t.Errorf("pixel (2,1) = %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.bmp"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.bmp")
	if err := os.WriteFile(path, []byte("not a bitmap"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestLoadRejectsNonBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "earth.png")
	if err := os.WriteFile(path, []byte{0x89, 'P', 'N', 'G'}, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected unsupported-format error")
	}
}
