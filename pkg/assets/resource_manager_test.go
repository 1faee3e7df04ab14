package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/decker502/kokaton/pkg/types"
)

// encodeTestImage creates a solid w×h image encoded in the given format.
func encodeTestImage(t *testing.T, format string, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	blue := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, blue)
		}
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "jpeg":
		err = jpeg.Encode(&buf, img, nil)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	default:
		t.Fatalf("unknown format %s", format)
	}
	if err != nil {
		t.Fatalf("failed to encode %s: %v", format, err)
	}
	return buf.Bytes()
}

func TestLoadImage_Success(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		format string
	}{
		{"png", "3.png", "png"},
		{"jpeg", "pg_bg.jpg", "jpeg"},
		{"gif", "explosion.gif", "gif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{tt.file: {Data: encodeTestImage(t, tt.format, 12, 8)}}
			rm := NewResourceManager(fsys)

			img, err := rm.LoadImage(tt.file)
			if err != nil {
				t.Fatalf("LoadImage failed: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
				t.Errorf("expected 12x8, got %dx%d", b.Dx(), b.Dy())
			}
		})
	}
}

func TestLoadImage_Caching(t *testing.T) {
	fsys := fstest.MapFS{"beam.png": {Data: encodeTestImage(t, "png", 4, 4)}}
	rm := NewResourceManager(fsys)

	first, err := rm.LoadImage("beam.png")
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	second, err := rm.LoadImage("./beam.png")
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if first != second {
		t.Error("expected the cached image to be returned")
	}
	if rm.GetImage("beam.png") != first {
		t.Error("GetImage should return the cached image")
	}
	if rm.GetImage("missing.png") != nil {
		t.Error("GetImage should return nil for unloaded images")
	}
}

func TestLoadImage_Errors(t *testing.T) {
	fsys := fstest.MapFS{"broken.png": {Data: []byte("not an image")}}
	rm := NewResourceManager(fsys)

	if _, err := rm.LoadImage("missing.png"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := rm.LoadImage("broken.png"); err == nil {
		t.Error("expected error for corrupted file")
	}
}

func TestLoadFont_Default(t *testing.T) {
	rm := NewResourceManager(fstest.MapFS{})

	face, err := rm.LoadFont("", 30)
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	if face.Size != 30 {
		t.Errorf("expected size 30, got %v", face.Size)
	}

	again, _ := rm.LoadFont("", 30)
	if again != face {
		t.Error("expected the cached face to be returned")
	}

	bigger, err := rm.LoadFont("", 80)
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	if bigger == face || bigger.Source != face.Source {
		t.Error("different sizes should share one source but not one face")
	}
	if rm.GetFont("", 80) != bigger {
		t.Error("GetFont should return the cached face")
	}
}

func TestLoadFont_Errors(t *testing.T) {
	fsys := fstest.MapFS{"bad.ttf": {Data: []byte("not a font")}}
	rm := NewResourceManager(fsys)

	if _, err := rm.LoadFont("missing.ttf", 30); err == nil {
		t.Error("expected error for missing font")
	}
	if _, err := rm.LoadFont("bad.ttf", 30); err == nil {
		t.Error("expected error for invalid font data")
	}
}

func TestRegister(t *testing.T) {
	fsys := fstest.MapFS{"6.png": {Data: encodeTestImage(t, "png", 10, 6)}}
	rm := NewResourceManager(fsys)
	img, _ := rm.LoadImage("6.png")

	sprite := rm.Register("player/scored", img)

	if sprite != (types.Sprite{ID: "player/scored", W: 10, H: 6}) {
		t.Errorf("unexpected sprite %+v", sprite)
	}
	if rm.Image("player/scored") != img {
		t.Error("Image should resolve the registered image")
	}
	if rm.Image("unknown") != nil {
		t.Error("Image should return nil for unknown IDs")
	}
}
