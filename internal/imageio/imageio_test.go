package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 60), uint8(y * 80), 200, 255})
		}
	}
	return img
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"out/render.webp": WebP,
		"render.TGA":      TGA,
		"a/b/c.png":       PNG,
		"noext":           WebP,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestEncode_WebPHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(), WebP); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()
	if len(b) < 12 || string(b[0:4]) != "RIFF" || string(b[8:12]) != "WEBP" {
		t.Errorf("not a WebP stream: % x", b[:min(len(b), 16)])
	}
}

func TestSave_RoundTripLosslessFormats(t *testing.T) {
	dir := t.TempDir()
	src := testImage()

	decoders := map[string]func(*os.File) (image.Image, error){
		"nested/out.png": func(f *os.File) (image.Image, error) { return png.Decode(f) },
		"out.tga":        func(f *os.File) (image.Image, error) { return tga.Decode(f) },
	}
	for name, decode := range decoders {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Save(path, src, ""); err != nil {
				t.Fatalf("Save: %v", err)
			}
			f, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			got, err := decode(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			for y := 0; y < 3; y++ {
				for x := 0; x < 4; x++ {
					r1, g1, b1, _ := got.At(x, y).RGBA()
					r2, g2, b2, _ := src.At(x, y).RGBA()
					if r1 != r2 || g1 != g2 || b1 != b2 {
						t.Fatalf("pixel (%d, %d) differs", x, y)
					}
				}
			}
		})
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, testImage(), "bmp"); err == nil {
		t.Error("expected an error")
	}
}
