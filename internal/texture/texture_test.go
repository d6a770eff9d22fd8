package texture

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"

	"raycast-renderer/internal/mathutil"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestSample_SolidColor(t *testing.T) {
	tex := solid(4, 4, color.NRGBA{255, 0, 255, 255})
	for _, uv := range [][2]float64{{0, 0}, {0.3, 0.7}, {1.5, -0.25}} {
		c := Sample(tex, uv[0], uv[1])
		if math.Abs(c[0]-1) > 1e-9 || c[1] != 0 || math.Abs(c[2]-1) > 1e-9 {
			t.Errorf("Sample%v = %v, want (1, 0, 1)", uv, c)
		}
	}
}

func TestEquirect_TopAndBottomRows(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 8, 2))
	for x := 0; x < 8; x++ {
		tex.SetNRGBA(x, 0, color.NRGBA{0, 0, 255, 255})
		tex.SetNRGBA(x, 1, color.NRGBA{255, 255, 255, 255})
	}
	up := Equirect(tex, mathutil.Vec3{0, 1, 0})
	if up[0] > 1e-9 || math.Abs(up[2]-1) > 1e-9 {
		t.Errorf("up = %v, want blue", up)
	}
	down := Equirect(tex, mathutil.Vec3{0, -1, 0})
	if math.Abs(down[0]-1) > 1e-9 {
		t.Errorf("down = %v, want white", down)
	}
}

func TestLoad_DecodesByExtension(t *testing.T) {
	src := solid(3, 2, color.NRGBA{10, 20, 30, 255})

	tests := []struct {
		name   string
		encode func(w io.Writer) error
		tol    int
	}{
		{"bg.png", func(w io.Writer) error { return png.Encode(w, src) }, 0},
		{"bg.tga", func(w io.Writer) error { return tga.Encode(w, src) }, 0},
		{"bg.jpg", func(w io.Writer) error { return jpeg.Encode(w, src, &jpeg.Options{Quality: 100}) }, 3},
		{"BG.JPEG", func(w io.Writer) error { return jpeg.Encode(w, src, &jpeg.Options{Quality: 100}) }, 3},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			f, err := os.Create(path)
			if err != nil {
				t.Fatal(err)
			}
			if err := tt.encode(f); err != nil {
				t.Fatal(err)
			}
			if err := f.Close(); err != nil {
				t.Fatal(err)
			}

			img, err := Load(path)
			if err != nil {
				t.Fatalf("Load(%s): %v", tt.name, err)
			}
			if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
				t.Errorf("bounds = %v, want 3x2", img.Bounds())
			}
			got := img.NRGBAAt(1, 1)
			want := color.NRGBA{10, 20, 30, 255}
			if !near(got.R, want.R, tt.tol) || !near(got.G, want.G, tt.tol) || !near(got.B, want.B, tt.tol) || got.A != 255 {
				t.Errorf("pixel = %v, want %v (±%d)", got, want, tt.tol)
			}
		})
	}
}

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func TestLoad_UnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.bmp")
	if err := os.WriteFile(path, []byte("BM"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for .bmp")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected an error")
	}
}
