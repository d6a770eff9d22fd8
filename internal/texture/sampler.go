package texture

import (
	"image"
	"math"

	"raycast-renderer/internal/mathutil"
)

// srgbToLinear decodes 8-bit sRGB to linear light.
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// Sample performs bilinear filtering with UV wrapping and returns a linear
// color. Accesses tex.Pix directly for performance.
func Sample(tex *image.NRGBA, u, v float64) mathutil.Color {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()

	// Wrap UVs
	u = u - math.Floor(u)
	v = v - math.Floor(v)

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	stride := tex.Stride
	pix := tex.Pix

	// Four texels
	i00 := y0*stride + x0*4
	i10 := y0*stride + x1*4
	i01 := y1*stride + x0*4
	i11 := y1*stride + x1*4

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	var c mathutil.Color
	for k := 0; k < 3; k++ {
		c[k] = srgbToLinear[pix[i00+k]]*w00 + srgbToLinear[pix[i10+k]]*w10 +
			srgbToLinear[pix[i01+k]]*w01 + srgbToLinear[pix[i11+k]]*w11
	}
	return c
}

// Equirect looks up direction dir in a latitude/longitude environment map.
// -Z maps to the horizontal center, +Y to the top row.
func Equirect(tex *image.NRGBA, dir mathutil.Vec3) mathutil.Color {
	d := dir.Normalize()
	u := 0.5 + math.Atan2(d[0], -d[2])/(2*math.Pi)
	v := 0.5 - math.Asin(clamp(d[1], -1, 1))/math.Pi
	// keep the bottom row from wrapping to the top
	if v >= 1 {
		v = math.Nextafter(1, 0)
	}
	return Sample(tex, u, v)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
