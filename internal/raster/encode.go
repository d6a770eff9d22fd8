package raster

import (
	"image"
	"math"
)

// ToneConfig controls conversion from linear color to 8-bit sRGB.
type ToneConfig struct {
	Exposure float64
	ACES     bool // apply ACES filmic tone mapping before gamma
	Gamma    float64
}

// DefaultToneConfig writes colors as-is with a 2.2 gamma.
func DefaultToneConfig() ToneConfig {
	return ToneConfig{Exposure: 1, Gamma: 2.2}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

// ToNRGBA encodes the buffer as an opaque NRGBA image.
// NaN channels are written as 0.
func (fb *FrameBuffer) ToNRGBA(tc ToneConfig) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.width, fb.height))

	exposure := tc.Exposure
	if exposure <= 0 {
		exposure = 1
	}
	invGamma := 1.0
	if tc.Gamma > 0 {
		invGamma = 1.0 / tc.Gamma
	}

	for i, c := range fb.pix {
		pxIdx := i * 4
		for k := 0; k < 3; k++ {
			v := c[k] * exposure
			if tc.ACES {
				v = ACESTonemap(v)
			}
			if v > 0 {
				v = math.Pow(v, invGamma)
			}
			img.Pix[pxIdx+k] = clamp255(v * 255)
		}
		img.Pix[pxIdx+3] = 255
	}
	return img
}

func clamp255(v float64) uint8 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
