package raster

import (
	"fmt"

	"raycast-renderer/internal/mathutil"
)

// FrameBuffer holds linear colors as one flat slice for cache locality.
// Row 0 is the top of the image.
type FrameBuffer struct {
	width  int
	height int
	pix    []mathutil.Color // len = W*H
}

// NewFrameBuffer allocates a black w×h buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{}
	fb.Resize(w, h)
	return fb
}

func (fb *FrameBuffer) Width() int  { return fb.width }
func (fb *FrameBuffer) Height() int { return fb.height }

// Resize reallocates the buffer; previous contents are discarded.
func (fb *FrameBuffer) Resize(w, h int) {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("raster: negative size %dx%d", w, h))
	}
	fb.width = w
	fb.height = h
	fb.pix = make([]mathutil.Color, w*h)
}

// Pixel returns the color at column x, row y.
func (fb *FrameBuffer) Pixel(x, y int) mathutil.Color {
	return fb.pix[fb.offset(x, y)]
}

// SetPixel stores c at column x, row y.
func (fb *FrameBuffer) SetPixel(x, y int, c mathutil.Color) {
	fb.pix[fb.offset(x, y)] = c
}

// Fill sets every pixel to c.
func (fb *FrameBuffer) Fill(c mathutil.Color) {
	for i := range fb.pix {
		fb.pix[i] = c
	}
}

func (fb *FrameBuffer) offset(x, y int) int {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		panic(fmt.Sprintf("raster: pixel (%d, %d) outside %dx%d", x, y, fb.width, fb.height))
	}
	return y*fb.width + x
}
