package renderer

import (
	"image"
	"image/color"
)

// PixelBuffer holds one rendered frame as RGBA8, row-major.
// Row 0 is the top of the image.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte // len(Pix) == Width*Height*4
}

// NewPixelBuffer allocates a zeroed buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// Stride returns the number of bytes per row
func (b *PixelBuffer) Stride() int {
	return b.Width * 4
}

// At returns the pixel at (x, y)
func (b *PixelBuffer) At(x, y int) color.RGBA {
	i := y*b.Stride() + x*4
	return color.RGBA{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: b.Pix[i+3]}
}

// Set writes the pixel at (x, y)
func (b *PixelBuffer) Set(x, y int, c color.RGBA) {
	i := y*b.Stride() + x*4
	b.Pix[i] = c.R
	b.Pix[i+1] = c.G
	b.Pix[i+2] = c.B
	b.Pix[i+3] = c.A
}

// Bounds returns the full frame rectangle
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// Image exposes the buffer as an *image.RGBA sharing the same memory
func (b *PixelBuffer) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    b.Pix,
		Stride: b.Stride(),
		Rect:   b.Bounds(),
	}
}
