// seehuhn.de/go/selection - raster selection masks
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package selection

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// PixelBuffer is a row-major RGBA image with 4 bytes per pixel and no
// row padding. Colours are straight (not premultiplied) alpha.
type PixelBuffer struct {
	Pix    []byte
	Width  int
	Height int
}

// NewPixelBuffer returns a fully transparent buffer of the given size.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &PixelBuffer{
		Pix:    make([]byte, width*height*4),
		Width:  width,
		Height: height,
	}, nil
}

// NewPixelBufferFrom wraps existing pixel data without copying.
func NewPixelBufferFrom(pix []byte, width, height int) (*PixelBuffer, error) {
	b := &PixelBuffer{Pix: pix, Width: width, Height: height}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// FromImage copies img into a new buffer. The result covers img.Bounds(),
// translated so that the top-left pixel is at (0, 0).
func FromImage(img image.Image) (*PixelBuffer, error) {
	r := img.Bounds()
	b, err := NewPixelBuffer(r.Dx(), r.Dy())
	if err != nil {
		return nil, err
	}
	dst := &image.NRGBA{Pix: b.Pix, Stride: 4 * b.Width, Rect: image.Rect(0, 0, b.Width, b.Height)}
	draw.Draw(dst, dst.Rect, img, r.Min, draw.Src)
	return b, nil
}

// Validate checks that the dimensions are positive and match len(Pix).
func (b *PixelBuffer) Validate() error {
	if b == nil || b.Width <= 0 || b.Height <= 0 {
		return ErrInvalidDimensions
	}
	if len(b.Pix) != b.Width*b.Height*4 {
		return ErrSizeMismatch
	}
	return nil
}

// Image returns an [image.NRGBA] sharing memory with b.
func (b *PixelBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: 4 * b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// Clone returns a deep copy of b.
func (b *PixelBuffer) Clone() *PixelBuffer {
	pix := make([]byte, len(b.Pix))
	copy(pix, b.Pix)
	return &PixelBuffer{Pix: pix, Width: b.Width, Height: b.Height}
}

// In reports whether (x, y) lies inside the buffer.
func (b *PixelBuffer) In(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// At returns the colour at (x, y), or transparent black outside the buffer.
func (b *PixelBuffer) At(x, y int) color.RGBA {
	if !b.In(x, y) {
		return color.RGBA{}
	}
	i := (y*b.Width + x) * 4
	p := b.Pix[i : i+4 : i+4]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Set stores c at (x, y). Coordinates outside the buffer are ignored.
func (b *PixelBuffer) Set(x, y int, c color.RGBA) {
	if !b.In(x, y) {
		return
	}
	b.setIndex(y*b.Width+x, c)
}

func (b *PixelBuffer) at(idx int) color.RGBA {
	p := b.Pix[idx*4 : idx*4+4 : idx*4+4]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

func (b *PixelBuffer) setIndex(idx int, c color.RGBA) {
	p := b.Pix[idx*4 : idx*4+4 : idx*4+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// ExtractTile copies the rectangle r of b into a new buffer of size
// r.Dx() × r.Dy(). Parts of r outside b are transparent. An empty r
// returns [ErrBoxOutOfBounds].
//
// Large buffers can be processed tile by tile: extract, operate, and
// [Patch] the result back.
func ExtractTile(b *PixelBuffer, r image.Rectangle) (*PixelBuffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if r.Empty() {
		return nil, ErrBoxOutOfBounds
	}
	tile, err := NewPixelBuffer(r.Dx(), r.Dy())
	if err != nil {
		return nil, err
	}
	src := r.Intersect(image.Rect(0, 0, b.Width, b.Height))
	for y := src.Min.Y; y < src.Max.Y; y++ {
		from := (y*b.Width + src.Min.X) * 4
		to := ((y-r.Min.Y)*tile.Width + src.Min.X - r.Min.X) * 4
		copy(tile.Pix[to:to+src.Dx()*4], b.Pix[from:from+src.Dx()*4])
	}
	return tile, nil
}

// FlipVertical reverses the row order of b in place. Pixel data read back
// from a bottom-up framebuffer needs this before it can be used as a
// top-down buffer.
func FlipVertical(b *PixelBuffer) error {
	if err := b.Validate(); err != nil {
		return err
	}
	stride := b.Width * 4
	tmp := make([]byte, stride)
	for top, bot := 0, b.Height-1; top < bot; top, bot = top+1, bot-1 {
		rt := b.Pix[top*stride : (top+1)*stride]
		rb := b.Pix[bot*stride : (bot+1)*stride]
		copy(tmp, rt)
		copy(rt, rb)
		copy(rb, tmp)
	}
	return nil
}
