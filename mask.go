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
	"fmt"
	"image"
)

// Selected is the value stored in a [Mask] for a selected pixel.
// Unselected pixels are 0. All functions in this package write only
// these two values.
const Selected byte = 1

// Mask is a row-major selection with one byte per pixel.
type Mask struct {
	Bits   []byte
	Width  int
	Height int
}

// NewMask returns an empty mask of the given size.
func NewMask(width, height int) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Mask{
		Bits:   make([]byte, width*height),
		Width:  width,
		Height: height,
	}, nil
}

// MaskFromBytes copies bits into a new mask. Every non-zero byte is stored
// as [Selected], so masks that use 255 for "set" are accepted.
func MaskFromBytes(bits []byte, width, height int) (*Mask, error) {
	m, err := NewMask(width, height)
	if err != nil {
		return nil, err
	}
	if len(bits) != len(m.Bits) {
		return nil, ErrSizeMismatch
	}
	for i, v := range bits {
		if v != 0 {
			m.Bits[i] = Selected
		}
	}
	return m, nil
}

// OpacityMask selects every pixel of b with non-zero alpha.
func OpacityMask(b *PixelBuffer) (*Mask, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	m, _ := NewMask(b.Width, b.Height)
	for i := range m.Bits {
		if b.Pix[i*4+3] != 0 {
			m.Bits[i] = Selected
		}
	}
	return m, nil
}

// Validate checks that the dimensions are positive and match len(Bits).
func (m *Mask) Validate() error {
	if m == nil || m.Width <= 0 || m.Height <= 0 {
		return ErrInvalidDimensions
	}
	if len(m.Bits) != m.Width*m.Height {
		return ErrSizeMismatch
	}
	return nil
}

func (m *Mask) sameSize(w, h int) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if m.Width != w || m.Height != h {
		return fmt.Errorf("mask is %dx%d, want %dx%d: %w", m.Width, m.Height, w, h, ErrSizeMismatch)
	}
	return nil
}

// Clone returns a deep copy of m.
func (m *Mask) Clone() *Mask {
	bits := make([]byte, len(m.Bits))
	copy(bits, m.Bits)
	return &Mask{Bits: bits, Width: m.Width, Height: m.Height}
}

// At reports whether (x, y) is selected. Coordinates outside the mask are
// unselected.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.Bits[y*m.Width+x] != 0
}

// Set selects or deselects (x, y). Coordinates outside the mask are ignored.
func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	if v {
		m.Bits[y*m.Width+x] = Selected
	} else {
		m.Bits[y*m.Width+x] = 0
	}
}

// Count returns the number of selected pixels.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Bits {
		if v != 0 {
			n++
		}
	}
	return n
}

// Bounds returns the smallest rectangle containing every selected pixel.
// The second result is false if nothing is selected.
func (m *Mask) Bounds() (image.Rectangle, bool) {
	xMin, yMin := m.Width, m.Height
	xMax, yMax := -1, -1
	for y := range m.Height {
		row := m.Bits[y*m.Width : (y+1)*m.Width]
		for x, v := range row {
			if v == 0 {
				continue
			}
			xMin = min(xMin, x)
			xMax = max(xMax, x)
			yMin = min(yMin, y)
			yMax = y
		}
	}
	if xMax < 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(xMin, yMin, xMax+1, yMax+1), true
}

// Invert toggles every pixel.
func (m *Mask) Invert() {
	for i, v := range m.Bits {
		if v != 0 {
			m.Bits[i] = 0
		} else {
			m.Bits[i] = Selected
		}
	}
}

// Clear deselects every pixel.
func (m *Mask) Clear() {
	clear(m.Bits)
}

// FillRect selects the w × h rectangle with top-left corner (x, y).
// The rectangle is clamped to the mask; negative sizes select nothing.
func (m *Mask) FillRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, m.Width, m.Height))
	for yy := r.Min.Y; yy < r.Max.Y; yy++ {
		row := m.Bits[yy*m.Width+r.Min.X : yy*m.Width+r.Max.X]
		for i := range row {
			row[i] = Selected
		}
	}
}

// Image returns m as a grayscale image with selected pixels black and
// unselected pixels white, the convention used by bitmap tracers.
func (m *Mask) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for i, v := range m.Bits {
		if v == 0 {
			img.Pix[i] = 255
		}
	}
	return img
}

// CombineOp selects how [Combine] merges two masks.
type CombineOp int

const (
	// CombineReplace returns the overlay unchanged.
	CombineReplace CombineOp = iota
	// CombineAdd returns the union of both masks.
	CombineAdd
	// CombineSubtract removes the overlay from the base.
	CombineSubtract
)

func (op CombineOp) String() string {
	switch op {
	case CombineReplace:
		return "replace"
	case CombineAdd:
		return "add"
	case CombineSubtract:
		return "subtract"
	}
	return fmt.Sprintf("CombineOp(%d)", int(op))
}

// ParseCombineOp converts "replace", "add" or "subtract" to a [CombineOp].
func ParseCombineOp(s string) (CombineOp, error) {
	switch s {
	case "replace":
		return CombineReplace, nil
	case "add":
		return CombineAdd, nil
	case "subtract":
		return CombineSubtract, nil
	}
	return 0, fmt.Errorf("selection: unknown combine op %q", s)
}

// Combine merges overlay into base and returns a new mask. Both masks must
// have the same size. For [CombineReplace] base is only size-checked.
func Combine(base, overlay *Mask, op CombineOp) (*Mask, error) {
	if err := overlay.Validate(); err != nil {
		return nil, err
	}
	if err := base.sameSize(overlay.Width, overlay.Height); err != nil {
		return nil, err
	}

	res := &Mask{Bits: make([]byte, len(base.Bits)), Width: base.Width, Height: base.Height}
	switch op {
	case CombineReplace:
		for i, o := range overlay.Bits {
			res.Bits[i] = norm(o)
		}
	case CombineAdd:
		for i, o := range overlay.Bits {
			res.Bits[i] = norm(base.Bits[i] | o)
		}
	case CombineSubtract:
		for i, o := range overlay.Bits {
			if o == 0 {
				res.Bits[i] = norm(base.Bits[i])
			}
		}
	default:
		return nil, fmt.Errorf("selection: unknown combine op %d", int(op))
	}
	return res, nil
}

func norm(v byte) byte {
	if v != 0 {
		return Selected
	}
	return 0
}

// Translate returns a new mask of the same size with every selected pixel
// (x, y) moved to (x+dx, y+dy). Pixels moved outside the mask are dropped.
func Translate(m *Mask, dx, dy int) (*Mask, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	res := &Mask{Bits: make([]byte, len(m.Bits)), Width: m.Width, Height: m.Height}
	if dx >= m.Width || dx <= -m.Width || dy >= m.Height || dy <= -m.Height {
		return res, nil
	}

	// rows and columns whose destination is inside the mask
	x0, x1 := max(0, -dx), min(m.Width, m.Width-dx)
	y0, y1 := max(0, -dy), min(m.Height, m.Height-dy)
	for y := y0; y < y1; y++ {
		src := m.Bits[y*m.Width : (y+1)*m.Width]
		dst := res.Bits[(y+dy)*m.Width : (y+dy+1)*m.Width]
		for x := x0; x < x1; x++ {
			if src[x] != 0 {
				dst[x+dx] = Selected
			}
		}
	}
	return res, nil
}

// Trim copies the part of m inside box into a new mask of size
// box.Dx() × box.Dy(). The box must be non-empty and lie within m.
func Trim(m *Mask, box image.Rectangle) (*Mask, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if box.Empty() || !box.In(image.Rect(0, 0, m.Width, m.Height)) {
		Logger().Debug("trim box rejected", "box", box, "width", m.Width, "height", m.Height)
		return nil, ErrBoxOutOfBounds
	}
	res, _ := NewMask(box.Dx(), box.Dy())
	for y := box.Min.Y; y < box.Max.Y; y++ {
		src := m.Bits[y*m.Width+box.Min.X : y*m.Width+box.Max.X]
		dst := res.Bits[(y-box.Min.Y)*res.Width : (y-box.Min.Y+1)*res.Width]
		for i, v := range src {
			dst[i] = norm(v)
		}
	}
	return res, nil
}
