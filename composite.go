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
	"image/color"
)

// Over composites src over dst using straight (non-premultiplied) alpha.
func Over(dst, src color.RGBA) color.RGBA {
	sa := int(src.A)
	if sa == 255 {
		return src
	}
	if sa == 0 {
		return dst
	}
	da := int(dst.A) * (255 - sa) // scaled by 255
	oa := sa*255 + da             // scaled by 255
	if oa == 0 {
		return color.RGBA{}
	}
	blend := func(s, d uint8) uint8 {
		return uint8((int(s)*sa*255 + int(d)*da + oa/2) / oa)
	}
	return color.RGBA{
		R: blend(src.R, dst.R),
		G: blend(src.G, dst.G),
		B: blend(src.B, dst.B),
		A: uint8((oa + 127) / 255),
	}
}

// Patch returns a copy of target with patch composited over it, the
// top-left corner of patch placed at off. Transparent patch pixels and
// pixels falling outside target are skipped.
func Patch(target, patch *PixelBuffer, off image.Point) (*PixelBuffer, error) {
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("patch: %w", err)
	}
	out := target.Clone()
	patchInto(out, patch, off)
	return out, nil
}

func patchInto(dst, patch *PixelBuffer, off image.Point) {
	r := image.Rect(0, 0, patch.Width, patch.Height).Add(off).
		Intersect(image.Rect(0, 0, dst.Width, dst.Height))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			src := patch.at((y-off.Y)*patch.Width + x - off.X)
			if src.A == 0 {
				continue
			}
			idx := y*dst.Width + x
			dst.setIndex(idx, Over(dst.at(idx), src))
		}
	}
}

// Crop returns a copy of src in which every pixel under the selection is
// transparent. Mask cell (x, y) covers source pixel (x+off.X, y+off.Y).
func Crop(src *PixelBuffer, mask *Mask, off image.Point) (*PixelBuffer, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if err := mask.Validate(); err != nil {
		return nil, err
	}
	out := src.Clone()
	forMasked(out, mask, off, func(srcIdx, _ int) {
		out.setIndex(srcIdx, color.RGBA{})
	})
	return out, nil
}

// Slice returns a mask-sized buffer holding the selected pixels of src.
// Mask cell (x, y) is taken from source pixel (x+off.X, y+off.Y); cells
// which are unselected or fall outside src are transparent.
func Slice(src *PixelBuffer, mask *Mask, off image.Point) (*PixelBuffer, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if err := mask.Validate(); err != nil {
		return nil, err
	}
	out, err := NewPixelBuffer(mask.Width, mask.Height)
	if err != nil {
		return nil, err
	}
	forMasked(src, mask, off, func(srcIdx, maskIdx int) {
		out.setIndex(maskIdx, src.at(srcIdx))
	})
	return out, nil
}

// forMasked calls fn for every selected mask cell whose source pixel lies
// inside b.
func forMasked(b *PixelBuffer, mask *Mask, off image.Point, fn func(srcIdx, maskIdx int)) {
	r := image.Rect(0, 0, mask.Width, mask.Height).
		Intersect(image.Rect(0, 0, b.Width, b.Height).Sub(off))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			maskIdx := y*mask.Width + x
			if mask.Bits[maskIdx] == 0 {
				continue
			}
			fn((y+off.Y)*b.Width+x+off.X, maskIdx)
		}
	}
}

// ApplySelectionFilter returns a copy of b in which the pixels excluded
// by mode are transparent: LimitInside clears everything outside the
// selection, LimitOutside clears the selection itself, and LimitNone
// leaves the pixels unchanged.
func ApplySelectionFilter(b *PixelBuffer, mask *Mask, mode LimitMode) (*PixelBuffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := checkLimit(mask, mode, b.Width, b.Height); err != nil {
		return nil, err
	}
	out := b.Clone()
	for idx := range b.Width * b.Height {
		if !allowed(mask, mode, idx) {
			out.setIndex(idx, color.RGBA{})
		}
	}
	return out, nil
}

// CompositeOverlay returns a copy of base in which every non-transparent
// overlay pixel permitted by mode replaces the base pixel. Base and
// overlay must have the same size.
func CompositeOverlay(base, overlay *PixelBuffer, mask *Mask, mode LimitMode) (*PixelBuffer, error) {
	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("base: %w", err)
	}
	if err := overlay.Validate(); err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}
	if overlay.Width != base.Width || overlay.Height != base.Height {
		return nil, fmt.Errorf("overlay %dx%d, base %dx%d: %w",
			overlay.Width, overlay.Height, base.Width, base.Height, ErrSizeMismatch)
	}
	if err := checkLimit(mask, mode, base.Width, base.Height); err != nil {
		return nil, err
	}
	out := base.Clone()
	written := 0
	for idx := range base.Width * base.Height {
		c := overlay.at(idx)
		if c.A == 0 || !allowed(mask, mode, idx) {
			continue
		}
		out.setIndex(idx, c)
		written++
	}
	Logger().Debug("composite overlay", "mode", mode, "pixels", written)
	return out, nil
}

// MoveSelection lifts the selected pixels out of b, leaves transparency
// behind, and composites them back shifted by (dx, dy). The mask must
// have the same size as b. Pixels moved outside b are lost.
func MoveSelection(b *PixelBuffer, mask *Mask, dx, dy int) (*PixelBuffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := mask.sameSize(b.Width, b.Height); err != nil {
		return nil, err
	}
	lifted, err := Slice(b, mask, image.Point{})
	if err != nil {
		return nil, err
	}
	out, err := Crop(b, mask, image.Point{})
	if err != nil {
		return nil, err
	}
	patchInto(out, lifted, image.Pt(dx, dy))
	Logger().Debug("move selection", "dx", dx, "dy", dy)
	return out, nil
}
