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
	"image/color"
)

// FloodFill paints the 4-connected region of pixels matching the colour at
// (x, y) with c. Pixels match when [Match] reports true against the seed
// colour with the given threshold. A threshold of 255 paints the whole
// buffer.
//
// Filling a region with its own colour leaves the buffer unchanged.
func FloodFill(b *PixelBuffer, x, y int, c color.RGBA, threshold uint8) error {
	return FloodFillLimited(b, x, y, c, threshold, nil, LimitNone)
}

// FloodFillLimited is like [FloodFill], but the region is restricted by
// limit and mode: with [LimitInside] only selected pixels of limit are
// painted, with [LimitOutside] only unselected ones. The seed itself must
// satisfy the restriction, otherwise [ErrSeedNotAllowed] is returned and b
// is left unchanged.
func FloodFillLimited(b *PixelBuffer, x, y int, c color.RGBA, threshold uint8, limit *Mask, mode LimitMode) error {
	region, err := growRegion(b, x, y, threshold, limit, mode)
	if err != nil {
		return err
	}
	n := 0
	for idx, v := range region.Bits {
		if v != 0 {
			b.setIndex(idx, c)
			n++
		}
	}
	Logger().Debug("flood fill", "x", x, "y", y, "threshold", threshold, "mode", mode, "pixels", n)
	return nil
}

// regionGrower holds the state of one span fill. The region mask doubles
// as the visited set: a pixel is only ever added once.
type regionGrower struct {
	buf       *PixelBuffer
	limit     *Mask
	mode      LimitMode
	target    color.RGBA
	threshold uint8
	region    *Mask
	stack     []int // flat pixel indices still to be expanded
}

// open reports whether pixel idx belongs to the region but has not been
// added yet.
func (g *regionGrower) open(idx int) bool {
	return g.region.Bits[idx] == 0 &&
		allowed(g.limit, g.mode, idx) &&
		Match(g.buf.at(idx), g.target, g.threshold)
}

func growRegion(b *PixelBuffer, x, y int, threshold uint8, limit *Mask, mode LimitMode) (*Mask, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if !b.In(x, y) {
		Logger().Debug("fill seed rejected", "x", x, "y", y, "width", b.Width, "height", b.Height)
		return nil, fmt.Errorf("seed (%d,%d): %w", x, y, ErrSeedOutOfBounds)
	}
	if err := checkLimit(limit, mode, b.Width, b.Height); err != nil {
		return nil, err
	}
	w := b.Width
	if !allowed(limit, mode, y*w+x) {
		Logger().Debug("fill seed rejected", "x", x, "y", y, "mode", mode)
		return nil, fmt.Errorf("seed (%d,%d) with mode %s: %w", x, y, mode, ErrSeedNotAllowed)
	}

	region, _ := NewMask(w, b.Height)
	if threshold == 255 {
		for idx := range region.Bits {
			if allowed(limit, mode, idx) {
				region.Bits[idx] = Selected
			}
		}
		return region, nil
	}

	g := &regionGrower{
		buf:       b,
		limit:     limit,
		mode:      mode,
		target:    b.at(y*w + x),
		threshold: threshold,
		region:    region,
	}
	g.stack = append(g.stack, y*w+x)
	for len(g.stack) > 0 {
		idx := g.stack[len(g.stack)-1]
		g.stack = g.stack[:len(g.stack)-1]
		if !g.open(idx) {
			continue
		}

		py, px := idx/w, idx%w
		row := py * w
		left, right := px, px
		for left > 0 && g.open(row+left-1) {
			left--
		}
		for right < w-1 && g.open(row+right+1) {
			right++
		}
		for i := left; i <= right; i++ {
			region.Bits[row+i] = Selected
		}

		if py > 0 {
			g.pushRuns(row-w, left, right)
		}
		if py < b.Height-1 {
			g.pushRuns(row+w, left, right)
		}
	}
	return region, nil
}

// pushRuns pushes one seed for every run of open pixels in columns
// [left, right] of the row starting at index row.
func (g *regionGrower) pushRuns(row, left, right int) {
	inRun := false
	for x := left; x <= right; x++ {
		if g.open(row + x) {
			if !inRun {
				g.stack = append(g.stack, row+x)
				inRun = true
			}
		} else {
			inRun = false
		}
	}
}
