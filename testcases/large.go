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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// largeCases contains polygons whose bounding boxes are large enough for
// the lasso to use its active edge list.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Points: rectangle(50, 50, 462, 462),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
		Convex: true,
	},
	{
		Name:   "large_diamond",
		Points: diamond(256, 256, 180),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
		Convex: true,
	},
	{
		Name:   "large_comb_evenodd",
		Points: comb(16, 16, 480, 480, 12),
		Width:  512,
		Height: 512,
		Rule:   EvenOdd,
	},
	{
		Name:   "large_spiral_nonzero",
		Points: spiralPolygon(256, 256, 20, 240, 3, 240),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},

	// extends outside the mask on both sides
	{
		Name:   "large_clipped",
		Points: rectangle(-100, 100, 612, 400),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
		Convex: true,
	},
}

// diamond returns a square rotated by 45 degrees.
func diamond(cx, cy, r float64) []vec.Vec2 {
	return []vec.Vec2{pt(cx, cy-r), pt(cx+r, cy), pt(cx, cy+r), pt(cx-r, cy)}
}

// comb returns a comb shape with n teeth pointing down.
func comb(x1, y1, x2, y2 float64, n int) []vec.Vec2 {
	spine := y1 + (y2-y1)/8
	toothW := (x2 - x1) / float64(2*n-1)

	pts := []vec.Vec2{pt(x1, y1), pt(x2, y1)}
	for i := n - 1; i >= 0; i-- {
		left := x1 + float64(2*i)*toothW
		pts = append(pts,
			pt(left+toothW, y2),
			pt(left, y2))
		if i > 0 {
			pts = append(pts,
				pt(left, spine),
				pt(left-toothW, spine))
		}
	}
	return pts
}

// spiralPolygon returns the points of a spiral, traced outwards and closed
// by a straight line back to the start. The polygon overlaps itself.
func spiralPolygon(cx, cy, rMin, rMax, turns float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range n {
		t := float64(i) / float64(n-1)
		angle := t * turns * 2 * math.Pi
		r := rMin + t*(rMax-rMin)
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return pts
}
