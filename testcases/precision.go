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

import "seehuhn.de/go/geom/vec"

var precisionCases = []TestCase{
	// subpixel positioning
	{
		Name:   "subpixel_offset_00",
		Points: offsetRectangle(20, 20, 24, 24, 0.0),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		Convex: true,
	},
	{
		Name:   "subpixel_offset_25",
		Points: offsetRectangle(20, 20, 24, 24, 0.25),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		Convex: true,
	},
	{
		Name:   "subpixel_offset_50",
		Points: offsetRectangle(20, 20, 24, 24, 0.5),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		Convex: true,
	},
	{
		Name:   "subpixel_offset_75",
		Points: offsetRectangle(20, 20, 24, 24, 0.75),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		Convex: true,
	},

	// vertices exactly on pixel centres
	{
		Name:   "vertices_on_centres",
		Points: offsetRectangle(10.5, 10.5, 20, 20, 0),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
		Convex: true,
	},
	{
		Name:   "diamond_on_centres",
		Points: []vec.Vec2{pt(32.5, 4.5), pt(60.5, 32.5), pt(32.5, 60.5), pt(4.5, 32.5)},
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
		Convex: true,
	},

	// large coordinate offsets
	{
		Name:   "large_offset_1e6",
		Points: largeOffsetRectangle(1e6, 1e6, 20),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		Convex: true,
	},
	{
		Name:   "small_at_large_offset",
		Points: largeOffsetRectangle(1e7, 1e7, 0.5),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		Convex: true,
	},
	{
		Name:   "float64_precision",
		Points: float64PrecisionShape(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		Convex: true,
	},
}

// offsetRectangle returns a rectangle with a subpixel offset applied to
// all coordinates.
func offsetRectangle(x1, y1, w, h, offset float64) []vec.Vec2 {
	return rectangle(x1+offset, y1+offset, x1+w+offset, y1+h+offset)
}

// largeOffsetRectangle returns a square computed at large coordinates,
// then translated back to the centre of a 64×64 canvas.
func largeOffsetRectangle(cx, cy, size float64) []vec.Vec2 {
	translateX := 32 - cx
	translateY := 32 - cy

	return rectangle(
		cx-size/2+translateX, cy-size/2+translateY,
		cx+size/2+translateX, cy+size/2+translateY)
}

// float64PrecisionShape returns a shape using coordinates that require
// full float64 precision to represent accurately.
func float64PrecisionShape() []vec.Vec2 {
	base := 32.0
	delta1 := 0.123456789012345
	delta2 := 0.123456789012346

	return rectangle(base-10+delta1, base-10+delta1, base+10+delta2, base+10+delta2)
}
