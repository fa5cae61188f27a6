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

import "seehuhn.de/go/geom/matrix"

var ctmCases = []TestCase{
	// uniform scaling
	{
		Name:   "scale_2x",
		Points: rectangle(0, 0, 20, 20),
		Width:  128,
		Height: 128,
		Rule:   NonZero,
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
		Convex: true,
	},
	{
		Name:   "scale_half",
		Points: rectangle(0, 0, 80, 80),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.Scale(0.5, 0.5).Translate(12, 12),
		Convex: true,
	},

	// rotation
	{
		Name:   "rotate_45deg",
		Points: rectangle(-10, -10, 10, 10),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
		Convex: true,
	},
	{
		Name:   "rotate_5deg",
		Points: rectangle(-20, -10, 20, 10),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
		CTM:    matrix.RotateDeg(5).Translate(32, 32),
		Convex: true,
	},

	// non-uniform scaling
	{
		Name:   "scale_2x_1y",
		Points: regularPolygon(0, 0, 15, 12),
		Width:  128,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.Scale(2, 1).Translate(64, 32),
		Convex: true,
	},

	// shear
	{
		Name:   "shear_horizontal",
		Points: rectangle(-15, -15, 15, 15),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
		Convex: true,
	},
	{
		Name:   "shear_and_rotate",
		Points: fivePointStar(0, 0, 20),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
		CTM:    matrix.Matrix{1, 0, 0.3, 1, 0, 0}.RotateDeg(30).Translate(32, 32),
	},

	// a y-flip reverses the orientation of the polygon
	{
		Name:   "flip_y",
		Points: triangle(-20, -15, 0, 15, 20, -15),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.Matrix{1, 0, 0, -1, 32, 32},
		Convex: true,
	},
}
