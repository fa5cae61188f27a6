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

// degenerateCases contains polygons which select few or no pixels.
var degenerateCases = []TestCase{
	{
		Name:   "collinear",
		Points: []vec.Vec2{pt(5, 5), pt(20, 20), pt(40, 40)},
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "horizontal_line",
		Points: []vec.Vec2{pt(5, 10.5), pt(50, 10.5), pt(30, 10.5)},
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "repeated_point",
		Points: []vec.Vec2{pt(12, 12), pt(12, 12), pt(12, 12)},
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "between_centres",
		Points: rectangle(10.6, 10.6, 11.4, 11.4),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		Convex: true,
	},
	{
		Name:   "single_pixel",
		Points: rectangle(10, 10, 11, 11),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		Convex: true,
	},
	{
		Name:   "outside_left",
		Points: rectangle(-40, 10, -5, 30),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		Convex: true,
	},
	{
		Name:   "outside_below",
		Points: triangle(10, 70, 30, 100, 50, 70),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
		Convex: true,
	},
	{
		Name:   "covers_everything",
		Points: rectangle(-1000, -1000, 1000, 1000),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
		Convex: true,
	},
}
