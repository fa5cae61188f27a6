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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single lasso polygon test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Points []vec.Vec2    // polygon vertices, implicitly closed
	Width  int           // mask width in pixels
	Height int           // mask height in pixels
	Rule   FillRule      // fill rule
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)
	Convex bool          // the polygon is simple and convex
}

// PathCase defines a test which fills a path with curves or several
// subpaths.
type PathCase struct {
	Name   string
	Path   *path.Data
	Width  int
	Height int
	Rule   FillRule
	CTM    matrix.Matrix // zero-value means no transform
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier curve.
const kappa = 0.5522847498307936

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// rectangle returns the corners of an axis-aligned rectangle, clockwise
// on screen.
func rectangle(x1, y1, x2, y2 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}
}

// regularPolygon returns n points on a circle, starting at the top.
func regularPolygon(cx, cy, r float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return pts
}
