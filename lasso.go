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
	"cmp"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FillRule determines which points a self-overlapping polygon covers.
type FillRule int

const (
	// NonZero fills points with a non-zero winding number.
	NonZero FillRule = iota
	// EvenOdd fills points enclosed an odd number of times.
	EvenOdd
)

// Fills reports whether a point with the given winding number (for
// NonZero) or crossing count (for EvenOdd) is inside.
func (r FillRule) Fills(windings int) bool {
	switch r {
	case NonZero:
		return windings != 0
	case EvenOdd:
		return windings%2 != 0
	}
	return false
}

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	}
	return fmt.Sprintf("FillRule(%d)", int(r))
}

// ParseFillRule converts "nonzero" or "evenodd" to a [FillRule].
func ParseFillRule(s string) (FillRule, error) {
	switch s {
	case "nonzero":
		return NonZero, nil
	case "evenodd":
		return EvenOdd, nil
	}
	return 0, fmt.Errorf("selection: unknown fill rule %q", s)
}

// Polygon is a closed polygon; the last vertex connects to the first.
type Polygon []vec.Vec2

// PolygonFromFloats converts a flat coordinate list x0, y0, x1, y1, ...
// into a polygon.
func PolygonFromFloats(coords []float32) (Polygon, error) {
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("%d coordinates: %w", len(coords), ErrInvalidPolygon)
	}
	if len(coords) < 6 {
		return nil, ErrTooFewPoints
	}
	poly := make(Polygon, len(coords)/2)
	for i := range poly {
		poly[i] = vec.Vec2{X: float64(coords[2*i]), Y: float64(coords[2*i+1])}
	}
	return poly, nil
}

// edge represents a polygon edge in pixel coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
	dir    int     // +1 for downward edges (y1 > y0), -1 for upward edges
}

// crosses reports whether the horizontal line at y meets e. The test is
// half-open so that a vertex shared by two edges is counted once.
func (e *edge) crosses(y float64) bool {
	return (e.y0 <= y && y < e.y1) || (e.y1 <= y && y < e.y0)
}

// xAt returns the x-coordinate where e meets the horizontal line at y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + (y-e.y0)*e.dxdy
}

// crossing is an intersection of a scanline with an edge.
type crossing struct {
	x   float64
	dir int
}

// Lasso converts polygons into selection masks. A pixel (x, y) is
// selected when its centre (x+0.5, y+0.5) lies inside the polygon under
// the chosen fill rule.
//
// The caller creates one instance and reuses it for multiple polygons.
// Internal buffers grow as needed but never shrink. A Lasso is not safe
// for concurrent use.
type Lasso struct {
	// CTM maps polygon coordinates to pixel coordinates, for example to
	// undo the zoom and pan of the view in which a lasso was drawn.
	// Must be a non-singular matrix.
	CTM matrix.Matrix

	// Flatness is the curve flattening tolerance in pixels, used by
	// FillPath. Must be > 0.
	Flatness float64

	// smallPolygonThreshold is the maximum bounding box area (in pixels)
	// for testing every pixel against every edge. Larger polygons use
	// the active edge list.
	smallPolygonThreshold int

	edges     []edge
	activeIdx []int
	crossings []crossing

	// Edge collection state (used by addEdge)
	edgeBBoxFirst bool
	edgeBBox      rect.Rect
	badCoords     bool
}

// NewLasso returns a Lasso with identity CTM and default flatness.
func NewLasso() *Lasso {
	return &Lasso{
		CTM:                   matrix.Identity,
		Flatness:              defaultFlatness,
		smallPolygonThreshold: smallPolygonThreshold,
	}
}

// Reset restores the default CTM and flatness, preserving internal buffer
// capacity for reuse.
func (l *Lasso) Reset() {
	l.CTM = matrix.Identity
	l.Flatness = defaultFlatness

	l.edges = l.edges[:0]
	l.activeIdx = l.activeIdx[:0]
	l.crossings = l.crossings[:0]
}

// RasterizePolygon selects the pixels of m inside the polygon given as a
// flat coordinate list x0, y0, x1, y1, ...
func RasterizePolygon(m *Mask, coords []float32, rule FillRule) error {
	poly, err := PolygonFromFloats(coords)
	if err != nil {
		return err
	}
	return NewLasso().Fill(m, poly, rule)
}

// Fill selects the pixels of m inside poly. Pixels already selected stay
// selected. A polygon with zero area selects nothing.
func (l *Lasso) Fill(m *Mask, poly Polygon, rule FillRule) error {
	return l.FillLimited(m, poly, rule, nil, LimitNone)
}

// FillLimited is like Fill, but only selects pixels permitted by existing
// and mode.
func (l *Lasso) FillLimited(m *Mask, poly Polygon, rule FillRule, existing *Mask, mode LimitMode) error {
	xMin, xMax, yMin, yMax, err := l.prepare(m, poly, existing, mode)
	if err != nil || xMin >= xMax || yMin >= yMax {
		return err
	}

	if (xMax-xMin)*(yMax-yMin) < l.smallPolygonThreshold {
		l.fillPointTest(m, xMin, xMax, yMin, yMax, rule, existing, mode)
	} else {
		l.fillScanlines(m, xMin, xMax, yMin, yMax, rule, existing, mode)
	}
	return nil
}

// FillPointInPolygon selects the pixels of m inside poly by testing every
// pixel centre in the bounding box against every edge. The result is
// identical to Fill.
func (l *Lasso) FillPointInPolygon(m *Mask, poly Polygon, rule FillRule) error {
	xMin, xMax, yMin, yMax, err := l.prepare(m, poly, nil, LimitNone)
	if err != nil || xMin >= xMax || yMin >= yMax {
		return err
	}
	l.fillPointTest(m, xMin, xMax, yMin, yMax, rule, nil, LimitNone)
	return nil
}

// FillPath selects the pixels of m inside p. Every subpath is closed
// implicitly; curves are flattened using Flatness.
func (l *Lasso) FillPath(m *Mask, p *path.Data, rule FillRule) error {
	if err := m.Validate(); err != nil {
		return err
	}
	l.collectPathEdges(p)
	if l.badCoords {
		return ErrInvalidPolygon
	}
	xMin, xMax, yMin, yMax, ok := l.pixelRange(m)
	if !ok {
		return nil
	}
	l.fillScanlines(m, xMin, xMax, yMin, yMax, rule, nil, LimitNone)
	return nil
}

// prepare validates the arguments, builds the edge list, and returns the
// range of pixels whose centres may lie inside the polygon.
func (l *Lasso) prepare(m *Mask, poly Polygon, existing *Mask, mode LimitMode) (xMin, xMax, yMin, yMax int, err error) {
	if err := m.Validate(); err != nil {
		return 0, 0, 0, 0, err
	}
	if len(poly) < 3 {
		Logger().Debug("lasso rejected", "points", len(poly))
		return 0, 0, 0, 0, ErrTooFewPoints
	}
	if err := checkLimit(existing, mode, m.Width, m.Height); err != nil {
		return 0, 0, 0, 0, err
	}

	l.collectPolygonEdges(poly)
	if l.badCoords {
		Logger().Debug("lasso rejected", "reason", "non-finite coordinates")
		return 0, 0, 0, 0, ErrInvalidPolygon
	}
	xMin, xMax, yMin, yMax, _ = l.pixelRange(m)
	return xMin, xMax, yMin, yMax, nil
}

// pixelRange converts the edge bounding box into the half-open range of
// pixels whose centres lie inside it, clipped to the mask.
func (l *Lasso) pixelRange(m *Mask) (xMin, xMax, yMin, yMax int, ok bool) {
	if len(l.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	b := l.edgeBBox
	xMin = centreIndex(b.LLx, m.Width)
	xMax = centreIndex(b.URx, m.Width)
	yMin = centreIndex(b.LLy, m.Height)
	yMax = centreIndex(b.URy, m.Height)
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// centreIndex returns the smallest pixel index i with i+0.5 >= v, clamped
// to [0, n].
func centreIndex(v float64, n int) int {
	c := math.Ceil(v - 0.5)
	if c <= 0 {
		return 0
	}
	if c >= float64(n) {
		return n
	}
	return int(c)
}

// collectPolygonEdges builds the edge list for a closed polygon.
func (l *Lasso) collectPolygonEdges(poly Polygon) {
	l.edges = l.edges[:0]
	l.edgeBBoxFirst = true
	l.badCoords = false

	for i, p := range poly {
		l.addEdge(p, poly[(i+1)%len(poly)])
	}
}

// collectPathEdges walks the path, transforms to pixel space, and builds
// the edge list. Open subpaths are closed.
func (l *Lasso) collectPathEdges(p *path.Data) {
	l.edges = l.edges[:0]
	l.edgeBBoxFirst = true
	l.badCoords = false

	var current vec.Vec2 // current point (user space)
	var subpath vec.Vec2 // subpath start (user space)
	open := false

	closeSubpath := func() {
		if open && current != subpath {
			l.addEdge(current, subpath)
		}
		current = subpath
		open = false
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			closeSubpath()
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			l.addEdge(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			open = true
			coordIdx++

		case path.CmdQuadTo:
			l.flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], l.addEdge)
			current = p.Coords[coordIdx+1]
			open = true
			coordIdx += 2

		case path.CmdCubeTo:
			l.flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2], l.addEdge)
			current = p.Coords[coordIdx+2]
			open = true
			coordIdx += 3

		case path.CmdClose:
			closeSubpath()
		}
	}
	closeSubpath()
}

// addEdge adds an edge from user space coordinates, transforming to pixel
// space. Horizontal edges never meet a scanline and are dropped.
func (l *Lasso) addEdge(p0, p1 vec.Vec2) {
	dx0 := l.CTM[0]*p0.X + l.CTM[2]*p0.Y + l.CTM[4]
	dy0 := l.CTM[1]*p0.X + l.CTM[3]*p0.Y + l.CTM[5]
	dx1 := l.CTM[0]*p1.X + l.CTM[2]*p1.Y + l.CTM[4]
	dy1 := l.CTM[1]*p1.X + l.CTM[3]*p1.Y + l.CTM[5]

	if !finite(dx0) || !finite(dy0) || !finite(dx1) || !finite(dy1) {
		l.badCoords = true
		return
	}

	dy := dy1 - dy0
	if dy == 0 {
		return
	}

	dir := 1
	if dy < 0 {
		dir = -1
	}
	l.edges = append(l.edges, edge{
		x0: dx0, y0: dy0,
		x1: dx1, y1: dy1,
		dxdy: (dx1 - dx0) / dy,
		dir:  dir,
	})

	if l.edgeBBoxFirst {
		l.edgeBBox = rect.Rect{
			LLx: min(dx0, dx1), LLy: min(dy0, dy1),
			URx: max(dx0, dx1), URy: max(dy0, dy1),
		}
		l.edgeBBoxFirst = false
	} else {
		l.edgeBBox.LLx = min(l.edgeBBox.LLx, dx0, dx1)
		l.edgeBBox.LLy = min(l.edgeBBox.LLy, dy0, dy1)
		l.edgeBBox.URx = max(l.edgeBBox.URx, dx0, dx1)
		l.edgeBBox.URy = max(l.edgeBBox.URy, dy0, dy1)
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
// Used for CTM-aware tolerance checking where translation is irrelevant.
func (l *Lasso) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: l.CTM[0]*v.X + l.CTM[2]*v.Y,
		Y: l.CTM[1]*v.X + l.CTM[3]*v.Y,
	}
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line segment.
// p0 is the start point (current point), p1 is control, p2 is endpoint.
func (l *Lasso) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := l.transformLinear(e).Length()

	n := 1
	if errDev > l.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / l.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line segment.
// p0 is start, p1/p2 are controls, p3 is endpoint.
func (l *Lasso) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := l.transformLinear(p0.Sub(p1.Mul(2)).Add(p2)) // P0 - 2*P1 + P2
	d2 := l.transformLinear(p1.Sub(p2.Mul(2)).Add(p3)) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		if nFloat := math.Sqrt(3 * m / (4 * l.Flatness)); nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}

// fillPointTest classifies every pixel centre in the given range
// separately by counting the edges crossed to its left.
func (l *Lasso) fillPointTest(m *Mask, xMin, xMax, yMin, yMax int, rule FillRule, existing *Mask, mode LimitMode) {
	for y := yMin; y < yMax; y++ {
		yc := float64(y) + 0.5
		for x := xMin; x < xMax; x++ {
			xc := float64(x) + 0.5
			count, wind := 0, 0
			for i := range l.edges {
				e := &l.edges[i]
				if e.crosses(yc) && e.xAt(yc) <= xc {
					count++
					wind += e.dir
				}
			}
			if rule == EvenOdd {
				wind = count
			}
			idx := y*m.Width + x
			if rule.Fills(wind) && allowed(existing, mode, idx) {
				m.Bits[idx] = Selected
			}
		}
	}
	Logger().Debug("lasso point test", "edges", len(l.edges), "rows", yMax-yMin, "rule", rule)
}

// fillScanlines rasterises using an active edge list. For each row the
// crossings with the line through the pixel centres are sorted by x, and
// the spans between consecutive crossings are filled according to the
// fill rule.
func (l *Lasso) fillScanlines(m *Mask, xMin, xMax, yMin, yMax int, rule FillRule, existing *Mask, mode LimitMode) {
	slices.SortFunc(l.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	l.activeIdx = l.activeIdx[:0]
	nextEdge := 0

	for y := yMin; y < yMax; y++ {
		yc := float64(y) + 0.5

		// Add edges that start at or above this scanline
		for nextEdge < len(l.edges) && min(l.edges[nextEdge].y0, l.edges[nextEdge].y1) <= yc {
			l.activeIdx = append(l.activeIdx, nextEdge)
			nextEdge++
		}

		l.crossings = l.crossings[:0]
		for i := 0; i < len(l.activeIdx); {
			e := &l.edges[l.activeIdx[i]]

			// Remove edges that end above this scanline (swap with last)
			if max(e.y0, e.y1) <= yc {
				l.activeIdx[i] = l.activeIdx[len(l.activeIdx)-1]
				l.activeIdx = l.activeIdx[:len(l.activeIdx)-1]
				continue
			}
			if e.crosses(yc) {
				l.crossings = append(l.crossings, crossing{x: e.xAt(yc), dir: e.dir})
			}
			i++
		}
		if len(l.crossings) == 0 {
			continue
		}

		slices.SortFunc(l.crossings, func(a, b crossing) int {
			if c := cmp.Compare(a.x, b.x); c != 0 {
				return c
			}
			return cmp.Compare(a.dir, b.dir)
		})
		l.fillRow(m, y, xMin, xMax, rule, existing, mode)
	}
	Logger().Debug("lasso scanlines", "edges", len(l.edges), "rows", yMax-yMin, "rule", rule)
}

// fillRow fills the spans of row y between sorted crossings. After the
// i-th crossing, i+1 crossings lie to the left; the span up to the next
// crossing (or the right bound, for the last one) is filled when the fill
// rule accepts that count or winding number.
func (l *Lasso) fillRow(m *Mask, y, xMin, xMax int, rule FillRule, existing *Mask, mode LimitMode) {
	wind := 0
	row := y * m.Width
	for i, c := range l.crossings {
		wind += c.dir
		w := wind
		if rule == EvenOdd {
			w = i + 1
		}
		if !rule.Fills(w) {
			continue
		}

		start := max(centreIndex(c.x, m.Width), xMin)
		end := xMax
		if i+1 < len(l.crossings) {
			end = min(centreIndex(l.crossings[i+1].x, m.Width), xMax)
		}
		for x := start; x < end; x++ {
			if allowed(existing, mode, row+x) {
				m.Bits[row+x] = Selected
			}
		}
	}
}

// Default values for lasso parameters.
const (
	// defaultFlatness is the default curve flattening tolerance in
	// pixels. Values of 0.25-1.0 are typical; 0.25 is below the threshold
	// of visual perception.
	defaultFlatness = 0.25

	// smallPolygonThreshold is the maximum bounding box area (in pixels)
	// for classifying pixels one by one.
	smallPolygonThreshold = 256
)
