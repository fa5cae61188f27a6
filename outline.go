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
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Loop is a closed boundary contour on the pixel grid. The last point
// connects back to the first. Outer boundaries run clockwise on screen
// (y pointing down), holes run counter-clockwise.
type Loop []image.Point

// segment is a maximal straight run of boundary edges.
type segment struct {
	from, to image.Point
	dir      image.Point // unit step from from to to
}

// tracer holds the state for converting one mask into loops.
type tracer struct {
	m *Mask

	// stride is the number of grid vertices per row, m.Width+1.
	stride int

	// edges holds one entry per unit edge of the grid, keyed by
	// 2*vertex for the horizontal edge to the right of the vertex and
	// 2*vertex+1 for the vertical edge below it. The value is +1 if the
	// edge runs rightwards/downwards, -1 for the opposite direction, and
	// 0 if the edge is not on the boundary.
	edges []int8

	segs []segment

	// out holds up to two outgoing segment indices per grid vertex.
	out []int32
}

// Trace returns the boundary loops of the selected region of m. Every
// boundary edge belongs to exactly one loop. Pixels which only touch at a
// corner end up in separate loops. The result is deterministic; an empty
// or invalid mask gives no loops.
func Trace(m *Mask) []Loop {
	if err := m.Validate(); err != nil {
		Logger().Debug("trace rejected", "error", err)
		return nil
	}
	t := &tracer{m: m, stride: m.Width + 1}
	t.extractEdges()
	t.mergeRuns()
	loops := t.assemble()
	Logger().Debug("trace", "segments", len(t.segs), "loops", len(loops))
	return loops
}

// TracePath returns the boundary of the selected region as an SVG path
// string. Every loop becomes "M x y L x y ... Z", loops are separated by a
// single space, and all vertices are shifted by (offX, offY).
func TracePath(m *Mask, offX, offY float64) string {
	var sb strings.Builder
	for i, loop := range Trace(m) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		for j, p := range loop {
			if j == 0 {
				sb.WriteString("M ")
			} else {
				sb.WriteString(" L ")
			}
			sb.WriteString(formatCoord(float64(p.X) + offX))
			sb.WriteByte(' ')
			sb.WriteString(formatCoord(float64(p.Y) + offY))
		}
		sb.WriteString(" Z")
	}
	return sb.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// OutlinePath returns the boundary of the selected region as a path,
// with all vertices shifted by (offX, offY). Filling the result with
// either fill rule selects exactly the original pixels.
func OutlinePath(m *Mask, offX, offY float64) *path.Data {
	p := &path.Data{}
	for _, loop := range Trace(m) {
		for j, pt := range loop {
			v := vec.Vec2{X: float64(pt.X) + offX, Y: float64(pt.Y) + offY}
			if j == 0 {
				p = p.MoveTo(v)
			} else {
				p = p.LineTo(v)
			}
		}
		p = p.Close()
	}
	return p
}

// extractEdges records the four sides of every selected pixel, directed
// clockwise around the pixel. A side shared by two selected pixels is
// recorded once in each direction and cancels out.
func (t *tracer) extractEdges() {
	w, h := t.m.Width, t.m.Height
	t.edges = make([]int8, 2*t.stride*(h+1))
	for y := range h {
		for x := range w {
			if t.m.Bits[y*w+x] == 0 {
				continue
			}
			v := y*t.stride + x
			t.edges[2*v]++            // top, rightwards
			t.edges[2*(v+1)+1]++      // right, downwards
			t.edges[2*(v+t.stride)]-- // bottom, leftwards
			t.edges[2*v+1]--          // left, upwards
		}
	}
}

// mergeRuns joins contiguous boundary edges of the same direction into
// segments. Horizontal runs come first, in row-major order, followed by
// the vertical runs.
func (t *tracer) mergeRuns() {
	w, h := t.m.Width, t.m.Height

	for y := 0; y <= h; y++ {
		x := 0
		for x < w {
			d := t.edges[2*(y*t.stride+x)]
			if d == 0 {
				x++
				continue
			}
			start := x
			for x < w && t.edges[2*(y*t.stride+x)] == d {
				x++
			}
			a, b := image.Pt(start, y), image.Pt(x, y)
			if d > 0 {
				t.segs = append(t.segs, segment{from: a, to: b, dir: image.Pt(1, 0)})
			} else {
				t.segs = append(t.segs, segment{from: b, to: a, dir: image.Pt(-1, 0)})
			}
		}
	}

	for x := 0; x <= w; x++ {
		y := 0
		for y < h {
			d := t.edges[2*(y*t.stride+x)+1]
			if d == 0 {
				y++
				continue
			}
			start := y
			for y < h && t.edges[2*(y*t.stride+x)+1] == d {
				y++
			}
			a, b := image.Pt(x, start), image.Pt(x, y)
			if d > 0 {
				t.segs = append(t.segs, segment{from: a, to: b, dir: image.Pt(0, 1)})
			} else {
				t.segs = append(t.segs, segment{from: b, to: a, dir: image.Pt(0, -1)})
			}
		}
	}
}

// assemble walks the segments into closed loops.
func (t *tracer) assemble() []Loop {
	if len(t.segs) == 0 {
		return nil
	}

	t.out = make([]int32, 2*t.stride*(t.m.Height+1))
	for i := range t.out {
		t.out[i] = -1
	}
	for i, s := range t.segs {
		k := 2 * t.vertex(s.from)
		if t.out[k] >= 0 {
			k++
		}
		t.out[k] = int32(i)
	}

	used := make([]bool, len(t.segs))
	var loops []Loop
	for start := range t.segs {
		if used[start] {
			continue
		}
		var loop Loop
		cur := start
		for {
			used[cur] = true
			loop = append(loop, t.segs[cur].from)
			next := t.next(cur)
			if next < 0 || next == start || used[next] {
				break
			}
			cur = next
		}
		loops = append(loops, loop)
	}
	return loops
}

func (t *tracer) vertex(p image.Point) int {
	return p.Y*t.stride + p.X
}

// next returns the segment which continues the boundary after segment i.
// Where two segments leave the same vertex, which happens where two
// selected pixels touch diagonally, the right turn is taken.
func (t *tracer) next(i int) int {
	s := t.segs[i]
	k := 2 * t.vertex(s.to)
	a, b := int(t.out[k]), int(t.out[k+1])
	if b < 0 {
		return a
	}
	right := image.Pt(-s.dir.Y, s.dir.X)
	if t.segs[b].dir == right {
		return b
	}
	if t.segs[a].dir == right {
		return a
	}
	if t.segs[b].dir == s.dir {
		return b
	}
	return a
}
