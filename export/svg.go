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

// Package export writes selection outlines in formats understood by
// other programs: SVG for web views, potrace-smoothed SVG, and PDF.
package export

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"seehuhn.de/go/selection"
)

// DefaultStyle is the SVG style used by [WriteSVG] when none is given.
const DefaultStyle = "fill:none;stroke:black;stroke-width:1;fill-rule:evenodd"

// WriteSVG writes the outline of m as an SVG document of the same size as
// the mask. All loops form a single path element. An empty selection
// gives an empty document.
func WriteSVG(w io.Writer, m *selection.Mask, style string) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if style == "" {
		style = DefaultStyle
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Startview(m.Width, m.Height, 0, 0, m.Width, m.Height)
	if d := selection.TracePath(m, 0, 0); d != "" {
		canvas.Path(d, "style=\""+style+"\"")
	}
	canvas.End()
	return ew.err
}

// errWriter remembers the first write error, since svgo ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
