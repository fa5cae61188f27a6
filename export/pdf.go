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

package export

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/selection"
)

// WritePDF writes a single-page PDF file showing the selected region of m
// in gray on a white page. One pixel maps to one PDF point.
func WritePDF(fname string, m *selection.Mask) error {
	if err := m.Validate(); err != nil {
		return err
	}

	paper := &pdf.Rectangle{
		URx: float64(m.Width),
		URy: float64(m.Height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; masks use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(m.Height)})

	outline := selection.OutlinePath(m, 0, 0)
	if len(outline.Cmds) > 0 {
		page.SetFillColor(color.DeviceGray(0.5))
		coordIdx := 0
		for _, cmd := range outline.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				pt := outline.Coords[coordIdx]
				page.MoveTo(pt.X, pt.Y)
				coordIdx++
			case path.CmdLineTo:
				pt := outline.Coords[coordIdx]
				page.LineTo(pt.X, pt.Y)
				coordIdx++
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.FillEvenOdd()
	}

	return page.Close()
}
