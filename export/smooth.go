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
	"fmt"
	"io"

	"github.com/gotranspile/gotrace"

	"seehuhn.de/go/selection"
)

// SmoothSVG traces m with potrace and writes the resulting curves as an
// SVG document. Unlike [WriteSVG] the outline does not follow the pixel
// grid exactly; corners are rounded and staircases become slanted lines.
func SmoothSVG(w io.Writer, m *selection.Mask) error {
	if err := m.Validate(); err != nil {
		return err
	}

	bm := gotrace.BitmapFromGray(m.Image(), nil)
	paths, err := gotrace.Trace(bm, nil)
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	selection.Logger().Debug("smooth outline", "paths", len(paths))

	return gotrace.Render("svg", nil, w, paths, m.Width, m.Height)
}
