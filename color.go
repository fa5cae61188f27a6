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

import "image/color"

// Match reports whether two colours are equal within threshold.
//
// All four channels take part in the comparison. With threshold 0 the
// colours must be identical; otherwise every channel may differ by at most
// threshold. A threshold of 255 matches every pair.
func Match(a, b color.RGBA, threshold uint8) bool {
	if threshold == 0 {
		return a == b
	}
	t := int(threshold)
	return absDiff(a.R, b.R) <= t &&
		absDiff(a.G, b.G) <= t &&
		absDiff(a.B, b.B) <= t &&
		absDiff(a.A, b.A) <= t
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
