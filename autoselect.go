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

// AutoSelect returns the region [FloodFill] would paint from (x, y),
// without modifying b.
func AutoSelect(b *PixelBuffer, x, y int, threshold uint8) (*Mask, error) {
	return growRegion(b, x, y, threshold, nil, LimitNone)
}

// AutoSelectLimited returns the region [FloodFillLimited] would paint.
func AutoSelectLimited(b *PixelBuffer, x, y int, threshold uint8, limit *Mask, mode LimitMode) (*Mask, error) {
	return growRegion(b, x, y, threshold, limit, mode)
}
