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

import "fmt"

// LimitMode restricts an operation relative to an existing selection.
type LimitMode int

const (
	// LimitNone applies the operation everywhere.
	LimitNone LimitMode = iota
	// LimitInside applies the operation only to selected pixels.
	LimitInside
	// LimitOutside applies the operation only to unselected pixels.
	LimitOutside
)

func (m LimitMode) String() string {
	switch m {
	case LimitNone:
		return "none"
	case LimitInside:
		return "inside"
	case LimitOutside:
		return "outside"
	}
	return fmt.Sprintf("LimitMode(%d)", int(m))
}

// ParseLimitMode converts "none", "inside" or "outside" to a [LimitMode].
func ParseLimitMode(s string) (LimitMode, error) {
	switch s {
	case "none", "":
		return LimitNone, nil
	case "inside":
		return LimitInside, nil
	case "outside":
		return LimitOutside, nil
	}
	return 0, fmt.Errorf("selection: unknown limit mode %q", s)
}

// allowed reports whether pixel idx may be touched under mode.
// A nil mask allows everything.
func allowed(limit *Mask, mode LimitMode, idx int) bool {
	if limit == nil {
		return true
	}
	switch mode {
	case LimitInside:
		return limit.Bits[idx] != 0
	case LimitOutside:
		return limit.Bits[idx] == 0
	}
	return true
}

// checkLimit validates a limit mask against the given size. A nil mask is
// only valid together with LimitNone.
func checkLimit(limit *Mask, mode LimitMode, w, h int) error {
	if mode == LimitNone {
		return nil
	}
	if mode != LimitInside && mode != LimitOutside {
		return fmt.Errorf("selection: unknown limit mode %d", int(mode))
	}
	if limit == nil {
		return fmt.Errorf("limit mode %s without mask: %w", mode, ErrSizeMismatch)
	}
	return limit.sameSize(w, h)
}
