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
	"errors"
	"image"
	"slices"
	"testing"
)

func maskOf(t *testing.T, w, h int, rows ...string) *Mask {
	t.Helper()
	m := newTestMask(t, w, h)
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				m.Set(x, y, true)
			}
		}
	}
	return m
}

func TestMaskFromBytes(t *testing.T) {
	m, err := MaskFromBytes([]byte{0, 1, 255, 7}, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{0, 1, 1, 1}; !slices.Equal(m.Bits, want) {
		t.Errorf("got %v, want %v", m.Bits, want)
	}
	if _, err := MaskFromBytes(make([]byte, 3), 2, 2); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("short input: got %v", err)
	}
	if _, err := NewMask(0, 5); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero width: got %v", err)
	}
}

func TestCombineLaws(t *testing.T) {
	m := maskOf(t, 4, 3,
		"#..#",
		".##.",
		"##..")
	o := maskOf(t, 4, 3,
		"##..",
		"..##",
		"#...")

	add, err := Combine(m, m, CombineAdd)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(add.Bits, m.Bits) {
		t.Error("add(m, m) != m")
	}
	sub, err := Combine(m, m, CombineSubtract)
	if err != nil {
		t.Fatal(err)
	}
	if sub.Count() != 0 {
		t.Error("subtract(m, m) is not empty")
	}
	repl, err := Combine(o, m, CombineReplace)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(repl.Bits, m.Bits) {
		t.Error("replace(o, m) != m")
	}

	union, _ := Combine(m, o, CombineAdd)
	want := maskOf(t, 4, 3,
		"##.#",
		".###",
		"##..")
	if !slices.Equal(union.Bits, want.Bits) {
		t.Errorf("add: got %v, want %v", union.Bits, want.Bits)
	}
	diff, _ := Combine(m, o, CombineSubtract)
	want = maskOf(t, 4, 3,
		"...#",
		".#..",
		".#..")
	if !slices.Equal(diff.Bits, want.Bits) {
		t.Errorf("subtract: got %v, want %v", diff.Bits, want.Bits)
	}

	// inputs are not modified
	if m.Count() != 6 || o.Count() != 5 {
		t.Error("Combine modified its arguments")
	}
}

func TestCombineErrors(t *testing.T) {
	a := newTestMask(t, 4, 4)
	b := newTestMask(t, 4, 5)
	if _, err := Combine(a, b, CombineAdd); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("size: got %v", err)
	}
	if _, err := Combine(a, a, CombineOp(17)); err == nil {
		t.Error("unknown op accepted")
	}
	for _, s := range []string{"add", "subtract", "replace"} {
		op, err := ParseCombineOp(s)
		if err != nil || op.String() != s {
			t.Errorf("ParseCombineOp(%q) = %v, %v", s, op, err)
		}
	}
	if _, err := ParseCombineOp("xor"); err == nil {
		t.Error("xor accepted")
	}
}

func TestFillRect(t *testing.T) {
	m := newTestMask(t, 5, 4)
	m.FillRect(-2, 2, 4, 10)
	want := maskOf(t, 5, 4,
		".....",
		".....",
		"##...",
		"##...")
	if !slices.Equal(m.Bits, want.Bits) {
		t.Errorf("got %v, want %v", m.Bits, want.Bits)
	}

	m.Clear()
	m.FillRect(3, 1, -1, 2)
	m.FillRect(10, 10, 2, 2)
	m.FillRect(-5, -5, 2, 2)
	if m.Count() != 0 {
		t.Error("empty or outside rectangles selected pixels")
	}
}

func TestTranslateInverse(t *testing.T) {
	m := maskOf(t, 6, 5,
		"#....#",
		".##...",
		"..##..",
		"......",
		"#....#")

	for _, d := range []image.Point{{0, 0}, {1, 0}, {-2, 1}, {3, -2}, {5, 4}, {-6, 0}, {100, -100}} {
		fwd, err := Translate(m, d.X, d.Y)
		if err != nil {
			t.Fatal(err)
		}
		back, err := Translate(fwd, -d.X, -d.Y)
		if err != nil {
			t.Fatal(err)
		}
		for y := range m.Height {
			for x := range m.Width {
				staysIn := x+d.X >= 0 && x+d.X < m.Width && y+d.Y >= 0 && y+d.Y < m.Height
				want := m.At(x, y) && staysIn
				if back.At(x, y) != want {
					t.Errorf("shift %v: pixel (%d,%d) = %t, want %t", d, x, y, back.At(x, y), want)
				}
				if fwd.At(x, y) != m.At(x-d.X, y-d.Y) {
					t.Errorf("shift %v: forward pixel (%d,%d) wrong", d, x, y)
				}
			}
		}
	}
}

func TestTrim(t *testing.T) {
	m := maskOf(t, 5, 4,
		".....",
		".##..",
		"..#..",
		".....")
	box, ok := m.Bounds()
	if !ok || box != image.Rect(1, 1, 3, 3) {
		t.Fatalf("bounds %v, %t", box, ok)
	}
	got, err := Trim(m, box)
	if err != nil {
		t.Fatal(err)
	}
	want := maskOf(t, 2, 2,
		"##",
		".#")
	if !slices.Equal(got.Bits, want.Bits) || got.Width != 2 || got.Height != 2 {
		t.Errorf("got %v, want %v", got.Bits, want.Bits)
	}

	for _, r := range []image.Rectangle{
		image.Rect(3, 3, 3, 3),
		image.Rect(-1, 0, 2, 2),
		image.Rect(2, 2, 6, 3),
	} {
		if _, err := Trim(m, r); !errors.Is(err, ErrBoxOutOfBounds) {
			t.Errorf("box %v: got %v", r, err)
		}
	}

	if _, ok := newTestMask(t, 3, 3).Bounds(); ok {
		t.Error("empty mask has bounds")
	}
}

func TestInvertAndImage(t *testing.T) {
	m := maskOf(t, 3, 1, "#.#")
	img := m.Image()
	if want := []byte{0, 255, 0}; !slices.Equal(img.Pix, want) {
		t.Errorf("image: got %v, want %v", img.Pix, want)
	}
	m.Invert()
	if want := []byte{0, 1, 0}; !slices.Equal(m.Bits, want) {
		t.Errorf("invert: got %v, want %v", m.Bits, want)
	}
}

func TestOpacityMask(t *testing.T) {
	b, _ := NewPixelBuffer(3, 1)
	b.Pix[3] = 255
	b.Pix[11] = 1
	m, err := OpacityMask(b)
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{1, 0, 1}; !slices.Equal(m.Bits, want) {
		t.Errorf("got %v, want %v", m.Bits, want)
	}
}
