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
	"image/color"
	"slices"
	"testing"
)

func TestOver(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	tests := []struct {
		dst, src, want color.RGBA
	}{
		{white, blue, blue},
		{white, color.RGBA{R: 9, A: 0}, white},
		{color.RGBA{}, color.RGBA{R: 200, G: 100, B: 50, A: 128}, color.RGBA{R: 200, G: 100, B: 50, A: 128}},
		{white, color.RGBA{A: 128}, color.RGBA{R: 127, G: 127, B: 127, A: 255}},
		{color.RGBA{R: 255, A: 128}, color.RGBA{B: 255, A: 128}, color.RGBA{R: 85, B: 170, A: 192}},
	}
	for _, tt := range tests {
		if got := Over(tt.dst, tt.src); got != tt.want {
			t.Errorf("Over(%v, %v) = %v, want %v", tt.dst, tt.src, got, tt.want)
		}
	}
}

func TestPatch(t *testing.T) {
	target := uniformBuffer(t, 4, 4, red)
	patch, _ := NewPixelBuffer(2, 2)
	patch.Set(0, 0, blue)
	patch.Set(1, 1, blue)
	patch.Set(0, 1, color.RGBA{A: 128})

	out, err := Patch(target, patch, image.Pt(1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if out.At(1, 1) != blue || out.At(2, 2) != blue {
		t.Error("opaque pixels not copied")
	}
	if out.At(2, 1) != red {
		t.Error("transparent pixel changed the target")
	}
	if got, want := out.At(1, 2), (color.RGBA{R: 127, A: 255}); got != want {
		t.Errorf("blended pixel %v, want %v", got, want)
	}
	if target.At(1, 1) != red {
		t.Error("Patch modified the target")
	}

	// partially outside
	out, err = Patch(target, patch, image.Pt(-1, 3))
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for i := range 16 {
		if out.at(i) != red {
			n++
		}
	}
	if n != 0 {
		t.Errorf("%d pixels changed, want 0", n)
	}
	out, _ = Patch(target, patch, image.Pt(3, -1))
	if got, want := out.At(3, 0), (color.RGBA{R: 127, A: 255}); got != want {
		t.Errorf("clipped blend %v, want %v", got, want)
	}
	out, _ = Patch(target, patch, image.Pt(-1, -1))
	if out.At(0, 0) != blue {
		t.Error("clipped patch not applied")
	}

	if _, err := Patch(target, &PixelBuffer{Width: 1, Height: 1}, image.Point{}); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("bad patch: got %v", err)
	}
}

func gradientBuffer(t *testing.T, w, h int) *PixelBuffer {
	t.Helper()
	b, err := NewPixelBuffer(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for y := range h {
		for x := range w {
			b.Set(x, y, color.RGBA{R: uint8(10 * x), G: uint8(10 * y), A: 255})
		}
	}
	return b
}

func TestCropSlice(t *testing.T) {
	src := gradientBuffer(t, 4, 4)
	mask := maskOf(t, 2, 2,
		"#.",
		".#")

	crop, err := Crop(src, mask, image.Pt(2, 1))
	if err != nil {
		t.Fatal(err)
	}
	for y := range 4 {
		for x := range 4 {
			want := src.At(x, y)
			if (x == 2 && y == 1) || (x == 3 && y == 2) {
				want = color.RGBA{}
			}
			if crop.At(x, y) != want {
				t.Errorf("crop (%d,%d) = %v, want %v", x, y, crop.At(x, y), want)
			}
		}
	}

	slice, err := Slice(src, mask, image.Pt(2, 1))
	if err != nil {
		t.Fatal(err)
	}
	if slice.Width != 2 || slice.Height != 2 {
		t.Fatalf("slice is %dx%d", slice.Width, slice.Height)
	}
	want := []color.RGBA{src.At(2, 1), {}, {}, src.At(3, 2)}
	for i, c := range want {
		if slice.at(i) != c {
			t.Errorf("slice pixel %d = %v, want %v", i, slice.at(i), c)
		}
	}

	// mask hanging over the corner of the source
	slice, _ = Slice(src, mask, image.Pt(3, 3))
	if slice.at(0) != src.At(3, 3) || slice.at(3) != (color.RGBA{}) {
		t.Error("clipped slice wrong")
	}
	crop, _ = Crop(src, mask, image.Pt(-1, -1))
	cleared := 0
	for i := range 16 {
		if crop.at(i).A == 0 {
			cleared++
		}
	}
	if crop.At(0, 0) != (color.RGBA{}) || cleared != 1 {
		t.Error("clipped crop wrong")
	}
}

func TestApplySelectionFilter(t *testing.T) {
	b := uniformBuffer(t, 3, 1, red)
	mask := maskOf(t, 3, 1, "#.#")

	tests := []struct {
		mode LimitMode
		want []color.RGBA
	}{
		{LimitNone, []color.RGBA{red, red, red}},
		{LimitInside, []color.RGBA{red, {}, red}},
		{LimitOutside, []color.RGBA{{}, red, {}}},
	}
	for _, tt := range tests {
		out, err := ApplySelectionFilter(b, mask, tt.mode)
		if err != nil {
			t.Fatal(err)
		}
		for i, c := range tt.want {
			if out.at(i) != c {
				t.Errorf("%s: pixel %d = %v, want %v", tt.mode, i, out.at(i), c)
			}
		}
	}
	if _, err := ApplySelectionFilter(b, newTestMask(t, 2, 1), LimitInside); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("size: got %v", err)
	}
}

func TestCompositeOverlay(t *testing.T) {
	base := uniformBuffer(t, 3, 1, red)
	overlay, _ := NewPixelBuffer(3, 1)
	overlay.Set(0, 0, blue)
	overlay.Set(2, 0, color.RGBA{B: 255, A: 1})
	mask := maskOf(t, 3, 1, "##.")

	faint := color.RGBA{B: 255, A: 1}
	tests := []struct {
		mode LimitMode
		want []color.RGBA
	}{
		{LimitNone, []color.RGBA{blue, red, faint}},
		{LimitInside, []color.RGBA{blue, red, red}},
		{LimitOutside, []color.RGBA{red, red, faint}},
	}
	for _, tt := range tests {
		out, err := CompositeOverlay(base, overlay, mask, tt.mode)
		if err != nil {
			t.Fatal(err)
		}
		for i, c := range tt.want {
			if out.at(i) != c {
				t.Errorf("%s: pixel %d = %v, want %v", tt.mode, i, out.at(i), c)
			}
		}
	}
	if base.at(0) != red {
		t.Error("CompositeOverlay modified the base")
	}

	small, _ := NewPixelBuffer(2, 1)
	if _, err := CompositeOverlay(base, small, nil, LimitNone); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("size: got %v", err)
	}
}

func TestMoveSelection(t *testing.T) {
	b := gradientBuffer(t, 4, 1)
	px := []color.RGBA{b.at(0), b.at(1), b.at(2), b.at(3)}
	mask := maskOf(t, 4, 1, ".##.")

	tests := []struct {
		dx   int
		want []color.RGBA
	}{
		{0, px},
		{1, []color.RGBA{px[0], {}, px[1], px[2]}},
		{-1, []color.RGBA{px[1], px[2], {}, px[3]}},
		{3, []color.RGBA{px[0], {}, {}, px[3]}},
	}
	for _, tt := range tests {
		out, err := MoveSelection(b, mask, tt.dx, 0)
		if err != nil {
			t.Fatal(err)
		}
		got := []color.RGBA{out.at(0), out.at(1), out.at(2), out.at(3)}
		if !slices.Equal(got, tt.want) {
			t.Errorf("dx=%d: got %v, want %v", tt.dx, got, tt.want)
		}
	}

	if _, err := MoveSelection(b, newTestMask(t, 4, 2), 1, 0); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("size: got %v", err)
	}
}
