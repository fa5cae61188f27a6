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
	"image/color"
	"math/rand/v2"
	"slices"
	"testing"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func uniformBuffer(t testing.TB, w, h int, c color.RGBA) *PixelBuffer {
	t.Helper()
	b, err := NewPixelBuffer(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for i := range w * h {
		b.setIndex(i, c)
	}
	return b
}

func TestFloodFillUniform(t *testing.T) {
	b := uniformBuffer(t, 4, 4, red)
	if err := FloodFill(b, 0, 0, blue, 0); err != nil {
		t.Fatal(err)
	}
	for i := range 16 {
		if b.at(i) != blue {
			t.Fatalf("pixel %d is %v", i, b.at(i))
		}
	}
}

func TestFloodFillInside(t *testing.T) {
	b := uniformBuffer(t, 4, 4, red)
	limit := newTestMask(t, 4, 4)
	limit.FillRect(0, 0, 2, 2)

	if err := FloodFillLimited(b, 0, 0, blue, 0, limit, LimitInside); err != nil {
		t.Fatal(err)
	}
	for y := range 4 {
		for x := range 4 {
			want := red
			if x < 2 && y < 2 {
				want = blue
			}
			if got := b.At(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFloodFillOutside(t *testing.T) {
	b := uniformBuffer(t, 4, 4, red)
	limit := newTestMask(t, 4, 4)
	limit.FillRect(0, 0, 2, 2)

	err := FloodFillLimited(b, 0, 0, blue, 0, limit, LimitOutside)
	if !errors.Is(err, ErrSeedNotAllowed) {
		t.Fatalf("seed inside limit: got %v", err)
	}
	if err := FloodFillLimited(b, 3, 3, blue, 0, limit, LimitOutside); err != nil {
		t.Fatal(err)
	}
	for y := range 4 {
		for x := range 4 {
			want := blue
			if x < 2 && y < 2 {
				want = red
			}
			if got := b.At(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFloodFillIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	b := randomBuffer(t, rng, 16, 12)
	before := slices.Clone(b.Pix)

	if err := FloodFill(b, 5, 5, b.At(5, 5), 0); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(before, b.Pix) {
		t.Error("filling a region with its own colour changed the buffer")
	}

	if err := FloodFill(b, 5, 5, blue, 40); err != nil {
		t.Fatal(err)
	}
	once := slices.Clone(b.Pix)
	if err := FloodFill(b, 5, 5, blue, 40); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(once, b.Pix) {
		t.Error("second fill changed the buffer")
	}
}

// TestFloodFillClosure compares the span fill with a plain breadth-first
// search on random images.
func TestFloodFillClosure(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for i := range 100 {
		w, h := 1+rng.IntN(24), 1+rng.IntN(24)
		b := randomBuffer(t, rng, w, h)
		x, y := rng.IntN(w), rng.IntN(h)
		threshold := []uint8{0, 1, 60, 128}[rng.IntN(4)]

		var limit *Mask
		mode := LimitNone
		if i%2 == 1 {
			limit = newTestMask(t, w, h)
			for j := range limit.Bits {
				if rng.IntN(4) > 0 {
					limit.Bits[j] = Selected
				}
			}
			mode = []LimitMode{LimitInside, LimitOutside}[rng.IntN(2)]
		}

		want := referenceRegion(b, x, y, threshold, limit, mode)
		got, err := AutoSelectLimited(b, x, y, threshold, limit, mode)
		if want == nil {
			if !errors.Is(err, ErrSeedNotAllowed) {
				t.Fatalf("case %d: got %v, want ErrSeedNotAllowed", i, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		if !slices.Equal(got.Bits, want) {
			t.Fatalf("case %d (%dx%d, seed %d,%d, threshold %d, %s): regions differ",
				i, w, h, x, y, threshold, mode)
		}

		before := b.Clone()
		fill := color.RGBA{R: 1, G: 2, B: 3, A: 4}
		if err := FloodFillLimited(b, x, y, fill, threshold, limit, mode); err != nil {
			t.Fatal(err)
		}
		for j, v := range want {
			expected := before.at(j)
			if v != 0 {
				expected = fill
			}
			if b.at(j) != expected {
				t.Fatalf("case %d: pixel %d is %v, want %v", i, j, b.at(j), expected)
			}
		}
	}
}

func TestFloodFillMatchAll(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	b := randomBuffer(t, rng, 10, 10)
	limit := newTestMask(t, 10, 10)
	limit.FillRect(0, 0, 10, 3)
	limit.Set(9, 9, true) // not connected to the rest
	before := b.Clone()

	if err := FloodFillLimited(b, 0, 0, blue, 255, limit, LimitInside); err != nil {
		t.Fatal(err)
	}
	for i := range 100 {
		want := before.at(i)
		if limit.Bits[i] != 0 {
			want = blue
		}
		if b.at(i) != want {
			t.Fatalf("pixel %d is %v, want %v", i, b.at(i), want)
		}
	}
}

func TestFloodFillErrors(t *testing.T) {
	b := uniformBuffer(t, 4, 4, red)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if err := FloodFill(b, p[0], p[1], blue, 0); !errors.Is(err, ErrSeedOutOfBounds) {
			t.Errorf("seed %v: got %v", p, err)
		}
	}
	if err := FloodFillLimited(b, 0, 0, blue, 0, newTestMask(t, 3, 4), LimitInside); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("limit size: got %v", err)
	}
	bad := &PixelBuffer{Pix: make([]byte, 10), Width: 2, Height: 2}
	if err := FloodFill(bad, 0, 0, blue, 0); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("short buffer: got %v", err)
	}
	for i := range 16 {
		if b.at(i) != red {
			t.Fatal("failed fill modified the buffer")
		}
	}
}

// randomBuffer returns an image with few distinct colours, so that
// regions of several pixels form.
func randomBuffer(t testing.TB, rng *rand.Rand, w, h int) *PixelBuffer {
	palette := []color.RGBA{
		red,
		blue,
		{R: 240, G: 20, B: 10, A: 255},
		{R: 255, A: 128},
		{},
	}
	b, err := NewPixelBuffer(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for i := range w * h {
		b.setIndex(i, palette[rng.IntN(len(palette))])
	}
	return b
}

// referenceRegion computes the fill region by breadth-first search. It
// returns nil if the seed is not allowed.
func referenceRegion(b *PixelBuffer, x, y int, threshold uint8, limit *Mask, mode LimitMode) []byte {
	w, h := b.Width, b.Height
	ok := func(idx int) bool {
		return allowed(limit, mode, idx) && Match(b.at(idx), b.at(y*w+x), threshold)
	}
	if !allowed(limit, mode, y*w+x) {
		return nil
	}

	region := make([]byte, w*h)
	region[y*w+x] = Selected
	queue := []int{y*w + x}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		px, py := idx%w, idx/w
		for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			qx, qy := px+d[0], py+d[1]
			if qx < 0 || qx >= w || qy < 0 || qy >= h {
				continue
			}
			q := qy*w + qx
			if region[q] == 0 && ok(q) {
				region[q] = Selected
				queue = append(queue, q)
			}
		}
	}
	return region
}
