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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	rsvg "github.com/rustyoz/svg"

	"seehuhn.de/go/selection"
)

func testMask(t *testing.T) *selection.Mask {
	t.Helper()
	m, err := selection.NewMask(8, 6)
	if err != nil {
		t.Fatal(err)
	}
	m.FillRect(2, 1, 4, 2)
	return m
}

func TestWriteSVG(t *testing.T) {
	m := testMask(t)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, m, ""); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `d="M 2 1 L 6 1 L 6 3 L 2 3 Z"`) {
		t.Errorf("outline missing from %q", out)
	}
	if !strings.Contains(out, DefaultStyle) {
		t.Error("default style not used")
	}

	parsed, err := rsvg.ParseSvg(out, "outline", 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.ViewBox != "0 0 8 6" {
		t.Errorf("viewBox %q, want %q", parsed.ViewBox, "0 0 8 6")
	}
}

func TestWriteSVGEmpty(t *testing.T) {
	m, _ := selection.NewMask(3, 3)
	var buf bytes.Buffer
	if err := WriteSVG(&buf, m, "fill:red"); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "<path") {
		t.Error("empty selection produced a path")
	}
}

type failWriter struct{}

var errFail = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errFail }

func TestWriteSVGError(t *testing.T) {
	if err := WriteSVG(failWriter{}, testMask(t), ""); !errors.Is(err, errFail) {
		t.Errorf("got %v, want %v", err, errFail)
	}
	if err := WriteSVG(&bytes.Buffer{}, &selection.Mask{}, ""); !errors.Is(err, selection.ErrInvalidDimensions) {
		t.Errorf("invalid mask: got %v", err)
	}
}

func TestSmoothSVG(t *testing.T) {
	m, _ := selection.NewMask(32, 32)
	m.FillRect(8, 8, 16, 16)

	var buf bytes.Buffer
	if err := SmoothSVG(&buf, m); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "<path") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestWritePDF(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "selection.pdf")
	if err := WritePDF(fname, testMask(t)); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("file starts with %q", data[:min(len(data), 8)])
	}
}
