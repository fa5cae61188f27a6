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

// Command selectdemo builds a selection on an image file and writes the
// selection outline and the selected pixels to files.
//
// Usage:
//
//	selectdemo -x 10 -y 20 -threshold 32 -svg out.svg input.png
//	selectdemo -lasso 0,0,50,0,25,40 -op add -pdf out.pdf input.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/selection"
	"seehuhn.de/go/selection/export"
)

var (
	seedX     = flag.Int("x", -1, "auto-select seed `column`")
	seedY     = flag.Int("y", -1, "auto-select seed `row`")
	threshold = flag.Uint("threshold", 32, "per-channel colour tolerance (0-255)")
	lasso     = flag.String("lasso", "", "lasso polygon as `x0,y0,x1,y1,...`")
	opName    = flag.String("op", "add", "how the lasso combines with the auto-selection (add, subtract, replace)")
	ruleName  = flag.String("rule", "nonzero", "lasso fill rule (nonzero, evenodd)")
	svgOut    = flag.String("svg", "", "write the outline as SVG to `file`")
	smoothOut = flag.String("smooth", "", "write the potrace-smoothed outline as SVG to `file`")
	pdfOut    = flag.String("pdf", "", "write the selection as PDF to `file`")
	cutOut    = flag.String("cut", "", "write the selected pixels as PNG to `file`")
	verbose   = flag.Bool("v", false, "log debug messages")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options] image\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	selection.SetLogger(logger)

	if err := run(flag.Arg(0)); err != nil {
		logger.Error("selectdemo failed", "error", err)
		os.Exit(1)
	}
}

func run(inName string) error {
	if *threshold > 255 {
		return fmt.Errorf("threshold %d out of range", *threshold)
	}

	buf, err := readImage(inName)
	if err != nil {
		return err
	}

	m, err := buildSelection(buf)
	if err != nil {
		return err
	}
	selection.Logger().Info("selection ready", "pixels", m.Count())

	if *svgOut != "" {
		err := writeFile(*svgOut, func(f *os.File) error {
			return export.WriteSVG(f, m, "")
		})
		if err != nil {
			return err
		}
	}
	if *smoothOut != "" {
		err := writeFile(*smoothOut, func(f *os.File) error {
			return export.SmoothSVG(f, m)
		})
		if err != nil {
			return err
		}
	}
	if *pdfOut != "" {
		if err := export.WritePDF(*pdfOut, m); err != nil {
			return err
		}
	}
	if *cutOut != "" {
		if err := writeCut(*cutOut, buf, m); err != nil {
			return err
		}
	}
	return nil
}

func readImage(fname string) (*selection.PixelBuffer, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return selection.FromImage(img)
}

func buildSelection(buf *selection.PixelBuffer) (*selection.Mask, error) {
	var m *selection.Mask
	if *seedX >= 0 || *seedY >= 0 {
		var err error
		m, err = selection.AutoSelect(buf, *seedX, *seedY, uint8(*threshold))
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		m, err = selection.NewMask(buf.Width, buf.Height)
		if err != nil {
			return nil, err
		}
	}

	if *lasso == "" {
		return m, nil
	}

	coords, err := parseCoords(*lasso)
	if err != nil {
		return nil, err
	}
	rule, err := selection.ParseFillRule(*ruleName)
	if err != nil {
		return nil, err
	}
	op, err := selection.ParseCombineOp(*opName)
	if err != nil {
		return nil, err
	}

	overlay, err := selection.NewMask(buf.Width, buf.Height)
	if err != nil {
		return nil, err
	}
	if err := selection.RasterizePolygon(overlay, coords, rule); err != nil {
		return nil, err
	}
	return selection.Combine(m, overlay, op)
}

func parseCoords(s string) ([]float32, error) {
	fields := strings.Split(s, ",")
	coords := make([]float32, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 32)
		if err != nil {
			return nil, fmt.Errorf("lasso coordinate %d: %w", i, err)
		}
		coords[i] = float32(v)
	}
	return coords, nil
}

var errEmptySelection = errors.New("nothing selected")

func writeCut(fname string, buf *selection.PixelBuffer, m *selection.Mask) error {
	box, ok := m.Bounds()
	if !ok {
		return errEmptySelection
	}
	trimmed, err := selection.Trim(m, box)
	if err != nil {
		return err
	}
	cut, err := selection.Slice(buf, trimmed, box.Min)
	if err != nil {
		return err
	}
	return writeFile(fname, func(f *os.File) error {
		return png.Encode(f, cut.Image())
	})
}

func writeFile(fname string, write func(*os.File) error) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
