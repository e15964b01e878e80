// seehuhn.de/go/squircle - squircle masks for raster images
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

// Command genpdf generates reference images for the squircle tests.
// It draws each test case into a PDF and renders it to PNG using
// Ghostscript.  Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/squircle"
	"seehuhn.de/go/squircle/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(pdfPath, pngPath, tc.DeviceRatio()); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			os.Remove(pdfPath)
		}
	}
}

// params returns the squircle parameters of a test case.
func params(tc testcases.TestCase) squircle.Params {
	p := squircle.Params{
		Radius:    tc.Radius,
		Smoothing: tc.Smoothing,
	}
	if tc.Fraction {
		p.Mode = squircle.FractionOfShortSide
	}
	return p
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// one point per logical pixel
	w, h := float64(tc.Width), float64(tc.Height)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background, so that the grey value is the coverage
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF origin is bottom-left; squircle paths use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	page.SetFillColor(color.DeviceGray(1))
	p := params(tc).Path(w, h)
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(p.Coords[k].X, p.Coords[k].Y)
			k++
		case path.CmdLineTo:
			page.LineTo(p.Coords[k].X, p.Coords[k].Y)
			k++
		case path.CmdCubeTo:
			a, b, c := p.Coords[k], p.Coords[k+1], p.Coords[k+2]
			page.CurveTo(a.X, a.Y, b.X, b.Y, c.X, c.Y)
			k += 3
		case path.CmdClose:
			page.ClosePath()
		}
	}
	page.Fill()

	return page.Close()
}

func renderPNG(pdfPath, pngPath string, ratio float64) error {
	// -sDEVICE=pnggray: 8-bit grayscale, compared with the alpha channel
	// -r: 72 DPI per unit of device pixel ratio
	// -dGraphicsAlphaBits=4: anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r"+strconv.FormatFloat(72*ratio, 'f', -1, 64),
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
