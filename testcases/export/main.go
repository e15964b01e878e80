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

// Command export writes the test case outlines to JSON, for use by
// external reference renderers.  Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/squircle"
	"seehuhn.de/go/squircle/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string        `json:"name"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Ratio     float64       `json:"ratio"`
	Radius    float64       `json:"radius"`
	Smoothing float64       `json:"smoothing"`
	Mode      string        `json:"mode"`
	Path      []jsonSegment `json:"path"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	p := squircle.Params{Radius: tc.Radius, Smoothing: tc.Smoothing}
	if tc.Fraction {
		p.Mode = squircle.FractionOfShortSide
	}
	w, h := float64(tc.Width), float64(tc.Height)
	return jsonTestCase{
		Name:      category + "_" + tc.Name,
		Width:     tc.Width,
		Height:    tc.Height,
		Ratio:     tc.DeviceRatio(),
		Radius:    p.PixelRadius(w, h),
		Smoothing: tc.Smoothing,
		Mode:      p.Mode.String(),
		Path:      pathToJSON(p.Path(w, h)),
	}
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	k := 0
	for _, cmd := range p.Cmds {
		var seg jsonSegment
		var n int
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd, n = "M", 1
		case path.CmdLineTo:
			seg.Cmd, n = "L", 1
		case path.CmdQuadTo:
			seg.Cmd, n = "Q", 2
		case path.CmdCubeTo:
			seg.Cmd, n = "C", 3
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		seg.Pts = make([][]float64, n)
		for i, pt := range p.Coords[k : k+n] {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		k += n
		segs = append(segs, seg)
	}
	return segs
}
