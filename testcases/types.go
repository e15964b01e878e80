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

// Package testcases lists squircle shapes which are rendered both by the
// package and by an independent reference renderer.
package testcases

import "math"

// TestCase defines a single squircle to render.  The image to be clipped
// is white and fills the whole surface.
type TestCase struct {
	Name   string // lowercase a-z and _ only
	Width  int    // logical width
	Height int    // logical height

	Radius    float64
	Smoothing float64
	Fraction  bool // Radius is a fraction of the shorter side

	Ratio float64 // device pixel ratio (zero means 1)
}

// DeviceRatio returns the device pixel ratio of the test case.
func (tc TestCase) DeviceRatio() float64 {
	if tc.Ratio <= 0 {
		return 1
	}
	return tc.Ratio
}

// PhysicalSize returns the size of the rendered image in pixels.
func (tc TestCase) PhysicalSize() (int, int) {
	r := tc.DeviceRatio()
	return int(math.Round(float64(tc.Width) * r)), int(math.Round(float64(tc.Height) * r))
}
