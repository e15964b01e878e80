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

package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]TestCase{
	"shape":     shapeCases,
	"smoothing": smoothingCases,
	"scale":     scaleCases,
}

// kappa for cubic Bézier approximation of a quarter circle
const kappa = 0.5522847498307936

var shapeCases = []TestCase{
	{Name: "rectangle", Width: 64, Height: 48},
	{Name: "default", Width: 160, Height: 120, Radius: 50, Smoothing: 0.7},
	{Name: "pill", Width: 120, Height: 60, Radius: 30, Smoothing: 1 - kappa},
	{Name: "circle", Width: 100, Height: 100, Radius: 50, Smoothing: 1 - kappa},
	{Name: "oversized", Width: 70, Height: 50, Radius: 1000, Smoothing: 0.5},
	{Name: "wide", Width: 200, Height: 30, Radius: 10, Smoothing: 0.4},
	{Name: "tall", Width: 30, Height: 200, Radius: 10, Smoothing: 0.4},
	{Name: "fraction", Width: 90, Height: 60, Radius: 0.25, Fraction: true, Smoothing: 0.6},
	{Name: "fraction_max", Width: 90, Height: 60, Radius: 1, Fraction: true},
}

var smoothingCases = []TestCase{
	{Name: "zero", Width: 80, Height: 80, Radius: 30, Smoothing: 0},
	{Name: "quarter", Width: 80, Height: 80, Radius: 30, Smoothing: 0.25},
	{Name: "half", Width: 80, Height: 80, Radius: 30, Smoothing: 0.5},
	{Name: "one", Width: 80, Height: 80, Radius: 30, Smoothing: 1},
	{Name: "negative", Width: 80, Height: 80, Radius: 30, Smoothing: -2},
	{Name: "above_one", Width: 80, Height: 80, Radius: 30, Smoothing: 3},
}

var scaleCases = []TestCase{
	{Name: "hidpi", Width: 60, Height: 40, Radius: 12, Smoothing: 0.6, Ratio: 2},
	{Name: "fractional", Width: 50, Height: 50, Radius: 20, Smoothing: 0.5, Ratio: 1.5},
	{Name: "triple", Width: 40, Height: 30, Radius: 10, Smoothing: 0.7, Ratio: 3},
	{Name: "small", Width: 12, Height: 8, Radius: 3, Smoothing: 0.7},
}
