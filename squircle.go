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

// Package squircle clips raster images to a "squircle", a rectangle whose
// corners are rounded with cubic Bézier curves.
//
// The shape is controlled by a corner radius and a smoothing coefficient in
// [0, 1].  The coefficient moves the Bézier control points along the sides,
// from the tangent points at smoothing 0 (a straight bevel) to the corner
// itself at smoothing 1 (a tight curve hugging the corner).  Smoothing
// 1-0.5523 gives the usual approximation of a circular arc.
//
// [DrawMasked] sizes a [Surface], clips it with the squircle and draws an
// image into it.  [ExportPNG] encodes the result, keeping the transparency
// outside the clipped region.
package squircle

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// RadiusMode selects how [Params.Radius] is interpreted.
type RadiusMode int

const (
	// Pixels interprets the radius as a length in logical pixels.
	Pixels RadiusMode = iota

	// FractionOfShortSide interprets the radius as a fraction of the
	// shorter side of the shape.  A radius of 0.5 gives the largest
	// possible corners.
	FractionOfShortSide
)

func (m RadiusMode) String() string {
	switch m {
	case Pixels:
		return "pixels"
	case FractionOfShortSide:
		return "fraction"
	default:
		return fmt.Sprintf("RadiusMode(%d)", int(m))
	}
}

// Params describes the corner shape of a squircle.
// The zero value gives a plain rectangle.
type Params struct {
	// Radius is the corner radius, see Mode.  Values which are too large
	// for the shape are reduced to half the shorter side; negative values
	// are treated as zero.
	Radius float64

	// Smoothing is the corner smoothing coefficient.  Values outside [0, 1]
	// are clamped.
	Smoothing float64

	// Mode determines the unit of Radius.
	Mode RadiusMode
}

// PixelRadius returns the requested corner radius in logical pixels, for a
// shape of the given size.  The result is not clamped.
func (p Params) PixelRadius(width, height float64) float64 {
	if p.Mode == FractionOfShortSide {
		return p.Radius * min(width, height)
	}
	return p.Radius
}

// Path returns the squircle outline for a shape of the given size.
func (p Params) Path(width, height float64) *path.Data {
	return BuildPath(width, height, p.PixelRadius(width, height), p.Smoothing)
}

// Corner returns the effective corner radius and the distance of the Bézier
// control points from the corner, for a width×height shape.
//
// The radius is clamped to [0, min(width, height)/2] and the smoothing to
// [0, 1].  The control point offset is radius*(1-smoothing).
func Corner(width, height, cornerRadius, cornerSmoothing float64) (radius, cp float64) {
	radius = clamp(cornerRadius, 0, min(width, height)/2)
	smoothing := clamp(cornerSmoothing, 0, 1)
	return radius, radius * (1 - smoothing)
}

// BuildPath returns the outline of a width×height squircle with its top-left
// corner at the origin.  The y axis points down.
//
// The contour starts on the top edge, at distance radius from the top-left
// corner, and runs clockwise: each side is a straight line, followed by a
// cubic Bézier curve around the next corner.  The control points of each
// curve lie on the two sides meeting at the corner, at distance cp from the
// corner (see [Corner]).
//
// BuildPath never fails: out-of-range radius and smoothing values are
// clamped.  For radius 0 the result is the plain rectangle.
func BuildPath(width, height, cornerRadius, cornerSmoothing float64) *path.Data {
	r, cp := Corner(width, height, cornerRadius, cornerSmoothing)
	w, h := width, height

	return (&path.Data{}).
		MoveTo(vec.Vec2{X: r, Y: 0}).
		LineTo(vec.Vec2{X: w - r, Y: 0}).
		CubeTo(vec.Vec2{X: w - cp, Y: 0}, vec.Vec2{X: w, Y: cp}, vec.Vec2{X: w, Y: r}).
		LineTo(vec.Vec2{X: w, Y: h - r}).
		CubeTo(vec.Vec2{X: w, Y: h - cp}, vec.Vec2{X: w - cp, Y: h}, vec.Vec2{X: w - r, Y: h}).
		LineTo(vec.Vec2{X: r, Y: h}).
		CubeTo(vec.Vec2{X: cp, Y: h}, vec.Vec2{X: 0, Y: h - cp}, vec.Vec2{X: 0, Y: h - r}).
		LineTo(vec.Vec2{X: 0, Y: r}).
		CubeTo(vec.Vec2{X: 0, Y: cp}, vec.Vec2{X: cp, Y: 0}, vec.Vec2{X: r, Y: 0}).
		Close()
}

// clamp limits x to [lo, hi].  NaN is mapped to lo.
func clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) || x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
