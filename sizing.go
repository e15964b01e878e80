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

package squircle

import (
	"math"

	"seehuhn.de/go/geom/rect"
)

// DefaultMaxSide is the side length limit used by [ContentFit] when
// MaxSide is not set.
const DefaultMaxSide = 4096

// SizingPolicy determines the logical size of a surface and where the
// source image is placed on it.  The implementations are [ContentFit] and
// [FixedBox].
type SizingPolicy interface {
	// Layout computes the layout for a source image with the given
	// natural size.  Both dimensions are positive.
	Layout(srcWidth, srcHeight int) Layout

	isSizingPolicy()
}

// Layout is the result of applying a [SizingPolicy].
type Layout struct {
	// Width and Height give the logical size of the surface.
	Width, Height int

	// Image is the area, in logical pixels, covered by the source image.
	Image rect.Rect
}

// ContentFit sizes the surface after the source image.  Images with a side
// longer than MaxSide are scaled down, preserving the aspect ratio; smaller
// images are used at their natural size.  The image covers the whole
// surface.
type ContentFit struct {
	// MaxSide is the maximal width and height of the surface in logical
	// pixels.  If this is zero or negative, DefaultMaxSide is used.
	MaxSide int
}

// Layout implements the [SizingPolicy] interface.
func (c ContentFit) Layout(srcWidth, srcHeight int) Layout {
	maxSide := c.MaxSide
	if maxSide <= 0 {
		maxSide = DefaultMaxSide
	}

	scale := min(1, float64(maxSide)/float64(max(srcWidth, srcHeight)))
	w := max(1, int(math.Round(float64(srcWidth)*scale)))
	h := max(1, int(math.Round(float64(srcHeight)*scale)))
	return Layout{
		Width:  w,
		Height: h,
		Image:  rect.Rect{URx: float64(w), URy: float64(h)},
	}
}

func (ContentFit) isSizingPolicy() {}

// FixedBox uses a surface of fixed logical size.  The source image is
// scaled to fit inside the box, preserving the aspect ratio, and centred.
// Where the aspect ratios differ, the surface is left transparent on two
// sides.
type FixedBox struct {
	Width, Height int
}

// Layout implements the [SizingPolicy] interface.
func (b FixedBox) Layout(srcWidth, srcHeight int) Layout {
	w, h := max(1, b.Width), max(1, b.Height)

	scale := min(float64(w)/float64(srcWidth), float64(h)/float64(srcHeight))
	dw := float64(srcWidth) * scale
	dh := float64(srcHeight) * scale
	x := (float64(w) - dw) / 2
	y := (float64(h) - dh) / 2
	return Layout{
		Width:  w,
		Height: h,
		Image:  rect.Rect{LLx: x, LLy: y, URx: x + dw, URy: y + dh},
	}
}

func (FixedBox) isSizingPolicy() {}
