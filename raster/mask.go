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

package raster

import (
	"image"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// Mask fills p into a new alpha image covering the device-space rectangle
// bounds.  The rasteriser's clip is set to bounds; CTM and Flatness are
// used as they are.
func (r *Rasteriser) Mask(bounds image.Rectangle, p *path.Data) *image.Alpha {
	dst := image.NewAlpha(bounds)
	r.Clip = rect.Rect{
		LLx: float64(bounds.Min.X),
		LLy: float64(bounds.Min.Y),
		URx: float64(bounds.Max.X),
		URy: float64(bounds.Max.Y),
	}
	r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		row := dst.Pix[dst.PixOffset(xMin, y):]
		for i, c := range coverage {
			row[i] = toAlpha(c)
		}
	})
	return dst
}

// toAlpha converts a coverage value in [0, 1] to an 8-bit alpha value.
func toAlpha(c float32) uint8 {
	return uint8(max(0, min(255, int(c*255+0.5))))
}
