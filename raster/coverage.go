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
	"cmp"
	"math"
	"slices"
)

// edge is a line segment in device space.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // inverse slope, (x1-x0)/(y1-y0)
}

func (e *edge) yRange() (float64, float64) {
	if e.y0 < e.y1 {
		return e.y0, e.y1
	}
	return e.y1, e.y0
}

// Every edge adds two quantities to the pixels it crosses:
//
//	cover: the signed height of the part of the edge inside the pixel
//	area:  cover, weighted by the fraction of the pixel to the right of the edge
//
// Summing cover from the left and adding the area of the current pixel
// gives the signed winding area, which is the pixel coverage after taking
// the absolute value and clamping to [0, 1].

// accumulate adds the part of e inside scanline y to cover and area.
// Both slices are indexed by x-x0 and hold x1-x0 values.
// Contributions left of x0 are added to the first pixel, so that the
// running sum in integrate still sees them.
func accumulate(e *edge, y int, cover, area []float32, x0, x1 int) {
	yLo, yHi := e.yRange()
	yTop := max(float64(y), yLo)
	yBot := min(float64(y+1), yHi)
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xTop, xBot)))
	pixRight := int(math.Floor(max(xTop, xBot)))

	switch {
	case pixRight < x0:
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	case pixLeft >= x1:
		return
	case pixLeft == pixRight:
		addSpan(e, yTop, yBot, sign, pixLeft, cover, area, x0, x1)
		return
	}

	// The edge crosses several pixel columns: split it at the column
	// boundaries.
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		addSpan(e, lo, hi, sign, pix, cover, area, x0, x1)
	}
}

// addSpan adds the part of e between yTop and yBot, which lies inside the
// pixel column pix.
func addSpan(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, x0, x1 int) {
	c := sign * float32(yBot-yTop)
	switch {
	case pix < x0:
		cover[0] += c
		area[0] += c
	case pix < x1:
		xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
		i := pix - x0
		cover[i] += c
		area[i] += c * float32(1-(xMid-float64(pix)))
	}
}

// integrate turns one scanline of cover and area values into coverage.
// The result overwrites cover.
func integrate(cover, area []float32) {
	var sum float32
	for i := range cover {
		v := sum + area[i]
		sum += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros strips zero coverage from both ends of a scanline.
// The returned slice is nil if all values are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// fillSmall rasterises the current edge list using one buffer row per
// scanline of the bounding box.
func (r *Rasteriser) fillSmall(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	w := xMax - xMin
	h := yMax - yMin

	n := w * h
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	clear(r.cover)
	clear(r.area)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], h)[:h]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]
		lo, hi := e.yRange()
		first := max(int(math.Floor(lo)), yMin)
		last := min(int(math.Floor(hi))+1, yMax)
		for y := first; y < last; y++ {
			row := y - yMin
			off := row * w
			accumulate(e, y, r.cover[off:off+w], r.area[off:off+w], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range h {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * w
		line := r.cover[off : off+w]
		integrate(line, r.area[off:off+w])
		if vals, dx := trimZeros(line); vals != nil {
			emit(yMin+row, xMin+dx, vals)
		}
	}
}

// fillLarge rasterises the current edge list one scanline at a time,
// keeping a list of the edges which intersect the current scanline.
func (r *Rasteriser) fillLarge(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	w := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		aLo, _ := a.yRange()
		bLo, _ := b.yRange()
		return cmp.Compare(aLo, bLo)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := float64(y + 1)

		for next < len(r.edges) {
			if lo, _ := r.edges[next].yRange(); lo >= bottom {
				break
			}
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if _, hi := e.yRange(); hi <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			accumulate(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area)
		if vals, dx := trimZeros(r.cover); vals != nil {
			emit(y, xMin+dx, vals)
		}
	}
}
