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

// Package raster turns closed vector paths into anti-aliased coverage
// values.  It is used to build the clip masks for squircle compositing.
package raster

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rasteriser computes, for every pixel, the fraction of the pixel area
// covered by a filled path.  Coverage is reported row by row, ranging from
// 0 (outside) to 1 (inside).  Paths are filled with the nonzero winding rule.
//
// A Rasteriser keeps its scratch buffers between calls, so reusing one
// instance avoids allocations.  A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts output to this device-space rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments used to approximate it.  Must be positive.
	Flatness float64

	// paths whose bounding box has at most this many pixels are
	// rasterised using full 2D buffers, larger ones scanline by scanline.
	smallPathThreshold int

	edges       []edge
	active      []int
	rowHasEdges []bool
	cover       []float32
	area        []float32

	bbox    bool // true once the first edge has been recorded
	devXMin float64
	devXMax float64
	devYMin float64
	devYMax float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with the
// identity transformation and the default flatness.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:                matrix.Identity,
		Clip:               clip,
		Flatness:           DefaultFlatness,
		smallPathThreshold: smallPathThreshold,
	}
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept, so that a pooled Rasteriser does not need to
// allocate again.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = DefaultFlatness
	r.smallPathThreshold = smallPathThreshold

	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.rowHasEdges = r.rowHasEdges[:0]
	r.cover = r.cover[:0]
	r.area = r.area[:0]
}

// FillNonZero fills p using the nonzero winding rule.  For every scanline
// which has non-zero coverage, emit is called with the row, the device x
// coordinate of the first value, and the coverage values.  The slice passed
// to emit is only valid during the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}

	if (xMax-xMin)*(yMax-yMin) <= r.smallPathThreshold {
		r.fillSmall(xMin, xMax, yMin, yMax, emit)
	} else {
		r.fillLarge(xMin, xMax, yMin, yMax, emit)
	}
}

// collectEdges converts p into a list of device-space line segments.
// The returned box is the bounding box of the path, clipped to r.Clip.
func (r *Rasteriser) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bbox = false

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			// an open subpath is filled as if it was closed
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1], r.addEdge)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	if cur != start {
		r.addEdge(cur, start)
	}

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge records the segment from p0 to p1, given in user space.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	// horizontal edges don't change the winding number
	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
	})

	if !r.bbox {
		r.devXMin, r.devXMax = min(x0, x1), max(x0, x1)
		r.devYMin, r.devYMax = min(y0, y1), max(y0, y1)
		r.bbox = true
		return
	}
	r.devXMin = min(r.devXMin, x0, x1)
	r.devXMax = max(r.devXMax, x0, x1)
	r.devYMin = min(r.devYMin, y0, y1)
	r.devYMax = max(r.devYMax, y0, y1)
}

const (
	// DefaultFlatness is the default curve tolerance in device pixels.
	// A quarter of a pixel is below what can be seen.
	DefaultFlatness = 0.25

	// Edges with a smaller vertical extent are treated as horizontal.
	horizontalEdgeThreshold = 1e-10

	// Bounding box area, in pixels, up to which 2D buffers are used.
	smallPathThreshold = 65536
)
