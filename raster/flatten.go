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
	"math"

	"seehuhn.de/go/geom/vec"
)

// linear applies the linear part of the CTM to v.  The translation does
// not matter when measuring how far a curve bends.
func (r *Rasteriser) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// line segments and passes them to emit.  Points are in user space; the
// number of segments is chosen so that the error in device space stays
// below r.Flatness.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	// maximal distance between curve and chord is |p0 - 2p1 + p2| / 4
	d := r.linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if d > r.Flatness {
		n = int(math.Ceil(math.Sqrt(d / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier curve p0, p1, p2, p3 by line
// segments and passes them to emit.  The segment count follows Wang's
// formula, evaluated in device space.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if k := math.Sqrt(3 * m / (4 * r.Flatness)); k > 1 {
			n = int(math.Ceil(k))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}
