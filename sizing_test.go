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
	"fmt"
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
)

func TestContentFit(t *testing.T) {
	type test struct {
		maxSide      int
		srcW, srcH   int
		wantW, wantH int
	}
	tests := []test{
		{4096, 400, 400, 400, 400},
		{0, 400, 400, 400, 400},
		{4096, 8192, 2048, 4096, 1024},
		{4096, 2048, 8192, 1024, 4096},
		{100, 300, 200, 100, 67},
		{100, 1, 10000, 1, 100},
		{100, 100, 100, 100, 100},
		{-5, 5000, 5000, 4096, 4096},
	}
	for _, test := range tests {
		name := fmt.Sprintf("%d_%dx%d", test.maxSide, test.srcW, test.srcH)
		t.Run(name, func(t *testing.T) {
			l := ContentFit{MaxSide: test.maxSide}.Layout(test.srcW, test.srcH)
			if l.Width != test.wantW || l.Height != test.wantH {
				t.Errorf("size %dx%d, want %dx%d", l.Width, l.Height, test.wantW, test.wantH)
			}
			want := rect.Rect{URx: float64(test.wantW), URy: float64(test.wantH)}
			if l.Image != want {
				t.Errorf("image area %v, want %v", l.Image, want)
			}
		})
	}
}

// TestContentFitAspect checks that scaling never exceeds the limit and
// keeps the aspect ratio up to rounding.
func TestContentFitAspect(t *testing.T) {
	for _, maxSide := range []int{16, 500, 4096} {
		for _, src := range [][2]int{{1000, 1}, {640, 480}, {480, 640}, {4097, 4095}, {12345, 678}} {
			w, h := src[0], src[1]
			l := ContentFit{MaxSide: maxSide}.Layout(w, h)

			if max(l.Width, l.Height) > maxSide {
				t.Errorf("%d, %dx%d: result %dx%d exceeds the limit", maxSide, w, h, l.Width, l.Height)
			}

			// rounding changes each side by at most 1/2, except that
			// sides are never shorter than one pixel
			scale := min(1, float64(maxSide)/float64(max(w, h)))
			for _, side := range [][2]int{{w, l.Width}, {h, l.Height}} {
				exact := float64(side[0]) * scale
				if math.Abs(float64(side[1])-exact) > 0.5 && side[1] > 1 {
					t.Errorf("%d, %dx%d: result %dx%d distorts the image",
						maxSide, w, h, l.Width, l.Height)
				}
			}
		}
	}
}

func TestFixedBox(t *testing.T) {
	type test struct {
		box        FixedBox
		srcW, srcH int
		want       rect.Rect
	}
	tests := []test{
		{FixedBox{100, 100}, 200, 100, rect.Rect{LLx: 0, LLy: 25, URx: 100, URy: 75}},
		{FixedBox{100, 100}, 100, 200, rect.Rect{LLx: 25, LLy: 0, URx: 75, URy: 100}},
		{FixedBox{300, 150}, 600, 300, rect.Rect{LLx: 0, LLy: 0, URx: 300, URy: 150}},
		{FixedBox{300, 150}, 10, 10, rect.Rect{LLx: 75, LLy: 0, URx: 225, URy: 150}},
	}
	for _, test := range tests {
		l := test.box.Layout(test.srcW, test.srcH)
		if l.Width != test.box.Width || l.Height != test.box.Height {
			t.Errorf("%v: size %dx%d", test.box, l.Width, l.Height)
		}
		if l.Image != test.want {
			t.Errorf("%v, %dx%d: image area %v, want %v", test.box, test.srcW, test.srcH, l.Image, test.want)
		}
	}
}

func TestFixedBoxDegenerate(t *testing.T) {
	l := FixedBox{}.Layout(10, 20)
	if l.Width != 1 || l.Height != 1 {
		t.Errorf("size %dx%d, want 1x1", l.Width, l.Height)
	}
}
