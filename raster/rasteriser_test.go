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
	"fmt"
	"image"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// kappa for cubic Bézier approximation of a quarter circle
const kappa = 0.5522847498307936

// approaches lists thresholds which force the 2D-buffer code path and the
// scanline code path, respectively.
var approaches = []struct {
	name      string
	threshold int
}{
	{"small", 1 << 30},
	{"large", 0},
}

// TestTriangleCoverage checks exact coverage values for the triangle
// (0,0)→(10,0)→(10,1).  The diagonal edge is y = x/10, so pixel x is
// covered to (2x+1)/20.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	for _, a := range approaches {
		t.Run(a.name, func(t *testing.T) {
			r := NewRasteriser(rect.Rect{URx: 10, URy: 1})
			r.smallPathThreshold = a.threshold

			got := make([]float32, 10)
			r.FillNonZero(triangle, func(y, xMin int, cov []float32) {
				if y == 0 {
					copy(got[xMin:], cov)
				}
			})

			for x := range 10 {
				want := float32(2*x+1) / 20
				if math.Abs(float64(got[x]-want)) > 1e-6 {
					t.Errorf("pixel %d: coverage %.4f, want %.4f", x, got[x], want)
				}
			}
		})
	}
}

func TestRectangleMask(t *testing.T) {
	rectangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 3}).
		LineTo(vec.Vec2{X: 12, Y: 3}).
		LineTo(vec.Vec2{X: 12, Y: 9}).
		LineTo(vec.Vec2{X: 2, Y: 9}).
		Close()

	for _, a := range approaches {
		t.Run(a.name, func(t *testing.T) {
			r := NewRasteriser(rect.Rect{})
			r.smallPathThreshold = a.threshold
			mask := r.Mask(image.Rect(0, 0, 16, 16), rectangle)

			for y := range 16 {
				for x := range 16 {
					want := uint8(0)
					if x >= 2 && x < 12 && y >= 3 && y < 9 {
						want = 255
					}
					if got := mask.AlphaAt(x, y).A; got != want {
						t.Fatalf("pixel (%d,%d): alpha %d, want %d", x, y, got, want)
					}
				}
			}
		})
	}
}

// TestApproachesAgree checks that both code paths produce the same
// coverage for a curved shape.
func TestApproachesAgree(t *testing.T) {
	circle := circlePath(40, 40, 33)
	bounds := image.Rect(0, 0, 80, 80)

	r := NewRasteriser(rect.Rect{})
	r.smallPathThreshold = approaches[0].threshold
	a := r.Mask(bounds, circle)

	r.Reset(rect.Rect{})
	r.smallPathThreshold = approaches[1].threshold
	b := r.Mask(bounds, circle)

	for i := range a.Pix {
		d := int(a.Pix[i]) - int(b.Pix[i])
		if d < -1 || d > 1 {
			t.Fatalf("pixel %d: %d vs %d", i, a.Pix[i], b.Pix[i])
		}
	}
}

// TestAgainstVector compares the coverage with the rasteriser from
// golang.org/x/image/vector.
func TestAgainstVector(t *testing.T) {
	const size = 100
	const cx, cy, radius = 50.0, 50.0, 40.0

	r := NewRasteriser(rect.Rect{})
	ours := r.Mask(image.Rect(0, 0, size, size), circlePath(cx, cy, radius))

	v := vector.NewRasterizer(size, size)
	addCircleToVector(v, cx, cy, radius)
	theirs := image.NewAlpha(image.Rect(0, 0, size, size))
	v.Draw(theirs, theirs.Bounds(), image.Opaque, image.Point{})

	total := 0
	for i := range ours.Pix {
		d := int(ours.Pix[i]) - int(theirs.Pix[i])
		if d < 0 {
			d = -d
		}
		if d > 64 {
			t.Errorf("pixel %d: %d vs %d", i, ours.Pix[i], theirs.Pix[i])
		}
		total += d
	}
	if mean := float64(total) / float64(len(ours.Pix)); mean > 1 {
		t.Errorf("mean difference %.3f is too large", mean)
	}
}

func TestCTM(t *testing.T) {
	square := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 4, Y: 0}).
		LineTo(vec.Vec2{X: 4, Y: 4}).
		LineTo(vec.Vec2{X: 0, Y: 4}).
		Close()

	r := NewRasteriser(rect.Rect{})
	r.CTM = matrix.Scale(2, 2)
	mask := r.Mask(image.Rect(0, 0, 10, 10), square)

	for y := range 10 {
		for x := range 10 {
			want := uint8(0)
			if x < 8 && y < 8 {
				want = 255
			}
			if got := mask.AlphaAt(x, y).A; got != want {
				t.Fatalf("pixel (%d,%d): alpha %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestClip(t *testing.T) {
	big := (&path.Data{}).
		MoveTo(vec.Vec2{X: -50, Y: -50}).
		LineTo(vec.Vec2{X: 50, Y: -50}).
		LineTo(vec.Vec2{X: 50, Y: 50}).
		LineTo(vec.Vec2{X: -50, Y: 50}).
		Close()

	r := NewRasteriser(rect.Rect{LLx: 0, LLy: 0, URx: 8, URy: 8})
	r.FillNonZero(big, func(y, xMin int, cov []float32) {
		if y < 0 || y >= 8 || xMin < 0 || xMin+len(cov) > 8 {
			t.Errorf("emitted row %d, x range [%d,%d) outside the clip", y, xMin, xMin+len(cov))
		}
		for i, c := range cov {
			if c != 1 {
				t.Errorf("pixel (%d,%d): coverage %g, want 1", xMin+i, y, c)
			}
		}
	})
}

func TestQuadratic(t *testing.T) {
	// a quadratic "hill" has area 2/3 of its bounding box
	hill := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 30}).
		QuadTo(vec.Vec2{X: 15, Y: -30}, vec.Vec2{X: 30, Y: 30}).
		Close()

	r := NewRasteriser(rect.Rect{URx: 30, URy: 30})
	var area float64
	r.FillNonZero(hill, func(y, xMin int, cov []float32) {
		for _, c := range cov {
			area += float64(c)
		}
	})

	want := 2.0 / 3.0 * 30 * 30
	if math.Abs(area-want) > 2 {
		t.Errorf("area %.2f, want %.2f", area, want)
	}
}

func TestEmptyPath(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 10, URy: 10})
	r.FillNonZero(&path.Data{}, func(y, xMin int, cov []float32) {
		t.Errorf("unexpected output for row %d", y)
	})
}

func BenchmarkMask(b *testing.B) {
	for _, size := range []int{64, 512, 2048} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			s := float64(size)
			p := circlePath(s/2, s/2, 0.45*s)
			bounds := image.Rect(0, 0, size, size)
			r := NewRasteriser(rect.Rect{})

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(rect.Rect{})
				r.Mask(bounds, p)
			}
		})
	}
}

func BenchmarkVector(b *testing.B) {
	for _, size := range []int{64, 512, 2048} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			s := float32(size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			v := vector.NewRasterizer(size, size)

			b.ReportAllocs()
			for b.Loop() {
				v.Reset(size, size)
				addCircleToVector(v, s/2, s/2, 0.45*s)
				v.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
			}
		})
	}
}

// circlePath builds a circle from four cubic Bézier curves.
func circlePath(cx, cy, r float64) *path.Data {
	k := kappa * r
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: cx, Y: cy - r}).
		CubeTo(vec.Vec2{X: cx + k, Y: cy - r}, vec.Vec2{X: cx + r, Y: cy - k}, vec.Vec2{X: cx + r, Y: cy}).
		CubeTo(vec.Vec2{X: cx + r, Y: cy + k}, vec.Vec2{X: cx + k, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}).
		CubeTo(vec.Vec2{X: cx - k, Y: cy + r}, vec.Vec2{X: cx - r, Y: cy + k}, vec.Vec2{X: cx - r, Y: cy}).
		CubeTo(vec.Vec2{X: cx - r, Y: cy - k}, vec.Vec2{X: cx - k, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}).
		Close()
}

// addCircleToVector adds the same circle to a vector.Rasterizer.
func addCircleToVector[T float32 | float64](v *vector.Rasterizer, cx, cy, radius T) {
	x, y, r := float32(cx), float32(cy), float32(radius)
	k := float32(kappa) * r
	v.MoveTo(x, y-r)
	v.CubeTo(x+k, y-r, x+r, y-k, x+r, y)
	v.CubeTo(x+r, y+k, x+k, y+r, x, y+r)
	v.CubeTo(x-k, y+r, x-r, y+k, x-r, y)
	v.CubeTo(x-r, y-k, x-k, y-r, x, y-r)
	v.ClosePath()
}
