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
	"image"
	"math"
	"sync"
)

// Default logical size of a new surface.  This matches the default size of
// an HTML canvas element.
const (
	DefaultSurfaceWidth  = 300
	DefaultSurfaceHeight = 150
)

// MaxSurfaceSide is the largest width or height of a surface, both in
// logical and in physical pixels.  Larger logical sizes are clamped, and
// the device pixel ratio is lowered until the physical buffer fits.
const MaxSurfaceSide = 16384

// Surface is a drawing target.  It has a logical size, in which all
// geometry is expressed, and a physical pixel buffer which is larger by the
// device pixel ratio.
//
// A Surface is safe for concurrent use; draw operations on the same surface
// are serialised.
type Surface struct {
	mu sync.Mutex

	width, height int     // logical size
	wantRatio     float64 // requested device pixel ratio
	ratio         float64 // device pixel ratio in use
	pix           *image.RGBA
}

// NewSurface returns a transparent surface of the default logical size.
// Invalid device pixel ratios (not finite, or not positive) are replaced
// by 1.
func NewSurface(deviceRatio float64) *Surface {
	s := &Surface{}
	s.resize(DefaultSurfaceWidth, DefaultSurfaceHeight, deviceRatio)
	return s
}

// Resize sets the logical size and device pixel ratio of s.  The physical
// buffer is reallocated and all previous content is discarded.
// See [MaxSurfaceSide] for the size limit.
func (s *Surface) Resize(width, height int, deviceRatio float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resize(width, height, deviceRatio)
}

// resize must be called with s.mu held.
func (s *Surface) resize(width, height int, deviceRatio float64) {
	s.width = min(max(1, width), MaxSurfaceSide)
	s.height = min(max(1, height), MaxSurfaceSide)
	s.wantRatio = validRatio(deviceRatio)
	s.ratio = min(s.wantRatio, MaxSurfaceSide/float64(max(s.width, s.height)))

	pw, ph := physicalSize(s.width, s.height, s.ratio)
	if s.pix != nil && s.pix.Rect.Dx() == pw && s.pix.Rect.Dy() == ph {
		clear(s.pix.Pix)
		return
	}
	s.pix = image.NewRGBA(image.Rect(0, 0, pw, ph))
}

// LogicalSize returns the size of s in logical pixels.
func (s *Surface) LogicalSize() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// PhysicalSize returns the size of the pixel buffer of s.
func (s *Surface) PhysicalSize() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pix.Rect.Dx(), s.pix.Rect.Dy()
}

// DeviceRatio returns the number of physical pixels per logical pixel.
// This is less than the requested ratio if the physical buffer would
// otherwise exceed [MaxSurfaceSide].
func (s *Surface) DeviceRatio() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ratio
}

// Image returns a copy of the physical pixel buffer.
func (s *Surface) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// snapshot must be called with s.mu held.
func (s *Surface) snapshot() *image.RGBA {
	img := image.NewRGBA(s.pix.Rect)
	copy(img.Pix, s.pix.Pix)
	return img
}

func validRatio(r float64) float64 {
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return 1
	}
	return r
}

func physicalSize(width, height int, ratio float64) (int, int) {
	pw := min(max(1, int(math.Round(float64(width)*ratio))), MaxSurfaceSide)
	ph := min(max(1, int(math.Round(float64(height)*ratio))), MaxSurfaceSide)
	return pw, ph
}
