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
	"context"
	"errors"
	"image"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/squircle/raster"
)

// Compositor draws images into surfaces, clipped to a squircle.
// The zero value is ready to use.  A Compositor holds no per-draw state and
// may be used from several goroutines at once.
type Compositor struct {
	// Interpolator is used to scale the source image.
	// If this is nil, draw.CatmullRom is used.
	Interpolator draw.Interpolator

	// Flatness is the curve tolerance of the clip path, in physical pixels.
	// If this is zero or negative, raster.DefaultFlatness is used.
	Flatness float64
}

var defaultCompositor Compositor

// DrawMasked draws the image from src into s, clipped to a squircle, using
// the default Compositor.  See [Compositor.Draw].
func DrawMasked(ctx context.Context, s *Surface, src Source, shape Params, policy SizingPolicy) error {
	return defaultCompositor.Draw(ctx, s, src, shape, policy)
}

// rasterisers holds scratch rasterisers for the clip masks.
var rasterisers = sync.Pool{
	New: func() any {
		return raster.NewRasteriser(rect.Rect{})
	},
}

// Draw loads the image from src and draws it into s, clipped to the
// squircle described by shape.
//
// The surface is first resized to the layout chosen by policy (if policy is
// nil, ContentFit with the default maximum side is used), keeping its
// device pixel ratio.  Resizing discards the previous content, so repeated
// calls with the same arguments give identical results.  The squircle is
// computed for the logical size of the surface, and the image is drawn
// into the layout's image rectangle.  Pixels outside the squircle stay
// transparent.
//
// If s is nil, Draw does nothing and returns nil.  If the image cannot be
// loaded, the error is an [*ImageLoadError] and s is not modified.
func (c *Compositor) Draw(ctx context.Context, s *Surface, src Source, shape Params, policy SizingPolicy) error {
	if s == nil {
		Logger().Debug("squircle: no surface, draw skipped")
		return nil
	}
	if src == nil {
		return &ImageLoadError{Err: errors.New("no image source")}
	}
	if policy == nil {
		policy = ContentFit{}
	}

	img, err := src.Load(ctx)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return &ImageLoadError{Err: err}
	}

	sb := img.Bounds()
	layout := policy.Layout(sb.Dx(), sb.Dy())

	s.mu.Lock()
	defer s.mu.Unlock()

	s.resize(layout.Width, layout.Height, s.wantRatio)
	ratio := s.ratio

	// the surface may be smaller than requested
	ir := layout.Image
	if s.width != layout.Width || s.height != layout.Height {
		fx := float64(s.width) / float64(layout.Width)
		fy := float64(s.height) / float64(layout.Height)
		ir = rect.Rect{LLx: ir.LLx * fx, LLy: ir.LLy * fy, URx: ir.URx * fx, URy: ir.URy * fy}
	}

	r := rasterisers.Get().(*raster.Rasteriser)
	defer rasterisers.Put(r)
	r.Reset(rect.Rect{})
	r.CTM = matrix.Scale(ratio, ratio)
	if c.Flatness > 0 {
		r.Flatness = c.Flatness
	}
	clip := shape.Path(float64(s.width), float64(s.height))
	mask := r.Mask(s.pix.Rect, clip)

	// map the source rectangle onto the image area, in physical pixels
	sx := (ir.URx - ir.LLx) * ratio / float64(sb.Dx())
	sy := (ir.URy - ir.LLy) * ratio / float64(sb.Dy())
	s2d := f64.Aff3{
		sx, 0, ir.LLx*ratio - float64(sb.Min.X)*sx,
		0, sy, ir.LLy*ratio - float64(sb.Min.Y)*sy,
	}
	c.interpolator().Transform(s.pix, s2d, img, sb, draw.Over, &draw.Options{
		DstMask:  mask,
		DstMaskP: image.Point{},
	})

	Logger().Debug("squircle: drawn",
		"src", sb.Size(),
		"logical", image.Pt(s.width, s.height),
		"physical", s.pix.Rect.Size(),
		"ratio", ratio,
		"radius", shape.Radius,
		"mode", shape.Mode,
		"smoothing", shape.Smoothing)
	return nil
}

func (c *Compositor) interpolator() draw.Interpolator {
	if c.Interpolator == nil {
		return draw.CatmullRom
	}
	return c.Interpolator
}
