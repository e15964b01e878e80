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

// Package gallery manages a set of images, each with its own surface, which
// share one set of squircle parameters.
//
// When the parameters change, every surface is redrawn.  Each surface is
// owned by exactly one image and is discarded when the image is removed.
package gallery

import (
	"context"
	"errors"
	"fmt"
	"image"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	"seehuhn.de/go/squircle"
)

// Default parameters, as used by the interactive editor.
const (
	DefaultRadius    = 50
	DefaultSmoothing = 0.7
)

// ErrUnknownImage is returned for operations on an image ID which is not
// (or no longer) part of the gallery.
var ErrUnknownImage = errors.New("gallery: unknown image")

// Options configures a Gallery.
type Options struct {
	// Params is the initial corner shape.  If this is the zero value,
	// DefaultRadius pixels with DefaultSmoothing is used.
	Params squircle.Params

	// Policy determines the surface size for each image.
	// If this is nil, squircle.ContentFit with the default limit is used.
	Policy squircle.SizingPolicy

	// DeviceRatio is the device pixel ratio of new surfaces.
	// Invalid values are replaced by 1.
	DeviceRatio float64

	// Compositor is used for drawing.  If this is nil, a zero Compositor
	// is used.
	Compositor *squircle.Compositor
}

// Gallery holds images together with their surfaces.
// A Gallery is safe for concurrent use.
type Gallery struct {
	comp   *squircle.Compositor
	policy squircle.SizingPolicy
	ratio  float64

	mu      sync.Mutex
	params  squircle.Params
	entries map[string]*entry
	order   []string
	nextID  int
}

type entry struct {
	name    string
	img     image.Image
	surface *squircle.Surface

	// drawMu serialises draws.  gen counts draw requests and is only
	// incremented with Gallery.mu held; a request only draws if no newer
	// request was made in the meantime.
	drawMu sync.Mutex
	gen    atomic.Uint64
}

// New returns an empty gallery.
func New(opts *Options) *Gallery {
	if opts == nil {
		opts = &Options{}
	}
	g := &Gallery{
		comp:    opts.Compositor,
		policy:  opts.Policy,
		ratio:   opts.DeviceRatio,
		params:  opts.Params,
		entries: make(map[string]*entry),
	}
	if g.comp == nil {
		g.comp = &squircle.Compositor{}
	}
	if g.policy == nil {
		g.policy = squircle.ContentFit{}
	}
	if g.params == (squircle.Params{}) {
		g.params = squircle.Params{
			Radius:    DefaultRadius,
			Smoothing: DefaultSmoothing,
		}
	}
	return g
}

// Add decodes an image file and adds it to the gallery.  A new surface is
// created for the image and drawn with the current parameters.  The name
// is the original file name, which is used to name the export.
//
// Data which is not a supported image is rejected with an error matching
// squircle.ErrImageLoad, and the gallery is not changed.
func (g *Gallery) Add(ctx context.Context, name string, data []byte) (string, error) {
	info, err := squircle.DecodeConfig(data)
	if err != nil {
		return "", fmt.Errorf("%q: %w", name, err)
	}
	img, err := squircle.Encoded(data).Load(ctx)
	if err != nil {
		return "", fmt.Errorf("%q: %w", name, &squircle.ImageLoadError{Err: err})
	}

	e := &entry{
		name:    name,
		img:     img,
		surface: squircle.NewSurface(g.ratio),
	}

	g.mu.Lock()
	g.nextID++
	id := "img-" + strconv.Itoa(g.nextID)
	g.entries[id] = e
	g.order = append(g.order, id)
	params := g.params
	gen := e.gen.Add(1)
	g.mu.Unlock()

	squircle.Logger().Debug("gallery: image added",
		"id", id, "name", name, "format", info.Format,
		"width", info.Width, "height", info.Height)

	if err := g.draw(ctx, e, params, gen); err != nil {
		g.Remove(id)
		return "", fmt.Errorf("%q: %w", name, err)
	}
	return id, nil
}

// Remove deletes an image and discards its surface.  The return value
// reports whether the image was present.
func (g *Gallery) Remove(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.entries[id]; !ok {
		return false
	}
	delete(g.entries, id)
	g.order = slices.DeleteFunc(g.order, func(x string) bool { return x == id })
	return true
}

// Params returns the current corner shape.
func (g *Gallery) Params() squircle.Params {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.params
}

// SetParams changes the corner shape and redraws all surfaces.
// Images which fail to redraw keep their previous content; the errors are
// joined in the return value.
func (g *Gallery) SetParams(ctx context.Context, p squircle.Params) error {
	g.mu.Lock()
	g.params = p
	ids := slices.Clone(g.order)
	g.mu.Unlock()

	var errs []error
	for _, id := range ids {
		err := g.Redraw(ctx, id)
		if errors.Is(err, ErrUnknownImage) {
			continue // removed concurrently
		}
		if err != nil {
			squircle.Logger().Warn("gallery: redraw failed", "id", id, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

// Redraw draws a single image with the current parameters.
func (g *Gallery) Redraw(ctx context.Context, id string) error {
	g.mu.Lock()
	e, ok := g.entries[id]
	if !ok {
		g.mu.Unlock()
		return fmt.Errorf("%s: %w", id, ErrUnknownImage)
	}
	params := g.params
	gen := e.gen.Add(1)
	g.mu.Unlock()

	return g.draw(ctx, e, params, gen)
}

// draw redraws the surface of e with the parameters of request gen.  If a
// newer request for e was made while this one waited for the entry, only
// the newer request draws.
// gen must have been taken from e.gen while g.mu was held, together
// with reading params.
func (g *Gallery) draw(ctx context.Context, e *entry, params squircle.Params, gen uint64) error {
	e.drawMu.Lock()
	defer e.drawMu.Unlock()

	if e.gen.Load() != gen {
		squircle.Logger().Debug("gallery: superseded draw skipped", "name", e.name)
		return nil
	}
	return g.comp.Draw(ctx, e.surface, squircle.Decoded{Image: e.img}, params, g.policy)
}

// Surface returns the surface of an image, or nil if id is unknown.
func (g *Gallery) Surface(id string) *squircle.Surface {
	g.mu.Lock()
	defer g.mu.Unlock()
	if e, ok := g.entries[id]; ok {
		return e.surface
	}
	return nil
}

// Name returns the original file name of an image.
func (g *Gallery) Name(id string) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if e, ok := g.entries[id]; ok {
		return e.name, true
	}
	return "", false
}

// IDs returns the IDs of all images, in the order they were added.
func (g *Gallery) IDs() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.order)
}

// Len returns the number of images.
func (g *Gallery) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.order)
}

// Export returns the file name and PNG data for the current content of an
// image's surface.
func (g *Gallery) Export(id string) (string, []byte, error) {
	g.mu.Lock()
	e, ok := g.entries[id]
	g.mu.Unlock()
	if !ok {
		return "", nil, fmt.Errorf("%s: %w", id, ErrUnknownImage)
	}

	data, err := squircle.ExportPNG(e.surface)
	if err != nil {
		return "", nil, err
	}
	return squircle.ExportName(e.name), data, nil
}
