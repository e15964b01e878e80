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
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"

	// image formats accepted by Encoded
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Source provides the image to be drawn.  Load may block; it must return
// promptly once ctx is cancelled.  The returned image is not modified.
type Source interface {
	Load(ctx context.Context) (image.Image, error)
}

// Decoded is a Source for an image which is already in memory.
type Decoded struct {
	Image image.Image
}

// Load implements the [Source] interface.
func (d Decoded) Load(ctx context.Context) (image.Image, error) {
	if d.Image == nil {
		return nil, errors.New("no image")
	}
	if err := checkSize(d.Image.Bounds().Dx(), d.Image.Bounds().Dy()); err != nil {
		return nil, err
	}
	return d.Image, nil
}

// Encoded is a Source for an image file in one of the registered formats:
// PNG, JPEG, GIF, WebP, BMP or TIFF.
type Encoded []byte

// Load implements the [Source] interface.
func (e Encoded) Load(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(e) == 0 {
		return nil, errors.New("empty image data")
	}
	img, format, err := image.Decode(bytes.NewReader(e))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := checkSize(img.Bounds().Dx(), img.Bounds().Dy()); err != nil {
		return nil, fmt.Errorf("%s image: %w", format, err)
	}
	return img, nil
}

// ImageInfo describes an encoded image.
type ImageInfo struct {
	Format        string
	Width, Height int
}

// DecodeConfig reads the format and natural size of an encoded image,
// without decoding the pixel data.  Failures are reported as
// [*ImageLoadError].
func DecodeConfig(data []byte) (*ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &ImageLoadError{Err: fmt.Errorf("decode config: %w", err)}
	}
	if err := checkSize(cfg.Width, cfg.Height); err != nil {
		return nil, &ImageLoadError{Err: err}
	}
	return &ImageInfo{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}
	return nil
}
