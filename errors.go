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

import "errors"

var (
	// ErrImageLoad is matched by all errors caused by a source image which
	// could not be loaded or decoded.
	ErrImageLoad = errors.New("squircle: image load failure")

	// ErrSurfaceUnavailable is returned by operations which need a surface,
	// when none was given.  Drawing to a missing surface is not an error.
	ErrSurfaceUnavailable = errors.New("squircle: surface unavailable")

	// ErrEncoding is matched by all errors from PNG export.
	ErrEncoding = errors.New("squircle: encoding failure")
)

// ImageLoadError is returned when a source image cannot be loaded.
// The surface is left untouched in this case.
type ImageLoadError struct {
	Err error
}

func (e *ImageLoadError) Error() string {
	return ErrImageLoad.Error() + ": " + e.Err.Error()
}

func (e *ImageLoadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrImageLoad.
func (e *ImageLoadError) Is(target error) bool {
	return target == ErrImageLoad
}

// EncodingError is returned when the content of a surface cannot be
// encoded.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return ErrEncoding.Error() + ": " + e.Err.Error()
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrEncoding.
func (e *EncodingError) Is(target error) bool {
	return target == ErrEncoding
}
