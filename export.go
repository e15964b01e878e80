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
	"image/png"
	"io"
	"path/filepath"
	"strings"
)

// ExportSuffix is appended to the base name of exported files.
const ExportSuffix = "-squircle.png"

// ExportPNG returns the current content of s as a PNG file, at the physical
// resolution of s.  A surface which has not been drawn to gives a fully
// transparent image.
func ExportPNG(s *Surface) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodePNG writes the current content of s to w in PNG format.
// Errors from the encoder or from w are reported as [*EncodingError].
func (s *Surface) EncodePNG(w io.Writer) error {
	if s == nil {
		return ErrSurfaceUnavailable
	}

	s.mu.Lock()
	img := s.snapshot()
	s.mu.Unlock()

	if err := png.Encode(w, img); err != nil {
		return &EncodingError{Err: err}
	}
	return nil
}

// ExportName returns the file name for the export of an image which was
// loaded from a file with the given name: the extension is replaced by
// ExportSuffix.  For example, "photo.jpg" becomes "photo-squircle.png".
func ExportName(name string) string {
	if name == "" {
		return ExportSuffix
	}
	name = filepath.Base(name)
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		name = name[:i]
	}
	return name + ExportSuffix
}
