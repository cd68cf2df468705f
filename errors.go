// seehuhn.de/go/pixelart - shape rasterisation for pixel-art editors
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

package pixelart

import "errors"

var (
	// ErrEmpty is returned by geometry operations whose result has no
	// pixels, or whose outline has fewer than three points.
	ErrEmpty = errors.New("pixelart: empty result")

	// ErrColorIndex indicates a shape colour outside the palette.
	ErrColorIndex = errors.New("pixelart: colour index out of range")
)
