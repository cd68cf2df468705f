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

// Package pixelart draws vector shapes as pixel art and combines shapes
// with boolean operations.
//
// A [Rasteriser] converts a [shape.Shape] into logical pixels, or into
// whole grid cells when a grid is active.  Shapes with a dither pattern
// paint only the pixels selected by the pattern.
//
// Boolean operations work on pixel sets: both operands are drawn as
// filled silhouettes ([Silhouette]), the sets are combined, and the
// outline of the result is traced and simplified into a new polygon
// ([Boolean]).
package pixelart

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"errors"
	"fmt"

	"seehuhn.de/go/pixelart/shape"
)

// Render draws the shapes onto dst in order, so that later shapes cover
// earlier ones.  Malformed shapes are skipped and reported in the
// returned error; all other shapes are still drawn.
func (r *Rasteriser) Render(shapes []shape.Shape, dst Surface) error {
	var errs []error
	for i, s := range shapes {
		if err := r.Rasterise(s, dst); err != nil {
			errs = append(errs, fmt.Errorf("shape %d (%s): %w", i, s.Kind, err))
		}
	}
	if len(errs) > 0 {
		Logger().Warn("shapes skipped", "count", len(errs))
	}
	return errors.Join(errs...)
}
