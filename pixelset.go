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

import (
	"cmp"
	"errors"
	"fmt"
	"image"
	"image/color"
	"maps"
	"slices"

	"seehuhn.de/go/pixelart/shape"
)

// PixelSet is a set of logical pixel coordinates.
type PixelSet map[image.Point]struct{}

// Has reports whether p is in the set.
func (ps PixelSet) Has(p image.Point) bool {
	_, ok := ps[p]
	return ok
}

// Union returns a new set with the pixels of ps and of other.
func (ps PixelSet) Union(other PixelSet) PixelSet {
	res := maps.Clone(ps)
	if res == nil {
		res = PixelSet{}
	}
	maps.Copy(res, other)
	return res
}

// Subtract returns a new set with the pixels of ps which are not in other.
func (ps PixelSet) Subtract(other PixelSet) PixelSet {
	res := PixelSet{}
	for p := range ps {
		if !other.Has(p) {
			res[p] = struct{}{}
		}
	}
	return res
}

// Intersect returns a new set with the pixels which are both in ps and in
// other.
func (ps PixelSet) Intersect(other PixelSet) PixelSet {
	small, large := ps, other
	if len(small) > len(large) {
		small, large = large, small
	}
	res := PixelSet{}
	for p := range small {
		if large.Has(p) {
			res[p] = struct{}{}
		}
	}
	return res
}

// Bounds returns the smallest rectangle which contains all pixels of the
// set.  The rectangle is empty for an empty set.
func (ps PixelSet) Bounds() image.Rectangle {
	var b image.Rectangle
	for p := range ps {
		b = b.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	return b
}

// Sorted returns the pixels of the set in row-major order.
func (ps PixelSet) Sorted() []image.Point {
	return slices.SortedFunc(maps.Keys(ps), func(a, b image.Point) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
}

// silhouettePalette is used to draw shape silhouettes.  Only the coverage
// matters, not the colour.
var silhouettePalette = color.Palette{color.Black}

// Silhouette returns the pixels covered by the given shapes, clipped to
// the canvas of w×h logical pixels.
//
// Shapes are drawn filled, at scale 1, without grid and without dither.
// Lines keep their width, so that the silhouette of a line is exactly
// the set of pixels it paints, in every direction, and a zero-length
// line still covers its brush.  Malformed shapes are skipped; the
// returned error reports them.
func Silhouette(shapes []shape.Shape, w, h int) (PixelSet, error) {
	pc := &pixelCollector{pixels: PixelSet{}, w: w, h: h}
	r := NewRasteriser(silhouettePalette)

	var errs []error
	for i, s := range shapes {
		if err := s.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("shape %d: %w", i, err))
			continue
		}
		base := shape.Shape{Kind: s.Kind, Points: s.Points, LineWidth: s.LineWidth}
		// base is built from a valid shape and cannot fail.
		_ = r.Rasterise(base, pc)
	}
	Logger().Debug("silhouette", "shapes", len(shapes), "pixels", len(pc.pixels))
	return pc.pixels, errors.Join(errs...)
}
