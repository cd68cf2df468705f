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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixelart/contour"
	"seehuhn.de/go/pixelart/dither"
	"seehuhn.de/go/pixelart/shape"
)

// Op selects a boolean operation on shapes.
type Op int

// These are the supported boolean operations.
const (
	Union Op = iota
	Subtract
	Intersect
)

var opNames = [...]string{
	Union:     "union",
	Subtract:  "subtract",
	Intersect: "intersect",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

// ErrOp indicates an unknown boolean operation.
var ErrOp = errors.New("pixelart: unknown boolean operation")

// ParseOp converts an operation name to an Op.
func ParseOp(name string) (Op, error) {
	for op, n := range opNames {
		if n == name {
			return Op(op), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrOp, name)
}

// Apply combines two pixel sets.
func (op Op) Apply(a, b PixelSet) (PixelSet, error) {
	switch op {
	case Union:
		return a.Union(b), nil
	case Subtract:
		return a.Subtract(b), nil
	case Intersect:
		return a.Intersect(b), nil
	default:
		return nil, fmt.Errorf("%w %d", ErrOp, int(op))
	}
}

// Boolean combines the silhouettes of a and b on a w×h canvas and
// returns the outline of the result as a new filled polygon of the given
// colour.  If the result is empty, or its outline has fewer than three
// points, Boolean returns [ErrEmpty].
//
// If the result consists of several separate parts, the polygon may
// cover only one of them.
func Boolean(op Op, a, b shape.Shape, w, h, color int) (*shape.Shape, error) {
	pa, err := Silhouette([]shape.Shape{a}, w, h)
	if err != nil {
		return nil, err
	}
	pb, err := Silhouette([]shape.Shape{b}, w, h)
	if err != nil {
		return nil, err
	}
	res, err := op.Apply(pa, pb)
	if err != nil {
		return nil, err
	}
	pts, err := outline(res)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	poly := shape.New(shape.Polygon, color, pts...)
	return &poly, nil
}

// ConvertToPolygon replaces a shape by a polygon which follows the
// outline of its silhouette.  Colour and outline mode are kept.
// Polygons are returned unchanged.
func ConvertToPolygon(s shape.Shape, w, h int) (*shape.Shape, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Kind == shape.Polygon {
		res := s.Clone()
		return &res, nil
	}
	ps, err := Silhouette([]shape.Shape{s}, w, h)
	if err != nil {
		return nil, err
	}
	pts, err := outline(ps)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", s.Kind, err)
	}
	poly := shape.New(shape.Polygon, s.Color, pts...)
	poly.Outline = s.Outline
	return &poly, nil
}

func outline(ps PixelSet) ([]vec.Vec2, error) {
	if len(ps) == 0 {
		return nil, ErrEmpty
	}
	pts := TraceContour(ps)
	Logger().Debug("traced outline", "pixels", len(ps), "points", len(pts))
	if len(pts) < 3 {
		return nil, ErrEmpty
	}
	return pts, nil
}

// TraceContour returns a simplified closed outline of the pixel set.
// See [contour.Trace] for the limitations of the tracer.
func TraceContour(ps PixelSet) []vec.Vec2 {
	return contour.Trace(contour.FromPoints(ps.Sorted()))
}

// TraceContoursWithHoles returns the outline of the largest connected
// part of the pixel set, followed by the outlines of the holes in it.
func TraceContoursWithHoles(ps PixelSet) [][]vec.Vec2 {
	return contour.TraceWithHoles(contour.FromPoints(ps.Sorted()))
}

// SimplifyPolygon reduces the number of vertices of a closed polygon.
// See [contour.Simplify].
func SimplifyPolygon(pts []vec.Vec2, tolerance float64) []vec.Vec2 {
	return contour.Simplify(pts, tolerance)
}

// DitherSample reports whether dither pattern p paints the logical pixel
// containing (x, y), at magnification scale.
func DitherSample(x, y float64, p, scale int) bool {
	return dither.Sample(x, y, p, scale)
}
