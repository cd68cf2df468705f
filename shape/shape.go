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

// Package shape defines the vector shapes of a pixel-art drawing.
//
// A [Shape] is a tagged variant: the [Kind] determines how many points the
// shape has and what they mean.
//
//   - [Line]: two or more points, drawn as a polyline.
//   - [Rect]: two opposite corners.
//   - [Circle]: the centre, followed by a point on the circle.
//   - [Oval]: two opposite corners of the bounding box.
//   - [Triangle]: exactly three vertices.
//   - [Polygon]: three or more vertices.
//   - [Fill]: a single point, selecting one grid cell.
//
// Code which needs to treat every kind differently does so with one
// exhaustive switch over Kind.  There are three such places: the
// rasteriser, [Shape.Contains], and the point-count rules in this file.
package shape

import (
	"errors"
	"fmt"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Kind identifies the type of a shape.
type Kind int

// These are the supported shape kinds.
const (
	Line Kind = iota
	Rect
	Circle
	Oval
	Triangle
	Polygon
	Fill
)

var kindNames = [...]string{
	Line:     "line",
	Rect:     "rect",
	Circle:   "circle",
	Oval:     "oval",
	Triangle: "triangle",
	Polygon:  "polygon",
	Fill:     "fill",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind converts the name used in project files to a Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrKind, name)
}

var (
	// ErrKind indicates an unknown shape type.
	ErrKind = errors.New("shape: unknown kind")

	// ErrPointCount indicates that a shape has the wrong number of points
	// for its kind, or that a node edit would break this rule.
	ErrPointCount = errors.New("shape: invalid number of points")

	// ErrLineWidth indicates a line width below 1.
	ErrLineWidth = errors.New("shape: line width must be positive")
)

// Shape is a single vector shape.
type Shape struct {
	Kind   Kind
	Points []vec.Vec2

	// Color is an index into the drawing palette.
	Color int

	// LineWidth is the brush diameter for lines and outlines, in logical
	// pixels.
	LineWidth int

	// Outline selects perimeter-only drawing instead of a filled shape.
	Outline bool

	// Dither is the index of the dither pattern, or nil for solid paint.
	Dither *int

	// Name is an optional user-visible label.
	Name string
}

// New returns a solid, filled shape of the given kind with line width 1.
// The points are copied.
func New(kind Kind, color int, pts ...vec.Vec2) Shape {
	return Shape{
		Kind:      kind,
		Points:    slices.Clone(pts),
		Color:     color,
		LineWidth: 1,
	}
}

// Pt is a convenience constructor for points.
func Pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// WithDither returns a copy of s which uses the given dither pattern.
func (s Shape) WithDither(pattern int) Shape {
	s = s.Clone()
	s.Dither = &pattern
	return s
}

// Clone returns a deep copy of s.  The copy shares no memory with s.
func (s Shape) Clone() Shape {
	s.Points = slices.Clone(s.Points)
	if s.Dither != nil {
		d := *s.Dither
		s.Dither = &d
	}
	return s
}

// MinPoints returns the smallest valid number of points for the kind.
func (k Kind) MinPoints() int {
	switch k {
	case Line, Rect, Circle, Oval:
		return 2
	case Triangle, Polygon:
		return 3
	case Fill:
		return 1
	default:
		return 0
	}
}

// MaxPoints returns the largest valid number of points for the kind,
// or -1 if there is no upper limit.
func (k Kind) MaxPoints() int {
	switch k {
	case Line, Polygon:
		return -1
	case Rect, Circle, Oval:
		return 2
	case Triangle:
		return 3
	case Fill:
		return 1
	default:
		return 0
	}
}

// CanAddNode reports whether the kind supports inserting points.
func (k Kind) CanAddNode() bool {
	return k.MaxPoints() < 0
}

// CanRemoveNode reports whether a point can be removed from a shape of
// this kind which currently has n points.
func (k Kind) CanRemoveNode(n int) bool {
	return k.CanAddNode() && n > k.MinPoints()
}

// Validate checks the point count and line width of s.
func (s Shape) Validate() error {
	if s.Kind < 0 || int(s.Kind) >= len(kindNames) {
		return fmt.Errorf("%w %d", ErrKind, int(s.Kind))
	}
	n := len(s.Points)
	lo, hi := s.Kind.MinPoints(), s.Kind.MaxPoints()
	if n < lo || (hi >= 0 && n > hi) {
		return fmt.Errorf("%w: %s with %d points", ErrPointCount, s.Kind, n)
	}
	if s.LineWidth < 1 {
		return fmt.Errorf("%w: %d", ErrLineWidth, s.LineWidth)
	}
	return nil
}

// Transform applies the affine map m to every point of s, in place.
func (s *Shape) Transform(m matrix.Matrix) {
	for i, p := range s.Points {
		s.Points[i] = vec.Vec2{
			X: m[0]*p.X + m[2]*p.Y + m[4],
			Y: m[1]*p.X + m[3]*p.Y + m[5],
		}
	}
}

// Translation returns the matrix which moves points by (dx, dy).
func Translation(dx, dy float64) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, 1, dx, dy}
}
