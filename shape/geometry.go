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

package shape

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// HitTolerance is the distance, in logical pixels, within which a click
// selects a line or a node.
const HitTolerance = 10

// fillHalfSize is half the edge length of the block painted by a Fill
// shape when no grid is active.
const fillHalfSize = 2

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498

// Radius returns the radius of a circle shape, rounded down to an integer
// as used by the rasteriser.
func (s Shape) Radius() int {
	if len(s.Points) < 2 {
		return 0
	}
	return int(math.Floor(s.Points[1].Sub(s.Points[0]).Length()))
}

// Contains reports whether the point p hits the shape.  Lines are hit
// within [HitTolerance] of any segment.  Fill shapes are hit anywhere in
// their grid cell, or within 2 pixels of their point if cellSize is 0.
// Malformed shapes contain no points.
func (s Shape) Contains(p vec.Vec2, cellSize int) bool {
	if s.Validate() != nil {
		return false
	}
	pts := s.Points

	switch s.Kind {
	case Line:
		for i := 1; i < len(pts); i++ {
			if SegmentDistance(p, pts[i-1], pts[i]) < HitTolerance {
				return true
			}
		}
		return false

	case Rect:
		b := s.Bounds(cellSize)
		return p.X >= b.LLx && p.X <= b.URx && p.Y >= b.LLy && p.Y <= b.URy

	case Circle:
		r := pts[1].Sub(pts[0]).Length()
		return p.Sub(pts[0]).Length() <= r

	case Oval:
		c, rx, ry := ellipseFrame(pts[0], pts[1])
		if rx == 0 || ry == 0 {
			return false
		}
		dx := (p.X - c.X) / rx
		dy := (p.Y - c.Y) / ry
		return dx*dx+dy*dy <= 1

	case Triangle:
		area := func(a, b, c vec.Vec2) float64 {
			return math.Abs((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y))
		}
		whole := area(pts[0], pts[1], pts[2])
		parts := area(p, pts[1], pts[2]) + area(pts[0], p, pts[2]) + area(pts[0], pts[1], p)
		return math.Abs(whole-parts) < 1

	case Polygon:
		return insidePolygon(p, pts)

	case Fill:
		q := pts[0]
		if cellSize > 0 {
			c := float64(cellSize)
			return math.Floor(q.X/c) == math.Floor(p.X/c) && math.Floor(q.Y/c) == math.Floor(p.Y/c)
		}
		return math.Abs(p.X-q.X) <= fillHalfSize && math.Abs(p.Y-q.Y) <= fillHalfSize

	default:
		return false
	}
}

// Bounds returns the bounding box of the shape in logical coordinates.
// The box of a Fill shape is its grid cell, or the painted block when no
// grid is active.  Malformed shapes have an empty bounding box.
func (s Shape) Bounds(cellSize int) rect.Rect {
	if s.Validate() != nil {
		return rect.Rect{}
	}
	pts := s.Points
	switch s.Kind {
	case Circle:
		r := pts[1].Sub(pts[0]).Length()
		c := pts[0]
		return rect.Rect{LLx: c.X - r, LLy: c.Y - r, URx: c.X + r, URy: c.Y + r}
	case Fill:
		q := pts[0]
		if cellSize > 0 {
			c := float64(cellSize)
			x := math.Floor(q.X/c) * c
			y := math.Floor(q.Y/c) * c
			return rect.Rect{LLx: x, LLy: y, URx: x + c, URy: y + c}
		}
		return rect.Rect{
			LLx: q.X - fillHalfSize, LLy: q.Y - fillHalfSize,
			URx: q.X + fillHalfSize, URy: q.Y + fillHalfSize,
		}
	}

	b := rect.Rect{LLx: pts[0].X, LLy: pts[0].Y, URx: pts[0].X, URy: pts[0].Y}
	for _, p := range pts[1:] {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}

// Path returns the vector outline of the shape.  Lines give an open path,
// all other kinds a closed one.  Circles and ovals are approximated by
// four cubic Bézier segments.  Malformed shapes give an empty path.
func (s Shape) Path(cellSize int) *path.Data {
	p := &path.Data{}
	if s.Validate() != nil {
		return p
	}
	pts := s.Points

	switch s.Kind {
	case Line:
		p = p.MoveTo(pts[0])
		for _, q := range pts[1:] {
			p = p.LineTo(q)
		}
		return p

	case Rect, Fill:
		b := s.Bounds(cellSize)
		return p.MoveTo(vec.Vec2{X: b.LLx, Y: b.LLy}).
			LineTo(vec.Vec2{X: b.URx, Y: b.LLy}).
			LineTo(vec.Vec2{X: b.URx, Y: b.URy}).
			LineTo(vec.Vec2{X: b.LLx, Y: b.URy}).
			Close()

	case Circle:
		r := pts[1].Sub(pts[0]).Length()
		return ellipsePath(p, pts[0], r, r)

	case Oval:
		c, rx, ry := ellipseFrame(pts[0], pts[1])
		return ellipsePath(p, c, rx, ry)

	case Triangle, Polygon:
		p = p.MoveTo(pts[0])
		for _, q := range pts[1:] {
			p = p.LineTo(q)
		}
		return p.Close()
	}
	return p
}

func ellipsePath(p *path.Data, c vec.Vec2, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
	cx, cy := c.X, c.Y

	return p.MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}

// ellipseFrame returns centre and radii of the ellipse inscribed in the
// box spanned by a and b.
func ellipseFrame(a, b vec.Vec2) (c vec.Vec2, rx, ry float64) {
	c = vec.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	return c, math.Abs(b.X-a.X) / 2, math.Abs(b.Y-a.Y) / 2
}

// SegmentDistance returns the distance from p to the segment from a to b.
func SegmentDistance(p, a, b vec.Vec2) float64 {
	d := b.Sub(a)
	lenSq := d.Dot(d)
	if lenSq == 0 {
		return p.Sub(a).Length()
	}
	t := p.Sub(a).Dot(d) / lenSq
	t = max(0, min(1, t))
	return p.Sub(a.Add(d.Mul(t))).Length()
}

// insidePolygon implements the even-odd ray casting test.
func insidePolygon(p vec.Vec2, pts []vec.Vec2) bool {
	inside := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
		j = i
	}
	return inside
}
