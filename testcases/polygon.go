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


package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixelart/shape"
)

var polygonCases = []TestCase{
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{shape.New(shape.Triangle, 1, pt(10, 50), pt(32, 10), pt(54, 50))},
	},
	{
		Name:   "triangle_outline",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{outlined(shape.New(shape.Triangle, 2, pt(10, 50), pt(32, 10), pt(54, 50)), 1)},
	},
	{
		Name:   "star",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{shape.New(shape.Polygon, 3, fivePointStar(32, 32, 25)...)},
	},
	{
		Name:   "concave",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{
			shape.New(shape.Polygon, 4, pt(8, 8), pt(56, 8), pt(56, 56), pt(32, 24), pt(8, 56)),
		},
	},
	{
		Name:   "hexagon_outline",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{outlined(shape.New(shape.Polygon, 5, regular(32, 32, 24, 6)...), 2)},
	},
	{
		Name:   "sliver",
		Width:  64,
		Height: 16,
		Shapes: []shape.Shape{shape.New(shape.Triangle, 6, pt(2, 4), pt(62, 5), pt(2, 6))},
	},
}

// fivePointStar returns the vertices of a self-intersecting star,
// connecting every second point of a regular pentagon.
func fivePointStar(cx, cy, r float64) []vec.Vec2 {
	pts := regular(cx, cy, r, 5)
	return []vec.Vec2{pts[0], pts[2], pts[4], pts[1], pts[3]}
}

// regular returns the vertices of a regular n-gon with its first vertex
// at the top.
func regular(cx, cy, r float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range n {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		pts[i] = vec.Vec2{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		}
	}
	return pts
}
