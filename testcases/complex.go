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

var complexCases = []TestCase{
	{
		Name:   "house",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{
			named(shape.New(shape.Rect, 0, pt(0, 0), pt(63, 40)), "sky"),
			named(shape.New(shape.Rect, 3, pt(0, 41), pt(63, 63)), "lawn"),
			named(shape.New(shape.Rect, 4, pt(14, 30), pt(49, 54)), "wall"),
			named(shape.New(shape.Triangle, 5, pt(10, 30), pt(32, 10), pt(54, 30)), "roof"),
			named(shape.New(shape.Rect, 6, pt(28, 42), pt(35, 54)), "door"),
			named(outlined(shape.New(shape.Rect, 7, pt(18, 34), pt(24, 39)), 1), "window"),
			named(shape.New(shape.Circle, 8, pt(54, 8), pt(59, 8)), "sun"),
		},
	},
	{
		Name:   "face",
		Width:  48,
		Height: 48,
		Shapes: []shape.Shape{
			shape.New(shape.Circle, 8, pt(24, 24), pt(24, 4)),
			shape.New(shape.Oval, 1, pt(14, 14), pt(20, 22)),
			shape.New(shape.Oval, 1, pt(28, 14), pt(34, 22)),
			wide(shape.New(shape.Line, 2, pt(14, 30), pt(20, 35), pt(28, 35), pt(34, 30)), 2),
			shape.New(shape.Fill, 9, pt(24, 26)),
		},
	},
	{
		Name:   "spiral",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{
			shape.New(shape.Line, 11, spiral(32, 32, 2, 28, 3, 60)...),
		},
	},
	{
		Name:   "overlap",
		Width:  48,
		Height: 48,
		Shapes: []shape.Shape{
			shape.New(shape.Rect, 1, pt(4, 4), pt(30, 30)),
			shape.New(shape.Circle, 2, pt(30, 30), pt(44, 30)).WithDither(2),
			outlined(shape.New(shape.Polygon, 3, pt(10, 40), pt(24, 6), pt(40, 40)), 1),
		},
	},
}

// spiral returns n points on an Archimedean spiral around (cx, cy).
func spiral(cx, cy, rMin, rMax, turns float64, n int) []vec.Vec2 {
	res := make([]vec.Vec2, n)
	for i := range res {
		t := float64(i) / float64(n-1)
		r := rMin + t*(rMax-rMin)
		phi := 2 * math.Pi * turns * t
		res[i] = pt(cx+r*math.Cos(phi), cy+r*math.Sin(phi))
	}
	return res
}
