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

import "seehuhn.de/go/pixelart/shape"

var ditherCases = []TestCase{
	{
		Name:   "ramp",
		Width:  76,
		Height: 16,
		Shapes: ditherRamp(),
	},
	{
		Name:   "circle_checker",
		Width:  48,
		Height: 48,
		Shapes: []shape.Shape{
			shape.New(shape.Rect, 0, pt(0, 0), pt(47, 47)),
			shape.New(shape.Circle, 9, pt(24, 24), pt(24, 4)).WithDither(9),
		},
	},
	{
		Name:   "outline",
		Width:  48,
		Height: 48,
		Shapes: []shape.Shape{
			outlined(shape.New(shape.Rect, 10, pt(4, 4), pt(43, 43)), 3).WithDither(4),
		},
	},
	{
		Name:   "grid_cells",
		Width:  64,
		Height: 64,
		Cells:  16,
		Shapes: []shape.Shape{
			shape.New(shape.Polygon, 11, pt(4, 4), pt(60, 10), pt(40, 60), pt(8, 44)).WithDither(6),
		},
	},
}

// ditherRamp returns one 4×16 bar for each dither pattern, from dense to
// sparse.
func ditherRamp() []shape.Shape {
	var res []shape.Shape
	for i := range 19 {
		x := float64(4 * i)
		res = append(res, shape.New(shape.Rect, 12, pt(x, 0), pt(x+3, 15)).WithDither(i))
	}
	return res
}
