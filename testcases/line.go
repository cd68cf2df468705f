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

var lineCases = []TestCase{
	{
		Name:   "horizontal",
		Width:  32,
		Height: 32,
		Shapes: []shape.Shape{shape.New(shape.Line, 1, pt(4, 16), pt(27, 16))},
	},
	{
		Name:   "diagonal",
		Width:  32,
		Height: 32,
		Shapes: []shape.Shape{shape.New(shape.Line, 2, pt(3, 3), pt(28, 20))},
	},
	{
		Name:   "steep",
		Width:  32,
		Height: 32,
		Shapes: []shape.Shape{shape.New(shape.Line, 3, pt(20, 2), pt(14, 29))},
	},
	{
		Name:   "degenerate",
		Width:  16,
		Height: 16,
		Shapes: []shape.Shape{shape.New(shape.Line, 4, pt(7, 7), pt(7, 7))},
	},
	{
		Name:   "polyline",
		Width:  48,
		Height: 32,
		Shapes: []shape.Shape{
			shape.New(shape.Line, 5, pt(2, 28), pt(12, 4), pt(24, 26), pt(36, 6), pt(45, 20)),
		},
	},
	{
		Name:   "wide",
		Width:  48,
		Height: 48,
		Shapes: []shape.Shape{
			wide(shape.New(shape.Line, 6, pt(6, 40), pt(40, 8)), 5),
			wide(shape.New(shape.Line, 7, pt(6, 8), pt(40, 40)), 2),
		},
	},
	{
		Name:   "fractional",
		Width:  32,
		Height: 32,
		Shapes: []shape.Shape{shape.New(shape.Line, 8, pt(2.7, 3.2), pt(29.9, 17.5))},
	},
}
