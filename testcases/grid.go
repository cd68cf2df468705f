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

// gridCases are drawn with an active grid, so that every touched cell is
// painted as a whole.
var gridCases = []TestCase{
	{
		Name:   "line",
		Width:  64,
		Height: 64,
		Cells:  16,
		Shapes: []shape.Shape{shape.New(shape.Line, 1, pt(2, 3), pt(61, 40))},
	},
	{
		Name:   "polyline_kink",
		Width:  64,
		Height: 64,
		Cells:  8,
		Shapes: []shape.Shape{shape.New(shape.Line, 2, pt(4, 4), pt(60, 30), pt(4, 60))},
	},
	{
		Name:   "rect",
		Width:  64,
		Height: 64,
		Cells:  16,
		Shapes: []shape.Shape{shape.New(shape.Rect, 3, pt(5, 9), pt(41, 30))},
	},
	{
		Name:   "circle",
		Width:  64,
		Height: 64,
		Cells:  16,
		Shapes: []shape.Shape{
			shape.New(shape.Circle, 4, pt(32, 32), pt(52, 32)),
		},
	},
	{
		Name:   "circle_outline",
		Width:  64,
		Height: 64,
		Cells:  16,
		Shapes: []shape.Shape{
			outlined(shape.New(shape.Circle, 5, pt(32, 32), pt(52, 32)), 1),
		},
	},
	{
		Name:   "oval_outline",
		Width:  64,
		Height: 64,
		Cells:  32,
		Shapes: []shape.Shape{
			outlined(shape.New(shape.Oval, 6, pt(4, 14), pt(60, 50)), 1),
		},
	},
	{
		Name:   "triangle",
		Width:  64,
		Height: 64,
		Cells:  16,
		Shapes: []shape.Shape{shape.New(shape.Triangle, 7, pt(10, 50), pt(32, 10), pt(54, 50))},
	},
	{
		Name:   "fills",
		Width:  64,
		Height: 64,
		Cells:  8,
		Shapes: []shape.Shape{
			shape.New(shape.Fill, 8, pt(3, 3)),
			shape.New(shape.Fill, 9, pt(20, 12)),
			shape.New(shape.Fill, 10, pt(63, 63)),
		},
	},
}
