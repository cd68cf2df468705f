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

var rectCases = []TestCase{
	{
		Name:   "filled",
		Width:  16,
		Height: 16,
		Shapes: []shape.Shape{shape.New(shape.Rect, 1, pt(0, 0), pt(9, 9))},
	},
	{
		Name:   "reversed_corners",
		Width:  32,
		Height: 32,
		Shapes: []shape.Shape{shape.New(shape.Rect, 2, pt(25, 21), pt(6, 3))},
	},
	{
		Name:   "outline",
		Width:  32,
		Height: 32,
		Shapes: []shape.Shape{outlined(shape.New(shape.Rect, 3, pt(4, 4), pt(27, 20)), 1)},
	},
	{
		Name:   "outline_wide",
		Width:  32,
		Height: 32,
		Shapes: []shape.Shape{outlined(shape.New(shape.Rect, 4, pt(5, 5), pt(26, 26)), 3)},
	},
	{
		Name:   "subpixel",
		Width:  32,
		Height: 32,
		Shapes: []shape.Shape{shape.New(shape.Rect, 5, pt(3.75, 4.25), pt(20.5, 9.99))},
	},
	{
		Name:   "clipped",
		Width:  32,
		Height: 32,
		Shapes: []shape.Shape{shape.New(shape.Rect, 6, pt(-10, 20), pt(40, 50))},
	},
	{
		Name:   "single_fill",
		Width:  16,
		Height: 16,
		Shapes: []shape.Shape{shape.New(shape.Fill, 7, pt(8.5, 8.5))},
	},
}
