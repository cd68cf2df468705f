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

var ellipseCases = []TestCase{
	{
		Name:   "circle_small",
		Width:  16,
		Height: 16,
		Shapes: []shape.Shape{shape.New(shape.Circle, 1, pt(8, 8), pt(10, 8))},
	},
	{
		Name:   "circle",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{shape.New(shape.Circle, 2, pt(32, 32), pt(50, 40))},
	},
	{
		Name:   "circle_outline",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{outlined(shape.New(shape.Circle, 3, pt(32, 32), pt(32, 5)), 1)},
	},
	{
		Name:   "circle_zero",
		Width:  16,
		Height: 16,
		Shapes: []shape.Shape{shape.New(shape.Circle, 4, pt(8, 8), pt(8.5, 8.5))},
	},
	{
		Name:   "oval",
		Width:  64,
		Height: 48,
		Shapes: []shape.Shape{shape.New(shape.Oval, 5, pt(6, 8), pt(57, 39))},
	},
	{
		Name:   "oval_outline",
		Width:  64,
		Height: 48,
		Shapes: []shape.Shape{outlined(shape.New(shape.Oval, 6, pt(57, 39), pt(6, 8)), 1)},
	},
	{
		Name:   "oval_flat",
		Width:  32,
		Height: 32,
		Shapes: []shape.Shape{shape.New(shape.Oval, 7, pt(4, 16), pt(28, 16))},
	},
	{
		Name:   "oval_odd",
		Width:  32,
		Height: 32,
		Shapes: []shape.Shape{shape.New(shape.Oval, 8, pt(3, 4), pt(24, 11))},
	},
}
