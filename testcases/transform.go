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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pixelart/shape"
)

// transformCases check that drawings moved or scaled as a whole keep
// their pixel-art look.
var transformCases = []TestCase{
	{
		Name:   "translate",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{
			shape.New(shape.Triangle, 1, pt(0, 20), pt(10, 0), pt(20, 20)),
			shape.New(shape.Circle, 2, pt(10, 30), pt(16, 30)),
		},
		CTM: shape.Translation(20.5, 11.25),
	},
	{
		Name:   "scale_2x",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{shape.New(shape.Rect, 3, pt(0, 0), pt(20, 20))},
		CTM:    matrix.Scale(2, 2).Translate(8, 8),
	},
	{
		Name:   "scale_half",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{
			shape.New(shape.Polygon, 4, pt(0, 0), pt(80, 10), pt(60, 90), pt(10, 70)),
		},
		CTM: matrix.Scale(0.5, 0.5).Translate(12, 12),
	},
	{
		Name:   "mirror",
		Width:  64,
		Height: 64,
		Shapes: []shape.Shape{
			shape.New(shape.Line, 5, pt(4, 4), pt(30, 50), pt(50, 10)),
		},
		CTM: matrix.Matrix{-1, 0, 0, 1, 64, 0},
	},
}
