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

// largeCases use the default 240×240 canvas of the editor.
var largeCases = []TestCase{
	{
		Name:   "canvas",
		Width:  240,
		Height: 240,
		Shapes: []shape.Shape{shape.New(shape.Rect, 1, pt(0, 0), pt(239, 239))},
	},
	{
		Name:   "diamond",
		Width:  240,
		Height: 240,
		Shapes: []shape.Shape{
			shape.New(shape.Polygon, 2, pt(120, 10), pt(230, 120), pt(120, 230), pt(10, 120)),
		},
	},
	{
		Name:   "tiles",
		Width:  240,
		Height: 240,
		Shapes: tiles(8, 240, 4),
	},
	{
		Name:   "tiles_grid",
		Width:  240,
		Height: 240,
		Cells:  32,
		Shapes: tiles(8, 240, 4),
	},
	{
		Name:   "clipped",
		Width:  240,
		Height: 240,
		Shapes: []shape.Shape{
			shape.New(shape.Circle, 3, pt(0, 120), pt(150, 120)),
			shape.New(shape.Rect, 4, pt(-50, 200), pt(300, 300)),
		},
	},
}

// tiles covers a size×size canvas with n×n rectangles, separated by gaps
// of the given width.  Colours cycle through the palette.
func tiles(n, size int, gap float64) []shape.Shape {
	cell := float64(size) / float64(n)
	var res []shape.Shape
	for row := range n {
		for col := range n {
			x0 := float64(col)*cell + gap
			y0 := float64(row)*cell + gap
			c := 1 + (row*n+col)%15
			res = append(res, shape.New(shape.Rect, c, pt(x0, y0), pt(x0+cell-2*gap, y0+cell-2*gap)))
		}
	}
	return res
}
