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


// Package testcases holds drawings shared by the tests, the benchmarks and
// the fixture export tools.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixelart/grid"
	"seehuhn.de/go/pixelart/shape"
)

// TestCase is a small drawing.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Width  int           // canvas width in logical pixels
	Height int           // canvas height in logical pixels
	Cells  int           // grid cells along the shorter side (0 = no grid)
	Shapes []shape.Shape // in drawing order
	CTM    matrix.Matrix // applied to all points (zero-value means no transform)
}

// CellSize returns the grid cell size in logical pixels.
func (tc TestCase) CellSize() int {
	return grid.CellSize(tc.Width, tc.Height, tc.Cells)
}

// Scene returns copies of the shapes with the CTM applied.  The caller
// may modify the result.
func (tc TestCase) Scene() []shape.Shape {
	res := make([]shape.Shape, len(tc.Shapes))
	for i, s := range tc.Shapes {
		res[i] = s.Clone()
		if tc.CTM != (matrix.Matrix{}) {
			res[i].Transform(tc.CTM)
		}
	}
	return res
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func wide(s shape.Shape, width int) shape.Shape {
	s.LineWidth = width
	return s
}

func outlined(s shape.Shape, width int) shape.Shape {
	s.Outline = true
	return wide(s, width)
}

func named(s shape.Shape, name string) shape.Shape {
	s.Name = name
	return s
}
