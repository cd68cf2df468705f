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

// Package grid maps logical canvas coordinates to grid cells.
//
// A cell size of 0 means that no grid is active and every logical pixel
// can be painted individually.  When the cell size is positive, painting
// happens in whole cells.
package grid

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// CellSize returns the edge length of a grid cell, in logical pixels, when
// the shorter canvas side is divided into the given number of cells.
// The result is 0 if cells is 0 or negative (no grid), and at least 1
// otherwise.
func CellSize(canvasWidth, canvasHeight, cells int) int {
	if cells <= 0 {
		return 0
	}
	return max(1, min(canvasWidth, canvasHeight)/cells)
}

// Index returns the index of the cell which covers coord.
// If c is not positive, the pixel index floor(coord) is returned.
func Index(coord float64, c int) int {
	if c <= 0 {
		return int(math.Floor(coord))
	}
	return floorDiv(int(math.Floor(coord)), c)
}

// Origin returns the logical coordinate of the top/left edge of cell i.
func Origin(i, c int) int {
	if c <= 0 {
		return i
	}
	return i * c
}

// Snap moves coord to the centre of its covering cell.
// Without a grid, coord is returned unchanged.
//
// Snap is idempotent: Snap(Snap(x, c), c) == Snap(x, c).
func Snap(coord float64, c int) float64 {
	if c <= 0 {
		return coord
	}
	return float64(Index(coord, c)*c + c/2)
}

// SnapPoint applies [Snap] to both coordinates of p.
func SnapPoint(p vec.Vec2, c int) vec.Vec2 {
	return vec.Vec2{X: Snap(p.X, c), Y: Snap(p.Y, c)}
}

// DitherScale returns the dither pattern magnification which makes one
// pattern cell cover exactly one grid cell.
func DitherScale(c int) int {
	return max(1, c)
}

// floorDiv divides a by b (b > 0), rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
