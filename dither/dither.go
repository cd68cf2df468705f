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

// Package dither implements binary ordered dithering with a fixed set of
// 8×8 patterns.
//
// There is no blending: a pixel is either painted in the full shape colour
// or left alone.  The patterns tile the logical canvas and can be magnified
// by an integer scale, so that one pattern cell covers a block of pixels.
package dither

import (
	"errors"
	"fmt"
	"math"
)

// Size is the edge length of a pattern tile.
const Size = 8

// Count is the number of available patterns.
const Count = 19

// ErrPattern is returned for pattern indices outside [0, Count).
var ErrPattern = errors.New("dither: invalid pattern index")

// Pattern is an 8×8 boolean tile.  Bit x of row y is set if the pixel at
// (x, y) is painted.
type Pattern [Size]uint8

// At reports whether the tile cell (x, y) is painted.
// x and y must be in the range [0, 8).
func (p Pattern) At(x, y int) bool {
	return p[y]&(1<<x) != 0
}

// Density returns the number of painted cells, between 0 and 64.
func (p Pattern) Density() int {
	n := 0
	for _, row := range p {
		for b := row; b != 0; b &= b - 1 {
			n++
		}
	}
	return n
}

// bayer is the 8×8 ordered-dither threshold matrix.
var bayer = [Size][Size]uint8{
	{0, 32, 8, 40, 2, 34, 10, 42},
	{48, 16, 56, 24, 50, 18, 58, 26},
	{12, 44, 4, 36, 14, 46, 6, 38},
	{60, 28, 52, 20, 62, 30, 54, 22},
	{3, 35, 11, 43, 1, 33, 9, 41},
	{51, 19, 59, 27, 49, 17, 57, 25},
	{15, 47, 7, 39, 13, 45, 5, 37},
	{63, 31, 55, 23, 61, 29, 53, 21},
}

// patterns holds the presets, ordered from 100% (index 0) to 0% (index
// Count-1) coverage.  The table is filled once at start-up and never
// modified afterwards.
var patterns = buildPatterns()

func buildPatterns() [Count]Pattern {
	var res [Count]Pattern
	for i := range res {
		threshold := uint8(math.Round(64 * float64(Count-1-i) / float64(Count-1)))
		for y := range Size {
			for x := range Size {
				if bayer[y][x] < threshold {
					res[i][y] |= 1 << x
				}
			}
		}
	}
	return res
}

// Get returns the pattern with the given index.
func Get(index int) (Pattern, error) {
	if index < 0 || index >= Count {
		return Pattern{}, fmt.Errorf("%w: %d", ErrPattern, index)
	}
	return patterns[index], nil
}

// Valid reports whether index names one of the presets.
func Valid(index int) bool {
	return index >= 0 && index < Count
}

// Sample decides whether the logical pixel (x, y) is painted when a shape
// uses the given pattern.  The pattern is magnified by scale (values below
// 1 are treated as 1).  Invalid pattern indices paint nothing.
//
// The result is periodic: Sample(x, y, p, s) == Sample(x+8*s, y+8*s, p, s).
func Sample(x, y float64, index, scale int) bool {
	if !Valid(index) {
		return false
	}
	return patterns[index].sample(int(math.Floor(x)), int(math.Floor(y)), scale)
}

// sample is the integer version of [Sample] for a known pattern.
func (p Pattern) sample(x, y, scale int) bool {
	scale = max(scale, 1)
	px := mod(floorDiv(x, scale), Size)
	py := mod(floorDiv(y, scale), Size)
	return p.At(px, py)
}

// Mask is a [Pattern] bound to a magnification, ready to be queried for
// integer pixel positions.
type Mask struct {
	p     Pattern
	scale int
}

// NewMask returns the mask for the given pattern index and scale.
func NewMask(index, scale int) (Mask, error) {
	p, err := Get(index)
	if err != nil {
		return Mask{}, err
	}
	return Mask{p: p, scale: max(scale, 1)}, nil
}

// Paint reports whether the integer pixel (x, y) is painted.
func (m Mask) Paint(x, y int) bool {
	return m.p.sample(x, y, m.scale)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
