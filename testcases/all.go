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

// All contains the test cases, grouped by category.
var All = map[string][]TestCase{
	"line":      lineCases,
	"rect":      rectCases,
	"ellipse":   ellipseCases,
	"polygon":   polygonCases,
	"dither":    ditherCases,
	"grid":      gridCases,
	"transform": transformCases,
	"complex":   complexCases,
	"large":     largeCases,
}
