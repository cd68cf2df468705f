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


// Command genpdf writes every test case as a vector PDF, for visual
// comparison with the pixel-art rendering.  Colours are shown as grey
// levels and dither patterns are ignored.
// Run from the module root directory.
package main

import (
	"fmt"
	imgcolor "image/color"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/pixelart/palette"
	"seehuhn.de/go/pixelart/project"
	"seehuhn.de/go/pixelart/shape"
	"seehuhn.de/go/pixelart/testcases"
)

const outDir = "testdata/pdf"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	pal, err := palette.Named(palette.Default)
	if err != nil {
		panic(err)
	}
	bg, err := palette.ParseHex(project.DefaultBackground)
	if err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(tc, pal, bg, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pal imgcolor.Palette, bg imgcolor.Color, pdfPath string) error {
	// Page size in points (1 point = 1 logical pixel)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(gray(bg))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; shapes use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	cellSize := tc.CellSize()
	for _, s := range tc.Scene() {
		if s.Color < 0 || s.Color >= len(pal) {
			return fmt.Errorf("colour index %d out of range", s.Color)
		}
		c := gray(pal[s.Color])
		stroke := s.Kind == shape.Line || s.Outline
		if stroke {
			page.SetStrokeColor(c)
			page.SetLineWidth(float64(s.LineWidth))
		} else {
			page.SetFillColor(c)
		}

		// Draw path - convert quadratic to cubic (PDF doesn't support quadratic)
		for cmd, pts := range s.Path(cellSize).Iter().ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}

		if stroke {
			page.Stroke()
		} else {
			page.Fill()
		}
	}

	return page.Close()
}

func gray(c imgcolor.Color) color.Color {
	g := imgcolor.GrayModel.Convert(c).(imgcolor.Gray)
	return color.DeviceGray(float64(g.Y) / 255)
}
