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

package pixelart

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pixelart/dither"
	"seehuhn.de/go/pixelart/grid"
	"seehuhn.de/go/pixelart/shape"
)

// Rasteriser converts shapes to pixels or grid cells.
// The caller creates one instance and reuses it for many shapes.
// Internal buffers grow as needed but never shrink.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// Palette maps the colour indices of shapes to colours.
	Palette color.Palette

	// CellSize is the edge length of a grid cell in logical pixels.
	// If CellSize is 0, shapes are drawn pixel by pixel.  Otherwise each
	// touched cell is painted as a whole.
	CellSize int

	// DitherScale magnifies the dither patterns.  Values below 1 are
	// treated as 1.  With a grid, use [grid.DitherScale] so that pattern
	// cells line up with grid cells.
	DitherScale int

	// Internal buffers (reused across calls)
	edges   []edge                   // polygon edges, sorted by yMin before filling
	active  []int                    // indices of edges crossing the current row
	xs      []int                    // row intersections
	visited map[image.Point]struct{} // grid cells painted by the current shape

	// Paint state of the current shape
	dst      Surface
	col      color.Color
	mask     dither.Mask
	dithered bool

	// area holds the pixels of dst which can receive paint, widened to
	// whole grid cells.  It is only valid if clipped is set.
	area    image.Rectangle
	clipped bool
}

// edge is one polygon edge in logical coordinates.  Horizontal edges are
// never stored.
type edge struct {
	x0, y0 float64
	x1, y1 float64
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// xAt returns the x-coordinate of the edge at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + (y-e.y0)*(e.x1-e.x0)/(e.y1-e.y0)
}

// NewRasteriser creates a Rasteriser for the given palette, without grid
// and with unscaled dither patterns.
func NewRasteriser(pal color.Palette) *Rasteriser {
	return &Rasteriser{
		Palette:     pal,
		DitherScale: 1,
		visited:     make(map[image.Point]struct{}),
	}
}

// Rasterise draws a single shape onto dst.
//
// Malformed shapes are rejected before any point is accessed: the error
// wraps [shape.ErrPointCount], [shape.ErrLineWidth], [shape.ErrKind],
// [ErrColorIndex] or [dither.ErrPattern] and nothing is drawn.
func (r *Rasteriser) Rasterise(s shape.Shape, dst Surface) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.Color < 0 || s.Color >= len(r.Palette) {
		return fmt.Errorf("%w: %d", ErrColorIndex, s.Color)
	}
	r.dithered = s.Dither != nil
	if r.dithered {
		m, err := dither.NewMask(*s.Dither, max(r.DitherScale, 1))
		if err != nil {
			return err
		}
		r.mask = m
	}

	r.dst = dst
	r.col = r.Palette[s.Color]
	r.area, r.clipped = r.clipArea()
	if r.visited == nil {
		r.visited = make(map[image.Point]struct{})
	}
	clear(r.visited)
	defer func() { r.dst = nil }()

	pts := s.Points
	switch s.Kind {
	case shape.Line:
		for i := 1; i < len(pts); i++ {
			r.drawLine(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, s.LineWidth)
		}
	case shape.Rect:
		r.drawRect(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, s.LineWidth, s.Outline)
	case shape.Circle:
		r.drawCircle(pts[0].X, pts[0].Y, s.Radius(), s.Outline)
	case shape.Oval:
		r.drawOval(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, s.Outline)
	case shape.Triangle, shape.Polygon:
		if s.Outline {
			for i := range pts {
				j := (i + 1) % len(pts)
				r.drawLine(pts[i].X, pts[i].Y, pts[j].X, pts[j].Y, s.LineWidth)
			}
		} else if yMin, yMax, ok := r.collectEdges(s.Path(r.CellSize)); ok {
			r.fillEdges(yMin, yMax)
		}
	case shape.Fill:
		r.drawFill(pts[0].X, pts[0].Y)
	default:
		panic("unreachable")
	}
	return nil
}

// setPixel paints one logical pixel, subject to dithering.
func (r *Rasteriser) setPixel(x, y int) {
	if r.dithered && !r.mask.Paint(x, y) {
		return
	}
	r.dst.Fill(x, y, 1, 1, r.col)
}

// fillBlock paints a w×h block of logical pixels, subject to dithering.
// The block is cut to the clip area first.
func (r *Rasteriser) fillBlock(x, y, w, h int) {
	x0, x1 := r.clampX(x, x+w-1)
	y0, y1 := r.clampY(y, y+h-1)
	if x1 < x0 || y1 < y0 {
		return
	}
	if !r.dithered {
		r.dst.Fill(x0, y0, x1-x0+1, y1-y0+1, r.col)
		return
	}
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			r.setPixel(px, py)
		}
	}
}

// fillCell paints grid cell (cx, cy), unless the current shape has
// painted it already.
func (r *Rasteriser) fillCell(cx, cy int) {
	key := image.Pt(cx, cy)
	if _, done := r.visited[key]; done {
		return
	}
	r.visited[key] = struct{}{}
	c := r.CellSize
	r.fillBlock(grid.Origin(cx, c), grid.Origin(cy, c), c, c)
}

// fillCellAt paints the grid cell which contains the logical pixel (x, y).
func (r *Rasteriser) fillCellAt(x, y int) {
	c := r.CellSize
	r.fillCell(grid.Index(float64(x), c), grid.Index(float64(y), c))
}

// drawFill paints the cell containing (x, y), or a 4×4 block around
// (x, y) without a grid.
func (r *Rasteriser) drawFill(x, y float64) {
	if r.CellSize > 0 {
		r.fillCellAt(ifloor(x), ifloor(y))
		return
	}
	r.fillBlock(ifloor(x)-2, ifloor(y)-2, 4, 4)
}

// clipArea returns the logical pixels of r.dst which can receive paint.
// With a grid, the area is widened to whole cells, so that a cell which
// is partly visible is still painted.  The second return value is false
// if the surface does not report a clip rectangle.
func (r *Rasteriser) clipArea() (image.Rectangle, bool) {
	c, ok := r.dst.(interface{ Clip() rect.Rect })
	if !ok {
		return image.Rectangle{}, false
	}
	cl := c.Clip()
	a := image.Rect(ifloor(cl.LLx), ifloor(cl.LLy), int(math.Ceil(cl.URx)), int(math.Ceil(cl.URy)))
	if cs := r.CellSize; cs > 0 && !a.Empty() {
		a.Min.X = grid.Origin(grid.Index(float64(a.Min.X), cs), cs)
		a.Min.Y = grid.Origin(grid.Index(float64(a.Min.Y), cs), cs)
		a.Max.X = grid.Origin(grid.Index(float64(a.Max.X-1), cs)+1, cs)
		a.Max.Y = grid.Origin(grid.Index(float64(a.Max.Y-1), cs)+1, cs)
	}
	return a, true
}

// clampX restricts the column range x0..x1 (inclusive) to the clip area.
// The result is empty (x1 < x0) if no column is visible.
func (r *Rasteriser) clampX(x0, x1 int) (int, int) {
	if r.clipped {
		x0 = max(x0, r.area.Min.X)
		x1 = min(x1, r.area.Max.X-1)
	}
	return x0, x1
}

// clampY restricts the row range y0..y1 (inclusive) to the clip area.
func (r *Rasteriser) clampY(y0, y1 int) (int, int) {
	if r.clipped {
		y0 = max(y0, r.area.Min.Y)
		y1 = min(y1, r.area.Max.Y-1)
	}
	return y0, y1
}

func ifloor(x float64) int {
	return int(math.Floor(x))
}
