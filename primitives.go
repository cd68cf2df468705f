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
	"image"
	"math"

	"seehuhn.de/go/pixelart/grid"
)

// bresenham calls plot for the points of the digital line from (x0, y0)
// to (x1, y1), both end points included, whose coordinate along the
// major axis lies within b.
//
// Every step advances the major coordinate by one.  After k steps the
// minor coordinate has advanced by ceil((2k·minor - major) / (2·major)),
// so the walk can start and stop anywhere without visiting the points
// outside b.
func bresenham(x0, y0, x1, y1 int, b image.Rectangle, plot func(x, y int)) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)

	switch {
	case dx == 0 && dy == 0:
		if image.Pt(x0, y0).In(b) {
			plot(x0, y0)
		}
	case dx >= dy:
		kLo, kHi := stepRange(x0, sx, dx, b.Min.X, b.Max.X-1)
		for k := kLo; k <= kHi; k++ {
			plot(x0+sx*k, y0+sy*ceilDiv(2*k*dy-dx, 2*dx))
		}
	default:
		kLo, kHi := stepRange(y0, sy, dy, b.Min.Y, b.Max.Y-1)
		for k := kLo; k <= kHi; k++ {
			plot(x0+sx*ceilDiv(2*k*dx-dy, 2*dy), y0+sy*k)
		}
	}
}

// stepRange returns the steps k in 0..n for which v0+s*k lies in lo..hi.
func stepRange(v0, s, n, lo, hi int) (int, int) {
	if s > 0 {
		return max(0, lo-v0), min(n, hi-v0)
	}
	return max(0, v0-hi), min(n, v0-lo)
}

// everywhere is used as the walk area for surfaces without a clip
// rectangle.
var everywhere = image.Rect(math.MinInt/4, math.MinInt/4, math.MaxInt/4, math.MaxInt/4)

// drawLine draws the segment between two points.  With a grid, the walk
// runs over cell coordinates and the line width is ignored.  Otherwise a
// line of width w > 1 is drawn by stamping a disc of radius w/2 at every
// step.
func (r *Rasteriser) drawLine(ax, ay, bx, by float64, width int) {
	x0, y0 := ifloor(ax), ifloor(ay)
	x1, y1 := ifloor(bx), ifloor(by)

	b := everywhere
	if c := r.CellSize; c > 0 {
		if r.clipped {
			b = image.Rectangle{Min: r.area.Min.Div(c), Max: r.area.Max.Div(c)}
		}
		bresenham(
			grid.Index(float64(x0), c), grid.Index(float64(y0), c),
			grid.Index(float64(x1), c), grid.Index(float64(y1), c),
			b, r.fillCell)
		return
	}

	if width <= 1 {
		if r.clipped {
			b = r.area
		}
		bresenham(x0, y0, x1, y1, b, r.setPixel)
		return
	}
	rad := width / 2
	if r.clipped {
		// Discs centred up to rad pixels outside still reach the area.
		b = r.area.Inset(-rad)
	}
	bresenham(x0, y0, x1, y1, b, func(x, y int) {
		r.stampDisc(x, y, rad)
	})
}

// stampDisc paints all pixels within distance rad of (x, y).
func (r *Rasteriser) stampDisc(x, y, rad int) {
	y0, y1 := r.clampY(y-rad, y+rad)
	for py := y0; py <= y1; py++ {
		dy := py - y
		w := int(math.Sqrt(float64(rad*rad - dy*dy)))
		r.fillBlock(x-w, py, 2*w+1, 1)
	}
}

// drawRect draws the axis-parallel rectangle with corners (ax, ay) and
// (bx, by).  All pixels between the floored corners are included.
func (r *Rasteriser) drawRect(ax, ay, bx, by float64, width int, outline bool) {
	x1, y1 := ifloor(min(ax, bx)), ifloor(min(ay, by))
	x2, y2 := ifloor(max(ax, bx)), ifloor(max(ay, by))

	if outline {
		fx1, fy1, fx2, fy2 := float64(x1), float64(y1), float64(x2), float64(y2)
		r.drawLine(fx1, fy1, fx2, fy1, width)
		r.drawLine(fx2, fy1, fx2, fy2, width)
		r.drawLine(fx2, fy2, fx1, fy2, width)
		r.drawLine(fx1, fy2, fx1, fy1, width)
		return
	}

	if c := r.CellSize; c > 0 {
		x1, x2 = r.clampX(x1, x2)
		y1, y2 = r.clampY(y1, y2)
		if x2 < x1 || y2 < y1 {
			return
		}
		for cy := grid.Index(float64(y1), c); cy <= grid.Index(float64(y2), c); cy++ {
			for cx := grid.Index(float64(x1), c); cx <= grid.Index(float64(x2), c); cx++ {
				r.fillCell(cx, cy)
			}
		}
		return
	}
	r.fillBlock(x1, y1, x2-x1+1, y2-y1+1)
}

// drawCircle draws the circle of radius rad around the floored centre.
//
// Row y covers the offsets -w..w with w = floor(sqrt(rad²-y²)).  Outlines
// consist of the two extreme pixels of every row only, which leaves gaps
// where the circle is steep.  With a grid, outlines also include the
// cells of the pixels next to the extremes.
func (r *Rasteriser) drawCircle(cxf, cyf float64, rad int, outline bool) {
	cx, cy := ifloor(cxf), ifloor(cyf)
	gridded := r.CellSize > 0

	yLo, yHi := r.clampY(cy-rad, cy+rad)
	for py := yLo; py <= yHi; py++ {
		y := py - cy
		w := int(math.Floor(math.Sqrt(float64(rad*rad - y*y))))
		switch {
		case outline && gridded:
			for _, x := range [...]int{-w, -w + 1, w - 1, w} {
				if abs(x) <= w {
					r.fillCellAt(cx+x, py)
				}
			}
		case outline:
			r.setPixel(cx-w, py)
			r.setPixel(cx+w, py)
		case gridded:
			xa, xb := r.clampX(cx-w, cx+w)
			for x := xa; x <= xb; x++ {
				r.fillCellAt(x, py)
			}
		default:
			r.fillBlock(cx-w, py, 2*w+1, 1)
		}
	}
}

// drawOval draws the ellipse inscribed in the box with corners (ax, ay)
// and (bx, by).  Nothing is drawn if the box has zero width or height.
//
// For every row y within the vertical radius, the span reaches from
// floor(cx-w) to ceil(cx+w), where w is the half-width of the ellipse at
// y.  Outlines and grid mode work as for circles.
func (r *Rasteriser) drawOval(ax, ay, bx, by float64, outline bool) {
	x1, y1 := ifloor(min(ax, bx)), ifloor(min(ay, by))
	x2, y2 := ifloor(max(ax, bx)), ifloor(max(ay, by))
	cx := float64(x1+x2) / 2
	cy := float64(y1+y2) / 2
	rx := float64(x2-x1) / 2
	ry := float64(y2-y1) / 2
	if rx == 0 || ry == 0 {
		return
	}
	gridded := r.CellSize > 0

	yLo, yHi := r.clampY(y1, y2)
	for y := yLo; y <= yHi; y++ {
		dy := (float64(y) - cy) / ry
		if math.Abs(dy) > 1 {
			continue
		}
		w := rx * math.Sqrt(1-dy*dy)
		xs := ifloor(cx - w)
		xe := int(math.Ceil(cx + w))

		switch {
		case outline && gridded:
			for _, x := range [...]int{xs, xs + 1, xe - 1, xe} {
				if x >= xs && x <= xe {
					r.fillCellAt(x, y)
				}
			}
		case outline:
			r.setPixel(xs, y)
			r.setPixel(xe, y)
		case gridded:
			xa, xb := r.clampX(xs, xe)
			for x := xa; x <= xb; x++ {
				r.fillCellAt(x, y)
			}
		default:
			r.fillBlock(xs, y, xe-xs+1, 1)
		}
	}
}

func sign(x int) int {
	if x < 0 {
		return -1
	}
	return 1
}

// ceilDiv returns ceil(n/d) for d > 0.
func ceilDiv(n, d int) int {
	q := n / d
	if n%d != 0 && n > 0 {
		q++
	}
	return q
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
