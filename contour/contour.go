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

// Package contour converts sets of occupied pixels back into polygons.
//
// The tracer walks the boundary pixels of an occupancy grid by
// nearest-neighbour stitching.  This gives a plausible closed walk for
// simply-connected blobs.  Disconnected or diagonally connected pixel
// sets may give a walk which stops early or intersects itself.
package contour

import (
	"image"

	"seehuhn.de/go/geom/vec"
)

const (
	// maxLinkDist is the largest distance between two consecutive contour
	// pixels.  This admits the eight neighbours of a pixel.
	maxLinkDist = 1.5

	// maxContourLen limits the number of pixels in a traced contour.
	maxContourLen = 500

	// traceTolerance is the simplification tolerance applied to traced
	// contours.
	traceTolerance = 0.5
)

// Grid is a rectangular occupancy grid.  Cell (x, y) of the grid
// corresponds to the logical pixel (x+OffX, y+OffY).
type Grid struct {
	W, H       int
	OffX, OffY int

	cells []bool
}

// NewGrid returns an empty grid of the given size.
func NewGrid(w, h, offX, offY int) *Grid {
	return &Grid{
		W: w, H: h,
		OffX: offX, OffY: offY,
		cells: make([]bool, w*h),
	}
}

// FromPoints returns the smallest grid which holds all of pts, with a
// border of one empty cell on every side.
func FromPoints(pts []image.Point) *Grid {
	if len(pts) == 0 {
		return NewGrid(0, 0, 0, 0)
	}

	b := image.Rectangle{Min: pts[0], Max: pts[0].Add(image.Pt(1, 1))}
	for _, p := range pts[1:] {
		b = b.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	b = b.Inset(-1)

	g := NewGrid(b.Dx(), b.Dy(), b.Min.X, b.Min.Y)
	for _, p := range pts {
		g.Set(p.X-g.OffX, p.Y-g.OffY, true)
	}
	return g
}

// At reports whether cell (x, y) is occupied.  Cells outside the grid are
// empty.
func (g *Grid) At(x, y int) bool {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return false
	}
	return g.cells[y*g.W+x]
}

// Set changes the occupancy of cell (x, y).  Cells outside the grid are
// ignored.
func (g *Grid) Set(x, y int, occupied bool) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return
	}
	g.cells[y*g.W+x] = occupied
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// isEdge reports whether the occupied cell (x, y) has an empty
// 4-neighbour or lies on the border of the grid.
func (g *Grid) isEdge(x, y int) bool {
	return x == 0 || y == 0 || x == g.W-1 || y == g.H-1 ||
		!g.At(x-1, y) || !g.At(x+1, y) || !g.At(x, y-1) || !g.At(x, y+1)
}

// Trace returns a closed contour around the occupied cells of g, in
// logical coordinates, after simplification.  The result is empty if g
// has no occupied cells.
//
// The contour starts at the topmost, leftmost edge pixel.  Each step
// appends the nearest unused edge pixel within distance 1.5 of the
// current end; among equally near candidates the first in (y, x) order
// wins.  Tracing stops when no candidate is left or after 500 pixels.
func Trace(g *Grid) []vec.Vec2 {
	// Row-major order puts the topmost, leftmost pixel first.
	var edge []vec.Vec2
	for y := range g.H {
		for x := range g.W {
			if g.At(x, y) && g.isEdge(x, y) {
				edge = append(edge, vec.Vec2{X: float64(x + g.OffX), Y: float64(y + g.OffY)})
			}
		}
	}
	if len(edge) == 0 {
		return nil
	}

	used := make([]bool, len(edge))
	used[0] = true
	walk := []vec.Vec2{edge[0]}
	for len(walk) < len(edge) && len(walk) < maxContourLen {
		cur := walk[len(walk)-1]
		best := -1
		bestDist := maxLinkDist
		for i, p := range edge {
			if used[i] {
				continue
			}
			d := p.Sub(cur).Length()
			if d <= maxLinkDist && (best < 0 || d < bestDist) {
				best = i
				bestDist = d
			}
		}
		if best < 0 {
			break
		}
		used[best] = true
		walk = append(walk, edge[best])
	}

	return Simplify(walk, traceTolerance)
}

// TraceWithHoles traces the largest connected region of g and every
// enclosed hole in it.  The first contour is the outer boundary, the
// remaining ones are the holes.  Contours with fewer than three points
// are omitted, so the result may be empty.
//
// Connectivity is 4-neighbour.  A hole is a connected set of empty cells
// which does not touch the border of the grid.
func TraceWithHoles(g *Grid) [][]vec.Vec2 {
	outer := largestRegion(g, true)
	if outer == nil {
		return nil
	}

	var res [][]vec.Vec2
	if c := Trace(outer); len(c) >= 3 {
		res = append(res, c)
	}

	// Holes are looked for inside the outer region only, so that empty
	// space enclosed by a smaller, separate blob does not count.
	seen := make([]bool, g.W*g.H)
	for y := range g.H {
		for x := range g.W {
			if outer.At(x, y) || seen[y*g.W+x] {
				continue
			}
			region, touchesBorder := flood(outer, x, y, false, seen)
			if touchesBorder {
				continue
			}
			hole := NewGrid(g.W, g.H, g.OffX, g.OffY)
			for _, p := range region {
				hole.Set(p.X, p.Y, true)
			}
			if c := Trace(hole); len(c) >= 3 {
				res = append(res, c)
			}
		}
	}
	return res
}

// largestRegion returns a copy of g which holds only the largest
// connected region of cells with the given occupancy, or nil if there is
// no such cell.
func largestRegion(g *Grid, occupied bool) *Grid {
	seen := make([]bool, g.W*g.H)
	var best []image.Point
	for y := range g.H {
		for x := range g.W {
			if g.At(x, y) != occupied || seen[y*g.W+x] {
				continue
			}
			region, _ := flood(g, x, y, occupied, seen)
			if len(region) > len(best) {
				best = region
			}
		}
	}
	if best == nil {
		return nil
	}

	res := NewGrid(g.W, g.H, g.OffX, g.OffY)
	for _, p := range best {
		res.Set(p.X, p.Y, true)
	}
	return res
}

// flood collects the 4-connected region of cells with the given occupancy
// which contains (x0, y0), and marks its cells in seen.  The second return
// value reports whether the region touches the border of the grid.
func flood(g *Grid, x0, y0 int, occupied bool, seen []bool) ([]image.Point, bool) {
	var region []image.Point
	touches := false

	stack := []image.Point{{X: x0, Y: y0}}
	seen[y0*g.W+x0] = true
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, p)
		if p.X == 0 || p.Y == 0 || p.X == g.W-1 || p.Y == g.H-1 {
			touches = true
		}

		for _, d := range [4]image.Point{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}} {
			q := p.Add(d)
			if q.X < 0 || q.Y < 0 || q.X >= g.W || q.Y >= g.H {
				continue
			}
			i := q.Y*g.W + q.X
			if seen[i] || g.cells[i] != occupied {
				continue
			}
			seen[i] = true
			stack = append(stack, q)
		}
	}
	return region, touches
}
