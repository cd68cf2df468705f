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
	"cmp"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixelart/grid"
)

// collectEdges walks the path and builds the edge list.  The path must
// consist of straight segments, as for triangles and polygons.  Returns
// the range of rows touched by the path's vertices.
func (r *Rasteriser) collectEdges(p *path.Data) (yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]

	var current, subpath vec.Vec2
	first := true
	visit := func(v vec.Vec2) {
		y := ifloor(v.Y)
		if first {
			yMin, yMax = y, y
			first = false
		} else {
			yMin = min(yMin, y)
			yMax = max(yMax, y)
		}
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[coordIdx]
			subpath = current
			visit(current)
			coordIdx++

		case path.CmdLineTo:
			r.addEdge(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			visit(current)
			coordIdx++

		case path.CmdClose:
			if current != subpath {
				r.addEdge(current, subpath)
			}
			current = subpath
		}
	}

	return yMin, yMax, !first && len(r.edges) > 0
}

func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	// Horizontal edges never cross a row in the half-open sense.
	if p0.Y == p1.Y {
		return
	}
	r.edges = append(r.edges, edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y})
}

// fillEdges paints the interior of the collected edges, one row at a time
// from yMin to yMax inclusive.
//
// An edge crosses row y if yMin <= y < yMax for the edge, so that a vertex
// shared by two edges is counted once.  The crossings of a row are
// floored and sorted, and the spans between consecutive pairs are painted
// including both ends.
func (r *Rasteriser) fillEdges(yMin, yMax int) {
	yMin, yMax = r.clampY(yMin, yMax)

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y <= yMax; y++ {
		yf := float64(y)

		for next < len(r.edges) && r.edges[next].yMin() <= yf {
			r.active = append(r.active, next)
			next++
		}

		r.xs = r.xs[:0]
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= yf {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			r.xs = append(r.xs, ifloor(e.xAt(yf)))
			i++
		}
		if len(r.xs) < 2 {
			continue
		}
		slices.Sort(r.xs)

		for i := 0; i+1 < len(r.xs); i += 2 {
			xa, xb := r.clampX(r.xs[i], r.xs[i+1])
			if xb < xa {
				continue
			}
			if c := r.CellSize; c > 0 {
				cy := grid.Index(yf, c)
				for cx := grid.Index(float64(xa), c); cx <= grid.Index(float64(xb), c); cx++ {
					r.fillCell(cx, cy)
				}
			} else {
				r.fillBlock(xa, y, xb-xa+1, 1)
			}
		}
	}
}
