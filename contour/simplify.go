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

package contour

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixelart/shape"
)

const (
	// dupDist is the distance below which consecutive points are merged.
	dupDist = 0.5

	// collinearEps is the cross product magnitude below which a vertex is
	// considered to lie on the line through its neighbours.
	collinearEps = 0.5
)

// Simplify reduces a closed polygon to fewer vertices.  The result is a
// subsequence of pts with at least three points, unless pts itself has
// fewer than three points, in which case pts is returned unchanged.
//
// Simplification removes near-duplicate points, a closing point which
// repeats the start, vertices within tol of the Ramer-Douglas-Peucker
// chord, and nearly collinear vertices.  These steps are repeated until
// nothing more is removed, so that Simplify(Simplify(p, t), t) equals
// Simplify(p, t).
func Simplify(pts []vec.Vec2, tol float64) []vec.Vec2 {
	if len(pts) < 3 {
		return pts
	}

	cur := slices.Clone(pts)
	for {
		next := simplifyOnce(cur, tol)
		if len(next) == len(cur) {
			return cur
		}
		cur = next
	}
}

// simplifyOnce runs every simplification step once.  The input must
// have at least three points, and so has the output.
func simplifyOnce(pts []vec.Vec2, tol float64) []vec.Vec2 {
	res := make([]vec.Vec2, 0, len(pts))
	res = append(res, pts[0])
	for _, p := range pts[1:] {
		if p.Sub(res[len(res)-1]).Length() >= dupDist {
			res = append(res, p)
		}
	}
	if len(res) > 1 && res[len(res)-1].Sub(res[0]).Length() < dupDist {
		res = res[:len(res)-1]
	}
	if len(res) < 3 {
		return pts
	}

	res = douglasPeucker(res, tol)
	if len(res) < 3 {
		return pts
	}

	if pruned := dropCollinear(res); len(pruned) >= 3 {
		return pruned
	}
	return res
}

// douglasPeucker applies the Ramer-Douglas-Peucker algorithm to the open
// polyline pts.  The end points are always kept.
func douglasPeucker(pts []vec.Vec2, tol float64) []vec.Vec2 {
	if len(pts) < 3 {
		return pts
	}

	first, last := pts[0], pts[len(pts)-1]
	maxDist := 0.0
	maxIdx := 0
	for i := 1; i < len(pts)-1; i++ {
		d := shape.SegmentDistance(pts[i], first, last)
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxDist <= tol {
		return []vec.Vec2{first, last}
	}
	left := douglasPeucker(pts[:maxIdx+1], tol)
	right := douglasPeucker(pts[maxIdx:], tol)
	return append(slices.Clone(left[:len(left)-1]), right...)
}

// dropCollinear removes vertices which lie on the line through their
// neighbours.  The sequence is treated as cyclic.  A removed vertex is not
// used as the neighbour of the next one.
func dropCollinear(pts []vec.Vec2) []vec.Vec2 {
	n := len(pts)
	res := make([]vec.Vec2, 0, n)
	for i, cur := range pts {
		prev := pts[n-1]
		if len(res) > 0 {
			prev = res[len(res)-1]
		}
		next := pts[(i+1)%n]

		d1 := cur.Sub(prev)
		d2 := next.Sub(cur)
		if math.Abs(d1.X*d2.Y-d1.Y*d2.X) >= collinearEps {
			res = append(res, cur)
		}
	}
	return res
}
