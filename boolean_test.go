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
	"errors"
	"image"
	"slices"
	"sync"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixelart/shape"
)

const canvas = 40

func silhouette(t *testing.T, s shape.Shape) PixelSet {
	t.Helper()
	ps, err := Silhouette([]shape.Shape{s}, canvas, canvas)
	if err != nil {
		t.Fatal(err)
	}
	return ps
}

// near reports whether p or one of its eight neighbours is in ps.
func near(ps PixelSet, p image.Point) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if ps.Has(p.Add(image.Pt(dx, dy))) {
				return true
			}
		}
	}
	return false
}

func checkPolygon(t *testing.T, res *shape.Shape, color int) {
	t.Helper()
	if res == nil {
		t.Fatal("no result")
	}
	if res.Kind != shape.Polygon || len(res.Points) < 3 {
		t.Fatalf("got %s with %d points", res.Kind, len(res.Points))
	}
	if res.Color != color || res.Outline || res.Dither != nil {
		t.Errorf("unexpected attributes %+v", res)
	}
}

func TestBooleanUnion(t *testing.T) {
	a := shape.New(shape.Rect, 1, shape.Pt(2, 2), shape.Pt(12, 12))
	b := shape.New(shape.Rect, 2, shape.Pt(8, 6), shape.Pt(18, 10))
	res, err := Boolean(Union, a, b, canvas, canvas, 5)
	if err != nil {
		t.Fatal(err)
	}
	checkPolygon(t, res, 5)

	want := silhouette(t, a).Union(silhouette(t, b))
	got := silhouette(t, *res)
	for p := range got {
		if !near(want, p) {
			t.Errorf("pixel %v is far from the union", p)
		}
	}
	if 10*len(got) < 7*len(want) {
		t.Errorf("result covers %d of %d pixels", len(got), len(want))
	}
	if !got.Has(image.Pt(16, 8)) || !got.Has(image.Pt(4, 4)) {
		t.Error("result misses one of the operands")
	}
}

func TestBooleanSubtract(t *testing.T) {
	a := shape.New(shape.Rect, 1, shape.Pt(0, 0), shape.Pt(20, 20))
	b := shape.New(shape.Rect, 2, shape.Pt(10, -5), shape.Pt(30, 30))
	res, err := Boolean(Subtract, a, b, canvas, canvas, 1)
	if err != nil {
		t.Fatal(err)
	}
	checkPolygon(t, res, 1)

	got := silhouette(t, *res)
	if len(got) == 0 {
		t.Fatal("empty result")
	}
	if overlap := got.Intersect(silhouette(t, b)); len(overlap) > 0 {
		t.Errorf("result overlaps the subtracted shape in %v", overlap.Sorted())
	}
}

func TestBooleanIntersect(t *testing.T) {
	a := shape.New(shape.Circle, 1, shape.Pt(10, 10), shape.Pt(18, 10))
	b := shape.New(shape.Rect, 2, shape.Pt(10, 0), shape.Pt(30, 30))
	res, err := Boolean(Intersect, a, b, canvas, canvas, 3)
	if err != nil {
		t.Fatal(err)
	}
	checkPolygon(t, res, 3)

	want := silhouette(t, a).Intersect(silhouette(t, b))
	got := silhouette(t, *res)
	if len(got) == 0 {
		t.Fatal("empty result")
	}
	for p := range got {
		if !near(want, p) {
			t.Errorf("pixel %v is outside the intersection", p)
		}
	}
}

func TestBooleanEmpty(t *testing.T) {
	a := shape.New(shape.Rect, 1, shape.Pt(0, 0), shape.Pt(5, 5))
	b := shape.New(shape.Rect, 1, shape.Pt(20, 20), shape.Pt(25, 25))
	res, err := Boolean(Intersect, a, b, canvas, canvas, 1)
	if !errors.Is(err, ErrEmpty) || res != nil {
		t.Errorf("got %v, %v, want ErrEmpty", res, err)
	}

	res, err = Boolean(Subtract, a, a, canvas, canvas, 1)
	if !errors.Is(err, ErrEmpty) || res != nil {
		t.Errorf("self subtraction: got %v, %v, want ErrEmpty", res, err)
	}

	// a single pixel has no outline with three corners
	dot := shape.New(shape.Rect, 1, shape.Pt(3, 3), shape.Pt(3, 3))
	if _, err := Boolean(Union, dot, dot, canvas, canvas, 1); !errors.Is(err, ErrEmpty) {
		t.Errorf("single pixel: got %v, want ErrEmpty", err)
	}
}

// TestBooleanDisjointUnion documents that only one part of a union of
// separate shapes is kept.  The outline of the left square runs through
// pixel centres, so drawing it again loses the bottom row.
func TestBooleanDisjointUnion(t *testing.T) {
	a := shape.New(shape.Rect, 1, shape.Pt(0, 0), shape.Pt(1, 1))
	b := shape.New(shape.Rect, 1, shape.Pt(12, 0), shape.Pt(13, 1))
	res, err := Boolean(Union, a, b, 20, 20, 1)
	if err != nil {
		t.Fatal(err)
	}
	wantPoints := []vec.Vec2{shape.Pt(0, 0), shape.Pt(1, 0), shape.Pt(1, 1), shape.Pt(0, 1)}
	if !slices.Equal(res.Points, wantPoints) {
		t.Errorf("got outline %v, want %v", res.Points, wantPoints)
	}

	union := silhouette(t, a).Union(silhouette(t, b))
	if len(union) != 8 {
		t.Fatalf("union has %d pixels, want 8", len(union))
	}
	if got, want := silhouette(t, *res), pts(0, 0, 1, 0); !sameSet(got, want) {
		t.Errorf("result covers %v, want %v", got.Sorted(), want.Sorted())
	}
}

func TestBooleanMalformed(t *testing.T) {
	a := shape.New(shape.Rect, 1, shape.Pt(0, 0), shape.Pt(5, 5))
	bad := shape.New(shape.Triangle, 1, shape.Pt(0, 0))
	if _, err := Boolean(Union, a, bad, canvas, canvas, 1); !errors.Is(err, shape.ErrPointCount) {
		t.Errorf("got %v, want ErrPointCount", err)
	}
	if _, err := Boolean(Op(9), a, a, canvas, canvas, 1); !errors.Is(err, ErrOp) {
		t.Errorf("got %v, want ErrOp", err)
	}
}

func TestConvertToPolygon(t *testing.T) {
	s := shape.New(shape.Rect, 4, shape.Pt(5, 5), shape.Pt(15, 12))
	s.Outline = true
	res, err := ConvertToPolygon(s, canvas, canvas)
	if err != nil {
		t.Fatal(err)
	}
	if res.Kind != shape.Polygon || res.Color != 4 || !res.Outline {
		t.Errorf("unexpected result %+v", res)
	}
	for _, p := range res.Points {
		if p.X < 5 || p.X > 15 || p.Y < 5 || p.Y > 12 {
			t.Errorf("point %v outside the rectangle", p)
		}
	}

	poly := shape.New(shape.Polygon, 2, shape.Pt(0, 0), shape.Pt(9, 1), shape.Pt(4, 7))
	res, err = ConvertToPolygon(poly, canvas, canvas)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(res.Points, poly.Points) {
		t.Errorf("polygon changed: %v", res.Points)
	}
	res.Points[0].X = 100
	if poly.Points[0].X != 0 {
		t.Error("result shares points with the input")
	}

	gone := shape.New(shape.Oval, 1, shape.Pt(0, 0), shape.Pt(10, 0))
	if _, err := ConvertToPolygon(gone, canvas, canvas); !errors.Is(err, ErrEmpty) {
		t.Errorf("flat oval: got %v, want ErrEmpty", err)
	}
}

func TestBooleanConcurrent(t *testing.T) {
	a := shape.New(shape.Circle, 1, shape.Pt(15, 15), shape.Pt(25, 15))
	b := shape.New(shape.Triangle, 1, shape.Pt(5, 30), shape.Pt(20, 2), shape.Pt(35, 30))
	want, err := Boolean(Subtract, a, b, canvas, canvas, 1)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	results := make([]*shape.Shape, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = Boolean(Subtract, a, b, canvas, canvas, 1)
		}()
	}
	wg.Wait()
	for i, res := range results {
		if res == nil || !slices.Equal(res.Points, want.Points) {
			t.Errorf("goroutine %d: got %v", i, res)
		}
	}
}

func TestTraceContoursWithHoles(t *testing.T) {
	ring := PixelSet{}
	for y := range 7 {
		for x := range 7 {
			if x < 2 || x > 4 || y < 2 || y > 4 {
				ring[image.Pt(x+10, y+10)] = struct{}{}
			}
		}
	}
	contours := TraceContoursWithHoles(ring)
	if len(contours) != 2 {
		t.Fatalf("got %d contours, want 2", len(contours))
	}
	for _, p := range contours[1] {
		if p.X < 11 || p.X > 15 || p.Y < 11 || p.Y > 15 {
			t.Errorf("hole point %v outside the hole", p)
		}
	}
}
