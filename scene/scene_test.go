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


package scene

import (
	"context"
	"errors"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixelart"
	"seehuhn.de/go/pixelart/shape"
)

func mustAdd(t *testing.T, sc *Scene, s shape.Shape) ID {
	t.Helper()
	id, err := sc.Add(s)
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func rectShape(color int, x0, y0, x1, y1 float64) shape.Shape {
	return shape.New(shape.Rect, color, shape.Pt(x0, y0), shape.Pt(x1, y1))
}

func TestAddRemove(t *testing.T) {
	sc := New(64, 64)
	a := mustAdd(t, sc, rectShape(1, 0, 0, 5, 5))
	b := mustAdd(t, sc, shape.New(shape.Line, 2, shape.Pt(1, 1), shape.Pt(9, 9), shape.Pt(3, 7)))

	if _, err := sc.Add(shape.New(shape.Triangle, 1, shape.Pt(0, 0))); !errors.Is(err, shape.ErrPointCount) {
		t.Errorf("got %v, want ErrPointCount", err)
	}
	if sc.Len() != 2 || !slices.Equal(sc.IDs(), []ID{a, b}) {
		t.Fatalf("unexpected IDs %v", sc.IDs())
	}

	s, ok := sc.Shape(b)
	if !ok || s.Kind != shape.Line || len(s.Points) != 3 || s.Points[2] != shape.Pt(3, 7) {
		t.Errorf("got %+v", s)
	}

	if !sc.Remove(a) || sc.Remove(a) {
		t.Error("Remove did not report presence correctly")
	}
	if _, ok := sc.Shape(a); ok {
		t.Error("removed shape still present")
	}

	// freed handles are reused without affecting the remaining shape
	c := mustAdd(t, sc, rectShape(3, 20, 20, 30, 30))
	s, _ = sc.Shape(b)
	if s.Points[0] != shape.Pt(1, 1) {
		t.Errorf("line point changed to %v", s.Points[0])
	}
	if s, _ := sc.Shape(c); s.Points[1] != shape.Pt(30, 30) {
		t.Errorf("new rect has points %v", s.Points)
	}
	if c == a {
		t.Error("ID reused")
	}
}

func TestShapesAreCopies(t *testing.T) {
	sc := New(64, 64)
	in := rectShape(1, 0, 0, 5, 5).WithDither(3)
	id := mustAdd(t, sc, in)
	in.Points[0] = shape.Pt(99, 99)
	*in.Dither = 7

	s, _ := sc.Shape(id)
	if s.Points[0] != shape.Pt(0, 0) || *s.Dither != 3 {
		t.Error("scene shares memory with the added shape")
	}
	s.Points[1] = shape.Pt(50, 50)
	if again, _ := sc.Shape(id); again.Points[1] != shape.Pt(5, 5) {
		t.Error("scene shares memory with a returned shape")
	}
}

func TestPoints(t *testing.T) {
	sc := New(64, 64)
	a := mustAdd(t, sc, rectShape(1, 0, 0, 5, 5))
	b := mustAdd(t, sc, rectShape(1, 0, 0, 5, 5))

	ha, hb := sc.Handles(a), sc.Handles(b)
	if ha[0] == hb[0] {
		t.Fatal("equal points share a handle")
	}
	sc.SelectPoint(ha[0])
	if !sc.IsPointSelected(ha[0]) || sc.IsPointSelected(hb[0]) {
		t.Error("point selection is not by handle")
	}

	sc.MovePoint(ha[0], shape.Pt(2, 3))
	if s, _ := sc.Shape(a); s.Points[0] != shape.Pt(2, 3) {
		t.Errorf("moved point is %v", s.Points[0])
	}
	if sc.Point(hb[0]) != shape.Pt(0, 0) {
		t.Error("moving one point moved another")
	}

	sc.Translate(vec.Vec2{X: 10, Y: -1}, b)
	if s, _ := sc.Shape(b); s.Points[0] != shape.Pt(10, -1) || s.Points[1] != shape.Pt(15, 4) {
		t.Errorf("translated points %v", s.Points)
	}

	if h, ok := sc.PointAt(shape.Pt(14, 4)); !ok || h != hb[1] {
		t.Errorf("PointAt: got %d, %t", h, ok)
	}
	if k, ok := sc.NodeAt(a, shape.Pt(12, 12)); !ok || k != 1 {
		t.Errorf("NodeAt: got %d, %t", k, ok)
	}
	if _, ok := sc.NodeAt(a, shape.Pt(40, 40)); ok {
		t.Error("NodeAt found a distant node")
	}

	sc.ClearSelection()
	if sc.IsPointSelected(ha[0]) {
		t.Error("point still selected")
	}
}

func TestSelection(t *testing.T) {
	sc := New(64, 64)
	a := mustAdd(t, sc, rectShape(1, 0, 0, 5, 5))
	b := mustAdd(t, sc, rectShape(1, 10, 10, 15, 15))
	c := mustAdd(t, sc, rectShape(1, 30, 30, 40, 40))

	sc.Select(c)
	sc.Select(a)
	sc.Select(c)
	sc.Select(ID(999))
	if got := sc.Selected(); !slices.Equal(got, []ID{c, a}) {
		t.Errorf("selection %v, want [%d %d]", got, c, a)
	}
	sc.Deselect(c)
	if !sc.IsSelected(a) || sc.IsSelected(c) {
		t.Error("Deselect failed")
	}

	sc.Remove(a)
	if len(sc.Selected()) != 0 {
		t.Error("removed shape still selected")
	}

	sc.SelectBox(shape.Pt(20, 20), shape.Pt(4, 4))
	if got := sc.Selected(); !slices.Equal(got, []ID{b}) {
		t.Errorf("box selection %v, want [%d]", got, b)
	}
}

func TestShapeAt(t *testing.T) {
	sc := New(64, 64)
	r := mustAdd(t, sc, rectShape(1, 0, 0, 20, 20))
	c := mustAdd(t, sc, shape.New(shape.Circle, 2, shape.Pt(10, 10), shape.Pt(15, 10)))

	if id, ok := sc.ShapeAt(shape.Pt(10, 10)); !ok || id != c {
		t.Errorf("centre: got %d, want the circle", id)
	}
	if id, ok := sc.ShapeAt(shape.Pt(18, 18)); !ok || id != r {
		t.Errorf("corner: got %d, want the rect", id)
	}
	if _, ok := sc.ShapeAt(shape.Pt(50, 50)); ok {
		t.Error("hit on empty canvas")
	}
}

func TestNodeEdits(t *testing.T) {
	sc := New(64, 64)
	line := mustAdd(t, sc, shape.New(shape.Line, 1, shape.Pt(0, 0), shape.Pt(10, 0)))
	poly := mustAdd(t, sc, shape.New(shape.Polygon, 1,
		shape.Pt(0, 0), shape.Pt(10, 0), shape.Pt(10, 10), shape.Pt(0, 10)))
	tri := mustAdd(t, sc, shape.New(shape.Triangle, 1, shape.Pt(0, 0), shape.Pt(4, 0), shape.Pt(0, 4)))

	if sc.RemoveNode(line, 0) {
		t.Error("removed a node from a two-point line")
	}
	if !sc.AddNode(line, shape.Pt(20, 5)) {
		t.Fatal("AddNode on a line failed")
	}
	if s, _ := sc.Shape(line); len(s.Points) != 3 || s.Points[2] != shape.Pt(20, 5) {
		t.Errorf("line points %v", s.Points)
	}
	if !sc.RemoveNode(line, 1) {
		t.Error("RemoveNode on a three-point line failed")
	}

	if !sc.AddNode(poly, shape.Pt(5, -1)) {
		t.Fatal("AddNode on a polygon failed")
	}
	s, _ := sc.Shape(poly)
	if len(s.Points) != 5 || s.Points[1] != shape.Pt(5, -1) {
		t.Errorf("polygon points %v", s.Points)
	}
	if !sc.RemoveNode(poly, 1) || !sc.RemoveNode(poly, 0) {
		t.Fatal("RemoveNode on a polygon failed")
	}
	if sc.RemoveNode(poly, 0) {
		t.Error("removed a node from a three-point polygon")
	}
	if sc.RemoveNode(poly, 7) {
		t.Error("removed a node with an invalid index")
	}

	if sc.AddNode(tri, shape.Pt(9, 9)) || sc.RemoveNode(tri, 0) {
		t.Error("triangle accepted a node edit")
	}
	if s, _ := sc.Shape(tri); s.Validate() != nil {
		t.Error("triangle became invalid")
	}
}

func TestBoolean(t *testing.T) {
	sc := New(64, 64)
	a := mustAdd(t, sc, rectShape(4, 0, 0, 9, 9))
	c := mustAdd(t, sc, rectShape(6, 40, 40, 50, 50))
	b := mustAdd(t, sc, rectShape(5, 5, 5, 14, 14).WithDither(2))

	if _, err := sc.Boolean(context.Background(), pixelart.Union); !errors.Is(err, ErrSelection) {
		t.Errorf("empty selection: got %v, want ErrSelection", err)
	}
	sc.Select(a)
	if _, err := sc.Boolean(context.Background(), pixelart.Union); !errors.Is(err, ErrSelection) {
		t.Errorf("one shape: got %v, want ErrSelection", err)
	}

	sc.Select(b)
	id, err := sc.Boolean(context.Background(), pixelart.Union)
	if err != nil {
		t.Fatal(err)
	}
	if got := sc.IDs(); !slices.Equal(got, []ID{c, id}) {
		t.Errorf("z-order %v, want [%d %d]", got, c, id)
	}
	res, _ := sc.Shape(id)
	if res.Kind != shape.Polygon || res.Color != 4 || res.Outline || res.Dither != nil {
		t.Errorf("unexpected result %+v", res)
	}
	if !slices.Equal(sc.Selected(), []ID{id}) {
		t.Errorf("selection %v, want the result", sc.Selected())
	}
}

func TestBooleanAtomic(t *testing.T) {
	sc := New(64, 64)
	a := mustAdd(t, sc, rectShape(1, 0, 0, 5, 5))
	b := mustAdd(t, sc, rectShape(2, 30, 30, 35, 35))
	sc.Select(a)
	sc.Select(b)
	before := sc.Shapes()

	_, err := sc.Boolean(context.Background(), pixelart.Intersect)
	if !errors.Is(err, pixelart.ErrEmpty) {
		t.Fatalf("got %v, want ErrEmpty", err)
	}
	after := sc.Shapes()
	if len(after) != len(before) || !slices.Equal(sc.Selected(), []ID{a, b}) {
		t.Error("failed operation changed the scene")
	}
}

// countingGeometry records the calls which reach it.
type countingGeometry struct {
	direct
	calls int
}

func (g *countingGeometry) Boolean(ctx context.Context, op pixelart.Op, a, b shape.Shape, w, h, color int) (*shape.Shape, error) {
	g.calls++
	return g.direct.Boolean(ctx, op, a, b, w, h, color)
}

func TestGeometry(t *testing.T) {
	sc := New(64, 64)
	g := &countingGeometry{}
	sc.Geometry = g
	sc.Select(mustAdd(t, sc, rectShape(1, 0, 0, 20, 20)))
	sc.Select(mustAdd(t, sc, rectShape(1, 10, 10, 30, 30)))
	if _, err := sc.Boolean(context.Background(), pixelart.Subtract); err != nil {
		t.Fatal(err)
	}
	if g.calls != 1 {
		t.Errorf("%d calls to the geometry engine, want 1", g.calls)
	}
}

func TestConvertToPolygon(t *testing.T) {
	sc := New(64, 64)
	if _, err := sc.ConvertToPolygon(context.Background()); !errors.Is(err, ErrSelection) {
		t.Errorf("got %v, want ErrSelection", err)
	}

	circle := shape.New(shape.Circle, 3, shape.Pt(20, 20), shape.Pt(30, 20))
	circle.Outline = true
	c := mustAdd(t, sc, circle)
	p := mustAdd(t, sc, shape.New(shape.Polygon, 2, shape.Pt(0, 0), shape.Pt(9, 0), shape.Pt(0, 9)))
	flat := mustAdd(t, sc, shape.New(shape.Oval, 1, shape.Pt(0, 50), shape.Pt(20, 50)))
	top := mustAdd(t, sc, rectShape(1, 50, 50, 60, 60))

	sc.Select(c)
	sc.Select(p)
	sc.Select(flat)
	ids, err := sc.ConvertToPolygon(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[1] != p {
		t.Fatalf("got %v", ids)
	}
	conv, _ := sc.Shape(ids[0])
	if conv.Kind != shape.Polygon || conv.Color != 3 || !conv.Outline {
		t.Errorf("unexpected conversion %+v", conv)
	}
	if got := sc.IDs(); !slices.Equal(got, []ID{p, flat, top, ids[0]}) {
		t.Errorf("z-order %v", got)
	}
}

func TestZOrder(t *testing.T) {
	sc := New(64, 64)
	var ids []ID
	for i := range 5 {
		ids = append(ids, mustAdd(t, sc, rectShape(i, 0, 0, 1, 1)))
	}
	sc.Select(ids[3])
	sc.Select(ids[1])
	sc.BringToFront()
	if got, want := sc.IDs(), []ID{ids[0], ids[2], ids[4], ids[3], ids[1]}; !slices.Equal(got, want) {
		t.Errorf("front: got %v, want %v", got, want)
	}
	sc.SendToBack()
	if got, want := sc.IDs(), []ID{ids[3], ids[1], ids[0], ids[2], ids[4]}; !slices.Equal(got, want) {
		t.Errorf("back: got %v, want %v", got, want)
	}
}

func TestUpdate(t *testing.T) {
	sc := New(64, 64)
	id := mustAdd(t, sc, rectShape(1, 0, 0, 5, 5))
	style := shape.New(shape.Circle, 7).WithDither(4)
	style.Outline = true
	if err := sc.Update(id, style); err != nil {
		t.Fatal(err)
	}
	s, _ := sc.Shape(id)
	if s.Kind != shape.Rect || s.Color != 7 || !s.Outline || *s.Dither != 4 || len(s.Points) != 2 {
		t.Errorf("got %+v", s)
	}
	style.LineWidth = 0
	if err := sc.Update(id, style); !errors.Is(err, shape.ErrLineWidth) {
		t.Errorf("got %v, want ErrLineWidth", err)
	}
}

func TestProject(t *testing.T) {
	sc := New(32, 16)
	sc.Background = "#000000"
	mustAdd(t, sc, rectShape(1, 0, 0, 5, 5))
	mustAdd(t, sc, shape.New(shape.Fill, 2, shape.Pt(9, 9)))

	p := sc.Project()
	p.Shapes = append(p.Shapes, shape.New(shape.Triangle, 1))
	again := FromProject(p)
	if again.Width != 32 || again.Height != 16 || again.Background != "#000000" {
		t.Errorf("settings lost: %d×%d %s", again.Width, again.Height, again.Background)
	}
	if again.Len() != 2 {
		t.Errorf("got %d shapes, want 2", again.Len())
	}
}
