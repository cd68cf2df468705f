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


// Package scene holds the editable state of a drawing: the shapes in
// z-order, their points, and the current selection.
//
// Points are stored in an arena and addressed by [Handle].  Shapes refer
// to their points by handle, so that a selected point stays selected
// while it is dragged, and no two shapes ever share a point.
//
// All operations which replace shapes (boolean operations and conversion
// to polygons) compute their result first and change the scene only on
// success.
package scene

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixelart"
	"seehuhn.de/go/pixelart/project"
	"seehuhn.de/go/pixelart/shape"
)

// Handle identifies a point in the arena of a Scene.
type Handle int

// ID identifies a shape in a Scene.  IDs are not reused.
type ID uint64

var (
	// ErrSelection indicates that the selection does not contain enough
	// shapes for the requested operation.
	ErrSelection = errors.New("scene: not enough shapes selected")

	// ErrUnknown indicates a shape ID which is not part of the scene.
	ErrUnknown = errors.New("scene: unknown shape")
)

// Geometry computes boolean operations and polygon conversions.
// An offload.Worker can be used to run these away from the caller's
// goroutine.
type Geometry interface {
	Boolean(ctx context.Context, op pixelart.Op, a, b shape.Shape, w, h, color int) (*shape.Shape, error)
	ConvertToPolygon(ctx context.Context, s shape.Shape, w, h int) (*shape.Shape, error)
}

// direct runs the geometry code on the caller's goroutine.
type direct struct{}

func (direct) Boolean(_ context.Context, op pixelart.Op, a, b shape.Shape, w, h, color int) (*shape.Shape, error) {
	return pixelart.Boolean(op, a, b, w, h, color)
}

func (direct) ConvertToPolygon(_ context.Context, s shape.Shape, w, h int) (*shape.Shape, error) {
	return pixelart.ConvertToPolygon(s, w, h)
}

// entry is a shape whose points live in the arena.  The Points field of
// style is always nil.
type entry struct {
	id      ID
	style   shape.Shape
	handles []Handle
}

// Scene is an editable drawing.
//
// A Scene is not safe for concurrent use.
type Scene struct {
	Width, Height int
	Background    string

	// CellSize is the grid cell size used for hit-testing, or 0 if no
	// grid is active.
	CellSize int

	// Geometry is used by Boolean and ConvertToPolygon.  If nil, the
	// computation runs on the caller's goroutine.
	Geometry Geometry

	points []vec.Vec2
	free   []Handle

	entries []*entry // back to front
	nextID  ID

	selected  []ID // in the order of selection
	selPoints map[Handle]struct{}
}

// New returns an empty scene with the given canvas size and the default
// background.
func New(w, h int) *Scene {
	return &Scene{
		Width:      w,
		Height:     h,
		Background: project.DefaultBackground,
		selPoints:  make(map[Handle]struct{}),
	}
}

// FromProject creates a scene holding copies of the shapes of p.
// Shapes which fail validation are skipped.
func FromProject(p *project.Project) *Scene {
	sc := New(p.CanvasWidth, p.CanvasHeight)
	sc.Background = p.BackgroundColor
	for i, s := range p.Shapes {
		if _, err := sc.Add(s); err != nil {
			pixelart.Logger().Warn("skipping shape", "index", i, "error", err)
		}
	}
	return sc
}

// Project returns the scene as a project, with the shapes in z-order.
func (sc *Scene) Project() *project.Project {
	return &project.Project{
		CanvasWidth:     sc.Width,
		CanvasHeight:    sc.Height,
		BackgroundColor: sc.Background,
		Shapes:          sc.Shapes(),
	}
}

func (sc *Scene) alloc(p vec.Vec2) Handle {
	if n := len(sc.free); n > 0 {
		h := sc.free[n-1]
		sc.free = sc.free[:n-1]
		sc.points[h] = p
		return h
	}
	sc.points = append(sc.points, p)
	return Handle(len(sc.points) - 1)
}

func (sc *Scene) release(h Handle) {
	delete(sc.selPoints, h)
	sc.free = append(sc.free, h)
}

func (sc *Scene) index(id ID) int {
	return slices.IndexFunc(sc.entries, func(e *entry) bool { return e.id == id })
}

func (sc *Scene) lookup(id ID) (*entry, error) {
	i := sc.index(id)
	if i < 0 {
		return nil, fmt.Errorf("%w %d", ErrUnknown, id)
	}
	return sc.entries[i], nil
}

func (sc *Scene) materialise(e *entry) shape.Shape {
	s := e.style.Clone()
	s.Points = make([]vec.Vec2, len(e.handles))
	for i, h := range e.handles {
		s.Points[i] = sc.points[h]
	}
	return s
}

// Add places a copy of s on top of the scene and returns its ID.
func (sc *Scene) Add(s shape.Shape) (ID, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return sc.insert(len(sc.entries), s), nil
}

// insert places a valid shape at position pos of the z-order.
func (sc *Scene) insert(pos int, s shape.Shape) ID {
	sc.nextID++
	e := &entry{id: sc.nextID, style: s.Clone()}
	e.style.Points = nil
	e.handles = make([]Handle, len(s.Points))
	for i, p := range s.Points {
		e.handles[i] = sc.alloc(p)
	}
	sc.entries = slices.Insert(sc.entries, pos, e)
	return e.id
}

// Remove deletes a shape and reports whether it was present.
func (sc *Scene) Remove(id ID) bool {
	i := sc.index(id)
	if i < 0 {
		return false
	}
	for _, h := range sc.entries[i].handles {
		sc.release(h)
	}
	sc.entries = slices.Delete(sc.entries, i, i+1)
	sc.selected = slices.DeleteFunc(sc.selected, func(x ID) bool { return x == id })
	return true
}

// Len returns the number of shapes.
func (sc *Scene) Len() int {
	return len(sc.entries)
}

// IDs returns the shape IDs, back to front.
func (sc *Scene) IDs() []ID {
	res := make([]ID, len(sc.entries))
	for i, e := range sc.entries {
		res[i] = e.id
	}
	return res
}

// Shape returns a copy of the shape with the given ID.
func (sc *Scene) Shape(id ID) (shape.Shape, bool) {
	i := sc.index(id)
	if i < 0 {
		return shape.Shape{}, false
	}
	return sc.materialise(sc.entries[i]), true
}

// Shapes returns copies of all shapes, back to front.
func (sc *Scene) Shapes() []shape.Shape {
	res := make([]shape.Shape, len(sc.entries))
	for i, e := range sc.entries {
		res[i] = sc.materialise(e)
	}
	return res
}

// Update replaces the style of a shape (colour, line width, outline,
// dither and name).  The kind and the points are not changed.
func (sc *Scene) Update(id ID, style shape.Shape) error {
	e, err := sc.lookup(id)
	if err != nil {
		return err
	}
	style.Kind = e.style.Kind
	style.Points = sc.materialise(e).Points
	if err := style.Validate(); err != nil {
		return err
	}
	style.Points = nil
	e.style = style.Clone()
	return nil
}

// Handles returns the point handles of a shape, in point order.
func (sc *Scene) Handles(id ID) []Handle {
	i := sc.index(id)
	if i < 0 {
		return nil
	}
	return slices.Clone(sc.entries[i].handles)
}

// Point returns the position of the point with handle h.
func (sc *Scene) Point(h Handle) vec.Vec2 {
	return sc.points[h]
}

// MovePoint sets the position of the point with handle h.
func (sc *Scene) MovePoint(h Handle, p vec.Vec2) {
	sc.points[h] = p
}

// Translate moves all points of the given shapes by d.
func (sc *Scene) Translate(d vec.Vec2, ids ...ID) {
	for _, id := range ids {
		i := sc.index(id)
		if i < 0 {
			continue
		}
		for _, h := range sc.entries[i].handles {
			sc.points[h] = sc.points[h].Add(d)
		}
	}
}

// Select adds a shape to the end of the selection.  Shapes which are
// already selected keep their position.
func (sc *Scene) Select(id ID) {
	if sc.index(id) < 0 || slices.Contains(sc.selected, id) {
		return
	}
	sc.selected = append(sc.selected, id)
}

// Deselect removes a shape from the selection.
func (sc *Scene) Deselect(id ID) {
	sc.selected = slices.DeleteFunc(sc.selected, func(x ID) bool { return x == id })
}

// ClearSelection deselects all shapes and points.
func (sc *Scene) ClearSelection() {
	sc.selected = sc.selected[:0]
	clear(sc.selPoints)
}

// Selected returns the selected shapes in the order of selection.
func (sc *Scene) Selected() []ID {
	return slices.Clone(sc.selected)
}

// IsSelected reports whether a shape is selected.
func (sc *Scene) IsSelected(id ID) bool {
	return slices.Contains(sc.selected, id)
}

// SelectBox replaces the selection by all shapes which have at least one
// point inside the box spanned by a and b, in z-order.
func (sc *Scene) SelectBox(a, b vec.Vec2) {
	box := rect.Rect{
		LLx: min(a.X, b.X), LLy: min(a.Y, b.Y),
		URx: max(a.X, b.X), URy: max(a.Y, b.Y),
	}
	sc.selected = sc.selected[:0]
	for _, e := range sc.entries {
		for _, h := range e.handles {
			p := sc.points[h]
			if p.X >= box.LLx && p.X <= box.URx && p.Y >= box.LLy && p.Y <= box.URy {
				sc.selected = append(sc.selected, e.id)
				break
			}
		}
	}
}

// SelectPoint adds a point to the point selection.
func (sc *Scene) SelectPoint(h Handle) {
	sc.selPoints[h] = struct{}{}
}

// IsPointSelected reports whether the point with handle h is selected.
func (sc *Scene) IsPointSelected(h Handle) bool {
	_, ok := sc.selPoints[h]
	return ok
}

// NodeAt returns the index of the first point of the shape within
// [shape.HitTolerance] of p.
func (sc *Scene) NodeAt(id ID, p vec.Vec2) (int, bool) {
	i := sc.index(id)
	if i < 0 {
		return -1, false
	}
	for k, h := range sc.entries[i].handles {
		if sc.points[h].Sub(p).Length() < shape.HitTolerance {
			return k, true
		}
	}
	return -1, false
}

// PointAt returns the handle of the point closest to p, among all points
// within [shape.HitTolerance].  Shapes on top win ties.
func (sc *Scene) PointAt(p vec.Vec2) (Handle, bool) {
	best, found := Handle(-1), false
	bestDist := math.Inf(1)
	for i := len(sc.entries) - 1; i >= 0; i-- {
		for _, h := range sc.entries[i].handles {
			d := sc.points[h].Sub(p).Length()
			if d < shape.HitTolerance && d < bestDist {
				best, bestDist, found = h, d, true
			}
		}
	}
	return best, found
}

// ShapeAt returns the topmost shape which contains p.
func (sc *Scene) ShapeAt(p vec.Vec2) (ID, bool) {
	for i := len(sc.entries) - 1; i >= 0; i-- {
		e := sc.entries[i]
		if sc.materialise(e).Contains(p, sc.CellSize) {
			return e.id, true
		}
	}
	return 0, false
}

// AddNode adds a point to a line or polygon and reports whether the
// shape was changed.  Lines get the point appended.  For polygons, the
// point is inserted into the edge closest to p.  Other kinds are left
// unchanged.
func (sc *Scene) AddNode(id ID, p vec.Vec2) bool {
	i := sc.index(id)
	if i < 0 {
		return false
	}
	e := sc.entries[i]
	switch e.style.Kind {
	case shape.Line:
		e.handles = append(e.handles, sc.alloc(p))
		return true
	case shape.Polygon:
		n := len(e.handles)
		closest, minDist := 0, math.Inf(1)
		for k := range n {
			a := sc.points[e.handles[k]]
			b := sc.points[e.handles[(k+1)%n]]
			if d := shape.SegmentDistance(p, a, b); d < minDist {
				closest, minDist = k, d
			}
		}
		e.handles = slices.Insert(e.handles, closest+1, sc.alloc(p))
		return true
	default:
		return false
	}
}

// RemoveNode deletes point k of a shape and reports whether the shape
// was changed.  Removal is refused if the shape kind has a fixed number
// of points, or if the shape would be left with too few points.
func (sc *Scene) RemoveNode(id ID, k int) bool {
	i := sc.index(id)
	if i < 0 {
		return false
	}
	e := sc.entries[i]
	if k < 0 || k >= len(e.handles) || !e.style.Kind.CanRemoveNode(len(e.handles)) {
		return false
	}
	sc.release(e.handles[k])
	e.handles = slices.Delete(e.handles, k, k+1)
	return true
}

// Boolean combines the first and the last selected shape.  On success,
// both shapes are replaced by the resulting polygon, which is placed on
// top and selected.  It takes the colour of the first shape.
//
// If fewer than two shapes are selected, the error wraps [ErrSelection].
// If the result is empty, the error wraps [pixelart.ErrEmpty].  In both
// cases the scene is not changed.
func (sc *Scene) Boolean(ctx context.Context, op pixelart.Op) (ID, error) {
	if len(sc.selected) < 2 {
		return 0, fmt.Errorf("%w: select at least 2 shapes", ErrSelection)
	}
	baseID, otherID := sc.selected[0], sc.selected[len(sc.selected)-1]
	base, ok1 := sc.Shape(baseID)
	other, ok2 := sc.Shape(otherID)
	if !ok1 || !ok2 {
		return 0, ErrUnknown
	}

	res, err := sc.geometry().Boolean(ctx, op, base, other, sc.Width, sc.Height, base.Color)
	if err != nil {
		return 0, err
	}
	if err := res.Validate(); err != nil {
		return 0, err
	}
	pixelart.Logger().Debug("boolean",
		"op", op, "base", baseID, "other", otherID, "points", len(res.Points))

	sc.Remove(baseID)
	sc.Remove(otherID)
	id := sc.insert(len(sc.entries), *res)
	sc.selected = append(sc.selected[:0], id)
	return id, nil
}

// ConvertToPolygon replaces every selected shape by a polygon following
// its outline.  Converted shapes are placed on top, in selection order.
// Polygons, and shapes without a usable outline, stay where they are.
// The selection is set to the converted shapes and the kept polygons.
//
// If no shape is selected, the error wraps [ErrSelection].  Any other
// failure leaves the scene unchanged.
func (sc *Scene) ConvertToPolygon(ctx context.Context) ([]ID, error) {
	if len(sc.selected) == 0 {
		return nil, fmt.Errorf("%w: select at least one shape", ErrSelection)
	}

	type conversion struct {
		old ID
		res *shape.Shape
	}
	var todo []conversion
	var kept []ID
	for _, id := range sc.selected {
		s, ok := sc.Shape(id)
		if !ok {
			return nil, ErrUnknown
		}
		if s.Kind == shape.Polygon {
			kept = append(kept, id)
			continue
		}
		res, err := sc.geometry().ConvertToPolygon(ctx, s, sc.Width, sc.Height)
		if errors.Is(err, pixelart.ErrEmpty) {
			pixelart.Logger().Debug("shape has no outline", "id", id, "kind", s.Kind)
			continue
		} else if err != nil {
			return nil, err
		}
		todo = append(todo, conversion{old: id, res: res})
	}

	var ids []ID
	for _, c := range todo {
		sc.Remove(c.old)
		ids = append(ids, sc.insert(len(sc.entries), *c.res))
	}
	sc.selected = append(append(sc.selected[:0], ids...), kept...)
	return sc.Selected(), nil
}

func (sc *Scene) geometry() Geometry {
	if sc.Geometry != nil {
		return sc.Geometry
	}
	return direct{}
}

// BringToFront moves the selected shapes to the top, keeping their order
// of selection.
func (sc *Scene) BringToFront() {
	for _, id := range sc.selected {
		if i := sc.index(id); i >= 0 {
			e := sc.entries[i]
			sc.entries = append(slices.Delete(sc.entries, i, i+1), e)
		}
	}
}

// SendToBack moves the selected shapes to the bottom, keeping their
// order of selection.
func (sc *Scene) SendToBack() {
	for _, id := range slices.Backward(sc.selected) {
		if i := sc.index(id); i >= 0 {
			e := sc.entries[i]
			sc.entries = slices.Insert(slices.Delete(sc.entries, i, i+1), 0, e)
		}
	}
}
