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


package project

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"seehuhn.de/go/pixelart/shape"
)

func TestDecodeBareArray(t *testing.T) {
	in := `[
		{"type": "rect", "points": [{"x": 0, "y": 0}, {"x": 9, "y": 9}], "color": 4},
		{"type": "line", "points": [{"x": 1, "y": 2}, {"x": 3, "y": 4}], "color": 1, "lineWidth": 3}
	]`
	p, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if p.CanvasWidth != DefaultWidth || p.CanvasHeight != DefaultHeight {
		t.Errorf("canvas %d×%d, want defaults", p.CanvasWidth, p.CanvasHeight)
	}
	if p.BackgroundColor != DefaultBackground {
		t.Errorf("background %q, want %q", p.BackgroundColor, DefaultBackground)
	}
	if len(p.Shapes) != 2 {
		t.Fatalf("got %d shapes, want 2", len(p.Shapes))
	}
	if p.Shapes[0].Kind != shape.Rect || p.Shapes[0].LineWidth != 1 {
		t.Errorf("shape 0: %+v", p.Shapes[0])
	}
	if p.Shapes[1].LineWidth != 3 {
		t.Errorf("shape 1 line width %d, want 3", p.Shapes[1].LineWidth)
	}
}

func TestDecodeObject(t *testing.T) {
	in := `{
		"canvasWidth": 128,
		"canvasHeight": 64,
		"backgroundColor": "#1a1c2c",
		"shapes": [
			{"type": "circle", "points": [{"x": 10, "y": 10}, {"x": 15, "y": 10}], "color": 2, "ditherPattern": 3, "name": "moon"}
		]
	}`
	p, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if p.CanvasWidth != 128 || p.CanvasHeight != 64 {
		t.Errorf("canvas %d×%d, want 128×64", p.CanvasWidth, p.CanvasHeight)
	}
	bg, err := p.Background()
	if err != nil {
		t.Fatal(err)
	}
	if bg != (color.NRGBA{0x1a, 0x1c, 0x2c, 0xff}) {
		t.Errorf("background %v", bg)
	}
	s := p.Shapes[0]
	if s.Name != "moon" || s.Dither == nil || *s.Dither != 3 {
		t.Errorf("unexpected shape %+v", s)
	}
}

func TestDecodePartialCanvas(t *testing.T) {
	p, err := Decode(strings.NewReader(`{"canvasWidth": 100, "shapes": []}`))
	if err != nil {
		t.Fatal(err)
	}
	if p.CanvasWidth != DefaultWidth || p.CanvasHeight != DefaultHeight {
		t.Errorf("canvas %d×%d, want defaults", p.CanvasWidth, p.CanvasHeight)
	}
}

func TestDecodeDropsMalformed(t *testing.T) {
	in := `[
		{"type": "hexagon", "points": [{"x": 0, "y": 0}]},
		{"type": "triangle", "points": [{"x": 0, "y": 0}, {"x": 1, "y": 1}]},
		{"type": "fill", "points": [{"x": 5, "y": 5}], "color": 3}
	]`
	p, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Shapes) != 1 || p.Shapes[0].Kind != shape.Fill {
		t.Errorf("got %+v, want only the fill shape", p.Shapes)
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, in := range []string{"", "  ", `"shapes"`, "42"} {
		if _, err := Decode(strings.NewReader(in)); !errors.Is(err, ErrFormat) {
			t.Errorf("Decode(%q): got %v, want ErrFormat", in, err)
		}
	}
	if _, err := Decode(strings.NewReader(`{"shapes": [`)); err == nil {
		t.Error("truncated file accepted")
	}
}

func TestRoundTrip(t *testing.T) {
	p := New()
	p.CanvasWidth = 32
	p.CanvasHeight = 48
	p.Shapes = []shape.Shape{
		shape.New(shape.Polygon, 5, shape.Pt(1, 1), shape.Pt(20, 3), shape.Pt(10, 30), shape.Pt(2, 20)),
		shape.New(shape.Oval, 6, shape.Pt(3, 3), shape.Pt(12.5, 8)).WithDither(11),
	}
	p.Shapes[0].Outline = true

	buf := &bytes.Buffer{}
	if err := p.Encode(buf); err != nil {
		t.Fatal(err)
	}
	q, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if q.CanvasWidth != 32 || q.CanvasHeight != 48 || q.BackgroundColor != DefaultBackground {
		t.Errorf("settings changed: %+v", q)
	}
	if len(q.Shapes) != len(p.Shapes) {
		t.Fatalf("got %d shapes, want %d", len(q.Shapes), len(p.Shapes))
	}
	for i := range p.Shapes {
		a, b := p.Shapes[i], q.Shapes[i]
		if a.Kind != b.Kind || a.Color != b.Color || a.Outline != b.Outline || len(a.Points) != len(b.Points) {
			t.Errorf("shape %d: got %+v, want %+v", i, b, a)
			continue
		}
		for j := range a.Points {
			if a.Points[j] != b.Points[j] {
				t.Errorf("shape %d point %d: got %v, want %v", i, j, b.Points[j], a.Points[j])
			}
		}
	}
	if q.Shapes[1].Dither == nil || *q.Shapes[1].Dither != 11 {
		t.Error("dither pattern lost")
	}
}

func TestEncodeEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := New().Encode(buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"shapes": []`) {
		t.Errorf("empty shape list not written as array:\n%s", buf)
	}
}
