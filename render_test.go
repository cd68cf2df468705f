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
	"bytes"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/pixelart/palette"
	"seehuhn.de/go/pixelart/shape"
	"seehuhn.de/go/pixelart/testcases"
)

// TestFixtures draws every test case onto an Image and onto a pixel
// collector, and checks that both agree on the painted pixels.
func TestFixtures(t *testing.T) {
	pal, err := palette.Named(palette.Default)
	if err != nil {
		t.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				shapes := tc.Scene()

				r := NewRasteriser(pal)
				r.CellSize = tc.CellSize()
				r.DitherScale = max(r.CellSize, 1)

				img := NewImage(tc.Width, tc.Height, 2)
				if err := r.Render(shapes, img); err != nil {
					t.Fatal(err)
				}
				pc := &pixelCollector{pixels: PixelSet{}, w: tc.Width, h: tc.Height}
				if err := r.Render(shapes, pc); err != nil {
					t.Fatal(err)
				}

				painted := PixelSet{}
				for y := range tc.Height {
					for x := range tc.Width {
						if img.NRGBAAt(2*x, 2*y).A != 0 {
							painted[image.Pt(x, y)] = struct{}{}
						}
					}
				}
				if !sameSet(painted, pc.pixels) {
					_ = writeDiffImage(name, pc.pixels, painted, tc.Width, tc.Height)
					t.Errorf("image has %d painted pixels, collector %d",
						len(painted), len(pc.pixels))
				}
			})
		}
	}
}

// writeDiffImage writes a three-panel image to debug/: actual (left),
// differences (middle) and expected (right).  Green marks missing
// pixels, red marks extra pixels.
func writeDiffImage(name string, expected, actual PixelSet, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			p := image.Pt(x, y)
			e, a := expected.Has(p), actual.Has(p)

			img.Set(x, y, panelColor(a))
			switch {
			case e && !a:
				img.Set(x+w, y, color.RGBA{G: 255, A: 255})
			case a && !e:
				img.Set(x+w, y, color.RGBA{R: 255, A: 255})
			default:
				img.Set(x+w, y, color.RGBA{A: 255})
			}
			img.Set(x+2*w, y, panelColor(e))
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func panelColor(on bool) color.Color {
	if on {
		return color.White
	}
	return color.Black
}

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	r := NewRasteriser(testPalette)
	_ = r.Render([]shape.Shape{shape.New(shape.Oval, 0)}, newRecorder())
	if !strings.Contains(buf.String(), "shapes skipped") {
		t.Errorf("missing warning in log output %q", buf.String())
	}

	buf.Reset()
	SetLogger(nil)
	_ = r.Render([]shape.Shape{shape.New(shape.Oval, 0)}, newRecorder())
	if buf.Len() != 0 {
		t.Errorf("default logger wrote %q", buf.String())
	}
}

// BenchmarkRenderAll measures steady-state performance by reusing a single
// Rasteriser across all test cases.
func BenchmarkRenderAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}
	scenes := make([][]shape.Shape, len(cases))
	for i, tc := range cases {
		scenes[i] = tc.Scene()
	}

	pal, _ := palette.Named(palette.Default)
	r := NewRasteriser(pal)
	dst := &discard{}

	b.ReportAllocs()
	for b.Loop() {
		for i, tc := range cases {
			r.CellSize = tc.CellSize()
			r.DitherScale = max(r.CellSize, 1)
			_ = r.Render(scenes[i], dst)
		}
	}
}

// discard is a Surface which ignores all paint.
type discard struct{}

func (discard) Fill(x, y, w, h int, c color.Color) {}
