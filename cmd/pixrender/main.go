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


// Command pixrender renders a project file to a pixel-art PNG image.
//
// With -polygons, all shapes are additionally converted to polygons and
// the result is written as a new project file.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"seehuhn.de/go/pixelart"
	"seehuhn.de/go/pixelart/grid"
	"seehuhn.de/go/pixelart/offload"
	"seehuhn.de/go/pixelart/palette"
	"seehuhn.de/go/pixelart/project"
	"seehuhn.de/go/pixelart/scene"
)

func main() {
	var (
		in          = flag.String("in", "", "project file to read")
		out         = flag.String("out", "art.png", "PNG file to write")
		cells       = flag.Int("grid", 32, "grid cells along the shorter canvas side (0 = no grid)")
		scale       = flag.Int("scale", 1, "export scale factor")
		pal         = flag.String("palette", palette.Default, "colour palette")
		transparent = flag.Bool("transparent", false, "omit the background colour")
		polygons    = flag.String("polygons", "", "write the shapes converted to polygons to this project file")
		verbose     = flag.Bool("v", false, "log debug messages")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	pixelart.SetLogger(logger)

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: pixrender -in project.json [options]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	p, err := readProject(*in)
	if err != nil {
		logger.Error("cannot read project", "file", *in, "error", err)
		os.Exit(1)
	}
	if err := render(p, *out, *cells, *scale, *pal, *transparent); err != nil {
		logger.Error("cannot render", "file", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("image written", "file", *out, "shapes", len(p.Shapes))

	if *polygons != "" {
		if err := convert(p, *polygons); err != nil {
			logger.Error("cannot convert", "file", *polygons, "error", err)
			os.Exit(1)
		}
		logger.Info("project written", "file", *polygons)
	}
}

func readProject(fname string) (*project.Project, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return project.Decode(f)
}

func render(p *project.Project, fname string, cells, scale int, palName string, transparent bool) error {
	colors, err := palette.Named(palName)
	if err != nil {
		return err
	}

	r := pixelart.NewRasteriser(colors)
	r.CellSize = grid.CellSize(p.CanvasWidth, p.CanvasHeight, cells)
	r.DitherScale = grid.DitherScale(r.CellSize)

	img := pixelart.NewImage(p.CanvasWidth, p.CanvasHeight, 1)
	if !transparent {
		bg, err := p.Background()
		if err != nil {
			return err
		}
		img.Clear(bg)
	}
	if err := r.Render(p.Shapes, img); err != nil {
		// Render draws all valid shapes; report the others and carry on.
		pixelart.Logger().Warn("some shapes were not drawn", "error", err)
	}

	if r.CellSize == 0 {
		cells = 0
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img.PixelArt(cells, scale)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// convert replaces every shape of p by a polygon, using a background
// worker, and writes the result to fname.
func convert(p *project.Project, fname string) error {
	w := offload.New()
	defer w.Close()

	sc := scene.FromProject(p)
	sc.Geometry = w
	for _, id := range sc.IDs() {
		sc.Select(id)
	}
	if sc.Len() > 0 {
		if _, err := sc.ConvertToPolygon(context.Background()); err != nil {
			return err
		}
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := sc.Project().Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
