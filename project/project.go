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


// Package project reads and writes the JSON project files of the editor.
//
// A project file is an object with the canvas size, the background
// colour and the list of shapes.  Files written by early editor versions
// consist of a bare array of shapes; these are read with default canvas
// settings.
package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"io"

	"seehuhn.de/go/pixelart"
	"seehuhn.de/go/pixelart/palette"
	"seehuhn.de/go/pixelart/shape"
)

// Defaults for new projects and for files which omit the canvas settings.
const (
	DefaultWidth      = 240
	DefaultHeight     = 240
	DefaultBackground = "#e8e8e8"
)

// ErrFormat indicates that a file is neither a project object nor a shape
// array.
var ErrFormat = errors.New("project: unrecognised file format")

// Project is a drawing together with its canvas settings.
type Project struct {
	CanvasWidth     int           `json:"canvasWidth"`
	CanvasHeight    int           `json:"canvasHeight"`
	BackgroundColor string        `json:"backgroundColor"`
	Shapes          []shape.Shape `json:"shapes"`
}

// New returns an empty project with default settings.
func New() *Project {
	return &Project{
		CanvasWidth:     DefaultWidth,
		CanvasHeight:    DefaultHeight,
		BackgroundColor: DefaultBackground,
	}
}

// Background returns the parsed background colour.
func (p *Project) Background() (color.NRGBA, error) {
	return palette.ParseHex(p.BackgroundColor)
}

type jsonProject struct {
	CanvasWidth     int               `json:"canvasWidth"`
	CanvasHeight    int               `json:"canvasHeight"`
	BackgroundColor string            `json:"backgroundColor"`
	Shapes          []json.RawMessage `json:"shapes"`
}

// Decode reads a project file.
//
// Shapes which cannot be decoded, or which fail [shape.Shape.Validate],
// are dropped and logged.  The canvas size is only taken from the file if
// both dimensions are positive.
func Decode(r io.Reader) (*Project, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrFormat
	}

	p := New()
	var raw []json.RawMessage
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("project: %w", err)
		}
	case '{':
		var jp jsonProject
		if err := json.Unmarshal(data, &jp); err != nil {
			return nil, fmt.Errorf("project: %w", err)
		}
		if jp.CanvasWidth > 0 && jp.CanvasHeight > 0 {
			p.CanvasWidth = jp.CanvasWidth
			p.CanvasHeight = jp.CanvasHeight
		}
		if jp.BackgroundColor != "" {
			p.BackgroundColor = jp.BackgroundColor
		}
		raw = jp.Shapes
	default:
		return nil, ErrFormat
	}

	p.Shapes = make([]shape.Shape, 0, len(raw))
	for i, msg := range raw {
		var s shape.Shape
		err := json.Unmarshal(msg, &s)
		if err == nil {
			err = s.Validate()
		}
		if err != nil {
			pixelart.Logger().Warn("dropping shape", "index", i, "error", err)
			continue
		}
		p.Shapes = append(p.Shapes, s)
	}
	return p, nil
}

// Encode writes the project in the current file format, indented by two
// spaces.
func (p *Project) Encode(w io.Writer) error {
	shapes := p.Shapes
	if shapes == nil {
		shapes = []shape.Shape{}
	}
	out := Project{
		CanvasWidth:     p.CanvasWidth,
		CanvasHeight:    p.CanvasHeight,
		BackgroundColor: p.BackgroundColor,
		Shapes:          shapes,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
