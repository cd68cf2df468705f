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


// Package palette provides the built-in colour palettes of the editor
// and conversion between colours and "#rrggbb" strings.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Default is the name of the palette used by new projects.
const Default = "16bit"

var builtin = map[string][]string{
	"16bit": {
		"#000000", "#ffffff", "#808080", "#c0c0c0",
		"#ff0000", "#00ff00", "#0000ff", "#ffff00",
		"#ff00ff", "#00ffff", "#800000", "#008000",
		"#000080", "#808000", "#800080", "#008080",
	},
	"tic80": {
		"#1a1c2c", "#5d275d", "#b13e53", "#ef7d57",
		"#ffcd75", "#a7f070", "#38b764", "#257179",
		"#29366f", "#3b5dc9", "#41a6f6", "#73eff7",
		"#f4f4f4", "#94b0c2", "#566c86", "#333c57",
	},
	"pico8": {
		"#000000", "#1d2b53", "#7e2553", "#008751",
		"#ab5236", "#5f574f", "#c2c3c7", "#fff1e8",
		"#ff004d", "#ffa300", "#ffec27", "#00e436",
		"#29adff", "#83769c", "#ff77a8", "#ffccaa",
	},
	"gameboy": {
		"#0f380f", "#306230", "#8bac0f", "#9bbc0f",
	},
	"1bit": {
		"#000000", "#ffffff",
	},
}

var (
	// ErrUnknown is returned by [Named] for names without a palette.
	ErrUnknown = errors.New("palette: unknown palette")

	// ErrHex indicates a malformed colour string.
	ErrHex = errors.New("palette: malformed hex colour")
)

// Names returns the names of the built-in palettes in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(builtin))
}

// Named returns a copy of the built-in palette with the given name.
func Named(name string) (color.Palette, error) {
	hex, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, name)
	}
	return Parse(hex)
}

// Parse converts a list of hex colour strings into a palette.
func Parse(hex []string) (color.Palette, error) {
	pal := make(color.Palette, len(hex))
	for i, h := range hex {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		pal[i] = c
	}
	return pal, nil
}

// ParseHex parses a colour of the form "#rrggbb" or "#rgb".
// The leading "#" is optional and letters may be upper or lower case.
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w %q", ErrHex, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w %q", ErrHex, s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Hex formats the colour as "#rrggbb".  Transparency is ignored.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
