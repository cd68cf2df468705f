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

package shape

import (
	"encoding/json"

	"seehuhn.de/go/geom/vec"
)

// jsonShape is the on-disk form of a shape, as written by the editor.
type jsonShape struct {
	Type          string      `json:"type"`
	Points        []jsonPoint `json:"points"`
	Color         int         `json:"color"`
	LineWidth     int         `json:"lineWidth"`
	Outline       bool        `json:"outline"`
	DitherPattern *int        `json:"ditherPattern,omitempty"`
	Name          *string     `json:"name"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, ErrKind
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// MarshalJSON implements [json.Marshaler].
func (s Shape) MarshalJSON() ([]byte, error) {
	kind, err := s.Kind.MarshalText()
	if err != nil {
		return nil, err
	}
	js := jsonShape{
		Type:          string(kind),
		Points:        make([]jsonPoint, len(s.Points)),
		Color:         s.Color,
		LineWidth:     s.LineWidth,
		Outline:       s.Outline,
		DitherPattern: s.Dither,
	}
	for i, p := range s.Points {
		js.Points[i] = jsonPoint{X: p.X, Y: p.Y}
	}
	if s.Name != "" {
		js.Name = &s.Name
	}
	return json.Marshal(js)
}

// UnmarshalJSON implements [json.Unmarshaler].  A missing or zero line
// width is read as 1, as in files written by early editor versions.
// The point count is not checked; use [Shape.Validate] for this.
func (s *Shape) UnmarshalJSON(data []byte) error {
	var js jsonShape
	if err := json.Unmarshal(data, &js); err != nil {
		return err
	}
	kind, err := ParseKind(js.Type)
	if err != nil {
		return err
	}

	res := Shape{
		Kind:      kind,
		Points:    make([]vec.Vec2, len(js.Points)),
		Color:     js.Color,
		LineWidth: js.LineWidth,
		Outline:   js.Outline,
		Dither:    js.DitherPattern,
	}
	for i, p := range js.Points {
		res.Points[i] = vec.Vec2{X: p.X, Y: p.Y}
	}
	if res.LineWidth <= 0 {
		res.LineWidth = 1
	}
	if js.Name != nil {
		res.Name = *js.Name
	}
	*s = res
	return nil
}
