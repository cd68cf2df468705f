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

package dither

import (
	"errors"
	"testing"
)

func TestDensityOrder(t *testing.T) {
	if d := patterns[0].Density(); d != 64 {
		t.Errorf("first pattern has density %d, want 64", d)
	}
	if d := patterns[Count-1].Density(); d != 0 {
		t.Errorf("last pattern has density %d, want 0", d)
	}
	for i := 1; i < Count; i++ {
		if patterns[i].Density() >= patterns[i-1].Density() {
			t.Errorf("pattern %d is not sparser than pattern %d", i, i-1)
		}
	}
}

// TestNested checks that every painted cell of a sparse pattern is also
// painted in all denser patterns.
func TestNested(t *testing.T) {
	for i := 1; i < Count; i++ {
		for y := range Size {
			if patterns[i][y]&^patterns[i-1][y] != 0 {
				t.Errorf("pattern %d row %d not contained in pattern %d", i, y, i-1)
			}
		}
	}
}

func TestSamplePeriodic(t *testing.T) {
	for p := range Count {
		for _, s := range []int{1, 2, 3, 7} {
			for y := -20; y < 20; y++ {
				for x := -20; x < 20; x++ {
					a := Sample(float64(x)+0.5, float64(y), p, s)
					b := Sample(float64(x+8*s)+0.5, float64(y+8*s), p, s)
					if a != b {
						t.Fatalf("pattern %d scale %d: (%d,%d) not periodic", p, s, x, y)
					}
				}
			}
		}
	}
}

func TestSampleScale(t *testing.T) {
	// With scale 3 every pattern cell covers a 3×3 block.
	const p = 9
	for y := range 24 {
		for x := range 24 {
			want := patterns[p].At(x/3, y/3)
			if got := Sample(float64(x), float64(y), p, 3); got != want {
				t.Errorf("(%d,%d): got %t, want %t", x, y, got, want)
			}
		}
	}
}

func TestInvalidPattern(t *testing.T) {
	if Sample(0, 0, -1, 1) || Sample(0, 0, Count, 1) {
		t.Error("invalid pattern painted a pixel")
	}
	if _, err := Get(Count); !errors.Is(err, ErrPattern) {
		t.Errorf("Get(Count): got %v, want ErrPattern", err)
	}
	if _, err := NewMask(-3, 1); !errors.Is(err, ErrPattern) {
		t.Errorf("NewMask(-3): got %v, want ErrPattern", err)
	}
}

func TestMaskMatchesSample(t *testing.T) {
	m, err := NewMask(5, 2)
	if err != nil {
		t.Fatal(err)
	}
	for y := -9; y < 9; y++ {
		for x := -9; x < 9; x++ {
			if m.Paint(x, y) != Sample(float64(x), float64(y), 5, 2) {
				t.Fatalf("mask and Sample disagree at (%d,%d)", x, y)
			}
		}
	}
}
