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
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/rect"
)

// Surface receives the output of a [Rasteriser].
//
// Fill paints the w×h block of logical pixels with top-left corner (x, y)
// in colour c.  Blocks may extend beyond the surface and must be clipped
// by the implementation.
type Surface interface {
	Fill(x, y, w, h int, c color.Color)
}

// Image is a raster surface of W×H logical pixels, where every logical
// pixel is drawn as a Scale×Scale block of device pixels.
type Image struct {
	*image.NRGBA

	W, H  int
	Scale int
}

// NewImage allocates a transparent image of w×h logical pixels.
// A scale below 1 is treated as 1.
func NewImage(w, h, scale int) *Image {
	scale = max(scale, 1)
	return &Image{
		NRGBA: image.NewNRGBA(image.Rect(0, 0, w*scale, h*scale)),
		W:     w,
		H:     h,
		Scale: scale,
	}
}

// Fill implements the [Surface] interface.
func (img *Image) Fill(x, y, w, h int, c color.Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, img.W, img.H))
	if r.Empty() {
		return
	}
	r.Min = r.Min.Mul(img.Scale)
	r.Max = r.Max.Mul(img.Scale)
	draw.Draw(img.NRGBA, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// Clear sets every pixel of the image to c.
func (img *Image) Clear(c color.Color) {
	draw.Draw(img.NRGBA, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Clip returns the logical area of the image.
func (img *Image) Clip() rect.Rect {
	return rect.Rect{URx: float64(img.W), URy: float64(img.H)}
}

// PixelArt returns the image at its true pixel resolution, enlarged by
// exportScale.  If cells is positive the image is first reduced to
// cells×cells pixels, one per grid cell; otherwise to W×H pixels.  Both
// steps use nearest-neighbour sampling, so no new colours appear.
func (img *Image) PixelArt(cells, exportScale int) *image.NRGBA {
	w, h := img.W, img.H
	if cells > 0 {
		w, h = cells, cells
	}
	small := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(small, small.Bounds(), img.NRGBA, img.Bounds(), draw.Src, nil)

	exportScale = max(exportScale, 1)
	if exportScale == 1 {
		return small
	}
	big := image.NewNRGBA(image.Rect(0, 0, w*exportScale, h*exportScale))
	draw.NearestNeighbor.Scale(big, big.Bounds(), small, small.Bounds(), draw.Src, nil)
	return big
}

// pixelCollector is a [Surface] which records the painted pixels inside
// a w×h canvas.  Colours are ignored.
type pixelCollector struct {
	pixels PixelSet
	w, h   int
}

func (pc *pixelCollector) Fill(x, y, w, h int, _ color.Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, pc.w, pc.h))
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			pc.pixels[image.Pt(px, py)] = struct{}{}
		}
	}
}

func (pc *pixelCollector) Clip() rect.Rect {
	return rect.Rect{URx: float64(pc.w), URy: float64(pc.h)}
}
