// SPDX-License-Identifier: GPL-2.0-or-later

// Package render rasterizes wireframes into images.
package render

import (
	"github.com/liusijiaaa/test-render/image"
	"github.com/liusijiaaa/test-render/math"
	"github.com/liusijiaaa/test-render/model"
)

// farLight is the intensity of an edge at z = -1.
const farLight = 0.25

var (
	White = image.Color{B: 255, G: 255, R: 255, A: 255}
)

// DrawPoint sets a single pixel, points outside the image are dropped.
func DrawPoint(img *image.Image, x, y int, c image.Color) {
	img.Set(x, y, c)
}

// DrawLine draws from (x0,y0) to (x1,y1) inclusive, stepping along the
// longer axis so the line has no gaps.
func DrawLine(img *image.Image, x0, y0, x1, y1 int, c image.Color) {
	if abs(x1-x0) > abs(y1-y0) {
		if x0 > x1 {
			x0, x1 = x1, x0
			y0, y1 = y1, y0
		}
		for x := x0; x <= x1; x++ {
			t := float32(x-x0) / float32(x1-x0)
			y := int(math.Lerp(float32(y0), float32(y1), t))
			DrawPoint(img, x, y, c)
		}
		return
	}
	if y0 == y1 {
		DrawPoint(img, x0, y0, c)
		return
	}
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		t := float32(y-y0) / float32(y1-y0)
		x := int(math.Lerp(float32(x0), float32(x1), t))
		DrawPoint(img, x, y, c)
	}
}

// Shade scales the color of c by k in linear light. Alpha is kept.
func Shade(c image.Color, k float32) image.Color {
	ch := func(v uint8) uint8 {
		return math.ToUchar(math.LinearToSRGB(math.SRGBToLinear(math.FromUchar(v)) * k))
	}
	return image.Color{B: ch(c.B), G: ch(c.G), R: ch(c.R), A: c.A}
}

// DrawModel draws the edges of every face of m. Vertex x and y in [-1,1]
// span the whole image, +y pointing up. Edges behind z = 0 fade towards
// farLight at z = -1.
func DrawModel(img *image.Image, m *model.Model, c image.Color) {
	w, h := img.Width, img.Height
	px := func(v float32, n int) int {
		return math.Clamp(0, int((v+1)/2*float32(n)), n-1)
	}
	for i := 0; i < m.NumFaces(); i++ {
		for j := 0; j < 3; j++ {
			v0 := m.Vertex(i, j)
			v1 := m.Vertex(i, (j+1)%3)
			k := math.Lerp(farLight, 1, math.Saturate((v0.Z+v1.Z)/2+1))
			DrawLine(img, px(v0.X, w), px(v0.Y, h), px(v1.X, w), px(v1.Y, h), Shade(c, k))
		}
	}
	// rows were addressed bottom up
	image.FlipVertical(img)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
