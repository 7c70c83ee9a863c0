// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/aclements/tweetviz/viz"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Image rasterizes f onto a white background.
func Image(f viz.Frame) *image.RGBA {
	w, h := round(f.Width), round(f.Height)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	// Band labels, right-aligned against the left margin.
	face := basicfont.Face7x13
	for i, label := range f.Labels {
		d := &font.Drawer{Dst: dst, Src: image.Black, Face: face}
		x := round(f.Left) - axisPad - d.MeasureString(label).Ceil()
		y := round(f.LabelY[i]) + face.Ascent/2
		d.Dot = fixed.P(x, y)
		d.DrawString(label)
	}

	// Points. A selected point is a black disk under a smaller
	// filled disk, which matches an SVG stroke centered on the
	// circle's edge.
	z := vector.NewRasterizer(w, h)
	for _, p := range f.Points {
		r := f.PointRadius
		if p.Stroke {
			disk(z, dst, p.X, p.Y, r+f.StrokeWidth/2, color.Black)
			r -= f.StrokeWidth / 2
		}
		disk(z, dst, p.X, p.Y, r, p.Fill)
	}

	// Legend.
	lx, ly := round(f.Width-f.Right+legendGap), round(f.Top)
	for _, s := range f.Legend.Stops {
		y0 := ly + round(s.Start*legendHeight/100)
		y1 := ly + round(s.End*legendHeight/100)
		draw.Draw(dst, image.Rect(lx, y0, lx+legendWidth, y1), image.NewUniform(s.Color), image.Point{}, draw.Src)
	}
	for _, l := range []struct {
		text string
		y    int
	}{{f.Legend.Top, legendTopY}, {f.Legend.Bottom, legendBotY}} {
		d := &font.Drawer{Dst: dst, Src: image.Black, Face: face, Dot: fixed.P(lx+legendLabelX, ly+l.y)}
		d.DrawString(l.text)
	}
	return dst
}

// PNG writes f to w as a PNG image.
func PNG(w io.Writer, f viz.Frame) error {
	return png.Encode(w, Image(f))
}

// disk fills a circle of radius r centered at (cx, cy).
func disk(z *vector.Rasterizer, dst draw.Image, cx, cy, r float64, c color.Color) {
	// Control point distance for approximating a quarter circle
	// with a cubic Bézier.
	const k = 0.5522847498

	b := dst.Bounds()
	z.Reset(b.Dx(), b.Dy())
	x, y, rr, kr := float32(cx), float32(cy), float32(r), float32(k*r)
	z.MoveTo(x+rr, y)
	z.CubeTo(x+rr, y+kr, x+kr, y+rr, x, y+rr)
	z.CubeTo(x-kr, y+rr, x-rr, y+kr, x-rr, y)
	z.CubeTo(x-rr, y-kr, x-kr, y-rr, x, y-rr)
	z.CubeTo(x+kr, y-rr, x+rr, y-kr, x+rr, y)
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}
