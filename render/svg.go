// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws viz frames as SVG or PNG images.
package render

import (
	"fmt"
	"io"
	"math"

	"github.com/aclements/tweetviz/colormap"
	"github.com/aclements/tweetviz/viz"
	"github.com/ajstarks/svgo"
)

// Legend geometry, relative to the legend's origin.
const (
	legendGap    = 20 // Between the right margin and the legend.
	legendWidth  = 20
	legendHeight = 150
	legendLabelX = 25
	legendTopY   = 10
	legendBotY   = 160

	axisPad = 3
)

// Options controls SVG output.
type Options struct {
	// Link, if non-nil, returns the URL a click on point id
	// should follow.
	Link func(id int) string
}

// errWriter remembers the first write error, since svgo drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// SVG writes f to w as an SVG document.
func SVG(w io.Writer, f viz.Frame, opts Options) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(int(f.Width), int(f.Height), `font-family="Helvetica,Arial,sans-serif"`)

	// Legend gradient. Each step is a pair of stops with the same
	// color so the gradient has hard edges. svgo's LinearGradient
	// only takes whole-percent offsets, which misplaces steps that
	// don't divide 100, so the stops are written directly.
	canvas.Def()
	fmt.Fprintf(canvas.Writer, "<linearGradient id=\"legend-gradient\" x1=\"0%%\" y1=\"0%%\" x2=\"0%%\" y2=\"100%%\">\n")
	for _, s := range f.Legend.Stops {
		c := colormap.Hex(s.Color)
		fmt.Fprintf(canvas.Writer, "<stop offset=\"%.6g%%\" stop-color=\"%s\"/>\n", s.Start, c)
		fmt.Fprintf(canvas.Writer, "<stop offset=\"%.6g%%\" stop-color=\"%s\"/>\n", s.End, c)
	}
	fmt.Fprintf(canvas.Writer, "</linearGradient>\n")
	canvas.DefEnd()

	// Band labels.
	canvas.Group(`class="y-axis"`, fmt.Sprintf(`transform="translate(%g,0)"`, f.Left))
	for i, label := range f.Labels {
		canvas.Text(-axisPad, round(f.LabelY[i]), label, `text-anchor="end"`, `dy=".32em"`, `font-size="14px"`, `font-weight="bold"`)
	}
	canvas.Gend()

	// Points.
	r := round(f.PointRadius)
	for _, p := range f.Points {
		style := fmt.Sprintf("fill:%s;stroke:none;cursor:pointer", colormap.Hex(p.Fill))
		if p.Stroke {
			style = fmt.Sprintf("fill:%s;stroke:black;stroke-width:%g;cursor:pointer", colormap.Hex(p.Fill), f.StrokeWidth)
		}
		if opts.Link != nil {
			canvas.Link(opts.Link(p.ID), fmt.Sprint(p.ID))
		}
		canvas.Circle(round(p.X), round(p.Y), r, style, fmt.Sprintf(`data-id="%d"`, p.ID))
		if opts.Link != nil {
			canvas.LinkEnd()
		}
	}

	// Legend.
	canvas.Group(`class="legend-group"`, fmt.Sprintf(`transform="translate(%g,%g)"`, f.Width-f.Right+legendGap, f.Top))
	canvas.Rect(0, 0, legendWidth, legendHeight, "fill:url(#legend-gradient)")
	canvas.Text(legendLabelX, legendTopY, f.Legend.Top, `font-size="12px"`, `font-weight="bold"`)
	canvas.Text(legendLabelX, legendBotY, f.Legend.Bottom, `font-size="12px"`, `font-weight="bold"`)
	canvas.Gend()

	canvas.End()
	return ew.err
}

func round(x float64) int {
	return int(math.Round(x))
}
