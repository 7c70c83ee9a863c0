// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"image/color"

	"github.com/aclements/tweetviz/colormap"
)

// Frame is everything a renderer needs to draw a plot.
type Frame struct {
	Width, Height float64
	Left, Top     float64 // Left and top margins.
	Right         float64 // Right margin, which holds the legend.

	// Labels and LabelY give the band labels and the y coordinate
	// of each label's strip center.
	Labels []string
	LabelY []float64

	Points []PointView
	Legend colormap.Legend

	PointRadius, StrokeWidth float64

	Dropped []Dropped
}

// PointView is how to draw one point.
type PointView struct {
	ID     int
	X, Y   float64
	Fill   color.RGBA
	Stroke bool
}

// Frame returns the current state of e for rendering.
func (e *Engine) Frame() Frame {
	bc := e.cfg.Band
	f := Frame{
		Width:       bc.Width,
		Height:      bc.Height,
		Left:        bc.Margin.Left,
		Top:         bc.Margin.Top,
		Right:       bc.Margin.Right,
		Legend:      e.legend,
		PointRadius: e.cfg.PointRadius,
		StrokeWidth: e.cfg.StrokeWidth,
		Dropped:     e.layout.Dropped,
	}
	for _, b := range e.layout.Bands {
		f.Labels = append(f.Labels, b.Label)
		f.LabelY = append(f.LabelY, b.CenterY())
	}

	ids := make([]int, len(e.layout.Points))
	for i, pl := range e.layout.Points {
		ids[i] = pl.ID
	}
	strokes := e.sel.Strokes(ids)
	f.Points = make([]PointView, len(e.layout.Points))
	for i, pl := range e.layout.Points {
		f.Points[i] = PointView{pl.ID, pl.X, pl.Y, e.fills[i], strokes[i]}
	}
	return f
}
