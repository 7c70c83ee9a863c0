// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viz

import (
	"image/color"
	"math"

	"github.com/aclements/tweetviz/colormap"
	"github.com/aclements/tweetviz/dataset"
	"github.com/aclements/tweetviz/selection"
)

// An Engine holds the current dataset, color mode, and selection of
// a plot and recomputes only what changes.
//
// Changing the dataset reruns layout and coloring and clears the
// selection. Changing the mode reruns coloring only. Toggling a
// selection reruns neither.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	cfg Config

	points []dataset.Point
	mode   colormap.Mode

	layout *Layout
	fills  []color.RGBA // Parallel to layout.Points.
	legend colormap.Legend
	sel    selection.Tracker

	stats Stats
}

// Stats counts the passes an Engine has run.
type Stats struct {
	Layouts, Colorings int
}

// NewEngine returns an Engine with an empty dataset colored by mode.
func NewEngine(cfg Config, mode colormap.Mode) *Engine {
	e := &Engine{cfg: cfg, mode: mode}
	e.relayout()
	return e
}

// Mode returns e's current color mode.
func (e *Engine) Mode() colormap.Mode {
	return e.mode
}

// Stats returns the number of passes e has run.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Layout returns e's current layout.
func (e *Engine) Layout() *Layout {
	return e.layout
}

// SetData replaces e's dataset. If points is the same as the current
// dataset, SetData does nothing and returns false.
func (e *Engine) SetData(points []dataset.Point) bool {
	if samePoints(e.points, points) {
		return false
	}
	e.points = append([]dataset.Point(nil), points...)
	e.sel.Clear()
	e.relayout()
	return true
}

// SetMode changes e's color mode. If mode is the current mode,
// SetMode does nothing and returns false.
func (e *Engine) SetMode(mode colormap.Mode) bool {
	if mode == e.mode {
		return false
	}
	e.mode = mode
	e.recolor()
	return true
}

// Toggle flips the selection of point id and returns the selected
// IDs, most recently selected first.
func (e *Engine) Toggle(id int) []int {
	e.sel.Toggle(id)
	return e.sel.IDs()
}

// Selected returns the selected IDs, most recently selected first.
func (e *Engine) Selected() []int {
	return e.sel.IDs()
}

func (e *Engine) relayout() {
	e.layout = Lay(e.points, e.cfg)
	e.stats.Layouts++
	e.recolor()
}

func (e *Engine) recolor() {
	e.fills = make([]color.RGBA, len(e.layout.Points))
	for i, pl := range e.layout.Points {
		v, ok := e.points[pl.Index].Color[e.mode.Name]
		if !ok {
			v = math.NaN()
		}
		e.fills[i] = colormap.For(v, e.mode.Kind)
	}
	e.legend = colormap.NewLegend(e.mode, e.cfg.LegendSteps)
	e.stats.Colorings++
}

func samePoints(a, b []dataset.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
