// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viz composes band scales, force relaxation, color mapping,
// and selection into renderable frames of a band scatter plot.
package viz

import (
	"errors"
	"math"

	"github.com/aclements/tweetviz/band"
	"github.com/aclements/tweetviz/colormap"
	"github.com/aclements/tweetviz/dataset"
	"github.com/aclements/tweetviz/relax"
)

// Reasons a point is left out of a layout. Neither is fatal.
var (
	ErrInvalidCategory = errors.New("category is not a band label")
	ErrMissingAxis     = errors.New("no axis value")
)

// Config is the full set of fixed plot parameters.
type Config struct {
	Band  band.Config
	Relax relax.Params

	// MaxPoints caps the number of points in a layout pass. Later
	// points are ignored.
	MaxPoints int

	// LegendSteps is the number of color steps in the legend.
	LegendSteps int

	// PointRadius and StrokeWidth size the drawn circles.
	PointRadius, StrokeWidth float64
}

// DefaultConfig returns the configuration for monthly tweet plots.
func DefaultConfig() Config {
	return Config{
		Band:        band.DefaultConfig(),
		Relax:       relax.DefaultParams(),
		MaxPoints:   300,
		LegendSteps: colormap.DefaultSteps,
		PointRadius: 6,
		StrokeWidth: 2,
	}
}

// Placed is a point's position in a layout.
type Placed struct {
	ID int

	// Index is the point's position in the layout's input.
	Index int

	// Band is the index of the point's band.
	Band int

	X, Y float64
}

// Dropped records a point that was left out of a layout.
type Dropped struct {
	ID  int
	Err error
}

// Layout is the result of one layout pass.
type Layout struct {
	Bands   []band.Band
	Points  []Placed
	Dropped []Dropped
}

// Lay computes the layout of points under cfg.
//
// Points past cfg.MaxPoints are ignored entirely. Points with an
// unknown category or no axis value are recorded in Dropped and
// otherwise ignored. Lay never fails; an empty input gives a layout
// with empty bands and no points.
func Lay(points []dataset.Point, cfg Config) *Layout {
	if cfg.MaxPoints > 0 && len(points) > cfg.MaxPoints {
		points = points[:cfg.MaxPoints]
	}

	l := &Layout{Bands: band.Build(points, cfg.Band)}

	var bodies []relax.Body
	for i, p := range points {
		bi := cfg.Band.Index(p.Category)
		switch {
		case bi < 0:
			l.Dropped = append(l.Dropped, Dropped{p.ID, ErrInvalidCategory})
			continue
		case math.IsNaN(p.Axis):
			l.Dropped = append(l.Dropped, Dropped{p.ID, ErrMissingAxis})
			continue
		}
		b := &l.Bands[bi]
		bodies = append(bodies, relax.Body{TargetX: b.X(p.Axis), TargetY: b.CenterY()})
		l.Points = append(l.Points, Placed{ID: p.ID, Index: i, Band: bi})
	}

	for i, pos := range relax.Run(bodies, cfg.Relax) {
		l.Points[i].X, l.Points[i].Y = pos.X, pos.Y
	}
	return l
}
