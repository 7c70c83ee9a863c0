// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package band computes the per-category layout of a band scatter
// plot.
//
// Each band is a horizontal strip holding the points of one
// category. Within a strip, points are placed along a linear scale
// whose domain is centered on the median of the band's axis values
// and whose pixel range is proportional to the band's share of all
// points.
package band

import (
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/tweetviz/dataset"
)

// Margin is the space reserved around the drawable area, in pixels.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Config gives the fixed layout parameters of a plot.
type Config struct {
	// Labels is the ordered sequence of band labels. Points whose
	// category is not in Labels are not part of any band.
	Labels []string

	// Shifts gives a horizontal pixel offset for each label's
	// range. Missing labels are not shifted.
	Shifts map[string]float64

	// Width and Height are the size of the whole plot.
	Width, Height float64

	Margin Margin

	// Padding is the fraction of each vertical step left empty
	// between and around the strips.
	Padding float64
}

// DefaultConfig returns the layout used for the monthly tweet plots.
func DefaultConfig() Config {
	return Config{
		Labels: []string{"March", "April", "May"},
		// TODO: Derive Shifts from the band counts instead of
		// hand-tuning them to the March-May dataset.
		Shifts:  map[string]float64{"March": 200, "April": -150, "May": -400},
		Width:   1200,
		Height:  600,
		Margin:  Margin{Top: 50, Right: 150, Bottom: 50, Left: 100},
		Padding: 0.3,
	}
}

// DrawWidth returns the horizontal space available to bands.
func (c Config) DrawWidth() float64 {
	return c.Width - c.Margin.Left - c.Margin.Right
}

// Index returns the position of label in c.Labels, or -1.
func (c Config) Index(label string) int {
	for i, l := range c.Labels {
		if l == label {
			return i
		}
	}
	return -1
}

// Band is the derived layout of one category.
type Band struct {
	Label string
	Index int

	// Count is the number of points in this band that have an
	// axis value.
	Count int

	// Min, Median, and Max summarize the band's axis values. They
	// are NaN if Count is 0.
	Min, Median, Max float64

	// Domain is [Median-h, Median+h] where h is half of Max-Min.
	Domain [2]float64

	// Range is the pixel span Domain maps onto.
	Range [2]float64

	// Top is the y coordinate of the band's strip and Bandwidth
	// is its height.
	Top, Bandwidth float64
}

// Degenerate reports whether b's domain has zero width, in which
// case every value maps to the middle of b's range.
func (b *Band) Degenerate() bool {
	return !(b.Domain[0] < b.Domain[1])
}

// X maps axis value v to a horizontal pixel position.
func (b *Band) X(v float64) float64 {
	var t float64
	if b.Degenerate() {
		t = 0.5
	} else {
		t = scale.Linear{Min: b.Domain[0], Max: b.Domain[1]}.Map(v)
	}
	return b.Range[0] + t*(b.Range[1]-b.Range[0])
}

// CenterY returns the vertical center of b's strip.
func (b *Band) CenterY() float64 {
	return b.Top + b.Bandwidth/2
}

// Build computes one Band per label of cfg from points.
//
// Points with an unknown category or without an axis value are
// ignored. Build never fails: a band with fewer than two points gets
// a single-value domain, and a band with no points gets zero width.
func Build(points []dataset.Point, cfg Config) []Band {
	values := make([][]float64, len(cfg.Labels))
	total := 0
	for _, p := range points {
		i := cfg.Index(p.Category)
		if i < 0 || math.IsNaN(p.Axis) {
			continue
		}
		values[i] = append(values[i], p.Axis)
		total++
	}

	bands := make([]Band, len(cfg.Labels))
	step, start, bandwidth := strips(cfg)
	x := cfg.Margin.Left
	for i, label := range cfg.Labels {
		b := &bands[i]
		b.Label, b.Index = label, i
		b.Count = len(values[i])
		b.Top, b.Bandwidth = start+step*float64(i), bandwidth

		if b.Count == 0 {
			b.Min, b.Median, b.Max = math.NaN(), math.NaN(), math.NaN()
		} else {
			b.Min, b.Max = stats.Bounds(values[i])
			b.Median = stats.Sample{Xs: values[i]}.Quantile(0.5)
			half := (b.Max - b.Min) / 2
			b.Domain = [2]float64{b.Median - half, b.Median + half}
		}

		var width float64
		if total > 0 {
			width = float64(b.Count) / float64(total) * cfg.DrawWidth()
		}
		shift := cfg.Shifts[label]
		b.Range = [2]float64{x + shift, x + width + shift}
		x += width
	}
	return bands
}

// strips lays out len(cfg.Labels) equal strips over the vertical
// extent of cfg with cfg.Padding between and around them. It returns
// the distance between strip tops, the top of the first strip, and
// the height of each strip.
func strips(cfg Config) (step, start, bandwidth float64) {
	n := float64(len(cfg.Labels))
	lo, hi := cfg.Margin.Top, cfg.Height-cfg.Margin.Bottom
	step = (hi - lo) / math.Max(1, n-cfg.Padding+2*cfg.Padding)
	start = lo + (hi-lo-step*(n-cfg.Padding))/2
	bandwidth = step * (1 - cfg.Padding)
	return
}
