// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"image/color"

	"github.com/aclements/go-moremath/vec"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultSteps is the number of legend steps for both kinds.
const DefaultSteps = 20

// Stop is one constant-color band of a legend, from Start to End
// percent of the legend's length.
type Stop struct {
	Start, End float64
	Color      color.RGBA
}

// Legend is a stepped gradient with labels for its two ends. Stops
// run from the top of the legend to the bottom.
type Legend struct {
	Stops       []Stop
	Top, Bottom string
}

// NewLegend returns the legend of mode m with the given number of
// steps.
func NewLegend(m Mode, steps int) Legend {
	return Legend{
		Stops:  BuildLegend(m.Kind, steps),
		Top:    m.Top,
		Bottom: m.Bottom,
	}
}

// BuildLegend returns a stepped approximation of the scale of kind
// k, from the high end to the low end.
//
// A diverging legend is built as two independently stepped halves,
// Positive to Neutral and Neutral to Negative, sharing the Neutral
// step, so Neutral stays near the center. A diverging legend always
// shows all three anchors, so it has at least 3 stops. A sequential
// legend runs from SequentialAnchor to Neutral. Otherwise the result
// has exactly steps stops, or none if steps <= 0.
func BuildLegend(k Kind, steps int) []Stop {
	if steps <= 0 {
		return nil
	}
	if k == Diverging && steps < 3 {
		steps = 3
	}

	var colors []color.RGBA
	if k == Sequential {
		colors = Stepped(SequentialAnchor, Neutral, steps)
	} else {
		upper := steps/2 + 1
		lower := steps + 1 - upper
		colors = Stepped(Positive, Neutral, upper)
		colors = append(colors, Stepped(Neutral, Negative, lower)[1:]...)
	}

	stops := make([]Stop, len(colors))
	size := 100 / float64(len(colors))
	for i, c := range colors {
		stops[i] = Stop{float64(i) * size, float64(i+1) * size, c}
	}
	return stops
}

// Stepped returns n colors evenly spaced in L*a*b* from a to b,
// inclusive. If n is 1, it returns just a.
func Stepped(a, b colorful.Color, n int) []color.RGBA {
	out := make([]color.RGBA, 0, n)
	for _, t := range vec.Linspace(0, 1, n) {
		out = append(out, rgba(a.BlendLab(b, t)))
	}
	return out
}
