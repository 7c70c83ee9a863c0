// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap maps continuous point attributes to fill colors
// and builds stepped legend gradients for them.
//
// Fill colors are interpolated component-wise in sRGB between a small
// number of anchor colors. Legend steps are interpolated in CIE
// L*a*b* so that neighboring steps look evenly spaced.
package colormap

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/aclements/go-gg/palette"
	"github.com/lucasb-eyer/go-colorful"
)

// Anchor colors.
var (
	Negative         = mustHex("#ff0000")
	Neutral          = mustHex("#ececec")
	Positive         = mustHex("#008000")
	SequentialAnchor = mustHex("#4467c4")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Kind is the shape of a color scale.
type Kind int

const (
	// Diverging maps [-1, 0, 1] onto Negative, Neutral, Positive.
	Diverging Kind = iota

	// Sequential maps [0, 1] onto SequentialAnchor, Neutral. The
	// input is inverted first, so high values are neutral.
	Sequential
)

func (k Kind) String() string {
	switch k {
	case Diverging:
		return "diverging"
	case Sequential:
		return "sequential"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Mode names a point attribute and how to color it.
type Mode struct {
	// Name is the attribute name in each point's color values.
	Name string
	Kind Kind

	// Top and Bottom label the ends of the legend.
	Top, Bottom string
}

// Built-in modes.
var (
	Sentiment    = Mode{Name: "Sentiment", Kind: Diverging, Top: "Positive", Bottom: "Negative"}
	Subjectivity = Mode{Name: "Subjectivity", Kind: Sequential, Top: "Subjective", Bottom: "Objective"}
)

// Modes lists the built-in modes.
var Modes = []Mode{Sentiment, Subjectivity}

// ParseMode returns the built-in mode called name.
func ParseMode(name string) (Mode, error) {
	for _, m := range Modes {
		if m.Name == name {
			return m, nil
		}
	}
	return Mode{}, fmt.Errorf("unknown color mode %q", name)
}

// Scale is a piecewise-linear map from a numeric domain to colors.
// Values outside the domain clamp to the nearest end.
type Scale struct {
	// Domain is the ascending sequence of stop values.
	Domain []float64
	// Colors gives the color at each stop.
	Colors []colorful.Color
}

var _ palette.Continuous = Scale{}

var (
	divergingScale  = Scale{[]float64{-1, 0, 1}, []colorful.Color{Negative, Neutral, Positive}}
	sequentialScale = Scale{[]float64{0, 1}, []colorful.Color{Neutral, SequentialAnchor}}
)

// ScaleFor returns the fill scale of kind k.
func ScaleFor(k Kind) Scale {
	if k == Sequential {
		return sequentialScale
	}
	return divergingScale
}

// At returns the color of value v.
func (s Scale) At(v float64) color.RGBA {
	n := len(s.Domain)
	switch {
	case v <= s.Domain[0]:
		return rgba(s.Colors[0])
	case v >= s.Domain[n-1]:
		return rgba(s.Colors[n-1])
	}
	i := sort.SearchFloat64s(s.Domain, v)
	if s.Domain[i] == v {
		return rgba(s.Colors[i])
	}
	lo, hi := s.Domain[i-1], s.Domain[i]
	return rgba(s.Colors[i-1].BlendRgb(s.Colors[i], (v-lo)/(hi-lo)))
}

// Map returns the color at fraction x of the way across s's domain.
func (s Scale) Map(x float64) color.Color {
	lo, hi := s.Domain[0], s.Domain[len(s.Domain)-1]
	return s.At(lo + x*(hi-lo))
}

// For returns the fill color of value v under a scale of kind k.
// NaN values are neutral.
func For(v float64, k Kind) color.RGBA {
	if math.IsNaN(v) {
		return rgba(Neutral)
	}
	if k == Sequential {
		v = 1 - v
	}
	return ScaleFor(k).At(v)
}

func rgba(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

// Hex returns c in #rrggbb form.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
