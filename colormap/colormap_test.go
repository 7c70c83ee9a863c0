// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"image/color"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	red     = color.RGBA{0xff, 0x00, 0x00, 0xff}
	neutral = color.RGBA{0xec, 0xec, 0xec, 0xff}
	green   = color.RGBA{0x00, 0x80, 0x00, 0xff}
	blue    = color.RGBA{0x44, 0x67, 0xc4, 0xff}
)

func TestFor(t *testing.T) {
	for _, test := range []struct {
		v    float64
		k    Kind
		want color.RGBA
	}{
		{-1, Diverging, red},
		{0, Diverging, neutral},
		{1, Diverging, green},
		{-7, Diverging, red},
		{7, Diverging, green},
		{0.5, Diverging, color.RGBA{118, 182, 118, 255}},
		{math.NaN(), Diverging, neutral},

		// Sequential inputs are inverted before lookup.
		{1, Sequential, neutral},
		{0, Sequential, blue},
		{2, Sequential, neutral},
		{-1, Sequential, blue},
		{math.NaN(), Sequential, neutral},
	} {
		if got := For(test.v, test.k); got != test.want {
			t.Errorf("For(%v, %v): got %v, want %v", test.v, test.k, got, test.want)
		}
	}
}

func TestForIdempotent(t *testing.T) {
	for _, k := range []Kind{Diverging, Sequential} {
		for v := -1.2; v <= 1.2; v += 0.05 {
			if a, b := For(v, k), For(v, k); a != b {
				t.Errorf("For(%v, %v) differs between calls: %v, %v", v, k, a, b)
			}
		}
	}
}

func TestScaleMap(t *testing.T) {
	s := ScaleFor(Diverging)
	for _, test := range []struct {
		x    float64
		want color.RGBA
	}{
		{0, red}, {0.5, neutral}, {1, green},
	} {
		if got := s.Map(test.x); got != test.want {
			t.Errorf("Map(%v): got %v, want %v", test.x, got, test.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Subjectivity")
	if err != nil {
		t.Fatal(err)
	}
	if m != Subjectivity {
		t.Errorf("got %+v, want %+v", m, Subjectivity)
	}
	if _, err := ParseMode("Happiness"); err == nil {
		t.Errorf("ParseMode(Happiness): got nil error")
	}
}

func TestBuildLegend(t *testing.T) {
	for _, test := range []struct {
		k           Kind
		steps       int
		first, last color.RGBA
	}{
		{Diverging, DefaultSteps, green, red},
		{Diverging, 21, green, red},
		{Sequential, DefaultSteps, blue, neutral},
		{Sequential, 5, blue, neutral},
	} {
		stops := BuildLegend(test.k, test.steps)
		if len(stops) != test.steps {
			t.Errorf("%v/%d: got %d stops, want %d", test.k, test.steps, len(stops), test.steps)
			continue
		}
		if stops[0].Color != test.first || stops[len(stops)-1].Color != test.last {
			t.Errorf("%v/%d: got ends %v, %v, want %v, %v", test.k, test.steps, stops[0].Color, stops[len(stops)-1].Color, test.first, test.last)
		}
		if stops[0].Start != 0 || math.Abs(stops[len(stops)-1].End-100) > 1e-9 {
			t.Errorf("%v/%d: legend spans %v-%v, want 0-100", test.k, test.steps, stops[0].Start, stops[len(stops)-1].End)
		}
		for i := 1; i < len(stops); i++ {
			if stops[i].Start != stops[i-1].End {
				t.Errorf("%v/%d: gap between stop %d and %d", test.k, test.steps, i-1, i)
			}
		}
	}

	// Short diverging legends still reach both ends.
	for _, steps := range []int{1, 2, 3} {
		stops := BuildLegend(Diverging, steps)
		var got []color.RGBA
		for _, s := range stops {
			got = append(got, s.Color)
		}
		if len(got) != 3 || got[0] != green || got[1] != neutral || got[2] != red {
			t.Errorf("Diverging/%d: got %v, want [%v %v %v]", steps, got, green, neutral, red)
		}
	}

	if stops := BuildLegend(Diverging, 0); len(stops) != 0 {
		t.Errorf("zero steps: got %d stops", len(stops))
	}
}

func TestDivergingLegendNeutral(t *testing.T) {
	// 11 steps down to neutral plus 10 steps from neutral, sharing
	// the neutral step.
	stops := BuildLegend(Diverging, DefaultSteps)
	if stops[10].Color != neutral {
		t.Errorf("stop 10: got %v, want neutral %v", stops[10].Color, neutral)
	}
	n := 0
	for _, s := range stops {
		if s.Color == neutral {
			n++
		}
	}
	if n != 1 {
		t.Errorf("got %d neutral stops, want 1", n)
	}
}

func TestSteppedEven(t *testing.T) {
	// Steps should be roughly evenly spaced perceptually.
	cs := Stepped(Positive, Neutral, 11)
	var min, max float64 = math.Inf(1), 0
	for i := 1; i < len(cs); i++ {
		a, _ := colorful.MakeColor(cs[i-1])
		b, _ := colorful.MakeColor(cs[i])
		d := a.DistanceLab(b)
		min, max = math.Min(min, d), math.Max(max, d)
	}
	if max/min > 1.5 {
		t.Errorf("Lab step sizes range from %v to %v", min, max)
	}

	if got := Stepped(Positive, Neutral, 1); len(got) != 1 || got[0] != green {
		t.Errorf("one step: got %v, want [%v]", got, green)
	}
}

func TestNewLegend(t *testing.T) {
	l := NewLegend(Sentiment, DefaultSteps)
	if l.Top != "Positive" || l.Bottom != "Negative" {
		t.Errorf("got labels %q/%q", l.Top, l.Bottom)
	}
	if len(l.Stops) != 20 {
		t.Errorf("got %d stops, want 20", len(l.Stops))
	}
}

func TestHex(t *testing.T) {
	if got := Hex(blue); got != "#4467c4" {
		t.Errorf("got %s, want #4467c4", got)
	}
}
