// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package band

import (
	"math"
	"testing"

	"github.com/aclements/tweetviz/dataset"
)

func pts(cats []string, axes []float64) []dataset.Point {
	ps := make([]dataset.Point, len(cats))
	for i := range cats {
		ps[i] = dataset.Point{ID: i, Category: cats[i], Axis: axes[i]}
	}
	return ps
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBuildDomains(t *testing.T) {
	cfg := DefaultConfig()
	bands := Build(pts([]string{"March", "March", "April"}, []float64{1, 3, 5}), cfg)
	if len(bands) != 3 {
		t.Fatalf("got %d bands, want 3", len(bands))
	}

	march, april, may := bands[0], bands[1], bands[2]
	if march.Label != "March" || march.Count != 2 {
		t.Errorf("March: got label %q count %d", march.Label, march.Count)
	}
	if !near(march.Median, 2) || !near(march.Domain[0], 1) || !near(march.Domain[1], 3) {
		t.Errorf("March: got median %v domain %v, want 2 [1 3]", march.Median, march.Domain)
	}
	if march.Degenerate() {
		t.Errorf("March: unexpectedly degenerate")
	}
	if april.Domain != [2]float64{5, 5} || !april.Degenerate() {
		t.Errorf("April: got domain %v, want [5 5] and degenerate", april.Domain)
	}
	if may.Count != 0 || !math.IsNaN(may.Median) {
		t.Errorf("May: got count %d median %v, want 0 NaN", may.Count, may.Median)
	}
}

func TestBuildMedianCentering(t *testing.T) {
	// The domain is centered on the median, not the midrange.
	bands := Build(pts([]string{"March", "March", "March", "March"}, []float64{0, 1, 2, 10}), DefaultConfig())
	b := bands[0]
	if !near(b.Median, 1.5) {
		t.Errorf("got median %v, want 1.5", b.Median)
	}
	if want := [2]float64{-3.5, 6.5}; !near(b.Domain[0], want[0]) || !near(b.Domain[1], want[1]) {
		t.Errorf("got domain %v, want %v", b.Domain, want)
	}
	if x := b.X(1.5); !near(x, (b.Range[0]+b.Range[1])/2) {
		t.Errorf("median maps to %v, want range center", x)
	}
}

func TestBuildRanges(t *testing.T) {
	cfg := DefaultConfig()
	cats := []string{"March", "March", "April", "May", "June", "May"}
	axes := []float64{1, 2, 3, 4, 5, math.NaN()}
	bands := Build(pts(cats, axes), cfg)

	// June and the NaN point are excluded, leaving 4 points.
	var sum float64
	for _, b := range bands {
		sum += b.Range[1] - b.Range[0]
	}
	if !near(sum, cfg.DrawWidth()) {
		t.Errorf("widths sum to %v, want %v", sum, cfg.DrawWidth())
	}
	if w := bands[0].Range[1] - bands[0].Range[0]; !near(w, cfg.DrawWidth()/2) {
		t.Errorf("March width: got %v, want %v", w, cfg.DrawWidth()/2)
	}
	if bands[2].Count != 1 {
		t.Errorf("May count: got %d, want 1", bands[2].Count)
	}

	// Ranges start at the left margin, accumulate unshifted
	// widths, and then apply each label's shift.
	x := cfg.Margin.Left
	for _, b := range bands {
		w := b.Range[1] - b.Range[0]
		if want := x + cfg.Shifts[b.Label]; !near(b.Range[0], want) {
			t.Errorf("%s: range starts at %v, want %v", b.Label, b.Range[0], want)
		}
		x += w
	}
}

func TestBuildStrips(t *testing.T) {
	bands := Build(nil, DefaultConfig())
	step := 500 / 3.3
	for i, b := range bands {
		if want := 50 + (500-step*2.7)/2 + step*float64(i); !near(b.Top, want) {
			t.Errorf("%s: top %v, want %v", b.Label, b.Top, want)
		}
		if !near(b.Bandwidth, step*0.7) {
			t.Errorf("%s: bandwidth %v, want %v", b.Label, b.Bandwidth, step*0.7)
		}
	}
	if c := bands[1].CenterY(); !near(c, 300) {
		t.Errorf("middle strip center: got %v, want 300", c)
	}
}

func TestBuildEmpty(t *testing.T) {
	for _, b := range Build(nil, DefaultConfig()) {
		if b.Count != 0 || b.Range[0] != b.Range[1] {
			t.Errorf("%s: got count %d range %v, want empty", b.Label, b.Count, b.Range)
		}
		if x := b.X(42); math.IsNaN(x) {
			t.Errorf("%s: X on empty band is NaN", b.Label)
		}
	}
}

func TestBuildMedianOdd(t *testing.T) {
	// Input order doesn't matter and odd counts take the middle value.
	bands := Build(pts([]string{"May", "May", "May"}, []float64{9, -2, 4}), DefaultConfig())
	b := bands[2]
	if !near(b.Median, 4) {
		t.Errorf("got median %v, want 4", b.Median)
	}
	if !near(b.Domain[0], -1.5) || !near(b.Domain[1], 9.5) {
		t.Errorf("got domain %v, want [-1.5 9.5]", b.Domain)
	}
}

func TestX(t *testing.T) {
	b := Band{Domain: [2]float64{1, 3}, Range: [2]float64{100, 300}}
	for _, test := range []struct{ v, want float64 }{
		{1, 100}, {2, 200}, {3, 300}, {4, 400},
	} {
		if got := b.X(test.v); !near(got, test.want) {
			t.Errorf("X(%v): got %v, want %v", test.v, got, test.want)
		}
	}

	b.Domain = [2]float64{5, 5}
	for _, v := range []float64{-1, 5, 100} {
		if got := b.X(v); got != 200 {
			t.Errorf("degenerate X(%v): got %v, want 200", v, got)
		}
	}
}
