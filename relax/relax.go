// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package relax places circles near target positions without
// overlap using a fixed-length force simulation.
//
// Every body is pulled toward its target x and target y and pushed
// away from any body closer than twice the collision radius. The
// simulation runs for a fixed number of ticks with a decaying
// "temperature" alpha, so the cost of a run is bounded and its
// result is a deterministic function of its input.
package relax

import (
	"math"
	"math/rand"
)

// Body is the input state of one simulated circle.
type Body struct {
	TargetX, TargetY float64
}

// Position is a final circle center.
type Position struct {
	X, Y float64
}

// Params controls a simulation run.
type Params struct {
	// Iterations is the exact number of ticks to run.
	Iterations int

	// StrengthX and StrengthY scale the pull toward each body's
	// target, per tick, relative to the remaining distance.
	StrengthX, StrengthY float64

	// Radius is the collision radius of every body. Two bodies
	// repel when their centers are closer than 2*Radius.
	Radius float64

	// VelocityDecay is the fraction of velocity lost per tick.
	VelocityDecay float64

	// AlphaMin sets the decay rate of alpha: alpha reaches
	// AlphaMin after 300 ticks.
	AlphaMin float64

	// Seed seeds the jiggle applied to exactly coincident bodies.
	Seed int64
}

// DefaultParams returns the parameters used for tweet plots.
func DefaultParams() Params {
	return Params{
		Iterations:    500,
		StrengthX:     0.4,
		StrengthY:     0.4,
		Radius:        7.5,
		VelocityDecay: 0.4,
		AlphaMin:      0.001,
		Seed:          1,
	}
}

const (
	initialRadius = 10
	decayTicks    = 300
)

var initialAngle = math.Pi * (3 - math.Sqrt(5))

// sim is the arena of per-body simulation state. Index i of each
// slice belongs to body i.
type sim struct {
	x, y, vx, vy []float64
	tx, ty       []float64
	rnd          *rand.Rand
}

// Run simulates bodies under p and returns the final position of
// each body, in order. It does not modify bodies.
func Run(bodies []Body, p Params) []Position {
	n := len(bodies)
	out := make([]Position, n)
	if n == 0 {
		return out
	}

	s := &sim{
		x:   make([]float64, n),
		y:   make([]float64, n),
		vx:  make([]float64, n),
		vy:  make([]float64, n),
		tx:  make([]float64, n),
		ty:  make([]float64, n),
		rnd: rand.New(rand.NewSource(p.Seed)),
	}
	for i, b := range bodies {
		// Start on a phyllotaxis spiral around the origin so
		// no two bodies coincide.
		r := initialRadius * math.Sqrt(0.5+float64(i))
		a := float64(i) * initialAngle
		s.x[i], s.y[i] = r*math.Cos(a), r*math.Sin(a)
		s.tx[i], s.ty[i] = b.TargetX, b.TargetY
	}

	alpha := 1.0
	alphaDecay := 1 - math.Pow(p.AlphaMin, 1.0/decayTicks)
	keep := 1 - p.VelocityDecay
	for tick := 0; tick < p.Iterations; tick++ {
		alpha += -alpha * alphaDecay
		s.attract(alpha, p.StrengthX, p.StrengthY)
		s.collide(p.Radius)
		for i := range s.x {
			s.vx[i] *= keep
			s.vy[i] *= keep
			s.x[i] += s.vx[i]
			s.y[i] += s.vy[i]
		}
	}

	for i := range out {
		out[i] = Position{s.x[i], s.y[i]}
	}
	return out
}

func (s *sim) attract(alpha, sx, sy float64) {
	for i := range s.x {
		s.vx[i] += (s.tx[i] - s.x[i]) * sx * alpha
	}
	for i := range s.y {
		s.vy[i] += (s.ty[i] - s.y[i]) * sy * alpha
	}
}

// collide resolves overlaps between all pairs of bodies, looking one
// tick ahead. Overlapping pairs are separated along the line between
// their centers, each body taking half of the correction since all
// bodies have the same radius.
func (s *sim) collide(radius float64) {
	r := 2 * radius
	r2 := r * r
	n := len(s.x)
	for i := 0; i < n; i++ {
		xi := s.x[i] + s.vx[i]
		yi := s.y[i] + s.vy[i]
		for j := i + 1; j < n; j++ {
			dx := xi - s.x[j] - s.vx[j]
			dy := yi - s.y[j] - s.vy[j]
			l := dx*dx + dy*dy
			if l >= r2 {
				continue
			}
			if dx == 0 {
				dx = s.jiggle()
				l += dx * dx
			}
			if dy == 0 {
				dy = s.jiggle()
				l += dy * dy
			}
			l = math.Sqrt(l)
			l = (r - l) / l
			dx *= l
			dy *= l
			s.vx[i] += dx / 2
			s.vy[i] += dy / 2
			s.vx[j] -= dx / 2
			s.vy[j] -= dy / 2
		}
	}
}

// jiggle returns a tiny random offset for separating coincident bodies.
func (s *sim) jiggle() float64 {
	return (s.rnd.Float64() - 0.5) * 1e-6
}

// Overlaps returns the number of pairs of positions whose centers are
// closer than minDist.
func Overlaps(ps []Position, minDist float64) int {
	n := 0
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			dx, dy := ps[i].X-ps[j].X, ps[i].Y-ps[j].Y
			if dx*dx+dy*dy < minDist*minDist {
				n++
			}
		}
	}
	return n
}
