// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tonecurve

import "sort"

// Spline is a Catmull-Rom cubic through a channel's control points,
// evaluated as a Hermite spline with finite-difference tangents. The
// endpoint tangents come from virtual mirrored neighbors (P₋₁ = 2P₀−P₁
// and the same past the last point), which reduces to the boundary
// segment's secant slope and keeps the curve from overshooting wildly
// at x=0 and x=255. With exactly two points the curve is their straight
// line.
//
// The curve passes through every control point but is free to overshoot
// [0,255] between them, and it need not be monotonic. Eval returns the
// raw value; clamping is the LUT builder's job.
//
// A Spline is immutable once built and safe for concurrent use.
type Spline struct {
	xs []float64 // knot positions, strictly increasing
	ys []float64
	ms []float64 // tangent dy/dx at each knot
}

// NewSpline builds the interpolating spline for pts, which must be
// ordered with strictly increasing X, as PointSet maintains.
func NewSpline(pts []Point) *Spline {
	n := len(pts)
	s := &Spline{
		xs: make([]float64, n),
		ys: make([]float64, n),
		ms: make([]float64, n),
	}
	for i, p := range pts {
		s.xs[i] = float64(p.X)
		s.ys[i] = float64(p.Y)
	}
	if n < 2 {
		return s
	}
	// Interior tangents are the Catmull-Rom centered difference; the
	// mirrored virtual neighbors collapse the endpoint formula to the
	// adjacent secant: (y₁−(2y₀−y₁)) / (x₁−(2x₀−x₁)) = (y₁−y₀)/(x₁−x₀).
	s.ms[0] = (s.ys[1] - s.ys[0]) / (s.xs[1] - s.xs[0])
	for i := 1; i < n-1; i++ {
		s.ms[i] = (s.ys[i+1] - s.ys[i-1]) / (s.xs[i+1] - s.xs[i-1])
	}
	s.ms[n-1] = (s.ys[n-1] - s.ys[n-2]) / (s.xs[n-1] - s.xs[n-2])
	return s
}

// Eval returns the curve value at x. Outside the knot range the nearest
// endpoint value is returned. The result is unbounded; values below 0
// or above 255 are legal and expected for steep configurations.
func (s *Spline) Eval(x float64) float64 {
	n := len(s.xs)
	switch n {
	case 0:
		return 0
	case 1:
		return s.ys[0]
	}
	if x <= s.xs[0] {
		return s.ys[0]
	}
	if x >= s.xs[n-1] {
		return s.ys[n-1]
	}
	// First segment whose right knot is at or past x.
	i := sort.Search(n-1, func(i int) bool { return s.xs[i+1] >= x })

	h := s.xs[i+1] - s.xs[i]
	t := (x - s.xs[i]) / h
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return h00*s.ys[i] + h10*h*s.ms[i] + h01*s.ys[i+1] + h11*h*s.ms[i+1]
}

// Sample evaluates the curve at n positions evenly spaced across
// [DomainMin, DomainMax], endpoints included. Useful for drawing the
// curve at device resolution. Returns nil if n <= 0.
func (s *Spline) Sample(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = s.Eval(DomainMin)
		return out
	}
	step := float64(DomainMax-DomainMin) / float64(n-1)
	for i := range out {
		out[i] = s.Eval(DomainMin + float64(i)*step)
	}
	return out
}
