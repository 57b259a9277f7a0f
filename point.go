// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tonecurve

// Domain bounds for control point coordinates. Input and output share
// the 8-bit intensity range.
const (
	// DomainMin is the smallest valid coordinate on either axis.
	DomainMin = 0
	// DomainMax is the largest valid coordinate on either axis.
	DomainMax = 255
)

// Point is a control point on a curve. X is the input intensity, Y the
// output intensity the curve maps it to. Both are integers in
// [DomainMin, DomainMax]; the fractional precision of the curve lives in
// the interpolator, not in the points.
type Point struct {
	X int
	Y int
}

// InDomain reports whether both coordinates lie in [DomainMin, DomainMax].
func (p Point) InDomain() bool {
	return p.X >= DomainMin && p.X <= DomainMax && p.Y >= DomainMin && p.Y <= DomainMax
}

// clampDomain limits v to [DomainMin, DomainMax].
func clampDomain(v int) int {
	if v < DomainMin {
		return DomainMin
	}
	if v > DomainMax {
		return DomainMax
	}
	return v
}

// sqDist returns the squared Euclidean distance between (x0,y0) and (x1,y1).
// Squared form avoids a sqrt in hit testing.
func sqDist(x0, y0, x1, y1 int) int {
	dx := x1 - x0
	dy := y1 - y0
	return dx*dx + dy*dy
}
