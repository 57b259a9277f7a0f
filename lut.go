// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tonecurve

import "math"

// LUT maps each of the 256 input intensities of one channel to an
// output intensity. Entries are always in [0,255]: BuildLUT clamps
// unconditionally, so a LUT is legal by construction no matter how far
// the underlying spline overshoots.
type LUT [256]uint8

// BuildLUT discretizes the curve through pts into a LUT: the spline is
// sampled at every integer input, rounded to nearest, and clamped to
// [0,255]. This is the only place overshoot is clamped.
func BuildLUT(pts []Point) LUT {
	sp := NewSpline(pts)
	var l LUT
	for i := range l {
		l[i] = quantize(sp.Eval(float64(i)))
	}
	return l
}

// quantize rounds to the nearest integer and clamps to [0,255].
func quantize(v float64) uint8 {
	r := math.Round(v)
	if r < DomainMin {
		return DomainMin
	}
	if r > DomainMax {
		return DomainMax
	}
	return uint8(r)
}

// IdentityLUT returns the LUT that maps every intensity to itself.
func IdentityLUT() LUT {
	var l LUT
	for i := range l {
		l[i] = uint8(i)
	}
	return l
}

// IsIdentity reports whether every entry maps to itself.
func (l *LUT) IsIdentity() bool {
	for i, v := range l {
		if int(v) != i {
			return false
		}
	}
	return true
}

// Compose chains two LUTs: the result of master feeds channel, so
// out[i] = channel[master[i]]. This fixes the compositing contract for
// the whole engine: the master curve is applied first, then the
// per-channel curve.
func Compose(master, channel LUT) LUT {
	var out LUT
	for i := range out {
		out[i] = channel[master[i]]
	}
	return out
}

// LUTs holds the four effective lookup tables, indexed by Channel. For
// Master the effective LUT is the master LUT itself; for each color
// channel it is the channel LUT composed after the master.
type LUTs [NumChannels]LUT

// IdentityLUTs returns effective LUTs that leave every pixel unchanged.
func IdentityLUTs() *LUTs {
	var ls LUTs
	id := IdentityLUT()
	for c := range ls {
		ls[c] = id
	}
	return &ls
}
