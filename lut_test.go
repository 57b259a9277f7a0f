// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tonecurve

import "testing"

func TestBuildLUT_Identity(t *testing.T) {
	l := BuildLUT([]Point{{0, 0}, {255, 255}})
	for i, v := range l {
		if int(v) != i {
			t.Fatalf("lut[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestBuildLUT_PassesThroughPoints(t *testing.T) {
	pts := []Point{{0, 12}, {50, 80}, {128, 160}, {200, 90}, {255, 255}}
	l := BuildLUT(pts)
	for _, p := range pts {
		if got := l[p.X]; got != uint8(p.Y) {
			t.Errorf("lut[%d] = %d, want %d", p.X, got, p.Y)
		}
	}
}

// Overshoot between control points is clamped when the LUT is built,
// and only there: the spline itself reports the raw value.
func TestBuildLUT_ClampsOvershoot(t *testing.T) {
	// Undershoots below 0 around x=64 (see TestSpline_OvershootIsAllowed).
	l := BuildLUT([]Point{{0, 0}, {128, 10}, {129, 250}, {255, 255}})
	if got := l[64]; got != 0 {
		t.Errorf("undershoot: lut[64] = %d, want 0", got)
	}
	// Overshoots above 255 around x=191.
	l = BuildLUT([]Point{{0, 0}, {126, 5}, {127, 245}, {255, 255}})
	if got := l[191]; got != 255 {
		t.Errorf("overshoot: lut[191] = %d, want 255", got)
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{255, 255},
		{127.49, 127},
		{127.5, 128},
		{-0.4, 0},
		{-300.7, 0},
		{255.4, 255},
		{1024.9, 255},
	}
	for _, tt := range tests {
		if got := quantize(tt.in); got != tt.want {
			t.Errorf("quantize(%g) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIdentityLUT(t *testing.T) {
	l := IdentityLUT()
	if !l.IsIdentity() {
		t.Error("IdentityLUT().IsIdentity() = false")
	}
	l[200] = 0
	if l.IsIdentity() {
		t.Error("IsIdentity() = true after modification")
	}
}

func TestCompose_MasterFirst(t *testing.T) {
	// Master brightens 128 to 160; the channel curve then darkens
	// everything by mapping v to v/2. Composed: 128 -> 160 -> 80.
	master := BuildLUT([]Point{{0, 0}, {128, 160}, {255, 255}})
	var half LUT
	for i := range half {
		half[i] = uint8(i / 2)
	}
	out := Compose(master, half)
	// The reversed order would yield master[half[128]] = master[64] = 84.
	if got := out[128]; got != 80 {
		t.Errorf("out[128] = %d, want 80 (channel applied after master)", got)
	}
}

func TestCompose_WithIdentity(t *testing.T) {
	curve := BuildLUT([]Point{{0, 30}, {100, 50}, {255, 240}})
	id := IdentityLUT()

	if got := Compose(id, curve); got != curve {
		t.Error("Compose(identity, curve) != curve")
	}
	if got := Compose(curve, id); got != curve {
		t.Error("Compose(curve, identity) != curve")
	}
}

func TestIdentityLUTs(t *testing.T) {
	ls := IdentityLUTs()
	for c := Channel(0); c < NumChannels; c++ {
		if !ls[c].IsIdentity() {
			t.Errorf("channel %v: not identity", c)
		}
	}
}
