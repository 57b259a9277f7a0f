// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tonecurve

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

// testBuffer returns a deterministic gradient buffer.
func testBuffer(t *testing.T, w, h int) *Buffer {
	t.Helper()
	b, err := NewBuffer(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.SetRGB(x, y, uint8(x*7+y), uint8(x+y*11), uint8(x*3+y*5))
		}
	}
	return b
}

func TestApply_IdentityRoundTrip(t *testing.T) {
	src := testBuffer(t, 33, 21)
	orig := src.Clone()

	out, err := Apply(src, IdentityLUTs())
	if err != nil {
		t.Fatalf("Apply = %v", err)
	}
	if !bytes.Equal(out.Pix(), orig.Pix()) {
		t.Error("identity apply changed pixel values")
	}
	if !bytes.Equal(src.Pix(), orig.Pix()) {
		t.Error("Apply mutated its input")
	}
	if &out.Pix()[0] == &src.Pix()[0] {
		t.Error("Apply returned a buffer aliasing its input")
	}
}

func TestApply_CompositedPixel(t *testing.T) {
	st := NewState()
	if _, err := st.Insert(Master, 128, 160); err != nil {
		t.Fatal(err)
	}

	src, err := NewBuffer(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	src.SetRGB(0, 0, 128, 128, 128)

	out, err := Apply(src, st.EffectiveLUTs())
	if err != nil {
		t.Fatalf("Apply = %v", err)
	}
	r, g, b := out.RGB(0, 0)
	if r != 160 || g != 160 || b != 160 {
		t.Errorf("out pixel = (%d,%d,%d), want (160,160,160)", r, g, b)
	}
}

func TestApply_PerChannelLUTs(t *testing.T) {
	st := NewState()
	if _, err := st.Insert(Red, 100, 200); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Insert(Blue, 100, 10); err != nil {
		t.Fatal(err)
	}

	src, _ := NewBuffer(1, 1)
	src.SetRGB(0, 0, 100, 100, 100)
	out, err := Apply(src, st.EffectiveLUTs())
	if err != nil {
		t.Fatal(err)
	}
	r, g, b := out.RGB(0, 0)
	if r != 200 || g != 100 || b != 10 {
		t.Errorf("out pixel = (%d,%d,%d), want (200,100,10)", r, g, b)
	}
}

func TestApply_InvalidShape(t *testing.T) {
	var zero Buffer
	if _, err := Apply(&zero, IdentityLUTs()); !errors.Is(err, ErrInvalidBufferShape) {
		t.Errorf("Apply(zero) = %v, want %v", err, ErrInvalidBufferShape)
	}
}

func TestApplyTo(t *testing.T) {
	src := testBuffer(t, 8, 5)
	dst, _ := NewBuffer(8, 5)

	st := NewState()
	if _, err := st.Insert(Master, 128, 60); err != nil {
		t.Fatal(err)
	}
	luts := st.EffectiveLUTs()

	if err := ApplyTo(dst, src, luts); err != nil {
		t.Fatalf("ApplyTo = %v", err)
	}
	want, err := Apply(src, luts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dst.Pix(), want.Pix()) {
		t.Error("ApplyTo result differs from Apply")
	}

	// Shape mismatch is rejected.
	small, _ := NewBuffer(4, 5)
	if err := ApplyTo(small, src, luts); !errors.Is(err, ErrInvalidBufferShape) {
		t.Errorf("mismatched dst err = %v, want %v", err, ErrInvalidBufferShape)
	}
}

func TestApplyRows(t *testing.T) {
	src := testBuffer(t, 6, 10)
	dst, _ := NewBuffer(6, 10)

	st := NewState()
	if _, err := st.Insert(Master, 100, 180); err != nil {
		t.Fatal(err)
	}
	luts := st.EffectiveLUTs()

	// Apply in two bands; rows outside a band stay untouched.
	if err := ApplyRows(dst, src, luts, 0, 4); err != nil {
		t.Fatalf("ApplyRows = %v", err)
	}
	if r, g, b := dst.RGB(0, 9); r != 0 || g != 0 || b != 0 {
		t.Error("ApplyRows wrote outside its band")
	}
	if err := ApplyRows(dst, src, luts, 4, 10); err != nil {
		t.Fatalf("ApplyRows = %v", err)
	}

	want, err := Apply(src, luts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dst.Pix(), want.Pix()) {
		t.Error("banded apply differs from full apply")
	}

	// Bad row ranges.
	for _, r := range [][2]int{{-1, 2}, {0, 11}, {7, 3}} {
		if err := ApplyRows(dst, src, luts, r[0], r[1]); !errors.Is(err, ErrInvalidBufferShape) {
			t.Errorf("ApplyRows(%d, %d) = %v, want %v", r[0], r[1], err, ErrInvalidBufferShape)
		}
	}
}

func TestApplyImage_PreservesAlpha(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.SetRGBA(0, 0, color.RGBA{100, 100, 100, 255})
	img.SetRGBA(1, 0, color.RGBA{100, 50, 25, 128})
	img.SetRGBA(2, 0, color.RGBA{0, 255, 30, 0})

	st := NewState()
	if _, err := st.Insert(Red, 100, 200); err != nil {
		t.Fatal(err)
	}
	out := ApplyImage(img, st.EffectiveLUTs())

	if got := out.RGBAAt(0, 0); got != (color.RGBA{200, 100, 100, 255}) {
		t.Errorf("pixel 0 = %v, want {200 100 100 255}", got)
	}
	if got := out.RGBAAt(1, 0).A; got != 128 {
		t.Errorf("pixel 1 alpha = %d, want 128", got)
	}
	if got := out.RGBAAt(2, 0).A; got != 0 {
		t.Errorf("pixel 2 alpha = %d, want 0", got)
	}
	// Input untouched.
	if got := img.RGBAAt(0, 0); got != (color.RGBA{100, 100, 100, 255}) {
		t.Errorf("input mutated: %v", got)
	}
}

func TestApplyImage_IdentityEqualsInput(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 9, 4))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 13)
	}
	out := ApplyImage(img, IdentityLUTs())
	if !bytes.Equal(out.Pix, img.Pix) {
		t.Error("identity ApplyImage changed pixels")
	}
}

func TestApplyRGBARows(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 6))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 5)
	}
	dst := image.NewRGBA(src.Bounds())

	st := NewState()
	if _, err := st.Insert(Master, 77, 50); err != nil {
		t.Fatal(err)
	}
	luts := st.EffectiveLUTs()

	if err := ApplyRGBARows(dst, src, luts, 0, 3); err != nil {
		t.Fatalf("ApplyRGBARows = %v", err)
	}
	if err := ApplyRGBARows(dst, src, luts, 3, 6); err != nil {
		t.Fatalf("ApplyRGBARows = %v", err)
	}
	want := ApplyImage(src, luts)
	if !bytes.Equal(dst.Pix, want.Pix) {
		t.Error("banded RGBA apply differs from ApplyImage")
	}

	// Size mismatch.
	other := image.NewRGBA(image.Rect(0, 0, 3, 6))
	if err := ApplyRGBARows(other, src, luts, 0, 1); !errors.Is(err, ErrInvalidBufferShape) {
		t.Errorf("mismatched sizes err = %v, want %v", err, ErrInvalidBufferShape)
	}
	// Bad range.
	if err := ApplyRGBARows(dst, src, luts, 2, 99); !errors.Is(err, ErrInvalidBufferShape) {
		t.Errorf("bad range err = %v, want %v", err, ErrInvalidBufferShape)
	}
}
